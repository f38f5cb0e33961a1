package processor

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/mail"
	"strings"
	"time"

	"wheel-server/internal/observability"
	"wheel-server/internal/store"
	"wheel-server/internal/tenants"
	"wheel-server/internal/wheelsync"

	"github.com/google/uuid"
)

const maxTokenAttempts = 3

type ParticipationProcessor struct {
	store   ParticipationStore
	tenants TenantProvider
	events  EventPublisher
	tokens  TokenGenerator
	logger  *observability.Logger
	now     func() time.Time
	random  func() float64
}

// Option customizes a ParticipationProcessor
type Option func(*ParticipationProcessor)

// WithClock replaces the wall clock
func WithClock(now func() time.Time) Option {
	return func(p *ParticipationProcessor) { p.now = now }
}

// WithRandom replaces the draw's random source. It must return values in [0, 1).
func WithRandom(random func() float64) Option {
	return func(p *ParticipationProcessor) { p.random = random }
}

// WithTokenGenerator replaces the redemption token generator
func WithTokenGenerator(tokens TokenGenerator) Option {
	return func(p *ParticipationProcessor) { p.tokens = tokens }
}

func New(store ParticipationStore, tenants TenantProvider, events EventPublisher, logger *observability.Logger, opts ...Option) ParticipationProcessor {
	p := ParticipationProcessor{
		store:   store,
		tenants: tenants,
		events:  events,
		tokens:  SecureTokenGenerator{},
		logger:  logger,
		now:     time.Now,
		random:  rand.Float64,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// PlayRequest represents one play attempt
type PlayRequest struct {
	CustomerName   string
	CustomerEmail  string
	PlatformAction string
}

// PlayResult is the authoritative outcome of a play.
// The client animates the wheel toward SegmentIndex.
type PlayResult struct {
	Participation store.Participation
	Reward        store.Reward
	SegmentIndex  int
	WheelVersion  string
}

// Play runs the eligibility gate, draws a reward and records the participation
func (p *ParticipationProcessor) Play(ctx context.Context, tenantID uuid.UUID, req PlayRequest) (PlayResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tenant_id", Value: tenantID.String()},
		observability.Field{Key: "platform_action", Value: req.PlatformAction},
	)

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return PlayResult{}, ErrInvalidCustomerName
	}
	action, err := store.ParsePlatformAction(req.PlatformAction)
	if err != nil {
		return PlayResult{}, fmt.Errorf("%w: %q", ErrInvalidPlatformAction, req.PlatformAction)
	}
	email, err := normalizeEmail(req.CustomerEmail)
	if err != nil {
		return PlayResult{}, err
	}

	cfg, err := p.tenants.Get(ctx, tenantID)
	if err != nil {
		return PlayResult{}, err
	}

	now := cfg.LocalTime(p.now())

	if email != nil {
		if err := CheckEligibility(ctx, p.store, cfg, *email, action, now); err != nil {
			if !isRejection(err) {
				p.logger.Error(ctx, "failed to check eligibility", err)
			}
			return PlayResult{}, err
		}
	}

	rewards, err := p.store.GetActiveRewardsByTenant(ctx, tenantID)
	if err != nil {
		p.logger.Error(ctx, "failed to get active rewards", err)
		return PlayResult{}, fmt.Errorf("failed to get active rewards: %w", err)
	}
	reward, err := Draw(rewards, p.random)
	if err != nil {
		p.logger.Error(ctx, "reward set cannot be drawn", err)
		return PlayResult{}, err
	}

	wheel := wheelsync.BuildWheel(rewards)
	segment, err := wheel.Resolve(reward.ID)
	if err != nil {
		p.logger.Error(ctx, "drawn reward missing from wheel", err)
		return PlayResult{}, fmt.Errorf("failed to resolve wheel segment: %w", err)
	}

	validFrom, expiresAt := ValidityWindow(now, cfg.RewardValidityDays)
	params := store.CreateParticipationParams{
		TenantID:         tenantID,
		CustomerName:     name,
		CustomerEmail:    email,
		PlatformAction:   action,
		RewardID:         reward.ID,
		Won:              reward.IsWin,
		CreatedAt:        now,
		ValidFrom:        validFrom,
		ExpiresAt:        expiresAt,
		ReplayEligibleAt: now.Add(cfg.ReplayDelay()),
		Guard: store.EligibilityGuard{
			DayStart:              cfg.DayStart(now),
			MaxPlaysPerDay:        cfg.MaxPlaysPerDay,
			EnforceReplayCooldown: cfg.EnforceReplayCooldown,
		},
	}

	participation, err := p.createParticipation(ctx, cfg, params)
	if err != nil {
		return PlayResult{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "participation_id", Value: participation.ID.String()})
	p.logger.Info(ctx, "participation recorded")
	p.events.PublishPlayed(ctx, participation)

	return PlayResult{
		Participation: participation,
		Reward:        reward,
		SegmentIndex:  segment,
		WheelVersion:  wheel.Version,
	}, nil
}

func (p *ParticipationProcessor) createParticipation(ctx context.Context, cfg tenants.Config, params store.CreateParticipationParams) (store.Participation, error) {
	for attempt := 1; ; attempt++ {
		token, err := p.tokens.Generate()
		if err != nil {
			p.logger.Error(ctx, "failed to generate redemption token", err)
			return store.Participation{}, fmt.Errorf("failed to generate redemption token: %w", err)
		}
		params.RedemptionToken = token

		participation, err := p.store.CreateParticipation(ctx, params)
		switch {
		case err == nil:
			return participation, nil
		case errors.Is(err, store.ErrDuplicateToken) && attempt < maxTokenAttempts:
			p.logger.Warn(ctx, "redemption token collision, regenerating")
			continue
		case errors.Is(err, store.ErrDuplicateAction):
			return store.Participation{}, ErrDuplicateAction
		case errors.Is(err, store.ErrDailyLimitReached):
			return store.Participation{}, &DailyLimitError{Limit: cfg.MaxPlaysPerDay}
		case errors.Is(err, store.ErrReplayCooldown):
			return store.Participation{}, p.cooldownError(ctx, cfg, params)
		}
		p.logger.Error(ctx, "failed to create participation", err)
		return store.Participation{}, fmt.Errorf("failed to create participation: %w", err)
	}
}

func (p *ParticipationProcessor) cooldownError(ctx context.Context, cfg tenants.Config, params store.CreateParticipationParams) error {
	latest, err := p.store.GetLatestReplayEligibleAt(ctx, cfg.TenantID, *params.CustomerEmail)
	if err != nil || latest == nil {
		return &ReplayCooldownError{}
	}
	return &ReplayCooldownError{EligibleAt: *latest}
}

// GetWheel returns the segments the client renders for a tenant
func (p *ParticipationProcessor) GetWheel(ctx context.Context, tenantID uuid.UUID) (wheelsync.Wheel, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tenant_id", Value: tenantID.String()})

	if _, err := p.tenants.Get(ctx, tenantID); err != nil {
		return wheelsync.Wheel{}, err
	}

	rewards, err := p.store.GetActiveRewardsByTenant(ctx, tenantID)
	if err != nil {
		p.logger.Error(ctx, "failed to get active rewards", err)
		return wheelsync.Wheel{}, fmt.Errorf("failed to get active rewards: %w", err)
	}
	if len(rewards) == 0 {
		return wheelsync.Wheel{}, fmt.Errorf("%w: no active rewards", ErrMisconfiguredRewardSet)
	}
	return wheelsync.BuildWheel(rewards), nil
}

// ParticipationDetails is a participation together with the reward it holds
type ParticipationDetails struct {
	Participation store.Participation
	Reward        store.Reward
}

// GetByToken returns the participation behind a redemption token
func (p *ParticipationProcessor) GetByToken(ctx context.Context, token string) (ParticipationDetails, error) {
	participation, err := p.getByToken(ctx, token)
	if err != nil {
		return ParticipationDetails{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "participation_id", Value: participation.ID.String()})
	reward, err := p.store.GetRewardByID(ctx, participation.RewardID)
	if err != nil {
		p.logger.Error(ctx, "failed to get participation reward", err)
		return ParticipationDetails{}, fmt.Errorf("failed to get reward: %w", err)
	}

	return ParticipationDetails{Participation: participation, Reward: reward}, nil
}

// Verify marks a pending participation as checked by staff of the owning tenant
func (p *ParticipationProcessor) Verify(ctx context.Context, participationID, staffTenantID uuid.UUID) (store.Participation, error) {
	participation, err := p.getOwnedParticipation(ctx, participationID, staffTenantID)
	if err != nil {
		return store.Participation{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "participation_id", Value: participationID.String()})

	if participation.Status != store.ParticipationStatusPending {
		return store.Participation{}, ErrInvalidTransition
	}

	verified, err := p.store.VerifyParticipation(ctx, participationID, p.now())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrStatusConflict):
			return store.Participation{}, ErrInvalidTransition
		case errors.Is(err, store.ErrNotFound):
			return store.Participation{}, ErrParticipationNotFound
		}
		p.logger.Error(ctx, "failed to verify participation", err)
		return store.Participation{}, fmt.Errorf("failed to verify participation: %w", err)
	}

	p.logger.Info(ctx, "participation verified")
	p.events.PublishVerified(ctx, verified)
	return verified, nil
}

// RedeemByToken redeems the reward presented by the customer
func (p *ParticipationProcessor) RedeemByToken(ctx context.Context, token string) (store.Participation, error) {
	participation, err := p.getByToken(ctx, token)
	if err != nil {
		return store.Participation{}, err
	}
	return p.redeem(ctx, participation)
}

// RedeemByID redeems a participation on behalf of staff of the owning tenant
func (p *ParticipationProcessor) RedeemByID(ctx context.Context, staffTenantID, participationID uuid.UUID) (store.Participation, error) {
	participation, err := p.getOwnedParticipation(ctx, participationID, staffTenantID)
	if err != nil {
		return store.Participation{}, err
	}
	return p.redeem(ctx, participation)
}

// redeem moves a winning participation to redeemed exactly once.
// The validity window is not checked here.
func (p *ParticipationProcessor) redeem(ctx context.Context, participation store.Participation) (store.Participation, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tenant_id", Value: participation.TenantID.String()},
		observability.Field{Key: "participation_id", Value: participation.ID.String()},
	)

	if !participation.Won {
		return store.Participation{}, ErrInvalidTransition
	}
	if participation.Status == store.ParticipationStatusRedeemed && participation.RedeemedAt != nil {
		return store.Participation{}, &AlreadyRedeemedError{RedeemedAt: *participation.RedeemedAt}
	}

	redeemed, err := p.store.RedeemParticipation(ctx, participation.ID, p.now())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyRedeemed):
			var redeemedAt time.Time
			if redeemed.RedeemedAt != nil {
				redeemedAt = *redeemed.RedeemedAt
			}
			return store.Participation{}, &AlreadyRedeemedError{RedeemedAt: redeemedAt}
		case errors.Is(err, store.ErrNotRedeemable):
			return store.Participation{}, ErrInvalidTransition
		case errors.Is(err, store.ErrNotFound):
			return store.Participation{}, ErrParticipationNotFound
		}
		p.logger.Error(ctx, "failed to redeem participation", err)
		return store.Participation{}, fmt.Errorf("failed to redeem participation: %w", err)
	}

	p.logger.Info(ctx, "participation redeemed")
	p.events.PublishRedeemed(ctx, redeemed)
	return redeemed, nil
}

func (p *ParticipationProcessor) getByToken(ctx context.Context, token string) (store.Participation, error) {
	if strings.TrimSpace(token) == "" {
		return store.Participation{}, ErrParticipationNotFound
	}
	participation, err := p.store.GetParticipationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participation{}, ErrParticipationNotFound
		}
		p.logger.Error(ctx, "failed to get participation by token", err)
		return store.Participation{}, fmt.Errorf("failed to get participation: %w", err)
	}
	return participation, nil
}

func (p *ParticipationProcessor) getOwnedParticipation(ctx context.Context, participationID, staffTenantID uuid.UUID) (store.Participation, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tenant_id", Value: staffTenantID.String()},
		observability.Field{Key: "participation_id", Value: participationID.String()},
	)

	participation, err := p.store.GetParticipationByID(ctx, participationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participation{}, ErrParticipationNotFound
		}
		p.logger.Error(ctx, "failed to get participation", err)
		return store.Participation{}, fmt.Errorf("failed to get participation: %w", err)
	}
	if participation.TenantID != staffTenantID {
		p.logger.Warn(ctx, "staff tried to access another tenant's participation")
		return store.Participation{}, ErrForbidden
	}
	return participation, nil
}

// normalizeEmail returns nil for anonymous plays and the lower-cased address otherwise
func normalizeEmail(raw string) (*string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	normalized := strings.ToLower(addr.Address)
	return &normalized, nil
}

func isRejection(err error) bool {
	return errors.Is(err, ErrDuplicateAction) ||
		errors.Is(err, ErrDailyLimitReached) ||
		errors.Is(err, ErrReplayCooldown)
}
