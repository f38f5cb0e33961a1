package events

import (
	"context"
	"time"

	"wheel-server/internal/clients/kafka"
	"wheel-server/internal/observability"
	"wheel-server/internal/store"

	"github.com/google/uuid"
)

// Event types published for the outbound e-mail and analytics consumers
const (
	TypeParticipationPlayed   = "participation.played"
	TypeParticipationVerified = "participation.verified"
	TypeParticipationRedeemed = "participation.redeemed"
)

const publishTimeout = 5 * time.Second

// EventProducer writes one event to the stream
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing participation events to Kafka.
// Publishing is best effort: it runs after the ledger write committed, and a
// failure is logged and never undoes or fails the operation. A nil producer
// disables publishing.
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// PublishPlayed publishes a participation.played event
func (p *Publisher) PublishPlayed(ctx context.Context, participation store.Participation) {
	data := participationData(participation)
	data["customer_name"] = participation.CustomerName
	if participation.CustomerEmail != nil {
		data["customer_email"] = *participation.CustomerEmail
	}
	data["redemption_token"] = participation.RedemptionToken
	data["valid_from"] = participation.ValidFrom.UTC().Format(time.RFC3339)
	data["expires_at"] = participation.ExpiresAt.UTC().Format(time.RFC3339)

	p.publish(ctx, TypeParticipationPlayed, participation, data)
}

// PublishVerified publishes a participation.verified event
func (p *Publisher) PublishVerified(ctx context.Context, participation store.Participation) {
	data := participationData(participation)
	if participation.VerifiedAt != nil {
		data["verified_at"] = participation.VerifiedAt.UTC().Format(time.RFC3339)
	}

	p.publish(ctx, TypeParticipationVerified, participation, data)
}

// PublishRedeemed publishes a participation.redeemed event
func (p *Publisher) PublishRedeemed(ctx context.Context, participation store.Participation) {
	data := participationData(participation)
	if participation.RedeemedAt != nil {
		data["redeemed_at"] = participation.RedeemedAt.UTC().Format(time.RFC3339)
	}

	p.publish(ctx, TypeParticipationRedeemed, participation, data)
}

func participationData(participation store.Participation) map[string]interface{} {
	return map[string]interface{}{
		"participation_id": participation.ID.String(),
		"tenant_id":        participation.TenantID.String(),
		"platform_action":  string(participation.PlatformAction),
		"reward_id":        participation.RewardID.String(),
		"won":              participation.Won,
		"status":           string(participation.Status),
	}
}

func (p *Publisher) publish(ctx context.Context, eventType string, participation store.Participation, data map[string]interface{}) {
	if p == nil || p.producer == nil {
		return
	}

	// The request may finish before the write does
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		TenantID:  participation.TenantID.String(),
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	if err := p.producer.PublishEvent(ctx, event); err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "event_type", Value: eventType},
			observability.Field{Key: "participation_id", Value: participation.ID.String()},
		)
		p.logger.WarnWithError(ctx, "failed to publish participation event", err)
	}
}
