package handler

import (
	"time"

	"wheel-server/internal/participation/processor"
	"wheel-server/internal/store"

	"github.com/google/uuid"
)

// RewardResponse is the public view of a reward
type RewardResponse struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
	IsWin bool      `json:"is_win"`
}

// PlayResponse is returned to the customer after a spin
type PlayResponse struct {
	ParticipationID  uuid.UUID                 `json:"participation_id"`
	Status           store.ParticipationStatus `json:"status"`
	Won              bool                      `json:"won"`
	Reward           RewardResponse            `json:"reward"`
	SegmentIndex     int                       `json:"segment_index"`
	WheelVersion     string                    `json:"wheel_version"`
	RedemptionToken  string                    `json:"redemption_token"`
	ValidFrom        time.Time                 `json:"valid_from"`
	ExpiresAt        time.Time                 `json:"expires_at"`
	ReplayEligibleAt time.Time                 `json:"replay_eligible_at"`
}

// ParticipationResponse is the view of a participation shown on the reward page and to staff.
// The customer's email and the redemption token are never echoed back.
type ParticipationResponse struct {
	ID             uuid.UUID                 `json:"id"`
	TenantID       uuid.UUID                 `json:"tenant_id"`
	CustomerName   string                    `json:"customer_name"`
	PlatformAction store.PlatformAction      `json:"platform_action"`
	Status         store.ParticipationStatus `json:"status"`
	Won            bool                      `json:"won"`
	RewardID       uuid.UUID                 `json:"reward_id"`
	Reward         *RewardResponse           `json:"reward,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	ValidFrom      time.Time                 `json:"valid_from"`
	ExpiresAt      time.Time                 `json:"expires_at"`
	VerifiedAt     *time.Time                `json:"verified_at,omitempty"`
	RedeemedAt     *time.Time                `json:"redeemed_at,omitempty"`
}

func toRewardResponse(r store.Reward) RewardResponse {
	return RewardResponse{ID: r.ID, Label: r.Label, IsWin: r.IsWin}
}

func toPlayResponse(result processor.PlayResult) PlayResponse {
	p := result.Participation
	return PlayResponse{
		ParticipationID:  p.ID,
		Status:           p.Status,
		Won:              p.Won,
		Reward:           toRewardResponse(result.Reward),
		SegmentIndex:     result.SegmentIndex,
		WheelVersion:     result.WheelVersion,
		RedemptionToken:  p.RedemptionToken,
		ValidFrom:        p.ValidFrom,
		ExpiresAt:        p.ExpiresAt,
		ReplayEligibleAt: p.ReplayEligibleAt,
	}
}

func toParticipationResponse(p store.Participation, reward *store.Reward) ParticipationResponse {
	resp := ParticipationResponse{
		ID:             p.ID,
		TenantID:       p.TenantID,
		CustomerName:   p.CustomerName,
		PlatformAction: p.PlatformAction,
		Status:         p.Status,
		Won:            p.Won,
		RewardID:       p.RewardID,
		CreatedAt:      p.CreatedAt,
		ValidFrom:      p.ValidFrom,
		ExpiresAt:      p.ExpiresAt,
		VerifiedAt:     p.VerifiedAt,
		RedeemedAt:     p.RedeemedAt,
	}
	if reward != nil {
		r := toRewardResponse(*reward)
		resp.Reward = &r
	}
	return resp
}
