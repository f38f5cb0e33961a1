package store

import (
	"errors"
	"fmt"
	"strings"
)

// Tenant ENUMs
const (
	TenantStatusActive    = "active"
	TenantStatusSuspended = "suspended"
)

// ParticipationStatus is the redemption lifecycle state of a participation.
type ParticipationStatus string

const (
	ParticipationStatusPending  ParticipationStatus = "pending"
	ParticipationStatusVerified ParticipationStatus = "verified"
	ParticipationStatusRedeemed ParticipationStatus = "redeemed"
)

// PlatformAction is the qualifying social or review action that unlocks one play.
type PlatformAction string

const (
	PlatformActionReviewA PlatformAction = "review-platform-a"
	PlatformActionReviewB PlatformAction = "review-platform-b"
	PlatformActionFollowA PlatformAction = "social-follow-a"
	PlatformActionFollowB PlatformAction = "social-follow-b"
	PlatformActionLike    PlatformAction = "social-like"
)

// PlatformActions lists every accepted action in display order.
var PlatformActions = []PlatformAction{
	PlatformActionReviewA,
	PlatformActionReviewB,
	PlatformActionFollowA,
	PlatformActionFollowB,
	PlatformActionLike,
}

// ErrUnknownPlatformAction is returned by ParsePlatformAction for values outside the enumeration.
var ErrUnknownPlatformAction = errors.New("unknown platform action")

// ParsePlatformAction validates raw against the closed set of actions.
// Matching is case-insensitive; there is no default action.
func ParsePlatformAction(raw string) (PlatformAction, error) {
	normalized := PlatformAction(strings.ToLower(strings.TrimSpace(raw)))
	for _, a := range PlatformActions {
		if a == normalized {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatformAction, raw)
}

func (a PlatformAction) String() string {
	return string(a)
}
