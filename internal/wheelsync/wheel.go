// Package wheelsync maps authoritative draw results onto the segments the
// client animates. The server decides the reward; the wheel only displays it.
package wheelsync

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"wheel-server/internal/store"

	"github.com/google/uuid"
)

var ErrSegmentNotFound = errors.New("reward has no segment on this wheel")

// Segment is one slice of the wheel, in draw order
type Segment struct {
	Index    int       `json:"index"`
	RewardID uuid.UUID `json:"reward_id"`
	Label    string    `json:"label"`
	IsWin    bool      `json:"is_win"`
}

// Wheel is the client-facing layout of a tenant's active rewards.
// Version changes whenever the ordered segment list changes.
type Wheel struct {
	Version  string    `json:"version"`
	Segments []Segment `json:"segments"`
}

// BuildWheel lays out rewards as segments in the order given, which must be
// the same ordered active-reward list the draw runs over.
func BuildWheel(rewards []store.Reward) Wheel {
	segments := make([]Segment, 0, len(rewards))
	for i, r := range rewards {
		segments = append(segments, Segment{
			Index:    i,
			RewardID: r.ID,
			Label:    r.Label,
			IsWin:    r.IsWin,
		})
	}
	return Wheel{
		Version:  version(segments),
		Segments: segments,
	}
}

// Resolve returns the segment index showing rewardID.
// There is no fallback segment: an unknown reward fails closed.
func (w Wheel) Resolve(rewardID uuid.UUID) (int, error) {
	for _, s := range w.Segments {
		if s.RewardID == rewardID {
			return s.Index, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrSegmentNotFound, rewardID)
}

func version(segments []Segment) string {
	h := sha256.New()
	for _, s := range segments {
		h.Write([]byte(strconv.Itoa(s.Index)))
		h.Write([]byte{0})
		h.Write(s.RewardID[:])
		h.Write([]byte(s.Label))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatBool(s.IsWin)))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
