package processor

import (
	"fmt"
	"math"

	"wheel-server/internal/store"
)

// Draw picks one reward with probability proportional to its weight.
//
// rnd must return values in [0, 1). The walk accumulates normalised weights in list order and
// returns the first reward whose cumulative weight reaches r, so earlier rewards win ties.
// Zero-weight rewards are never drawn. If rounding leaves r beyond the last cumulative weight,
// the last positive-weight reward is returned.
func Draw(rewards []store.Reward, rnd func() float64) (store.Reward, error) {
	if len(rewards) == 0 {
		return store.Reward{}, fmt.Errorf("%w: no active rewards", ErrMisconfiguredRewardSet)
	}

	var total float64
	lastPositive := -1
	for i, r := range rewards {
		if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) || r.Weight < 0 {
			return store.Reward{}, fmt.Errorf("%w: reward %s has invalid weight %v", ErrMisconfiguredRewardSet, r.ID, r.Weight)
		}
		if r.Weight > 0 {
			lastPositive = i
		}
		total += r.Weight
	}
	if total <= 0 || math.IsInf(total, 0) {
		return store.Reward{}, fmt.Errorf("%w: weights sum to %v", ErrMisconfiguredRewardSet, total)
	}

	target := rnd()
	if target < 0 || math.IsNaN(target) {
		target = 0
	}

	var cumulative float64
	for _, r := range rewards {
		if r.Weight == 0 {
			continue
		}
		cumulative += r.Weight / total
		if cumulative >= target {
			return r, nil
		}
	}
	return rewards[lastPositive], nil
}
