package equilibrium

import "github.com/lox/kuhnbot/internal/kuhn"

// Probs is a probability distribution over action types, indexed by
// kuhn.ActionType. Entries are non-negative and sum to 1 up to floating
// rounding. A fresh vector is produced for every decision; none are kept.
type Probs [kuhn.NumActionTypes]float64

// sample picks an action type from the distribution using a single uniform
// draw r in [0,1): inverse-CDF sampling walking fold, call, raise in order.
// Zero-probability entries never match, so a boundary draw of exactly 0
// lands on the first action with positive weight. If rounding leaves the
// walk unfinished the last action type is the fallback.
func sample(probs Probs, r float64) kuhn.ActionType {
	for t := kuhn.Fold; t < kuhn.NumActionTypes; t++ {
		if probs[t] > 0 && r <= probs[t] {
			return t
		}
		r -= probs[t]
	}
	return kuhn.NumActionTypes - 1
}
