package equilibrium

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/kuhnbot/internal/kuhn"
)

func TestSampleWalksInActionOrder(t *testing.T) {
	probs := Probs{0, 0.3, 0.7}

	tests := []struct {
		r    float64
		want kuhn.ActionType
	}{
		{0.2, kuhn.Call},
		{0.9, kuhn.Raise},
		// Boundary draw: fold has probability exactly 0, so the walk lands
		// on call.
		{0.0, kuhn.Call},
		{0.3, kuhn.Call},
		{0.999999, kuhn.Raise},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sample(probs, tt.r), "r=%v", tt.r)
	}
}

func TestSampleDegenerateDistributions(t *testing.T) {
	assert.Equal(t, kuhn.Fold, sample(Probs{1, 0, 0}, 0.5))
	assert.Equal(t, kuhn.Call, sample(Probs{0, 1, 0}, 0.5))
	assert.Equal(t, kuhn.Raise, sample(Probs{0, 0, 1}, 0.5))
	assert.Equal(t, kuhn.Fold, sample(Probs{0.5, 0.5, 0}, 0.25))
	assert.Equal(t, kuhn.Call, sample(Probs{0.5, 0.5, 0}, 0.75))
}

func TestSampleRoundingFallback(t *testing.T) {
	// Entries summing slightly under 1 must still yield an action: the
	// walk falls through to the last action type.
	probs := Probs{0.3, 0.3, 0.3}
	assert.Equal(t, kuhn.Raise, sample(probs, 0.9999))
}
