package equilibrium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/kuhnbot/internal/kuhn"
)

func history(betting string) kuhn.History {
	var h kuhn.History
	for _, c := range betting {
		switch c {
		case 'f':
			h.Actions = append(h.Actions, kuhn.Action{Type: kuhn.Fold})
		case 'c':
			h.Actions = append(h.Actions, kuhn.Action{Type: kuhn.Call})
		case 'r':
			h.Actions = append(h.Actions, kuhn.Action{Type: kuhn.Raise})
		}
	}
	return h
}

var ranks = []kuhn.Rank{kuhn.Jack, kuhn.Queen, kuhn.King, kuhn.Ace}

// seatHistories maps each seat to one betting history per situation, in
// situation order.
var seatHistories = [3][]string{
	{"", "ccr", "crf", "crc"},
	{"c", "r", "ccrf", "ccrc"},
	{"cc", "cr", "rf", "rc"},
}

func TestSeatProbsAreDistributions(t *testing.T) {
	p := validatedBaseline(t)
	tables := DefaultTables()

	for seat, histories := range seatHistories {
		for situation, betting := range histories {
			for _, rank := range ranks {
				var probs Probs
				switch seat {
				case 0:
					probs = seat0Probs(tables, rank, history(betting))
				case 1:
					probs = seat1Probs(tables, &p, rank, history(betting))
				default:
					probs = seat2Probs(tables, &p, rank, history(betting))
				}

				sum := 0.0
				for _, v := range probs {
					assert.GreaterOrEqual(t, v, 0.0,
						"seat %d situation %d rank %v", seat, situation+1, rank)
					assert.LessOrEqual(t, v, 1.0,
						"seat %d situation %d rank %v", seat, situation+1, rank)
					sum += v
				}
				assert.InDelta(t, 1.0, sum, 1e-9,
					"seat %d situation %d rank %v", seat, situation+1, rank)
			}
		}
	}
}

func TestSeat0Opening(t *testing.T) {
	tables := DefaultTables()

	for _, rank := range ranks {
		probs := seat0Probs(tables, rank, history(""))
		assert.Equal(t, 0.0, probs[kuhn.Fold], "rank %v", rank)
		assert.Equal(t, tables.A[rank][0], probs[kuhn.Raise], "rank %v", rank)
		assert.Equal(t, 1-tables.A[rank][0], probs[kuhn.Call], "rank %v", rank)
	}
}

func TestSeat0Situations(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		betting string
		col     int
	}{
		{"ccr", 1}, // situation 2: checked around to seat 2's bet
		{"crf", 2}, // situation 3: seat 1 bet, seat 2 folded
		{"crc", 3}, // situation 4: seat 1 bet, seat 2 called
	}
	for _, tt := range tests {
		for _, rank := range ranks {
			probs := seat0Probs(tables, rank, history(tt.betting))
			assert.Equal(t, 0.0, probs[kuhn.Raise], "betting %q rank %v", tt.betting, rank)
			assert.Equal(t, tables.A[rank][tt.col], probs[kuhn.Call],
				"betting %q rank %v", tt.betting, rank)
		}
	}

	// King calls half the time only when seat 2 is out of the way.
	probs := seat0Probs(tables, kuhn.King, history("crf"))
	assert.Equal(t, 0.5, probs[kuhn.Call])
	probs = seat0Probs(tables, kuhn.King, history("crc"))
	assert.Equal(t, 0.0, probs[kuhn.Call])
}

func TestSeat1Situations(t *testing.T) {
	p := validatedBaseline(t)
	tables := DefaultTables()

	// Situation 1: opening after seat 0's check mixes raise against check.
	probs := seat1Probs(tables, &p, kuhn.Jack, history("c"))
	assert.Equal(t, 0.0, probs[kuhn.Fold])
	assert.Equal(t, p[B11], probs[kuhn.Raise])
	assert.Equal(t, 1-p[B11], probs[kuhn.Call])

	probs = seat1Probs(tables, &p, kuhn.Ace, history("c"))
	assert.Equal(t, p[B41], probs[kuhn.Raise])

	// Situation 2: facing seat 0's bet, only the King's weight is a
	// validated parameter.
	probs = seat1Probs(tables, &p, kuhn.King, history("r"))
	assert.Equal(t, 0.0, probs[kuhn.Raise])
	assert.Equal(t, p[B32], probs[kuhn.Call])
	assert.Equal(t, 1-p[B32], probs[kuhn.Fold])

	probs = seat1Probs(tables, &p, kuhn.Queen, history("r"))
	assert.Equal(t, 0.0, probs[kuhn.Call])

	// Situation 3: seat 2 bet and seat 0 folded.
	probs = seat1Probs(tables, &p, kuhn.King, history("ccrf"))
	assert.Equal(t, p[B33], probs[kuhn.Call])

	// Situation 4: seat 2 bet and seat 0 called.
	probs = seat1Probs(tables, &p, kuhn.King, history("ccrc"))
	assert.Equal(t, tables.B34, probs[kuhn.Call])
	probs = seat1Probs(tables, &p, kuhn.Ace, history("ccrc"))
	assert.Equal(t, 1.0, probs[kuhn.Call])
}

func TestSeat2Situations(t *testing.T) {
	p := validatedBaseline(t)
	tables := DefaultTables()

	// Situation 1: both early seats checked; the Queen's bet weight is the
	// derived c21 and the Jack's the sub-family defining c11.
	probs := seat2Probs(tables, &p, kuhn.Queen, history("cc"))
	assert.Equal(t, 0.0, probs[kuhn.Fold])
	assert.Equal(t, p[C21], probs[kuhn.Raise])
	assert.Equal(t, 1-p[C21], probs[kuhn.Call])

	probs = seat2Probs(tables, &p, kuhn.Jack, history("cc"))
	assert.Equal(t, p[C11], probs[kuhn.Raise])

	probs = seat2Probs(tables, &p, kuhn.Ace, history("cc"))
	assert.Equal(t, 1.0, probs[kuhn.Raise])

	// Situation 2: seat 1 bet after seat 0 checked.
	probs = seat2Probs(tables, &p, kuhn.Ace, history("cr"))
	assert.Equal(t, 0.0, probs[kuhn.Raise])
	assert.Equal(t, 1.0, probs[kuhn.Call])
	probs = seat2Probs(tables, &p, kuhn.King, history("cr"))
	assert.Equal(t, tables.C32, probs[kuhn.Call])

	// Situations 3 and 4: seat 0 bet; the King's weights are the free c33
	// and c34 parameters.
	probs = seat2Probs(tables, &p, kuhn.King, history("rf"))
	assert.Equal(t, p[C33], probs[kuhn.Call])
	assert.Equal(t, 1-p[C33], probs[kuhn.Fold])

	probs = seat2Probs(tables, &p, kuhn.King, history("rc"))
	assert.Equal(t, p[C34], probs[kuhn.Call])

	probs = seat2Probs(tables, &p, kuhn.Jack, history("rc"))
	assert.Equal(t, 1.0, probs[kuhn.Fold])
}

func TestSeatSituationDisambiguation(t *testing.T) {
	// The situation split must key off action positions, not just history
	// length: "ccrf" and "ccrc" differ only in seat 0's response but land
	// seat 1 in different situations.
	p := validatedBaseline(t)
	tables := DefaultTables()

	fold := seat1Probs(tables, &p, kuhn.King, history("ccrf"))
	call := seat1Probs(tables, &p, kuhn.King, history("ccrc"))
	require.NotEqual(t, fold[kuhn.Call], call[kuhn.Call])
}
