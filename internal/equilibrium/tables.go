package equilibrium

import "github.com/lox/kuhnbot/internal/kuhn"

// Tables holds the strategy entries that are constant across every member
// of the equilibrium family. A single immutable value is built here and
// handed to the seat engines by reference; nothing mutates it after
// package initialization.
//
// Naming matches the parameter slots: the letter is the seat, the first
// digit the card, the second the situation. Seat 0's whole strategy is
// fixed, so it gets a full rank-by-situation table.
type Tables struct {
	// A[rank][situation-1] is seat 0's mixing weight: the bet probability
	// in situation 1 and the call probability in situations 2-4.
	A [kuhn.NumRanks][4]float64

	// Seat 1 fixed entries.
	B12, B13, B14 float64 // Jack folds everywhere
	B22, B24      float64 // Queen folds facing a bet
	B31, B34      float64 // King never open-bets, folds when seat 0 called
	B42, B43, B44 float64 // Ace always calls

	// Seat 2 fixed entries.
	C12, C13, C14 float64 // Jack folds everywhere
	C22, C23, C24 float64 // Queen folds everywhere
	C31, C32      float64 // King never open-bets, folds facing seat 1's bet
	C4            [4]float64
}

// defaultTables are the fixed entries of the parameterized family: seat 0
// never open-bets, calls a single bet only with the Ace except that the
// King calls half the time when seat 2 has folded, and aces never fold.
var defaultTables = Tables{
	A: [kuhn.NumRanks][4]float64{
		kuhn.Jack:  {0, 0, 0, 0},
		kuhn.Queen: {0, 0, 0, 0},
		kuhn.King:  {0, 0, 0.5, 0},
		kuhn.Ace:   {0, 1, 1, 1},
	},

	B12: 0, B13: 0, B14: 0,
	B22: 0, B24: 0,
	B31: 0, B34: 0,
	B42: 1, B43: 1, B44: 1,

	C12: 0, C13: 0, C14: 0,
	C22: 0, C23: 0, C24: 0,
	C31: 0, C32: 0,
	C4: [4]float64{1, 1, 1, 1},
}

// DefaultTables returns the family's fixed strategy entries.
func DefaultTables() *Tables {
	return &defaultTables
}
