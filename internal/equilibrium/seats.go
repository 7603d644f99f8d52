package equilibrium

import "github.com/lox/kuhnbot/internal/kuhn"

// The seat engines classify the betting history into one of four
// situations per seat and look up the applicable mixing weight. Situations
// partition the reachable decision nodes of the game tree exhaustively:
// three seats and at most one raise leave each seat at most two decisions
// per hand.
//
// Every engine returns a fold/call/raise distribution. Opening situations
// mix between raising and checking (fold probability zero); all other
// situations mix between calling and folding (raise probability zero).

// seat0Probs is the first seat to act. Its strategy is entirely fixed by
// the table: situation 1 is the opening decision, situation 2 faces seat
// 2's bet after both early seats checked, and situations 3 and 4 face seat
// 1's bet after seat 2 folded or called.
func seat0Probs(t *Tables, rank kuhn.Rank, h kuhn.History) Probs {
	var probs Probs

	if h.Len() == 0 { // situation 1
		bet := t.A[rank][0]
		probs[kuhn.Raise] = bet
		probs[kuhn.Call] = 1 - bet
		return probs
	}

	col := 3 // situation 4
	if h.Actions[1].Type == kuhn.Call {
		col = 1 // situation 2
	} else if h.Actions[2].Type == kuhn.Fold {
		col = 2 // situation 3
	}

	call := t.A[rank][col]
	probs[kuhn.Call] = call
	probs[kuhn.Fold] = 1 - call
	return probs
}

// seat1Probs acts second. One prior action means either the opening
// decision after seat 0 checked (situation 1) or a response to seat 0's
// bet (situation 2); otherwise seat 1 checked, seat 2 bet, and seat 0
// either folded (situation 3) or called (situation 4).
func seat1Probs(t *Tables, p *Params, rank kuhn.Rank, h kuhn.History) Probs {
	var probs Probs
	var weight float64

	if h.Len() == 1 {
		if h.Actions[0].Type == kuhn.Call { // situation 1
			switch rank {
			case kuhn.Jack:
				weight = p[B11]
			case kuhn.Queen:
				weight = p[B21]
			case kuhn.King:
				weight = t.B31
			case kuhn.Ace:
				weight = p[B41]
			}
			probs[kuhn.Raise] = weight
			probs[kuhn.Call] = 1 - weight
			return probs
		}

		// situation 2
		switch rank {
		case kuhn.Jack:
			weight = t.B12
		case kuhn.Queen:
			weight = t.B22
		case kuhn.King:
			weight = p[B32]
		case kuhn.Ace:
			weight = t.B42
		}
	} else if h.Actions[3].Type == kuhn.Fold { // situation 3
		switch rank {
		case kuhn.Jack:
			weight = t.B13
		case kuhn.Queen:
			weight = p[B23]
		case kuhn.King:
			weight = p[B33]
		case kuhn.Ace:
			weight = t.B43
		}
	} else { // situation 4
		switch rank {
		case kuhn.Jack:
			weight = t.B14
		case kuhn.Queen:
			weight = t.B24
		case kuhn.King:
			weight = t.B34
		case kuhn.Ace:
			weight = t.B44
		}
	}

	probs[kuhn.Call] = weight
	probs[kuhn.Fold] = 1 - weight
	return probs
}

// seat2Probs acts last, so its situation is keyed off the first two
// actions rather than the history length: both checked (situation 1, an
// opening decision), seat 0 checked and seat 1 bet (situation 2), or seat
// 0 bet and seat 1 folded or called (situations 3 and 4).
func seat2Probs(t *Tables, p *Params, rank kuhn.Rank, h kuhn.History) Probs {
	var probs Probs
	var weight float64

	if h.Actions[0].Type == kuhn.Call {
		if h.Actions[1].Type == kuhn.Call { // situation 1
			switch rank {
			case kuhn.Jack:
				weight = p[C11]
			case kuhn.Queen:
				weight = p[C21]
			case kuhn.King:
				weight = t.C31
			case kuhn.Ace:
				weight = t.C4[0]
			}
			probs[kuhn.Raise] = weight
			probs[kuhn.Call] = 1 - weight
			return probs
		}

		// situation 2
		switch rank {
		case kuhn.Jack:
			weight = t.C12
		case kuhn.Queen:
			weight = t.C22
		case kuhn.King:
			weight = t.C32
		case kuhn.Ace:
			weight = t.C4[1]
		}
	} else if h.Actions[1].Type == kuhn.Fold { // situation 3
		switch rank {
		case kuhn.Jack:
			weight = t.C13
		case kuhn.Queen:
			weight = t.C23
		case kuhn.King:
			weight = p[C33]
		case kuhn.Ace:
			weight = t.C4[2]
		}
	} else { // situation 4
		switch rank {
		case kuhn.Jack:
			weight = t.C14
		case kuhn.Queen:
			weight = t.C24
		case kuhn.King:
			weight = p[C34]
		case kuhn.Ace:
			weight = t.C4[3]
		}
	}

	probs[kuhn.Call] = weight
	probs[kuhn.Fold] = 1 - weight
	return probs
}
