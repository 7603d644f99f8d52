package kuhn

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionType is the kind of action a player takes. The order matters: it is
// the index order of probability vectors and the walk order of the sampler.
type ActionType int

const (
	Fold ActionType = iota
	Call // includes check
	Raise
)

// NumActionTypes is the number of distinct action kinds.
const NumActionTypes = 3

func (a ActionType) String() string {
	switch a {
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Wire returns the single character ACPC encoding of the action.
func (a ActionType) Wire() string {
	switch a {
	case Fold:
		return "f"
	case Call:
		return "c"
	case Raise:
		return "r"
	default:
		return "?"
	}
}

// Action is one recorded betting action. Size is unused in limit games and
// stays zero in this variant.
type Action struct {
	Type ActionType
	Size int
}

// History is the public betting sequence of the current hand. The supported
// variant has a single round, so there is no per-round nesting.
type History struct {
	Actions []Action
}

// Len returns the number of actions taken so far.
func (h History) Len() int {
	return len(h.Actions)
}

// ActingSeat walks the betting sequence and returns the seat due to act
// next, or -1 when the hand is over. Seats act in order from seat 0; a
// raise reopens the action for every live seat behind the raiser, and the
// variant allows a single raise, so the walk is bounded.
func (h History) ActingSeat() int {
	in := [3]bool{true, true, true}
	queue := []int{0, 1, 2}

	for _, a := range h.Actions {
		if len(queue) == 0 {
			return -1
		}
		seat := queue[0]
		queue = queue[1:]

		switch a.Type {
		case Fold:
			in[seat] = false
		case Raise:
			queue = queue[:0]
			for i := 1; i < 3; i++ {
				next := (seat + i) % 3
				if in[next] {
					queue = append(queue, next)
				}
			}
		}

		live := 0
		for _, alive := range in {
			if alive {
				live++
			}
		}
		if live == 1 {
			return -1
		}
	}

	if len(queue) == 0 {
		return -1
	}
	return queue[0]
}

// MatchState is the view of a hand from one seat: which seat is looking,
// that seat's hole card, and the betting so far. It mirrors one MATCHSTATE
// line of the ACPC dealer protocol.
type MatchState struct {
	Viewer  int
	Hand    int
	Card    Rank
	History History
}

// OurTurn reports whether the viewing seat is the one due to act.
func (m MatchState) OurTurn() bool {
	return m.History.ActingSeat() == m.Viewer
}

// ParseMatchState decodes a dealer MATCHSTATE line for the supported
// variant, e.g. "MATCHSTATE:1:31:ccr:|Qs|". Multi-round betting strings and
// board cards are rejected; the variant has exactly one round.
func ParseMatchState(line string) (MatchState, error) {
	var m MatchState

	parts := strings.SplitN(line, ":", 5)
	if len(parts) != 5 || parts[0] != "MATCHSTATE" {
		return m, fmt.Errorf("invalid matchstate line: %q", line)
	}

	viewer, err := strconv.Atoi(parts[1])
	if err != nil || viewer < 0 || viewer > 2 {
		return m, fmt.Errorf("invalid viewing seat: %q", parts[1])
	}
	m.Viewer = viewer

	m.Hand, err = strconv.Atoi(parts[2])
	if err != nil {
		return m, fmt.Errorf("invalid hand number: %q", parts[2])
	}

	if strings.ContainsRune(parts[3], '/') {
		return m, fmt.Errorf("multi-round betting string: %q", parts[3])
	}
	for _, c := range parts[3] {
		switch c {
		case 'f':
			m.History.Actions = append(m.History.Actions, Action{Type: Fold})
		case 'c':
			m.History.Actions = append(m.History.Actions, Action{Type: Call})
		case 'r':
			m.History.Actions = append(m.History.Actions, Action{Type: Raise})
		default:
			return m, fmt.Errorf("invalid betting character: %c", c)
		}
	}

	cards := parts[4]
	if strings.ContainsRune(cards, '/') {
		return m, fmt.Errorf("board cards in matchstate: %q", cards)
	}
	holes := strings.Split(cards, "|")
	if len(holes) != 3 {
		return m, fmt.Errorf("expected three hole card slots, got %q", cards)
	}
	if holes[m.Viewer] == "" {
		return m, fmt.Errorf("no hole card for viewing seat %d: %q", m.Viewer, cards)
	}
	m.Card, err = ParseCard(holes[m.Viewer])
	if err != nil {
		return m, err
	}

	return m, nil
}

// String re-encodes the view as a MATCHSTATE line. Only the viewer's hole
// card is shown, which is all a strategy ever sees mid-hand.
func (m MatchState) String() string {
	var betting strings.Builder
	for _, a := range m.History.Actions {
		betting.WriteString(a.Type.Wire())
	}
	holes := []string{"", "", ""}
	holes[m.Viewer] = m.Card.Card()
	return fmt.Sprintf("MATCHSTATE:%d:%d:%s:%s",
		m.Viewer, m.Hand, betting.String(), strings.Join(holes, "|"))
}
