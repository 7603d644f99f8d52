package kuhn

import "fmt"

// Rank identifies one of the four cards in the Kuhn deck.
type Rank int

const (
	Jack Rank = iota
	Queen
	King
	Ace
)

// NumRanks is the deck size of the supported variant.
const NumRanks = 4

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("Rank(%d)", int(r))
	}
}

// ParseCard decodes a two character ACPC card such as "Ks". The deck has a
// single suit, but the dealer still prints a suit character, so any of the
// four standard suit characters is accepted.
func ParseCard(s string) (Rank, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}
	var rank Rank
	switch s[0] {
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}
	switch s[1] {
	case 'c', 'd', 'h', 's':
	default:
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}
	return rank, nil
}

// Card formats a rank back into its ACPC wire form. The dealer deals the
// single-suit deck from the top of the suit order, so spades.
func (r Rank) Card() string {
	return r.String() + "s"
}
