package kuhn

// BettingType distinguishes limit from no-limit betting structures.
type BettingType int

const (
	LimitBetting BettingType = iota
	NoLimitBetting
)

// Game describes the rules of a poker variant in the manner of an ACPC game
// definition. Only the fields a strategy needs to inspect are modeled;
// per-round slices are indexed by round number.
type Game struct {
	BettingType   BettingType
	NumPlayers    int
	NumRounds     int
	MaxRaises     []int
	NumSuits      int
	NumRanks      int
	NumHoleCards  int
	NumBoardCards []int
	Blind         []int
	RaiseSize     []int
}

// ThreePlayerGame returns the canonical definition of three-player Kuhn
// poker, matching the ACPC kuhn.limit.3p gamedef: one betting round, one
// raise of fixed size 1, an ante of 1 per seat, four ranks in a single
// suit, one hole card and no board.
func ThreePlayerGame() *Game {
	return &Game{
		BettingType:   LimitBetting,
		NumPlayers:    3,
		NumRounds:     1,
		MaxRaises:     []int{1},
		NumSuits:      1,
		NumRanks:      4,
		NumHoleCards:  1,
		NumBoardCards: []int{0},
		Blind:         []int{1, 1, 1},
		RaiseSize:     []int{1},
	}
}
