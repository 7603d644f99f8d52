package equilibrium

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/kuhnbot/internal/kuhn"
	"github.com/lox/kuhnbot/internal/randutil"
)

// Player plays one seat of a three-player Kuhn match according to a
// validated member of the equilibrium family. It owns its random generator
// exclusively, so decision requests on one Player must be sequential;
// independent Players are safe to run concurrently.
type Player struct {
	game   *kuhn.Game
	params Params
	tables *Tables
	rng    *rand.Rand
}

// New constructs a Player from the game definition, the six free strategy
// parameters (in slot order: b11, b21, b32, c11, c33, c34) and a seed for
// the player's generator. Construction is all-or-nothing: a shape,
// classification, constraint or range failure means no Player.
func New(game *kuhn.Game, free [NumFreeParams]float64, seed uint32) (*Player, error) {
	if game == nil || !isThreePlayerKuhn(game) {
		return nil, fmt.Errorf("%w", ErrUnsupportedGame)
	}

	var params Params
	copy(params[:NumFreeParams], free[:])
	if err := params.validate(); err != nil {
		return nil, err
	}

	return &Player{
		game:   game,
		params: params,
		tables: DefaultTables(),
		rng:    randutil.New(seed),
	}, nil
}

// isThreePlayerKuhn reports whether the game definition describes the
// exact supported variant: limit betting, one round with at most one
// raise, a four-rank single-suit deck, one hole card, no board, three
// players.
func isThreePlayerKuhn(g *kuhn.Game) bool {
	return g.BettingType == kuhn.LimitBetting &&
		g.NumRounds == 1 && len(g.MaxRaises) > 0 && g.MaxRaises[0] == 1 &&
		g.NumSuits == 1 && g.NumRanks == 4 &&
		g.NumHoleCards == 1 &&
		len(g.NumBoardCards) > 0 && g.NumBoardCards[0] == 0 &&
		g.NumPlayers == 3
}

// Params returns the validated parameter vector, derived entries included.
func (p *Player) Params() Params {
	return p.params
}

// Act returns one sampled action for the viewing seat, consuming one
// uniform draw from the player's generator. Bets are fixed-limit, so the
// action size is always zero.
func (p *Player) Act(view kuhn.MatchState) kuhn.Action {
	probs := p.ActionProbs(view)
	return kuhn.Action{Type: sample(probs, p.rng.Float64())}
}

// ActionProbs returns the full action distribution at the viewed decision
// point without sampling. It is side-effect free and does not advance the
// player's generator.
func (p *Player) ActionProbs(view kuhn.MatchState) Probs {
	switch view.Viewer {
	case 0:
		return seat0Probs(p.tables, view.Card, view.History)
	case 1:
		return seat1Probs(p.tables, &p.params, view.Card, view.History)
	default:
		return seat2Probs(p.tables, &p.params, view.Card, view.History)
	}
}
