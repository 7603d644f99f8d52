// Package simulator plays three-seat Kuhn hands locally: it shuffles the
// four-card deck, asks an equilibrium player for each decision, settles the
// pot and aggregates per-seat results. It exists for sanity checking
// parameter sets and for deterministic end-to-end tests; there is no
// dealer or network involved.
package simulator

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/kuhnbot/internal/equilibrium"
	"github.com/lox/kuhnbot/internal/kuhn"
)

// Config holds simulation settings.
type Config struct {
	Hands  int
	Seed   uint32 // deck shuffling seed, independent of the players' seeds
	Logger *log.Logger
}

// Simulator deals hands between three equilibrium players, one per seat.
type Simulator struct {
	config  Config
	players [3]*equilibrium.Player
	rng     *rand.Rand
}

// New creates a simulator. Each player owns one fixed seat for the whole
// run; the variant's seats are distinct roles, so there is no rotation.
func New(config Config, players [3]*equilibrium.Player) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{
		config:  config,
		players: players,
		rng:     newDeckRNG(config.Seed),
	}
}

// SeatStats aggregates one seat's results over a run.
type SeatStats struct {
	Net    int // chips won or lost
	Folds  int
	Calls  int
	Raises int
}

// Results holds the outcome of a simulation run. Chip conservation holds:
// the three seats' nets sum to zero.
type Results struct {
	Hands     int
	Showdowns int
	Seats     [3]SeatStats
}

// MeanChips returns a seat's average chips won per hand.
func (r *Results) MeanChips(seat int) float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.Seats[seat].Net) / float64(r.Hands)
}

// Run plays the configured number of hands.
func (s *Simulator) Run() (*Results, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("hand count must be positive, got %d", s.config.Hands)
	}
	for seat, player := range s.players {
		if player == nil {
			return nil, fmt.Errorf("no player for seat %d", seat)
		}
	}

	results := &Results{}
	for hand := 0; hand < s.config.Hands; hand++ {
		s.playHand(hand, results)
	}

	s.config.Logger.Info("simulation complete",
		"hands", results.Hands,
		"showdowns", results.Showdowns,
		"seat0", results.Seats[0].Net,
		"seat1", results.Seats[1].Net,
		"seat2", results.Seats[2].Net)

	return results, nil
}

func (s *Simulator) playHand(hand int, results *Results) {
	// Deal three of the four cards.
	deck := [kuhn.NumRanks]kuhn.Rank{kuhn.Jack, kuhn.Queen, kuhn.King, kuhn.Ace}
	s.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	cards := deck[:3]

	var h kuhn.History
	contrib := [3]int{1, 1, 1} // antes
	folded := [3]bool{}

	for {
		seat := h.ActingSeat()
		if seat < 0 {
			break
		}

		view := kuhn.MatchState{
			Viewer:  seat,
			Hand:    hand,
			Card:    cards[seat],
			History: h,
		}
		act := s.players[seat].Act(view)
		h.Actions = append(h.Actions, act)

		switch act.Type {
		case kuhn.Fold:
			folded[seat] = true
			results.Seats[seat].Folds++
		case kuhn.Call:
			// Matching a raise costs the fixed raise size; checking is free.
			if raised(h) {
				contrib[seat]++
			}
			results.Seats[seat].Calls++
		case kuhn.Raise:
			contrib[seat]++
			results.Seats[seat].Raises++
		}
	}

	winner := s.settle(cards, folded, results)

	pot := contrib[0] + contrib[1] + contrib[2]
	for seat := range contrib {
		if seat == winner {
			results.Seats[seat].Net += pot - contrib[seat]
		} else {
			results.Seats[seat].Net -= contrib[seat]
		}
	}
	results.Hands++

	s.config.Logger.Debug("hand complete",
		"hand", hand,
		"betting", bettingString(h),
		"winner", winner,
		"pot", pot)
}

// settle picks the winning seat: the last seat standing, or the best rank
// at showdown.
func (s *Simulator) settle(cards []kuhn.Rank, folded [3]bool, results *Results) int {
	live := make([]int, 0, 3)
	for seat, out := range folded {
		if !out {
			live = append(live, seat)
		}
	}

	winner := live[0]
	if len(live) > 1 {
		results.Showdowns++
		for _, seat := range live[1:] {
			if cards[seat] > cards[winner] {
				winner = seat
			}
		}
	}
	return winner
}

// raised reports whether the hand's single raise has happened.
func raised(h kuhn.History) bool {
	for _, a := range h.Actions {
		if a.Type == kuhn.Raise {
			return true
		}
	}
	return false
}

func bettingString(h kuhn.History) string {
	out := ""
	for _, a := range h.Actions {
		out += a.Type.Wire()
	}
	return out
}

// newDeckRNG builds the shuffling generator. Kept separate from the
// players' generators so deck order and player mixing can be varied
// independently.
func newDeckRNG(seed uint32) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(u, u^0x9e3779b97f4a7c15))
}
