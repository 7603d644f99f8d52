// Package equilibrium implements a fixed-form equilibrium strategy for
// three-player, single-raise Kuhn poker. A player is parameterized by six
// free values drawn from a known family of equilibrium profiles; the
// remaining strategy entries are either derived from the free values during
// validation or fixed constants shared by every member of the family.
package equilibrium

import (
	"errors"
	"fmt"
	"strings"
)

// Parameter slots of the strategy vector. The naming follows the
// equilibrium family literature: the letter is the seat (b = seat 1,
// c = seat 2), the first digit the card (1 = Jack .. 4 = Ace) and the
// second digit the situation. The first six slots are supplied by the
// caller; the rest are derived during validation and never set externally.
const (
	B11 = iota // seat 1 bets Jack after seat 0 checks
	B21        // seat 1 bets Queen after seat 0 checks
	B32        // seat 1 calls with King facing seat 0's bet
	C11        // seat 2 bets Jack after two checks; selects the sub-family
	C33        // seat 2 calls with King facing seat 0's bet, seat 1 folded
	C34        // seat 2 calls with King facing seat 0's bet, seat 1 called

	B23 // seat 1 calls with Queen facing seat 2's bet, seat 0 folded
	B33 // seat 1 calls with King facing seat 2's bet, seat 0 folded
	B41 // seat 1 bets Ace after seat 0 checks
	C21 // seat 2 bets Queen after two checks

	NumParams
)

// NumFreeParams is the number of caller-supplied strategy parameters.
const NumFreeParams = 6

// subFamilyDefiningParam is the slot whose value alone selects the
// equilibrium sub-family.
const subFamilyDefiningParam = C11

// Params is the full strategy parameter vector, indexed by the slot
// constants above. After successful validation every entry lies in [0,1].
type Params [NumParams]float64

var paramNames = [NumParams]string{
	"b11", "b21", "b32", "c11", "c33", "c34",
	"b23", "b33", "b41", "c21",
}

// String renders the vector as space-separated name=value pairs, free
// parameters first.
func (p Params) String() string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", paramNames[i], v)
	}
	return b.String()
}

// Construction failure kinds. All are fatal: a player that failed to
// construct must not be used.
var (
	// ErrUnsupportedGame is returned when the supplied game definition is
	// not exactly three-player, single-raise, four-rank Kuhn poker.
	ErrUnsupportedGame = errors.New("game is not three-player Kuhn poker")

	// ErrSubFamily is returned when c11 falls outside the range covered by
	// any equilibrium sub-family.
	ErrSubFamily = errors.New("c11 outside the range of any equilibrium sub-family")

	// ErrConstraint is returned when the free parameters violate one of the
	// sub-family's inequality constraints.
	ErrConstraint = errors.New("parameter constraint violated")

	// ErrRange is returned when any parameter, free or derived, ends up
	// outside [0,1].
	ErrRange = errors.New("strategy parameters must be in [0,1]")
)

// Equilibrium sub-family identifiers.
const (
	subFamily1          = 1 // c11 = 0
	subFamily2          = 2 // c11 = 1/2
	subFamily3          = 3 // 0 < c11 < 1/2
	subFamilyOutOfRange = 4
)

// subFamily classifies the defining parameter. The boundary comparisons are
// exact by design: 0 and 1/2 are literal sentinels in the family definition,
// and a computed approximation of either selects sub-family 3 instead.
// Callers must pass the exact literals.
func subFamily(c11 float64) int {
	switch {
	case c11 == 0:
		return subFamily1
	case c11 == 0.5:
		return subFamily2
	case c11 > 0.5:
		return subFamilyOutOfRange
	default:
		return subFamily3
	}
}

// validate dispatches to the sub-family constraint check, fills in the
// derived parameters, and finally range-checks every slot.
func (p *Params) validate() error {
	switch subFamily(p[subFamilyDefiningParam]) {
	case subFamily1:
		if err := p.checkFamily1(); err != nil {
			return err
		}
	case subFamily2:
		// The sub-family 2 constraint set has not been characterized yet;
		// parameters are accepted as supplied.
	case subFamily3:
		// Same for sub-family 3.
	default:
		return fmt.Errorf("%w: c11=%v", ErrSubFamily, p[C11])
	}

	for i, v := range p {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s=%v", ErrRange, paramNames[i], v)
		}
	}
	return nil
}

// checkFamily1 enforces the sub-family 1 inequalities in order and, on
// success, computes the dependent parameters from the free ones.
func (p *Params) checkFamily1() error {
	if p[B21] > 1/4.0 {
		return fmt.Errorf("%w: b21 greater than 1/4", ErrConstraint)
	}
	if p[B11] > p[B21] {
		return fmt.Errorf("%w: b11 greater than b21", ErrConstraint)
	}
	if p[B32] > (2+3*p[B11]+4*p[B21])/4.0 {
		return fmt.Errorf("%w: b32 too large for any sub-family 1 equilibrium", ErrConstraint)
	}
	if p[C33] < 1/2.0-p[B32] {
		return fmt.Errorf("%w: c33 too small for any sub-family 1 equilibrium", ErrConstraint)
	}
	if p[C33] > 1/2.0-p[B32]+(3*p[B11]+4*p[B21])/4.0 {
		return fmt.Errorf("%w: c33 too large for any sub-family 1 equilibrium", ErrConstraint)
	}

	p[B23] = 0
	p[B33] = (1 + p[B11] + 2*p[B21]) / 2
	p[B41] = 2*p[B11] + 2*p[B21]
	p[C21] = 1 / 2.0
	return nil
}
