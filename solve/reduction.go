package solve

import (
	"fmt"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

// stageReduction solves edges, then corners, through conjugated pure
// 3-cycles in layer order, ending with the bottom face. Residual in-place
// twists confined to the bottom-face corners are resolved by the
// precomputed last-layer case table.
func stageReduction(c cube, e *engine, bud *budget) (kilominx.MoveSequence, cube, error) {
	var out kilominx.MoveSequence

	seq, c, err := reduceWings(c, e, bud)
	if err != nil {
		return nil, c, err
	}
	out = append(out, seq...)

	seq, c, err = reduceCorners(c, e, bud)
	if err != nil {
		return nil, c, err
	}
	out = append(out, seq...)

	if !c.solved() {
		return nil, c, fmt.Errorf("%w: reduction left the cube unsolved",
			ErrSolveVerificationFailed)
	}

	return out, c, nil
}

// reduceWings homes every edge wing. Wings carry no orientation, so each
// operation is one unconstrained 3-cycle bringing the target slot's piece
// home; the even-permutation invariant guarantees a third unsolved slot
// exists whenever anything is unsolved.
func reduceWings(c cube, e *engine, bud *budget) (kilominx.MoveSequence, cube, error) {
	var out kilominx.MoveSequence

	for guard := 0; ; guard++ {
		if guard > 2*kilominx.NumWingSlots {
			return nil, c, fmt.Errorf("%w: wing reduction did not converge",
				ErrSolveVerificationFailed)
		}

		home := -1
		for _, s := range e.wingOrder {
			if c.wingAt[s] != s {
				home = s
				break
			}
		}
		if home < 0 {
			return out, c, nil
		}

		src := c.wingHolding(home)
		third := -1
		for i := len(e.wingOrder) - 1; i >= 0; i-- {
			s := e.wingOrder[i]
			if s != src && s != home && c.wingAt[s] != s {
				third = s
				break
			}
		}
		if third < 0 {
			return nil, c, fmt.Errorf("%w: lone unsolved wing pair at slot %d",
				ErrSolveVerificationFailed, home)
		}

		op, next, err := e.wingCycleOp(c, [3]int{src, home, third}, bud)
		if err != nil {
			return nil, c, err
		}
		c = next
		out = append(out, op...)
	}
}

// reduceCorners homes and orients every corner. Placement constrains only
// the home-bound leg of each cycle; the closing cycle of the final three
// constrains two legs and the twist-sum invariant settles the third. Twist
// residues left on the bottom face are matched against the case table; a
// residual pair elsewhere is routed through a sacrificial solved slot.
func reduceCorners(c cube, e *engine, bud *budget) (kilominx.MoveSequence, cube, error) {
	var out kilominx.MoveSequence

	isD := map[int]bool{}
	for _, s := range e.dCorners {
		isD[s] = true
	}

	for guard := 0; ; guard++ {
		if guard > 8*kilominx.NumCornerSlots {
			return nil, c, fmt.Errorf("%w: corner reduction did not converge",
				ErrSolveVerificationFailed)
		}

		var unsolved []int
		for _, s := range e.cornerOrder {
			if c.cornerAt[s] != s || c.twistAt[s] != 0 {
				unsolved = append(unsolved, s)
			}
		}
		if len(unsolved) == 0 {
			return out, c, nil
		}

		// Twist-only residue on the bottom face: the case table finishes.
		if allBottomTwists(c, unsolved, isD) {
			var sig [5]int8
			for i, s := range e.dCorners {
				sig[i] = int8(c.twistAt[s])
			}
			entry, ok := e.llCases[sig]
			if !ok {
				return nil, c, fmt.Errorf("%w: no last-layer case for twists %v",
					ErrSolveVerificationFailed, sig)
			}
			c = c.apply(entry.seq)
			out = append(out, entry.seq...)
			continue
		}

		switch {
		case len(unsolved) == 1:
			return nil, c, fmt.Errorf("%w: lone unsolved corner at slot %d",
				ErrSolveVerificationFailed, unsolved[0])

		case len(unsolved) == 2:
			// Two in-place twists outside the bottom face. Sacrifice a
			// solved slot: an unconstrained cycle leaves a 3-cycle that the
			// closing branch resolves fully oriented.
			a, b := unsolved[0], unsolved[1]
			junk := -1
			for _, s := range e.cornerOrder {
				if s != a && s != b {
					junk = s
					break
				}
			}
			op, next, err := e.cornerCycleOp(c, [3]int{a, b, junk}, [3]int{}, 0, bud)
			if err != nil {
				return nil, c, err
			}
			c = next
			out = append(out, op...)

		case len(unsolved) == 3 && isThreeCycle(c, unsolved):
			t0 := unsolved[0]
			t1 := c.cornerAt[t0]
			t2 := c.cornerAt[t1]
			want := [3]int{
				(3 - c.twistAt[t0]) % 3,
				(3 - c.twistAt[t1]) % 3,
				0,
			}
			op, next, err := e.cornerCycleOp(c, [3]int{t0, t1, t2}, want, 0b011, bud)
			if err != nil {
				return nil, c, err
			}
			c = next
			out = append(out, op...)

		default:
			home := unsolved[0]
			src := c.cornerHolding(home)
			if src == home {
				// In place but twisted: displace through two other unsolved
				// slots, then place it properly next round.
				x, y := pickTwo(unsolved, home)
				if y < 0 {
					return nil, c, fmt.Errorf("%w: cannot displace twisted corner %d",
						ErrSolveVerificationFailed, home)
				}
				op, next, err := e.cornerCycleOp(c, [3]int{home, x, y}, [3]int{}, 0, bud)
				if err != nil {
					return nil, c, err
				}
				c = next
				out = append(out, op...)
				continue
			}

			third := -1
			for i := len(e.cornerOrder) - 1; i >= 0; i-- {
				s := e.cornerOrder[i]
				if s != src && s != home && (c.cornerAt[s] != s || c.twistAt[s] != 0) {
					third = s
					break
				}
			}
			if third < 0 {
				return nil, c, fmt.Errorf("%w: no spare slot placing corner %d",
					ErrSolveVerificationFailed, home)
			}
			want := [3]int{(3 - c.twistAt[src]) % 3, 0, 0}
			op, next, err := e.cornerCycleOp(c, [3]int{src, home, third}, want, 0b001, bud)
			if err != nil {
				return nil, c, err
			}
			c = next
			out = append(out, op...)
		}
	}
}

func allBottomTwists(c cube, unsolved []int, isD map[int]bool) bool {
	for _, s := range unsolved {
		if !isD[s] || c.cornerAt[s] != s {
			return false
		}
	}

	return true
}

func isThreeCycle(c cube, u []int) bool {
	t0 := u[0]
	t1 := c.cornerAt[t0]
	if t1 == t0 {
		return false
	}
	t2 := c.cornerAt[t1]

	return t2 != t0 && t2 != t1 && c.cornerAt[t2] == t0
}

func pickTwo(unsolved []int, skip int) (int, int) {
	x, y := -1, -1
	for _, s := range unsolved {
		if s == skip {
			continue
		}
		if x < 0 {
			x = s
			continue
		}
		y = s
		break
	}

	return x, y
}
