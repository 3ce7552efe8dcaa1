package solve

import (
	"fmt"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

// The setup search tracks only the three pieces a 3-cycle will touch, so its
// state space is the cube of 60 oriented corner positions (20 slots × 3
// twists) or 60 wing slots, 216000 states either way.
const tripleSpace = 60 * 60 * 60

// cornerStep and wingStep map one tracked position through one move:
// cornerStep[g][p*3+o] is the oriented position after generator g,
// wingStep[g][p] the wing slot after generator g.
func (e *engine) buildStepTables() {
	for g := 0; g < 96; g++ {
		act := e.acts[g/4][g%4]
		for p := 0; p < kilominx.NumCornerSlots; p++ {
			for o := 0; o < 3; o++ {
				e.cornerStep[g][p*3+o] =
					uint8(int(act.cperm[p])*3 + (o+int(act.ctwist[p]))%3)
			}
		}
		for p := 0; p < kilominx.NumWingSlots; p++ {
			e.wingStep[g][p] = act.wperm[p]
		}
	}
}

// findCornerSetup finds a move sequence mapping the contents of the three
// target slots onto the corner base's slots (any cyclic rotation), with the
// orientation transport chosen so that the conjugated operation
// setup·base·setup⁻¹ cycles t0→t1→t2 delivering twist want[i] on every leg
// whose bit is set in legMask. Breadth-first, fixed generator order, so the
// result is deterministic and minimal in length.
func (e *engine) findCornerSetup(targets, want [3]int, legMask int, bud *budget) (kilominx.MoveSequence, error) {
	goal := func(idx int32) bool {
		q2 := int(idx) % 60
		q1 := (int(idx) / 60) % 60
		q0 := int(idx) / 3600
		p := [3]int{q0 / 3, q1 / 3, q2 / 3}
		o := [3]int{q0 % 3, q1 % 3, q2 % 3}

		for r := 0; r < 3; r++ {
			if p[0] != e.cornerBase.slots[r] ||
				p[1] != e.cornerBase.slots[(r+1)%3] ||
				p[2] != e.cornerBase.slots[(r+2)%3] {
				continue
			}
			ok := true
			for leg := 0; leg < 3; leg++ {
				if legMask&(1<<leg) == 0 {
					continue
				}
				gamma := (o[leg] + e.cornerBase.beta[(r+leg)%3] + 6 - o[(leg+1)%3]) % 3
				if gamma != want[leg] {
					ok = false
					break
				}
			}
			if ok {
				return true
			}
		}

		return false
	}

	start := int32((targets[0]*3*3600 + targets[1]*3*60 + targets[2]*3))

	return e.tripleBFS(start, goal, &e.cornerStep, bud)
}

// findWingSetup is findCornerSetup without orientation: wings carry none.
func (e *engine) findWingSetup(targets [3]int, bud *budget) (kilominx.MoveSequence, error) {
	goal := func(idx int32) bool {
		p2 := int(idx) % 60
		p1 := (int(idx) / 60) % 60
		p0 := int(idx) / 3600

		for r := 0; r < 3; r++ {
			if p0 == e.wingBase.slots[r] &&
				p1 == e.wingBase.slots[(r+1)%3] &&
				p2 == e.wingBase.slots[(r+2)%3] {
				return true
			}
		}

		return false
	}

	start := int32(targets[0]*3600 + targets[1]*60 + targets[2])

	return e.tripleBFS(start, goal, &e.wingStep, bud)
}

// tripleBFS runs the shared breadth-first search over encoded triples.
// step[g] advances one tracked coordinate through generator g.
func (e *engine) tripleBFS(start int32, goal func(int32) bool, step *[96][60]uint8, bud *budget) (kilominx.MoveSequence, error) {
	if goal(start) {
		return nil, nil
	}

	parent := make([]int32, tripleSpace)
	for i := range parent {
		parent[i] = -1
	}
	via := make([]uint8, tripleSpace)
	parent[start] = start

	queue := make([]int32, 1, 4096)
	queue[0] = start

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if err := bud.tick(); err != nil {
			return nil, err
		}

		c2 := int(cur) % 60
		c1 := (int(cur) / 60) % 60
		c0 := int(cur) / 3600

		for g := 0; g < 96; g++ {
			next := int32(step[g][c0])*3600 + int32(step[g][c1])*60 + int32(step[g][c2])
			if parent[next] != -1 {
				continue
			}
			parent[next] = cur
			via[next] = uint8(g)

			if goal(next) {
				var seq kilominx.MoveSequence
				for at := next; at != start; at = parent[at] {
					gen := int(via[at])
					seq = append(seq, axisMove(gen/4, gen%4+1))
				}
				for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
					seq[i], seq[j] = seq[j], seq[i]
				}
				return seq, nil
			}
			queue = append(queue, next)
		}
	}

	return nil, fmt.Errorf("%w: setup search exhausted its space", ErrSolveVerificationFailed)
}

// cornerCycleOp builds and applies the conjugated corner 3-cycle t0→t1→t2
// with the requested leg twists, asserting it touched nothing else.
func (e *engine) cornerCycleOp(c cube, t [3]int, want [3]int, legMask int, bud *budget) (kilominx.MoveSequence, cube, error) {
	setup, err := e.findCornerSetup(t, want, legMask, bud)
	if err != nil {
		return nil, c, err
	}

	op := conjugate(setup, e.cornerBase.seq)
	next := c.apply(op)
	if !next.sameOutside(c, t[:], nil) {
		return nil, c, fmt.Errorf("%w: corner cycle %v is not pure",
			ErrSolveVerificationFailed, t)
	}

	return op, next, nil
}

// wingCycleOp is cornerCycleOp for edge wings.
func (e *engine) wingCycleOp(c cube, t [3]int, bud *budget) (kilominx.MoveSequence, cube, error) {
	setup, err := e.findWingSetup(t, bud)
	if err != nil {
		return nil, c, err
	}

	op := conjugate(setup, e.wingBase.seq)
	next := c.apply(op)
	if !next.sameOutside(c, nil, t[:]) {
		return nil, c, fmt.Errorf("%w: wing cycle %v is not pure",
			ErrSolveVerificationFailed, t)
	}

	return op, next, nil
}
