package solve

import (
	"errors"
	"fmt"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

// composite edge e owns wing pieces 2e and 2e+1. It is paired when both sit
// in the two slots of one physical edge, in either arrangement.
func pairedAt(c cube, e int) bool {
	s := c.wingHolding(2 * e)

	return c.wingAt[s^1] == 2*e+1
}

// compositeOfPiece names the composite edge a wing piece belongs to.
func compositeOfPiece(piece int) int { return piece / 2 }

// stagePairing joins the two wings of every composite edge. Composites
// already paired cost nothing and rank first; the rest are processed in
// ascending index order, each by one conjugated wing 3-cycle that moves the
// partner wing into the sibling slot without touching the wing it joins.
// If the cycle construction fails, a bounded-depth move search around the
// edge's faces is tried before the stage gives up.
func stagePairing(c cube, e *engine, o *options, bud *budget) (kilominx.MoveSequence, cube, error) {
	var out kilominx.MoveSequence

	for ce := 0; ce < kilominx.NumEdges; ce++ {
		if pairedAt(c, ce) {
			continue
		}

		s := c.wingHolding(2 * ce)
		partner := c.wingHolding(2*ce + 1)
		sibling := s ^ 1

		junk := -1
		for z := 0; z < kilominx.NumWingSlots; z++ {
			if z == s || z == partner || z == sibling {
				continue
			}
			if !pairedAt(c, compositeOfPiece(c.wingAt[z])) {
				junk = z
				break
			}
		}
		if junk < 0 {
			return nil, c, fmt.Errorf("%w: no spare slot while pairing edge %d",
				ErrSolveVerificationFailed, ce)
		}

		op, next, err := e.wingCycleOp(c, [3]int{partner, sibling, junk}, bud)
		if err != nil {
			if isBudgetError(err) {
				return nil, c, err
			}
			op, next, err = pairFallback(c, ce, o.maxSearchDepth, bud)
			if err != nil {
				return nil, c, err
			}
		}

		c = next
		out = append(out, op...)
		if !pairedAt(c, ce) {
			return nil, c, fmt.Errorf("%w: edge %d still unpaired after its operation",
				ErrSolveVerificationFailed, ce)
		}
	}

	return out, c, nil
}

func isBudgetError(err error) bool {
	return errors.Is(err, ErrStageTimeout) || errors.Is(err, ErrCancelled)
}

// pairFallback is a bounded breadth-first search over raw moves of the
// faces around the target composite's current wings: it looks for any short
// sequence that pairs the composite while keeping every other paired
// composite paired.
func pairFallback(c cube, ce, maxDepth int, bud *budget) (kilominx.MoveSequence, cube, error) {
	m := kilominx.GetModel()

	// Preserve whatever is paired now, except the target.
	var keep []int
	for e := 0; e < kilominx.NumEdges; e++ {
		if e != ce && pairedAt(c, e) {
			keep = append(keep, e)
		}
	}

	// Move alphabet: both layers of the faces touching the two wings'
	// current physical edges, plus those faces' neighbors.
	faceSet := map[kilominx.Face]bool{}
	for _, piece := range []int{2 * ce, 2*ce + 1} {
		slot := c.wingHolding(piece)
		fs := m.EdgeFaces(m.WingSlot(slot).Edge)
		for _, f := range fs {
			faceSet[f] = true
			for _, n := range m.Neighbors(f) {
				faceSet[n] = true
			}
		}
	}
	var gens []kilominx.Move
	for f := kilominx.Face(0); f < kilominx.NumFaces; f++ {
		if !faceSet[f] {
			continue
		}
		for _, layer := range []kilominx.Layer{kilominx.Outer, kilominx.Slice} {
			for steps := 1; steps <= 4; steps++ {
				gens = append(gens, kilominx.Move{Face: f, Layer: layer, Steps: steps})
			}
		}
	}

	goal := func(x cube) bool {
		if !pairedAt(x, ce) {
			return false
		}
		for _, e := range keep {
			if !pairedAt(x, e) {
				return false
			}
		}
		return true
	}

	type node struct {
		c      cube
		parent int
		mv     kilominx.Move
		depth  int
	}
	nodes := []node{{c: c, parent: -1}}
	seen := map[[kilominx.NumWingSlots]int]bool{c.wingAt: true}

	for head := 0; head < len(nodes); head++ {
		cur := nodes[head]
		if err := bud.tick(); err != nil {
			return nil, c, err
		}
		if cur.depth >= maxDepth {
			continue
		}

		for _, mv := range gens {
			next := cur.c.act(moveAction(mv))
			if seen[next.wingAt] {
				continue
			}
			seen[next.wingAt] = true
			nodes = append(nodes, node{c: next, parent: head, mv: mv, depth: cur.depth + 1})

			if goal(next) {
				var seq kilominx.MoveSequence
				for at := len(nodes) - 1; nodes[at].parent >= 0; at = nodes[at].parent {
					seq = append(seq, nodes[at].mv)
				}
				for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
					seq[i], seq[j] = seq[j], seq[i]
				}
				return seq, next, nil
			}
		}
	}

	return nil, c, fmt.Errorf("%w: pairing search for edge %d found nothing within depth %d",
		ErrSolveVerificationFailed, ce, maxDepth)
}
