package solve

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

// base is a verified pure 3-cycle: a move sequence whose net effect moves
// exactly three slots of one piece type and nothing else. slots lists the
// cycle in order (content of slots[0] goes to slots[1], and so on); beta
// holds the per-leg corner twist deltas, zero for the wing base.
type base struct {
	seq   kilominx.MoveSequence
	act   action
	slots [3]int
	beta  [3]int
}

// llCase is one entry of the last-layer twist table: a named residual twist
// pattern on the bottom face's corners and the fixed sequence resolving it.
type llCase struct {
	name string
	seq  kilominx.MoveSequence
}

// engine holds everything the solver derives once per process: the two base
// 3-cycles, the target orderings, and the last-layer case table. Read-only
// after init.
type engine struct {
	acts [24][4]action // piece action of every move, by axis and steps-1

	cornerStep [96][60]uint8 // oriented corner position after generator g
	wingStep   [96][60]uint8 // wing slot after generator g

	cornerBase base
	wingBase   base

	cornerOrder []int // corner slots in layer order, bottom face last
	wingOrder   []int // wing slots in layer order

	dCorners [5]int               // corner slots of the bottom face, ascending
	llCases  map[[5]int8]*llCase  // residual twist signature → resolution
}

var (
	engineOnce sync.Once
	engineInst *engine
)

func getEngine() *engine {
	engineOnce.Do(func() {
		e := &engine{}
		e.buildActs()
		e.buildStepTables()
		e.discoverBases()
		e.buildOrders()
		e.buildLastLayerTable()
		engineInst = e
	})

	return engineInst
}

func axisMove(axis, steps int) kilominx.Move {
	return kilominx.Move{
		Face:  kilominx.Face(axis / 2),
		Layer: kilominx.Layer(axis % 2),
		Steps: steps,
	}
}

func (e *engine) buildActs() {
	for axis := 0; axis < 24; axis++ {
		for steps := 1; steps <= 4; steps++ {
			e.acts[axis][steps-1] = moveAction(axisMove(axis, steps))
		}
	}
}

// discoverBases enumerates commutators [x^a y^b x^-a, z^c] over the whole
// move alphabet in a fixed order and keeps the first verified pure corner
// 3-cycle and the first verified pure wing 3-cycle. The single-overlap
// prefilter (conjugate support meets z's support in exactly one slot)
// guarantees the commutator moves at most three pieces; the cycle check
// verifies it outright, so no unproven candidate is ever kept.
func (e *engine) discoverBases() {
	haveCorner, haveWing := false, false

	for xa := 0; xa < 24 && !(haveCorner && haveWing); xa++ {
		for a := 1; a <= 4 && !(haveCorner && haveWing); a++ {
			xAct := e.acts[xa][a-1]
			xInv := e.acts[xa][4-a]
			for ya := 0; ya < 24 && !(haveCorner && haveWing); ya++ {
				for b := 1; b <= 4 && !(haveCorner && haveWing); b++ {
					aAct := xAct.then(e.acts[ya][b-1]).then(xInv)
					aSupp := aAct.support()
					aInv := aAct.inverse()

					for za := 0; za < 24 && !(haveCorner && haveWing); za++ {
						for cq := 1; cq <= 4; cq++ {
							qAct := e.acts[za][cq-1]
							if aSupp.intersect(qAct.support()).count() != 1 {
								continue
							}

							comm := aAct.then(qAct).then(aInv).then(e.acts[za][4-cq])
							seq := kilominx.MoveSequence{
								axisMove(xa, a), axisMove(ya, b), axisMove(xa, 5-a),
								axisMove(za, cq),
								axisMove(xa, a), axisMove(ya, 5-b), axisMove(xa, 5-a),
								axisMove(za, 5-cq),
							}

							if !haveCorner {
								if slots, ok := comm.cornerCycle(); ok {
									e.cornerBase = base{
										seq:   seq,
										act:   comm,
										slots: slots,
										beta: [3]int{
											int(comm.ctwist[slots[0]]),
											int(comm.ctwist[slots[1]]),
											int(comm.ctwist[slots[2]]),
										},
									}
									haveCorner = true
								}
							}
							if !haveWing {
								if slots, ok := comm.wingCycle(); ok {
									e.wingBase = base{seq: seq, act: comm, slots: slots}
									haveWing = true
								}
							}
							if haveCorner && haveWing {
								break
							}
						}
					}
				}
			}
		}
	}

	if !haveCorner || !haveWing {
		panic("solve: no pure 3-cycle base found in the commutator alphabet")
	}
	if sum := e.cornerBase.beta[0] + e.cornerBase.beta[1] + e.cornerBase.beta[2]; sum%3 != 0 {
		panic(fmt.Sprintf("solve: corner base leg twists sum to %d mod 3", sum%3))
	}
}

// layerOrder fixes the face sequence of the reduction: top cap, upper ring,
// lower ring, bottom cap last.
var layerOrder = [kilominx.NumFaces]kilominx.Face{
	kilominx.U, kilominx.F, kilominx.R, kilominx.BR, kilominx.BL, kilominx.L,
	kilominx.BU, kilominx.BD, kilominx.B, kilominx.UR, kilominx.UL, kilominx.D,
}

func (e *engine) buildOrders() {
	m := kilominx.GetModel()

	var rank [kilominx.NumFaces]int
	for i, f := range layerOrder {
		rank[f] = i
	}

	// A slot belongs to the latest layer any of its faces touches, so every
	// slot on the bottom face sorts after the rest.
	cornerRank := func(s int) int {
		cs := m.CornerSlot(s)
		r := rank[cs.Faces[0]]
		for _, f := range cs.Faces[1:] {
			if rank[f] > r {
				r = rank[f]
			}
		}
		return r
	}
	wingRank := func(s int) int {
		fs := m.EdgeFaces(m.WingSlot(s).Edge)
		if rank[fs[0]] > rank[fs[1]] {
			return rank[fs[0]]
		}
		return rank[fs[1]]
	}

	e.cornerOrder = sortedByRank(kilominx.NumCornerSlots, cornerRank)
	e.wingOrder = sortedByRank(kilominx.NumWingSlots, wingRank)

	n := 0
	for s := 0; s < kilominx.NumCornerSlots; s++ {
		cs := m.CornerSlot(s)
		for _, f := range cs.Faces {
			if f == kilominx.D {
				e.dCorners[n] = s
				n++
				break
			}
		}
	}
	if n != 5 {
		panic(fmt.Sprintf("solve: found %d bottom-face corners, want 5", n))
	}
}

func sortedByRank(n int, rank func(int) int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	// Stable insertion by (rank, slot); slot order breaks ties.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && rank(out[j]) < rank(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}

// buildLastLayerTable derives, for every ordered pair of bottom-face
// corners, a sequence twisting the first clockwise and the second
// counter-clockwise in place, then composes those primitives into one entry
// per residual twist signature. Every entry is verified by simulation
// before it is admitted.
func (e *engine) buildLastLayerTable() {
	bud := &budget{
		stage:    "init",
		ctx:      context.Background(),
		deadline: time.Now().Add(time.Hour),
		nodes:    1 << 62,
	}

	// primitive[i][j]: twist dCorners[i] by +1 and dCorners[j] by -1.
	var primitive [5][5]kilominx.MoveSequence
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == j {
				continue
			}
			a, b := e.dCorners[i], e.dCorners[j]
			seq, err := e.twistPairSequence(a, b, bud)
			if err != nil {
				panic(fmt.Sprintf("solve: building twist primitive %d/%d: %v", a, b, err))
			}
			primitive[i][j] = seq
		}
	}

	e.llCases = make(map[[5]int8]*llCase)
	var sig [5]int8
	var walk func(pos, sum int)
	walk = func(pos, sum int) {
		if pos == 5 {
			if sum%3 != 0 || sig == ([5]int8{}) {
				return
			}
			e.addLastLayerCase(sig, &primitive)
			return
		}
		for t := int8(0); t < 3; t++ {
			sig[pos] = t
			walk(pos+1, sum+int(t))
		}
		sig[pos] = 0
	}
	walk(0, 0)
}

// twistPairSequence builds the in-place double twist of corners a (+1) and
// b (-1) from two oriented 3-cycles through a spare slot: the cycle
// a→b→j with zero twist on its first two legs, followed by the cycle
// a→j→b delivering the +1 and -1 on its return legs.
func (e *engine) twistPairSequence(a, b int, bud *budget) (kilominx.MoveSequence, error) {
	j := 0
	for j == a || j == b {
		j++
	}

	x, err := e.findCornerSetup([3]int{a, b, j}, [3]int{0, 0, 0}, 0b011, bud)
	if err != nil {
		return nil, err
	}
	first := conjugate(x, e.cornerBase.seq)

	z, err := e.findCornerSetup([3]int{a, j, b}, [3]int{0, 2, 1}, 0b110, bud)
	if err != nil {
		return nil, err
	}
	second := conjugate(z, e.cornerBase.seq)

	seq := kilominx.Simplify(append(append(kilominx.MoveSequence{}, first...), second...))

	got := solvedCube().apply(seq)
	want := solvedCube()
	want.twistAt[a], want.twistAt[b] = 1, 2
	if got != want {
		return nil, fmt.Errorf("%w: twist primitive %d/%d has side effects",
			ErrSolveVerificationFailed, a, b)
	}

	return seq, nil
}

func (e *engine) addLastLayerCase(sig [5]int8, primitive *[5][5]kilominx.MoveSequence) {
	v := sig
	var seq kilominx.MoveSequence
	// Zero the first four corners against the fifth; the twist-sum
	// invariant zeroes the fifth on its own.
	for i := 0; i < 4; i++ {
		for v[i] != 0 {
			seq = append(seq, primitive[i][4]...)
			v[i] = (v[i] + 1) % 3
			v[4] = (v[4] + 2) % 3
		}
	}

	seq = kilominx.Simplify(seq)

	start := solvedCube()
	for i, s := range e.dCorners {
		start.twistAt[s] = int(sig[i])
	}
	if !start.apply(seq).solved() {
		panic(fmt.Sprintf("solve: last-layer case %v does not resolve", sig))
	}

	e.llCases[sig] = &llCase{
		name: fmt.Sprintf("last-layer twists %d%d%d%d%d", sig[0], sig[1], sig[2], sig[3], sig[4]),
		seq:  seq,
	}
}

// conjugate returns setup · body · setup⁻¹.
func conjugate(setup, body kilominx.MoveSequence) kilominx.MoveSequence {
	out := make(kilominx.MoveSequence, 0, 2*len(setup)+len(body))
	out = append(out, setup...)
	out = append(out, body...)
	out = append(out, setup.Inverse()...)

	return out
}
