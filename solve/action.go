package solve

import (
	"math/bits"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

// action is the piece-level effect of a move sequence: where each corner and
// wing slot's content goes, and how much twist each corner picks up on the
// way. perm[i] = destination of the content at slot i.
type action struct {
	cperm  [kilominx.NumCornerSlots]uint8
	ctwist [kilominx.NumCornerSlots]uint8
	wperm  [kilominx.NumWingSlots]uint8
}

func identityAction() action {
	var a action
	for i := range a.cperm {
		a.cperm[i] = uint8(i)
	}
	for i := range a.wperm {
		a.wperm[i] = uint8(i)
	}

	return a
}

func moveAction(mv kilominx.Move) action {
	m := kilominx.GetModel()
	perm, twist := m.CornerAction(mv)

	var a action
	a.cperm = *perm
	a.ctwist = *twist
	a.wperm = *m.WingAction(mv)

	return a
}

// then returns the action of performing a first, b second.
func (a action) then(b action) action {
	var r action
	for i := range a.cperm {
		r.cperm[i] = b.cperm[a.cperm[i]]
		r.ctwist[i] = (a.ctwist[i] + b.ctwist[a.cperm[i]]) % 3
	}
	for i := range a.wperm {
		r.wperm[i] = b.wperm[a.wperm[i]]
	}

	return r
}

// inverse returns the action undoing a.
func (a action) inverse() action {
	var r action
	for i := range a.cperm {
		d := a.cperm[i]
		r.cperm[d] = uint8(i)
		r.ctwist[d] = (3 - a.ctwist[i]) % 3
	}
	for i := range a.wperm {
		r.wperm[a.wperm[i]] = uint8(i)
	}

	return r
}

func sequenceAction(seq kilominx.MoveSequence) action {
	a := identityAction()
	for _, mv := range seq {
		a = a.then(moveAction(mv))
	}

	return a
}

// support is a bitset over the 80 piece slots: corners in bits 0..19 of the
// first word, wings in bits 0..59 of the second.
type support [2]uint64

func (a action) support() support {
	var s support
	for i := range a.cperm {
		if int(a.cperm[i]) != i || a.ctwist[i] != 0 {
			s[0] |= 1 << uint(i)
		}
	}
	for i := range a.wperm {
		if int(a.wperm[i]) != i {
			s[1] |= 1 << uint(i)
		}
	}

	return s
}

func (s support) intersect(t support) support {
	return support{s[0] & t[0], s[1] & t[1]}
}

func (s support) count() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1])
}

// cornerCycle reports the three corner slots a cycles, in cycle order
// starting from the lowest, when a moves exactly three corners and no wings.
// ok is false otherwise.
func (a action) cornerCycle() (slots [3]int, ok bool) {
	s := a.support()
	if bits.OnesCount64(s[0]) != 3 || s[1] != 0 {
		return slots, false
	}

	b1 := bits.TrailingZeros64(s[0])
	b2 := int(a.cperm[b1])
	b3 := int(a.cperm[b2])
	if b2 == b1 || b3 == b1 || b3 == b2 || int(a.cperm[b3]) != b1 {
		return slots, false
	}

	return [3]int{b1, b2, b3}, true
}

// wingCycle is cornerCycle for wings: exactly three wings moved, corners
// untouched and untwisted.
func (a action) wingCycle() (slots [3]int, ok bool) {
	s := a.support()
	if bits.OnesCount64(s[1]) != 3 || s[0] != 0 {
		return slots, false
	}

	b1 := bits.TrailingZeros64(s[1])
	b2 := int(a.wperm[b1])
	b3 := int(a.wperm[b2])
	if b2 == b1 || b3 == b1 || b3 == b2 || int(a.wperm[b3]) != b1 {
		return slots, false
	}

	return [3]int{b1, b2, b3}, true
}
