package kilominx

import "fmt"

// outerStrip returns the four facelets of f's neighbor at side k that travel
// with an outer turn of f, ordered along f's side k (vertex k → vertex k+1).
// Crossing the shared edge reverses traversal, so the neighbor's stickers
// appear in reverse of its own side order.
func (m *Model) outerStrip(f Face, k int) [4]int {
	h := m.neighbors[f][k]
	b := m.SideOf(h, f)

	return [4]int{
		FaceletID(h, posCorner+(b+1)%5),
		FaceletID(h, posWingB+b),
		FaceletID(h, posWingA+b),
		FaceletID(h, posCorner+b),
	}
}

// sliceStrip returns the two facelets of f's neighbor at side k that travel
// with an inner-slice turn of f: the wing stickers flanking the neighbor's
// petal nearest f, ordered along f's side k. Petals themselves stay put;
// no move transports a petal off its face.
func (m *Model) sliceStrip(f Face, k int) [2]int {
	h := m.neighbors[f][k]
	b := m.SideOf(h, f)

	return [2]int{
		FaceletID(h, posWingA+(b+1)%5),
		FaceletID(h, posWingB+(b+4)%5),
	}
}

// oneStep builds the facelet permutation of a single clockwise fifth-turn of
// the given face and layer. perm[i] is the destination of the sticker at i.
func (m *Model) oneStep(f Face, layer Layer) []uint16 {
	p := make([]uint16, FaceletCount)
	for i := range p {
		p[i] = uint16(i)
	}

	if layer == Outer {
		// The whole face cap rotates: all four rings shift one side over.
		for _, base := range [4]int{posCorner, posWingA, posWingB, posPetal} {
			for k := 0; k < 5; k++ {
				p[FaceletID(f, base+k)] = uint16(FaceletID(f, base+(k+1)%5))
			}
		}
		// Neighbor boundary strips cycle around the face.
		for k := 0; k < 5; k++ {
			src := m.outerStrip(f, k)
			dst := m.outerStrip(f, (k+1)%5)
			for j := 0; j < 4; j++ {
				p[src[j]] = uint16(dst[j])
			}
		}

		return p
	}

	// Inner slice: the second-row strips cycle; the cap is untouched.
	for k := 0; k < 5; k++ {
		src := m.sliceStrip(f, k)
		dst := m.sliceStrip(f, (k+1)%5)
		for j := 0; j < 2; j++ {
			p[src[j]] = uint16(dst[j])
		}
	}

	return p
}

func composePerm(p, q []uint16) []uint16 {
	r := make([]uint16, len(p))
	for i := range p {
		r[i] = q[p[i]]
	}

	return r
}

func (m *Model) buildMoveTables() {
	for f := Face(0); f < NumFaces; f++ {
		for layer := Outer; layer <= Slice; layer++ {
			one := m.oneStep(f, layer)
			m.verifyOneStep(f, layer, one)

			axis := axisOf(f, layer)
			cur := one
			for s := 0; s < 4; s++ {
				m.perm[axis][s] = cur
				m.liftPieceActions(axis, s)
				cur = composePerm(cur, one)
			}
		}
	}
}

// verifyOneStep asserts the structural invariants of a freshly built
// permutation. Any violation means the topology tables are malformed and
// panics at startup.
func (m *Model) verifyOneStep(f Face, layer Layer, p []uint16) {
	seen := make([]bool, FaceletCount)
	for i, d := range p {
		if seen[d] {
			panic(fmt.Sprintf("kilominx: %v/%v move is not a bijection at %d", f, layer, i))
		}
		seen[d] = true

		// Stickers never change ring type, and centers never change face.
		if ringOf(int(d)) != ringOf(i) {
			panic(fmt.Sprintf("kilominx: %v/%v move crosses rings at %d", f, layer, i))
		}
		if FaceletPos(i) >= posPetal && FaceletFace(int(d)) != FaceletFace(i) {
			panic(fmt.Sprintf("kilominx: %v/%v move transports a center at %d", f, layer, i))
		}
	}

	// A fifth-turn has order five.
	q := p
	for n := 0; n < 4; n++ {
		q = composePerm(q, p)
	}
	for i, d := range q {
		if int(d) != i {
			panic(fmt.Sprintf("kilominx: %v/%v move does not have order 5", f, layer))
		}
	}
}

// ringOf classifies a facelet: 0 corners, 1 first wings, 2 second wings,
// 3 petals, 4 super center.
func ringOf(id int) int {
	switch pos := FaceletPos(id); {
	case pos < posWingA:
		return 0
	case pos < posWingB:
		return 1
	case pos < posPetal:
		return 2
	case pos < posSuper:
		return 3
	default:
		return 4
	}
}

// liftPieceActions derives the piece-level action (corner slot permutation
// with twist deltas, wing slot permutation) from the facelet permutation,
// asserting that every piece's facelets land together on another slot.
func (m *Model) liftPieceActions(axis, s int) {
	p := m.perm[axis][s]

	twistSum := 0
	for slot := 0; slot < NumCornerSlots; slot++ {
		cs := m.corners[slot]
		dst, rot := m.CornerSlotOf(int(p[cs.Facelets[0]]))
		if dst < 0 {
			panic("kilominx: corner facelet mapped off the corner ring")
		}
		ds := m.corners[dst]
		for j := 1; j < 3; j++ {
			if int(p[cs.Facelets[j]]) != ds.Facelets[(rot+j)%3] {
				panic(fmt.Sprintf("kilominx: corner slot %d torn by axis %d", slot, axis))
			}
		}
		m.cperm[axis][s][slot] = uint8(dst)
		m.ctwist[axis][s][slot] = uint8(rot)
		twistSum += rot
	}
	if twistSum%3 != 0 {
		panic(fmt.Sprintf("kilominx: axis %d twist deltas sum to %d mod 3", axis, twistSum%3))
	}

	for slot := 0; slot < NumWingSlots; slot++ {
		ws := m.wings[slot]
		dst, idx := m.WingSlotOf(int(p[ws.Facelets[0]]))
		if dst < 0 || idx != 0 {
			panic(fmt.Sprintf("kilominx: wing slot %d first facelet misrouted by axis %d", slot, axis))
		}
		if int(p[ws.Facelets[1]]) != m.wings[dst].Facelets[1] {
			panic(fmt.Sprintf("kilominx: wing slot %d torn by axis %d", slot, axis))
		}
		m.wperm[axis][s][slot] = uint8(dst)
	}
}

func axisOf(f Face, layer Layer) int { return int(f)*2 + int(layer) }

// MoveTable returns the precomputed facelet permutation of mv:
// table[i] is the destination index of the sticker at i. The slice is shared
// and must not be modified.
func (m *Model) MoveTable(mv Move) []uint16 {
	return m.perm[axisOf(mv.Face, mv.Layer)][mv.Steps-1]
}

// CornerAction returns mv's corner slot permutation and per-slot twist
// deltas (mod 3). Both arrays are shared and must not be modified.
func (m *Model) CornerAction(mv Move) (perm, twist *[NumCornerSlots]uint8) {
	a := axisOf(mv.Face, mv.Layer)
	return &m.cperm[a][mv.Steps-1], &m.ctwist[a][mv.Steps-1]
}

// WingAction returns mv's wing slot permutation. Shared; read-only.
func (m *Model) WingAction(mv Move) *[NumWingSlots]uint8 {
	return &m.wperm[axisOf(mv.Face, mv.Layer)][mv.Steps-1]
}
