package validate

import (
	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

// Cell is one observed sticker: the global facelet id and its color.
type Cell struct {
	Facelet int
	Color   kilominx.Color
}

// Pieces is the piece-level reading of a validated state. Permutations use
// occupant semantics: CornerPerm[s] is the home slot of the corner piece
// currently sitting in slot s, likewise WingPerm for edge wings.
type Pieces struct {
	// FaceColor maps each face to its super-center color; ColorFace is the
	// inverse. Both are bijections once check 2 has passed.
	FaceColor [kilominx.NumFaces]kilominx.Color
	ColorFace [kilominx.NumColors]kilominx.Face

	CornerPerm [kilominx.NumCornerSlots]int
	// CornerTwist[s] is the clockwise twist (mod 3) of the piece in slot s
	// relative to its home placement, accumulating the per-move twist deltas
	// of the move tables.
	CornerTwist [kilominx.NumCornerSlots]int

	WingPerm [kilominx.NumWingSlots]int
}

// Validate assembles a full facelet assignment, runs the four checks in
// order and returns the State with its piece view. The input must cover
// every facelet exactly once; anything else is ErrBadAssignment.
func Validate(cells []Cell) (kilominx.State, *Pieces, error) {
	var s kilominx.State
	var seen [kilominx.FaceletCount]bool

	for _, c := range cells {
		if c.Facelet < 0 || c.Facelet >= kilominx.FaceletCount {
			return s, nil, checkErr(ErrBadAssignment, nil,
				"facelet id %d out of range", c.Facelet)
		}
		if c.Color >= kilominx.NumColors {
			return s, nil, checkErr(ErrBadAssignment, []int{c.Facelet},
				"color %d out of palette", c.Color)
		}
		if seen[c.Facelet] {
			return s, nil, checkErr(ErrBadAssignment, []int{c.Facelet},
				"facelet %d assigned twice", c.Facelet)
		}
		seen[c.Facelet] = true
		s.Cells[c.Facelet] = c.Color
	}
	for id, ok := range seen {
		if !ok {
			return s, nil, checkErr(ErrBadAssignment, []int{id},
				"facelet %d missing", id)
		}
	}

	pieces, err := ValidateState(s)
	if err != nil {
		return s, nil, err
	}

	return s, pieces, nil
}

// ValidateState runs the four checks on an assembled State.
func ValidateState(s kilominx.State) (*Pieces, error) {
	if err := checkCensus(s); err != nil {
		return nil, err
	}

	p := &Pieces{}
	if err := checkCenters(s, p); err != nil {
		return nil, err
	}
	if err := checkPieces(s, p); err != nil {
		return nil, err
	}
	if err := checkReachable(p); err != nil {
		return nil, err
	}

	return p, nil
}

// checkCensus requires exactly 21 stickers of each color.
func checkCensus(s kilominx.State) error {
	var count [kilominx.NumColors]int
	for _, c := range s.Cells {
		count[c]++
	}
	for c, n := range count {
		if n != kilominx.FaceletsPerColor {
			return checkErr(ErrColorCountMismatch, nil,
				"%v appears %d times, want %d", kilominx.Color(c), n,
				kilominx.FaceletsPerColor)
		}
	}

	return nil
}

// checkCenters requires distinct super-center colors and records the
// face↔color bijection.
func checkCenters(s kilominx.State, p *Pieces) error {
	var owner [kilominx.NumColors]int // face+1, 0 = unseen
	for f := kilominx.Face(0); f < kilominx.NumFaces; f++ {
		c := s.FaceColor(f)
		if prev := owner[c]; prev != 0 {
			return checkErr(ErrDuplicateCenterColor,
				[]int{kilominx.SuperCenterID(kilominx.Face(prev - 1)), kilominx.SuperCenterID(f)},
				"faces %v and %v both centered %v", kilominx.Face(prev-1), f, c)
		}
		owner[c] = int(f) + 1
		p.FaceColor[f] = c
		p.ColorFace[c] = f
	}

	return nil
}

// checkPieces verifies center blocks, wings and corners against the solved
// piece inventory and records the occupant permutations.
func checkPieces(s kilominx.State, p *Pieces) error {
	m := kilominx.GetModel()

	// Center blocks: the five petals must match their super center. Slice
	// moves never transport petals, so a mismatch cannot come from turning a
	// correctly stickered puzzle.
	for f := kilominx.Face(0); f < kilominx.NumFaces; f++ {
		want := p.FaceColor[f]
		var bad []int
		for k := 0; k < 5; k++ {
			id := kilominx.PetalID(f, k)
			if s.Cells[id] != want {
				bad = append(bad, id)
			}
		}
		if len(bad) > 0 {
			return checkErr(ErrImpossiblePieceColorCombination, bad,
				"center petals of %v disagree with its super center %v", f, want)
		}
	}

	// Wings: the ordered color pair identifies the piece and its home slot
	// uniquely, because the first facelet of every wing slot is a first-wing
	// position and moves preserve that.
	wingHome := map[[2]kilominx.Color]int{}
	for i := 0; i < kilominx.NumWingSlots; i++ {
		ws := m.WingSlot(i)
		key := [2]kilominx.Color{
			p.FaceColor[kilominx.FaceletFace(ws.Facelets[0])],
			p.FaceColor[kilominx.FaceletFace(ws.Facelets[1])],
		}
		wingHome[key] = i
	}
	wingUsed := make([]int, kilominx.NumWingSlots) // occupied slot+1
	for i := 0; i < kilominx.NumWingSlots; i++ {
		ws := m.WingSlot(i)
		key := [2]kilominx.Color{s.Cells[ws.Facelets[0]], s.Cells[ws.Facelets[1]]}
		home, ok := wingHome[key]
		if !ok {
			return checkErr(ErrImpossiblePieceColorCombination, ws.Facelets[:],
				"no edge wing carries %v/%v in this arrangement", key[0], key[1])
		}
		if prev := wingUsed[home]; prev != 0 {
			other := m.WingSlot(prev - 1)
			return checkErr(ErrImpossiblePieceColorCombination,
				append(other.Facelets[:], ws.Facelets[:]...),
				"edge wing %v/%v appears twice", key[0], key[1])
		}
		wingUsed[home] = i + 1
		p.WingPerm[i] = home
	}

	// Corners: the color triple in rotational order identifies the piece and
	// its twist. A mirrored triple matches nothing.
	type cornerFit struct{ home, rot int }
	cornerHome := map[[3]kilominx.Color]cornerFit{}
	for i := 0; i < kilominx.NumCornerSlots; i++ {
		cs := m.CornerSlot(i)
		var c [3]kilominx.Color
		for j, f := range cs.Faces {
			c[j] = p.FaceColor[f]
		}
		for r := 0; r < 3; r++ {
			key := [3]kilominx.Color{c[r], c[(r+1)%3], c[(r+2)%3]}
			cornerHome[key] = cornerFit{home: i, rot: r}
		}
	}
	cornerUsed := make([]int, kilominx.NumCornerSlots)
	for i := 0; i < kilominx.NumCornerSlots; i++ {
		cs := m.CornerSlot(i)
		key := [3]kilominx.Color{
			s.Cells[cs.Facelets[0]], s.Cells[cs.Facelets[1]], s.Cells[cs.Facelets[2]],
		}
		fit, ok := cornerHome[key]
		if !ok {
			return checkErr(ErrImpossiblePieceColorCombination, cs.Facelets[:],
				"no corner carries %v/%v/%v in this cyclic order", key[0], key[1], key[2])
		}
		if prev := cornerUsed[fit.home]; prev != 0 {
			other := m.CornerSlot(prev - 1)
			return checkErr(ErrImpossiblePieceColorCombination,
				append(other.Facelets[:], cs.Facelets[:]...),
				"corner %v/%v/%v appears twice", key[0], key[1], key[2])
		}
		cornerUsed[fit.home] = i + 1
		p.CornerPerm[i] = fit.home
		// Observed sticker j shows home color (j+rot)%3, so the clockwise
		// twist accumulated by the move tables is 3-rot mod 3.
		p.CornerTwist[i] = (3 - fit.rot) % 3
	}

	return nil
}

// checkReachable applies the move-group invariants: even corner permutation,
// zero twist sum mod 3, even wing permutation.
func checkReachable(p *Pieces) error {
	if permParity(p.CornerPerm[:]) != 0 {
		return checkErr(ErrUnreachableState, nil, "odd corner permutation")
	}

	twist := 0
	for _, t := range p.CornerTwist {
		twist += t
	}
	if twist%3 != 0 {
		return checkErr(ErrUnreachableState, nil,
			"corner twists sum to %d mod 3", twist%3)
	}

	if permParity(p.WingPerm[:]) != 0 {
		return checkErr(ErrUnreachableState, nil, "odd wing permutation")
	}

	return nil
}

// permParity returns 0 for an even permutation, 1 for odd, by cycle
// decomposition.
func permParity(perm []int) int {
	visited := make([]bool, len(perm))
	parity := 0
	for i := range perm {
		if visited[i] {
			continue
		}
		length := 0
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
			length++
		}
		parity ^= (length - 1) & 1
	}

	return parity
}
