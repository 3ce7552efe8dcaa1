package solve

import (
	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
	"github.com/itsAmeMario0o/master-kilominx-solver/validate"
)

// cube is the solver's working view of the puzzle: for every slot, which
// piece occupies it (pieces are named by their home slot) and, for corners,
// its clockwise twist.
type cube struct {
	cornerAt [kilominx.NumCornerSlots]int
	twistAt  [kilominx.NumCornerSlots]int
	wingAt   [kilominx.NumWingSlots]int
}

func cubeFromPieces(p *validate.Pieces) cube {
	var c cube
	c.cornerAt = p.CornerPerm
	c.twistAt = p.CornerTwist
	c.wingAt = p.WingPerm

	return c
}

func solvedCube() cube {
	var c cube
	for i := range c.cornerAt {
		c.cornerAt[i] = i
	}
	for i := range c.wingAt {
		c.wingAt[i] = i
	}

	return c
}

// act performs a on c. Destination semantics: the occupant of slot i moves
// to slot a.cperm[i], gaining a.ctwist[i].
func (c cube) act(a action) cube {
	var out cube
	for i := range c.cornerAt {
		d := a.cperm[i]
		out.cornerAt[d] = c.cornerAt[i]
		out.twistAt[d] = (c.twistAt[i] + int(a.ctwist[i])) % 3
	}
	for i := range c.wingAt {
		out.wingAt[a.wperm[i]] = c.wingAt[i]
	}

	return out
}

func (c cube) apply(seq kilominx.MoveSequence) cube {
	for _, mv := range seq {
		c = c.act(moveAction(mv))
	}

	return c
}

func (c cube) solved() bool {
	for i := range c.cornerAt {
		if c.cornerAt[i] != i || c.twistAt[i] != 0 {
			return false
		}
	}
	for i := range c.wingAt {
		if c.wingAt[i] != i {
			return false
		}
	}

	return true
}

// cornerHolding returns the slot currently holding corner piece home.
func (c cube) cornerHolding(home int) int {
	for i, p := range c.cornerAt {
		if p == home {
			return i
		}
	}

	return -1
}

// wingHolding returns the slot currently holding wing piece home.
func (c cube) wingHolding(home int) int {
	for i, p := range c.wingAt {
		if p == home {
			return i
		}
	}

	return -1
}

// sameOutside reports whether c and d agree on every corner slot not listed
// in keep and every wing slot not listed in keepW. The purity assertion
// after each conjugated 3-cycle runs through this.
func (c cube) sameOutside(d cube, corners, wings []int) bool {
	skipC := map[int]bool{}
	for _, s := range corners {
		skipC[s] = true
	}
	skipW := map[int]bool{}
	for _, s := range wings {
		skipW[s] = true
	}

	for i := range c.cornerAt {
		if skipC[i] {
			continue
		}
		if c.cornerAt[i] != d.cornerAt[i] || c.twistAt[i] != d.twistAt[i] {
			return false
		}
	}
	for i := range c.wingAt {
		if skipW[i] {
			continue
		}
		if c.wingAt[i] != d.wingAt[i] {
			return false
		}
	}

	return true
}
