package kilominx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdjacencySymmetric checks that every neighbor relation is mutual and
// that no face borders itself.
func TestAdjacencySymmetric(t *testing.T) {
	m := GetModel()
	for g := Face(0); g < NumFaces; g++ {
		seen := map[Face]bool{}
		for k := 0; k < 5; k++ {
			h := m.Neighbors(g)[k]
			require.NotEqual(t, g, h)
			require.False(t, seen[h], "duplicate neighbor %v of %v", h, g)
			seen[h] = true
			assert.Equal(t, k, m.SideOf(g, h))
			assert.GreaterOrEqual(t, m.SideOf(h, g), 0, "%v must list %v back", h, g)
		}
	}
}

// TestCornerSlotsCoverEveryVertex checks the corner table: 20 slots, three
// distinct faces each, every corner facelet owned by exactly one slot.
func TestCornerSlotsCoverEveryVertex(t *testing.T) {
	m := GetModel()
	owned := map[int]bool{}
	for i := 0; i < NumCornerSlots; i++ {
		cs := m.CornerSlot(i)
		require.NotEqual(t, cs.Faces[0], cs.Faces[1])
		require.NotEqual(t, cs.Faces[1], cs.Faces[2])
		require.NotEqual(t, cs.Faces[0], cs.Faces[2])
		for j, id := range cs.Facelets {
			assert.Equal(t, cs.Faces[j], FaceletFace(id))
			assert.Less(t, FaceletPos(id), posWingA, "corner facelet expected")
			require.False(t, owned[id])
			owned[id] = true

			slot, idx := m.CornerSlotOf(id)
			assert.Equal(t, i, slot)
			assert.Equal(t, j, idx)
		}
	}
	assert.Len(t, owned, 60)
}

// TestWingSlotsPairAcrossEdges checks the wing table: 60 slots in 30 edge
// pairs, each slot holding one first-wing and one second-wing facelet on the
// edge's two faces.
func TestWingSlotsPairAcrossEdges(t *testing.T) {
	m := GetModel()
	owned := map[int]bool{}
	for i := 0; i < NumWingSlots; i++ {
		ws := m.WingSlot(i)
		assert.Equal(t, i/2, ws.Edge)

		a, b := ws.Facelets[0], ws.Facelets[1]
		assert.GreaterOrEqual(t, FaceletPos(a), posWingA)
		assert.Less(t, FaceletPos(a), posWingB)
		assert.GreaterOrEqual(t, FaceletPos(b), posWingB)
		assert.Less(t, FaceletPos(b), posPetal)

		fs := m.EdgeFaces(ws.Edge)
		assert.ElementsMatch(t, []Face{fs[0], fs[1]}, []Face{FaceletFace(a), FaceletFace(b)})

		for j, id := range ws.Facelets {
			require.False(t, owned[id])
			owned[id] = true

			slot, idx := m.WingSlotOf(id)
			assert.Equal(t, i, slot)
			assert.Equal(t, j, idx)
		}
	}
	assert.Len(t, owned, 120)
}

// TestMoveTablesAreOrderFivePermutations checks every single-fifth-turn table
// for bijectivity and order 5, and that steps compose as powers.
func TestMoveTablesAreOrderFivePermutations(t *testing.T) {
	m := GetModel()
	for f := Face(0); f < NumFaces; f++ {
		for _, layer := range []Layer{Outer, Slice} {
			one := m.MoveTable(Move{Face: f, Layer: layer, Steps: 1})

			seen := make([]bool, FaceletCount)
			for _, d := range one {
				require.False(t, seen[d])
				seen[d] = true
			}

			cur := one
			for s := 2; s <= 4; s++ {
				cur = composePerm(cur, one)
				assert.Equal(t, m.MoveTable(Move{Face: f, Layer: layer, Steps: s}), cur)
			}
			cur = composePerm(cur, one)
			for i, d := range cur {
				require.Equal(t, i, int(d), "%v/%v should have order 5", f, layer)
			}
		}
	}
}

// TestSliceMovesKeepPetalsHome checks that no slice turn moves a center
// petal or super-center sticker.
func TestSliceMovesKeepPetalsHome(t *testing.T) {
	m := GetModel()
	for f := Face(0); f < NumFaces; f++ {
		table := m.MoveTable(Move{Face: f, Layer: Slice, Steps: 1})
		for i, d := range table {
			if FaceletPos(i) >= posPetal {
				assert.Equal(t, i, int(d))
			}
		}
	}
}
