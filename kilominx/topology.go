package kilominx

import (
	"fmt"
	"sync"
)

// Facelet layout within a face. Side k of a face runs from pentagon vertex k
// to vertex k+1 (mod 5); vertex k joins sides k-1 and k.
//
//	0..4   corner sticker at vertex k
//	5..9   first wing sticker on side k (nearer vertex k)
//	10..14 second wing sticker on side k (nearer vertex k+1)
//	15..19 center petal on side k
//	20     super center
const (
	FaceletsPerFace = 21
	FaceletCount    = NumFaces * FaceletsPerFace // 252
	FaceletsPerColor = FaceletsPerFace           // 21 of each color

	posCorner = 0
	posWingA  = 5
	posWingB  = 10
	posPetal  = 15
	posSuper  = 20
)

// Piece slot counts.
const (
	NumCornerSlots = 20
	NumWingSlots   = 60
	NumEdges       = 30
)

// FaceletID returns the global facelet index of position pos on face f.
func FaceletID(f Face, pos int) int { return int(f)*FaceletsPerFace + pos }

// FaceletFace returns the face owning facelet id.
func FaceletFace(id int) Face { return Face(id / FaceletsPerFace) }

// FaceletPos returns the within-face position of facelet id.
func FaceletPos(id int) int { return id % FaceletsPerFace }

// SuperCenterID returns the super-center facelet of face f.
func SuperCenterID(f Face) int { return FaceletID(f, posSuper) }

// PetalID returns the center-petal facelet of face f on side k (0..4).
func PetalID(f Face, k int) int { return FaceletID(f, posPetal+k) }

// neighborTable lists each face's five neighbors in rotational order as seen
// from outside that face. The table encodes the canonical dodecahedron as a
// top cap (U), an upper ring (F R BR BL L), a lower ring (BD BU UR B UL) and
// a bottom cap (D). Orientation consistency (every vertex closes over
// exactly three faces) is asserted when the model is built.
var neighborTable = [NumFaces][5]Face{
	F:  {R, U, L, BD, BU},
	U:  {F, R, BR, BL, L},
	R:  {BR, U, F, BU, UR},
	D:  {UL, B, UR, BU, BD},
	L:  {F, U, BL, UL, BD},
	BR: {BL, U, R, UR, B},
	BL: {L, U, BR, B, UL},
	BU: {UR, R, F, BD, D},
	BD: {BU, F, L, UL, D},
	B:  {UL, BL, BR, UR, D},
	UL: {BD, L, BL, B, D},
	UR: {B, BR, R, BU, D},
}

// CornerSlot is one corner position: three facelets on the three faces
// meeting at a dodecahedron vertex, listed in rotational order starting from
// the lowest-numbered face.
type CornerSlot struct {
	Facelets [3]int
	Faces    [3]Face
}

// WingSlot is one edge-wing position: a first-wing facelet on one face and a
// second-wing facelet on the adjacent face. The two slots of edge e are
// 2e and 2e+1; they hold complementary wings when the edge is paired.
type WingSlot struct {
	Facelets [2]int // [first-wing facelet, second-wing facelet]
	Edge     int
}

// Model holds the complete static geometry: adjacency, piece tables, and the
// precomputed move tables. It is built once and is safe for concurrent use.
type Model struct {
	neighbors [NumFaces][5]Face
	sideOf    [NumFaces][NumFaces]int8 // side index of g facing h; -1 if apart

	corners     [NumCornerSlots]CornerSlot
	cornerSlotAt [FaceletCount]int8 // corner slot owning facelet, -1
	cornerIdxAt  [FaceletCount]int8 // index within that slot

	wings      [NumWingSlots]WingSlot
	wingSlotAt [FaceletCount]int8
	wingIdxAt  [FaceletCount]int8

	edgeFaces [NumEdges][2]Face

	// Move tables, indexed by axis (face*2+layer) and steps-1.
	perm   [2 * NumFaces][4][]uint16
	cperm  [2 * NumFaces][4][NumCornerSlots]uint8
	ctwist [2 * NumFaces][4][NumCornerSlots]uint8
	wperm  [2 * NumFaces][4][NumWingSlots]uint8
}

var (
	modelOnce sync.Once
	model     *Model
)

// GetModel returns the process-wide puzzle model. The first call builds and
// verifies every table; construction failure is a programming fault and
// panics. The returned tables are read-only.
func GetModel() *Model {
	modelOnce.Do(func() {
		m := &Model{neighbors: neighborTable}
		m.buildSides()
		m.buildCorners()
		m.buildWings()
		m.buildMoveTables()
		model = m
	})

	return model
}

// Neighbors returns the five neighbors of f in rotational order.
func (m *Model) Neighbors(f Face) [5]Face { return m.neighbors[f] }

// SideOf returns the side index of g that borders h, or -1 if not adjacent.
func (m *Model) SideOf(g, h Face) int { return int(m.sideOf[g][h]) }

// CornerSlot returns corner slot i (0..19).
func (m *Model) CornerSlot(i int) CornerSlot { return m.corners[i] }

// WingSlot returns wing slot i (0..59).
func (m *Model) WingSlot(i int) WingSlot { return m.wings[i] }

// EdgeFaces returns the two faces of edge e (0..29), lower face first.
func (m *Model) EdgeFaces(e int) [2]Face { return m.edgeFaces[e] }

// CornerSlotOf returns the corner slot owning facelet id and the facelet's
// index within the slot, or (-1, -1) for non-corner facelets.
func (m *Model) CornerSlotOf(id int) (slot, idx int) {
	return int(m.cornerSlotAt[id]), int(m.cornerIdxAt[id])
}

// WingSlotOf returns the wing slot owning facelet id and the facelet's index
// within the slot, or (-1, -1) for non-wing facelets.
func (m *Model) WingSlotOf(id int) (slot, idx int) {
	return int(m.wingSlotAt[id]), int(m.wingIdxAt[id])
}

func (m *Model) buildSides() {
	for g := 0; g < NumFaces; g++ {
		for h := 0; h < NumFaces; h++ {
			m.sideOf[g][h] = -1
		}
	}
	for g := 0; g < NumFaces; g++ {
		for k := 0; k < 5; k++ {
			m.sideOf[g][m.neighbors[g][k]] = int8(k)
		}
	}

	// Adjacency must be symmetric and irreflexive.
	for g := Face(0); g < NumFaces; g++ {
		for k := 0; k < 5; k++ {
			h := m.neighbors[g][k]
			if h == g || m.sideOf[h][g] < 0 {
				panic(fmt.Sprintf("kilominx: malformed adjacency at %v side %d", g, k))
			}
		}
	}
}

// nextVertexFlag walks one step around a dodecahedron vertex: from the flag
// (face g, vertex v) it returns the next face at the same vertex and that
// face's own index for the vertex. Crossing side v of g to h identifies
// vertex v of g with vertex sideOf(h,g)+1 of h.
func (m *Model) nextVertexFlag(g Face, v int) (Face, int) {
	h := m.neighbors[g][v]
	return h, (int(m.sideOf[h][g]) + 1) % 5
}

func (m *Model) buildCorners() {
	for i := range m.cornerSlotAt {
		m.cornerSlotAt[i] = -1
		m.cornerIdxAt[i] = -1
	}

	var visited [NumFaces][5]bool
	slot := 0
	for g := Face(0); g < NumFaces; g++ {
		for v := 0; v < 5; v++ {
			if visited[g][v] {
				continue
			}
			// Walk the three flags of this vertex; it must close in 3 steps.
			f0, v0 := g, v
			f1, v1 := m.nextVertexFlag(f0, v0)
			f2, v2 := m.nextVertexFlag(f1, v1)
			f3, v3 := m.nextVertexFlag(f2, v2)
			if f3 != f0 || v3 != v0 {
				panic(fmt.Sprintf("kilominx: vertex at %v/%d does not close", g, v))
			}
			visited[f0][v0], visited[f1][v1], visited[f2][v2] = true, true, true

			// Rotate so the lowest face comes first; keep rotational order.
			faces := [3]Face{f0, f1, f2}
			verts := [3]int{v0, v1, v2}
			low := 0
			for i := 1; i < 3; i++ {
				if faces[i] < faces[low] {
					low = i
				}
			}
			var cs CornerSlot
			for i := 0; i < 3; i++ {
				j := (low + i) % 3
				cs.Faces[i] = faces[j]
				cs.Facelets[i] = FaceletID(faces[j], posCorner+verts[j])
			}
			if slot >= NumCornerSlots {
				panic("kilominx: more than 20 corner slots")
			}
			m.corners[slot] = cs
			for i, id := range cs.Facelets {
				m.cornerSlotAt[id] = int8(slot)
				m.cornerIdxAt[id] = int8(i)
			}
			slot++
		}
	}
	if slot != NumCornerSlots {
		panic(fmt.Sprintf("kilominx: found %d corner slots, want %d", slot, NumCornerSlots))
	}
}

func (m *Model) buildWings() {
	for i := range m.wingSlotAt {
		m.wingSlotAt[i] = -1
		m.wingIdxAt[i] = -1
	}

	edge := 0
	for g := Face(0); g < NumFaces; g++ {
		for h := g + 1; h < NumFaces; h++ {
			a := m.SideOf(g, h)
			if a < 0 {
				continue
			}
			b := m.SideOf(h, g)
			if edge >= NumEdges {
				panic("kilominx: more than 30 edges")
			}
			m.edgeFaces[edge] = [2]Face{g, h}

			// Traversal direction flips across the shared edge, so the first
			// wing of one face pairs with the second wing of the other.
			even := WingSlot{
				Facelets: [2]int{FaceletID(g, posWingA+a), FaceletID(h, posWingB+b)},
				Edge:     edge,
			}
			odd := WingSlot{
				Facelets: [2]int{FaceletID(h, posWingA+b), FaceletID(g, posWingB+a)},
				Edge:     edge,
			}
			m.wings[2*edge] = even
			m.wings[2*edge+1] = odd
			for i, id := range even.Facelets {
				m.wingSlotAt[id] = int8(2 * edge)
				m.wingIdxAt[id] = int8(i)
			}
			for i, id := range odd.Facelets {
				m.wingSlotAt[id] = int8(2*edge + 1)
				m.wingIdxAt[id] = int8(i)
			}
			edge++
		}
	}
	if edge != NumEdges {
		panic(fmt.Sprintf("kilominx: found %d edges, want %d", edge, NumEdges))
	}
}
