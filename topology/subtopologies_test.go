package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologyConstruction(t *testing.T) {
	pt := Point()
	assert.Equal(t, 0, pt.Dimension())
	assert.Equal(t, 1, pt.NumCorners())

	tri := Simplex(2)
	assert.Equal(t, uint32(0), tri.ID())
	assert.Equal(t, 3, tri.NumCorners())

	quad := Cube(2)
	assert.Equal(t, uint32(3), quad.ID())
	assert.Equal(t, 4, quad.NumCorners())

	// The canonical 3D prism and pyramid ids.
	assert.Equal(t, uint32(4), PrismTopology(3).ID())
	assert.Equal(t, uint32(3), PyramidTopology(3).ID())
	assert.Equal(t, 6, PrismTopology(3).NumCorners())
	assert.Equal(t, 5, PyramidTopology(3).NumCorners())

	// Both line encodings are the same shape.
	assert.True(t, PrismOver(Point()).SameShape(PyramidOver(Point())))
	assert.False(t, Simplex(2).SameShape(Cube(2)))
}

func TestSizeKnownShapes(t *testing.T) {
	cases := []struct {
		name  string
		topo  Topology
		sizes []int // indexed by codim
	}{
		{"point", Point(), []int{1}},
		{"line", Cube(1), []int{1, 2}},
		{"triangle", Simplex(2), []int{1, 3, 3}},
		{"quadrilateral", Cube(2), []int{1, 4, 4}},
		{"tetrahedron", Simplex(3), []int{1, 4, 6, 4}},
		{"hexahedron", Cube(3), []int{1, 6, 12, 8}},
		{"pyramid", PyramidTopology(3), []int{1, 5, 8, 5}},
		{"prism", PrismTopology(3), []int{1, 5, 9, 6}},
		{"4-cube", Cube(4), []int{1, 8, 24, 32, 16}},
		{"4-simplex", Simplex(4), []int{1, 5, 10, 10, 5}},
	}
	for _, tc := range cases {
		for codim, want := range tc.sizes {
			assert.Equalf(t, want, Size(tc.topo, codim),
				"%s codim %d", tc.name, codim)
		}
	}
}

// Subentity counts of a subentity must agree with the subentity's own
// topology, for every topology id up to dimension 5.
func TestSubTopologyConsistency(t *testing.T) {
	for dim := 0; dim <= 5; dim++ {
		for id := uint32(0); id < 1<<uint(dim); id++ {
			topo := New(id, dim)
			for c := 0; c <= dim; c++ {
				for i := 0; i < Size(topo, c); i++ {
					sub := SubTopology(topo, c, i)
					require.Equal(t, dim-c, sub.Dimension())
					for cc := 0; cc <= sub.Dimension(); cc++ {
						n := Size(sub, cc)
						seen := make(map[int]bool)
						for j := 0; j < n; j++ {
							num := SubEntityNumber(topo, c, i, cc, j)
							require.GreaterOrEqual(t, num, 0)
							require.Less(t, num, Size(topo, c+cc))
							seen[num] = true
							// The numbered entity must have the shape the
							// subentity's own algebra predicts.
							require.Truef(t,
								SubTopology(topo, c+cc, num).SameShape(SubTopology(sub, cc, j)),
								"topology %s: subentity (%d,%d) sub-sub (%d,%d)", topo, i, c, j, cc)
						}
						require.Lenf(t, seen, n,
							"topology %s: duplicate numbering in (%d,%d) at subcodim %d", topo, i, c, cc)
					}
				}
			}
		}
	}
}

func TestSubEntityNumberKnownShapes(t *testing.T) {
	// Generic tetrahedron edges: {0,1} {0,2} {1,2} {0,3} {1,3} {2,3}.
	tet := Simplex(3)
	wantEdges := [][]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}, {2, 3}}
	for e, want := range wantEdges {
		for j, v := range want {
			assert.Equal(t, v, SubEntityNumber(tet, 2, e, 1, j), "tet edge %d vertex %d", e, j)
		}
	}

	// Generic prism: swept quadrilateral faces first, then bottom and top.
	prism := PrismTopology(3)
	assert.Equal(t, []int{0, 1, 3, 4}, subVertices(prism, 1, 0))
	assert.Equal(t, []int{0, 2, 3, 5}, subVertices(prism, 1, 1))
	assert.Equal(t, []int{1, 2, 4, 5}, subVertices(prism, 1, 2))
	assert.Equal(t, []int{0, 1, 2}, subVertices(prism, 1, 3))
	assert.Equal(t, []int{3, 4, 5}, subVertices(prism, 1, 4))

	// Generic pyramid: quadrilateral base first, then the cone faces.
	pyr := PyramidTopology(3)
	assert.Equal(t, []int{0, 1, 2, 3}, subVertices(pyr, 1, 0))
	assert.Equal(t, []int{0, 2, 4}, subVertices(pyr, 1, 1))
	assert.Equal(t, []int{1, 3, 4}, subVertices(pyr, 1, 2))
	assert.Equal(t, []int{0, 1, 4}, subVertices(pyr, 1, 3))
	assert.Equal(t, []int{2, 3, 4}, subVertices(pyr, 1, 4))
}

func subVertices(t Topology, codim, i int) (verts []int) {
	sub := SubTopology(t, codim, i)
	for j := 0; j < sub.NumCorners(); j++ {
		verts = append(verts, SubEntityNumber(t, codim, i, sub.Dimension(), j))
	}
	return
}

func TestIsCodimHybrid(t *testing.T) {
	// Simplices and cubes are uniform at every codimension.
	for dim := 0; dim <= 4; dim++ {
		for c := 0; c <= dim; c++ {
			assert.False(t, IsCodimHybrid(Simplex(dim), c))
			assert.False(t, IsCodimHybrid(Cube(dim), c))
		}
	}
	// The 3D prism and pyramid mix triangles and quadrilaterals at codim 1.
	assert.True(t, IsCodimHybrid(PrismTopology(3), 1))
	assert.True(t, IsCodimHybrid(PyramidTopology(3), 1))
	assert.False(t, IsCodimHybrid(PrismTopology(3), 0))
	assert.False(t, IsCodimHybrid(PrismTopology(3), 3))
	assert.False(t, IsCodimHybrid(PrismTopology(3), 2))
}

func TestSizePanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Size(Simplex(2), 3) })
	assert.Panics(t, func() { Size(Simplex(2), -1) })
	assert.Panics(t, func() { SubTopology(Simplex(2), 1, 3) })
	assert.Panics(t, func() { SubEntityNumber(Simplex(3), 2, 0, 2, 5) })
}
