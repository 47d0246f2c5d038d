package refelement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KriFos1/refelements/topology"
)

// The identity mapping must reproduce its argument everywhere in the
// domain, including on the rational pyramid chart.
func TestIdentityMapping(t *testing.T) {
	for dim := 0; dim <= 4; dim++ {
		for id := uint32(0); id < 1<<uint(dim); id++ {
			var (
				topo = topology.New(id, dim)
				m    = identityMapping(topo)
			)
			for i := 0; i < m.NumCorners(); i++ {
				require.InDeltaSlicef(t, m.Corner(i), m.Global(m.Corner(i)), 1e-14,
					"%s corner %d", topo, i)
			}
			bary := barycenter(Corners(topo), vertexRange(topo))
			require.InDeltaSlicef(t, bary, m.Global(bary), 1e-14, "%s barycenter", topo)
		}
	}
}

func vertexRange(t topology.Topology) []int {
	verts := make([]int, t.NumCorners())
	for i := range verts {
		verts[i] = i
	}
	return verts
}

func TestMappingBilinear(t *testing.T) {
	// A skewed quadrilateral: the center of the reference square maps to the
	// average of the corners.
	m := NewCornerMapping(topology.Cube(2), [][]float64{
		{0, 0}, {2, 0}, {1, 2}, {4, 3},
	})
	assert.InDeltaSlice(t, []float64{1.75, 1.25}, m.Global([]float64{0.5, 0.5}), 1e-14)
	assert.InDeltaSlice(t, []float64{2, 0}, m.Global([]float64{1, 0}), 1e-14)
}

func TestMappingEmbedsIntoHigherDimension(t *testing.T) {
	// A triangle in 3-space.
	m := NewCornerMapping(topology.Simplex(2), [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 0, 1},
	})
	assert.Equal(t, 3, m.CoordDimension())
	assert.InDeltaSlice(t, []float64{0.5, 0, 0.5}, m.Global([]float64{0.5, 0.5}), 1e-14)
}

func TestPyramidMappingAtApex(t *testing.T) {
	// The rational chart stays finite and exact at the apex.
	m := identityMapping(topology.PyramidTopology(3))
	assert.InDeltaSlice(t, []float64{0, 0, 1}, m.Global([]float64{0, 0, 1}), 1e-14)
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.5}, m.Global([]float64{0.25, 0.25, 0.5}), 1e-14)
}

func TestTraceCorners(t *testing.T) {
	pyr := Elements(3).Pyramid()

	// Slant face 2 spans parent vertices 1, 3 and 4.
	tr := pyr.Mapping(2, 1)
	require.Equal(t, 3, tr.NumCorners())
	assert.Equal(t, pyr.Corner(1), tr.Corner(0))
	assert.Equal(t, pyr.Corner(3), tr.Corner(1))
	assert.Equal(t, pyr.Corner(4), tr.Corner(2))
	assert.Equal(t, 3, tr.CoordDimension())
	assert.Equal(t, 2, tr.Topology().Dimension())

	// The codim-0 trace is the identity.
	id := pyr.Mapping(0, 0)
	assert.InDeltaSlice(t, []float64{0.3, 0.3, 0.2}, id.Global([]float64{0.3, 0.3, 0.2}), 1e-14)
}

func TestTraceMidpoints(t *testing.T) {
	// Edge midpoints of the hexahedron through the trace mapping.
	hex := Elements(3).Cube()
	for e := 0; e < hex.Size(2); e++ {
		var (
			tr  = hex.Mapping(e, 2)
			mid = tr.Global([]float64{0.5})
		)
		assert.InDeltaSlice(t, hex.Position(e, 2), mid, 1e-14)
		assert.True(t, hex.CheckInside(mid))
	}
}

func TestNewCornerMappingPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewCornerMapping(topology.Simplex(2), [][]float64{{0, 0}, {1, 0}})
	})
	assert.Panics(t, func() {
		NewCornerMapping(topology.Simplex(2), [][]float64{{0, 0}, {1, 0}, {0}})
	})
	assert.Panics(t, func() {
		NewCornerMapping(topology.Simplex(2), [][]float64{{0}, {1}, {2}})
	})
}
