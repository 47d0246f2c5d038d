package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Legacy vertex numbering of the named 3D shapes, expressed as the generic
// vertex each legacy vertex maps to.
func TestLegacy2GenericVertices(t *testing.T) {
	p := ForDimension(3)

	// Tetrahedron and hexahedron vertices coincide in both conventions.
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, p.Legacy2Generic(Simplex(3).ID(), i, 3))
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, i, p.Legacy2Generic(Cube(3).ID(), i, 3))
	}

	// Pyramid vertices 2 and 3 are swapped between the conventions.
	pyr := PyramidTopology(3).ID()
	assert.Equal(t, []int{0, 1, 3, 2, 4}, collect(p, pyr, 3))

	// Prism vertices agree.
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, collect(p, PrismTopology(3).ID(), 3))
}

func TestLegacy2GenericFacesAndEdges(t *testing.T) {
	p := ForDimension(3)

	tet := Simplex(3).ID()
	assert.Equal(t, []int{3, 2, 1, 0}, collect(p, tet, 1))
	assert.Equal(t, []int{0, 2, 1, 3, 4, 5}, collect(p, tet, 2))

	hex := Cube(3).ID()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, collect(p, hex, 1))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 8, 9, 6, 7, 10, 11}, collect(p, hex, 2))

	pyr := PyramidTopology(3).ID()
	assert.Equal(t, []int{0, 3, 2, 4, 1}, collect(p, pyr, 1))
	assert.Equal(t, []int{2, 1, 3, 0, 4, 5, 7, 6}, collect(p, pyr, 2))

	prism := PrismTopology(3).ID()
	assert.Equal(t, []int{3, 0, 2, 1, 4}, collect(p, prism, 1))
	assert.Equal(t, []int{3, 5, 4, 0, 1, 2, 6, 8, 7}, collect(p, prism, 2))
}

func TestTriangleNumbering(t *testing.T) {
	p := ForDimension(2)
	tri := Simplex(2).ID()
	// Legacy edge i is opposite vertex i; generic edges are reversed.
	assert.Equal(t, []int{2, 1, 0}, collect(p, tri, 1))
	assert.Equal(t, []int{0, 1, 2}, collect(p, tri, 2))
	// Quadrilateral numbering agrees in both conventions.
	quad := Cube(2).ID()
	assert.Equal(t, []int{0, 1, 2, 3}, collect(p, quad, 1))
	assert.Equal(t, []int{0, 1, 2, 3}, collect(p, quad, 2))
}

// The two directions must be mutual inverses for every id, dimension and
// codimension the provider serves.
func TestNumberingInverse(t *testing.T) {
	for dim := 0; dim <= 4; dim++ {
		p := ForDimension(dim)
		for id := uint32(0); id < uint32(p.NumTopologies()); id++ {
			for codim := 0; codim <= dim; codim++ {
				n := p.Size(id, codim)
				require.Equal(t, Size(New(id, dim), codim), n)
				for i := 0; i < n; i++ {
					g := p.Legacy2Generic(id, i, codim)
					require.Equalf(t, i, p.Generic2Legacy(id, g, codim),
						"id %d dim %d codim %d index %d", id, dim, codim, i)
					d := p.Generic2Legacy(id, i, codim)
					require.Equalf(t, i, p.Legacy2Generic(id, d, codim),
						"id %d dim %d codim %d index %d", id, dim, codim, i)
				}
			}
		}
	}
}

func TestForDimensionCaches(t *testing.T) {
	assert.Same(t, ForDimension(3), ForDimension(3))
}

func TestNumberingPanics(t *testing.T) {
	p := ForDimension(2)
	assert.Panics(t, func() { p.Legacy2Generic(4, 0, 1) })
	assert.Panics(t, func() { p.Legacy2Generic(0, 0, 3) })
	assert.Panics(t, func() { p.Legacy2Generic(0, 3, 1) })
	assert.Panics(t, func() { p.Generic2Legacy(0, -1, 1) })
}

func collect(p *NumberingProvider, id uint32, codim int) (out []int) {
	for i := 0; i < p.Size(id, codim); i++ {
		out = append(out, p.Legacy2Generic(id, i, codim))
	}
	return
}
