// Package topology encodes the structure of low-dimensional reference cells
// (points, lines, triangles, quadrilaterals, tetrahedra, pyramids, prisms,
// hypercubes and their recursive generalizations) as a compact integer id,
// and derives subentity counts, containment and local numbering purely from
// that id.
package topology

import "fmt"

// A Topology describes a reference cell as a chain of extrusions starting
// from a point. Bit k of the id, counting from the point outward, is set if
// extrusion k was a prism (tensor product with an interval) and clear if it
// was a pyramid (cone over the base). The dimension is the number of
// extrusions, so the id has dimension significant bits.
type Topology struct {
	id  uint32
	dim int
}

// New builds a topology from its id and dimension. The id must have at most
// dim significant bits.
func New(id uint32, dim int) Topology {
	if dim < 0 || dim > 31 {
		panic(fmt.Sprintf("topology: invalid dimension %d", dim))
	}
	if id >= 1<<uint(dim) {
		panic(fmt.Sprintf("topology: id %d out of range for dimension %d", id, dim))
	}
	return Topology{id: id, dim: dim}
}

// Point is the unique zero-dimensional topology.
func Point() Topology {
	return Topology{}
}

// PrismOver extrudes the base tensorially by one dimension.
func PrismOver(base Topology) Topology {
	return Topology{id: base.id | 1<<uint(base.dim), dim: base.dim + 1}
}

// PyramidOver extrudes the base conically by one dimension.
func PyramidOver(base Topology) Topology {
	return Topology{id: base.id, dim: base.dim + 1}
}

// Simplex is the all-pyramid chain (id 0) of the given dimension.
func Simplex(dim int) Topology {
	return New(0, dim)
}

// Cube is the all-prism chain (id 2^dim-1) of the given dimension.
func Cube(dim int) Topology {
	return New(1<<uint(dim)-1, dim)
}

// PrismTopology is the canonical prism: one tensor extrusion of the
// (dim-1)-simplex.
func PrismTopology(dim int) Topology {
	if dim < 1 {
		panic("topology: prism requires dimension >= 1")
	}
	return PrismOver(Simplex(dim - 1))
}

// PyramidTopology is the canonical pyramid: one conical extrusion of the
// (dim-1)-cube.
func PyramidTopology(dim int) Topology {
	if dim < 1 {
		panic("topology: pyramid requires dimension >= 1")
	}
	return PyramidOver(Cube(dim - 1))
}

// ID returns the extrusion bit pattern.
func (t Topology) ID() uint32 { return t.id }

// Dimension returns the number of extrusions.
func (t Topology) Dimension() int { return t.dim }

// IsPrism reports whether the outermost extrusion is a prism. False for the
// point.
func (t Topology) IsPrism() bool {
	return t.dim > 0 && t.id&(1<<uint(t.dim-1)) != 0
}

// Base strips the outermost extrusion.
func (t Topology) Base() Topology {
	if t.dim == 0 {
		panic("topology: point has no base")
	}
	return Topology{id: t.id &^ (1 << uint(t.dim-1)), dim: t.dim - 1}
}

// NumCorners counts the vertices: a prism extrusion doubles the corner
// count, a pyramid extrusion adds the apex.
func (t Topology) NumCorners() (n int) {
	n = 1
	for k := 0; k < t.dim; k++ {
		if t.id&(1<<uint(k)) != 0 {
			n *= 2
		} else {
			n++
		}
	}
	return
}

// SameShape reports whether two topologies describe the same cell shape.
// The first extrusion from the point yields a line either way, so ids that
// differ only in bit 0 are identified.
func (t Topology) SameShape(o Topology) bool {
	return t.dim == o.dim && t.id>>1 == o.id>>1
}

func (t Topology) String() string {
	if t.dim == 0 {
		return "Point"
	}
	if t.IsPrism() {
		return "Prism<" + t.Base().String() + ">"
	}
	return "Pyramid<" + t.Base().String() + ">"
}
