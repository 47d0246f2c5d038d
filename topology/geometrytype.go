package topology

import "fmt"

// BasicType is the coarse classification of a reference cell. Above
// dimension 3 most topologies fall outside the named types and classify as
// None; they remain fully usable through the generic algebra.
type BasicType int

const (
	BasicSimplex BasicType = iota
	BasicCube
	BasicPyramid
	BasicPrism
	BasicNone
)

func (b BasicType) String() string {
	switch b {
	case BasicSimplex:
		return "simplex"
	case BasicCube:
		return "cube"
	case BasicPyramid:
		return "pyramid"
	case BasicPrism:
		return "prism"
	default:
		return "none"
	}
}

// GeometryType identifies a reference cell by topology id and dimension.
// Two values compare equal when they describe the same shape, which
// identifies the two encodings of the line (ids differing only in bit 0).
type GeometryType struct {
	id   uint32
	dim  int
	none bool
}

// TypeFrom wraps a topology as a GeometryType.
func TypeFrom(t Topology) GeometryType {
	return GeometryType{id: t.ID(), dim: t.Dimension()}
}

// NoneType marks a cell of the given dimension that carries no reference
// topology, such as an arbitrary polytope read from a mesh file. None types
// have no topology and no subentity algebra.
func NoneType(dim int) GeometryType {
	if dim < 0 {
		panic(fmt.Sprintf("topology: invalid dimension %d", dim))
	}
	return GeometryType{dim: dim, none: true}
}

// TypeFromID builds a GeometryType from a raw topology id and dimension.
//
// Deprecated-equivalent of the old free-standing geometryType(id, dim)
// conversion; kept because mesh formats address cells this way.
func TypeFromID(id uint32, dim int) GeometryType {
	return TypeFrom(New(id, dim))
}

// NewGeometryType builds the canonical GeometryType for a named basic type.
// Prism and pyramid require dimension >= 3; below that the named types
// collapse onto simplex and cube.
func NewGeometryType(basic BasicType, dim int) GeometryType {
	return TypeFrom(CanonicalTopology(basic, dim))
}

// CanonicalTopology returns the canonical extrusion chain for a basic type:
// simplex is the pure pyramid chain, cube the pure prism chain, prism one
// tensor extrusion of a simplex, pyramid one conical extrusion of a cube.
func CanonicalTopology(basic BasicType, dim int) Topology {
	switch basic {
	case BasicSimplex:
		return Simplex(dim)
	case BasicCube:
		return Cube(dim)
	case BasicPrism:
		if dim < 3 {
			panic(fmt.Sprintf("topology: no prism of dimension %d", dim))
		}
		return PrismTopology(dim)
	case BasicPyramid:
		if dim < 3 {
			panic(fmt.Sprintf("topology: no pyramid of dimension %d", dim))
		}
		return PyramidTopology(dim)
	default:
		panic(fmt.Sprintf("topology: no canonical topology for basic type %v", basic))
	}
}

// ID returns the topology id.
func (g GeometryType) ID() uint32 { return g.id }

// Dim returns the dimension.
func (g GeometryType) Dim() int { return g.dim }

// Topology returns the underlying extrusion chain; it panics for none
// types, which have no topology.
func (g GeometryType) Topology() Topology {
	if g.none {
		panic(fmt.Sprintf("topology: %v has no topology", g))
	}
	return New(g.id, g.dim)
}

// BasicType classifies the topology. For dimension <= 3 every id maps onto
// a named type; above that only the pure chains and the two structurally
// distinguished mixed ids (generalized prism and pyramid) keep a name, all
// other ids report None.
func (g GeometryType) BasicType() BasicType {
	switch {
	case g.none:
		return BasicNone
	case g.dim <= 1:
		return BasicSimplex
	case g.dim == 2:
		if g.id>>1 == 0 {
			return BasicSimplex
		}
		return BasicCube
	case g.dim == 3:
		switch g.id >> 1 {
		case 0:
			return BasicSimplex
		case 1:
			return BasicPyramid
		case 2:
			return BasicPrism
		default:
			return BasicCube
		}
	default:
		half := uint32(1) << uint(g.dim-1)
		switch g.id >> 1 {
		case 0:
			return BasicSimplex
		case (half - 1) >> 1: // 2^(dim-1)-2, 2^(dim-1)-1
			return BasicPyramid
		case half >> 1: // 2^(dim-1), 2^(dim-1)+1
			return BasicPrism
		case (2*half - 1) >> 1: // 2^dim-2, 2^dim-1
			return BasicCube
		default:
			return BasicNone
		}
	}
}

// IsSimplex reports a pure pyramid chain.
func (g GeometryType) IsSimplex() bool { return g.BasicType() == BasicSimplex }

// IsCube reports a pure prism chain.
func (g GeometryType) IsCube() bool { return g.BasicType() == BasicCube }

// IsPrism reports a (generalized) prism.
func (g GeometryType) IsPrism() bool { return g.BasicType() == BasicPrism }

// IsPyramid reports a (generalized) pyramid.
func (g GeometryType) IsPyramid() bool { return g.BasicType() == BasicPyramid }

// IsNone reports a topology outside the named classification.
func (g GeometryType) IsNone() bool { return g.BasicType() == BasicNone }

// Equal identifies shapes, not ids: the two line encodings are equal.
func (g GeometryType) Equal(o GeometryType) bool {
	if g.none || o.none {
		return g.none == o.none && g.dim == o.dim
	}
	return g.dim == o.dim && g.id>>1 == o.id>>1
}

func (g GeometryType) String() string {
	if g.none {
		return fmt.Sprintf("(none, %d)", g.dim)
	}
	switch g.dim {
	case 0:
		return "vertex"
	case 1:
		return "line"
	case 2:
		if g.IsSimplex() {
			return "triangle"
		}
		return "quadrilateral"
	case 3:
		switch g.BasicType() {
		case BasicSimplex:
			return "tetrahedron"
		case BasicCube:
			return "hexahedron"
		case BasicPyramid:
			return "pyramid"
		default:
			return "prism"
		}
	default:
		return fmt.Sprintf("(%v, %d)", g.BasicType(), g.dim)
	}
}

// TopologyID extracts the topology id from a GeometryType.
//
// Deprecated-equivalent of the old numeric conversion; use ID directly.
func TopologyID(g GeometryType) uint32 { return g.ID() }

// LegacyToGeneric maps a legacy subentity index on the canonical topology
// of a basic type to the generic index, the direction external code
// addressing subentities by the legacy convention needs.
func LegacyToGeneric(basic BasicType, dim, codim, i int) int {
	t := CanonicalTopology(basic, dim)
	return ForDimension(dim).Legacy2Generic(t.ID(), i, codim)
}

// GenericToLegacy is the inverse of LegacyToGeneric.
func GenericToLegacy(basic BasicType, dim, codim, i int) int {
	t := CanonicalTopology(basic, dim)
	return ForDimension(dim).Generic2Legacy(t.ID(), i, codim)
}
