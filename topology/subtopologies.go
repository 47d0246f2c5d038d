package topology

import "fmt"

// size0 is Size extended by zero outside the valid codimension range, which
// lets the prism/pyramid recursions treat boundary codimensions uniformly.
func size0(t Topology, codim int) int {
	if codim < 0 || codim > t.dim {
		return 0
	}
	return Size(t, codim)
}

// Size returns the number of subentities of the given codimension. Codim 0
// is the cell itself, codim Dimension() are the vertices.
//
// A prism has the base's codim-c subentities swept into one dimension
// higher, plus two copies (bottom, top) of the base's codim-(c-1)
// subentities. A pyramid has the base's codim-(c-1) subentities lying in
// the base facet, plus a cone over each codim-c subentity of the base; at
// full codimension the cone degenerates to the single apex.
func Size(t Topology, codim int) int {
	if codim < 0 || codim > t.dim {
		panic(fmt.Sprintf("topology: codim %d out of range for %s", codim, t))
	}
	if codim == 0 {
		return 1
	}
	b := t.Base()
	if t.IsPrism() {
		return size0(b, codim) + 2*size0(b, codim-1)
	}
	if codim == t.dim {
		return Size(b, t.dim-1) + 1
	}
	return size0(b, codim-1) + size0(b, codim)
}

// SubTopology returns the topology of the i-th codim-c subentity, in the
// generic numbering: for a prism the swept subentities come first, then the
// bottom copy, then the top copy; for a pyramid the base-facet subentities
// come first, then the cones.
func SubTopology(t Topology, codim, i int) Topology {
	if i < 0 || i >= Size(t, codim) {
		panic(fmt.Sprintf("topology: subentity (%d,%d) out of range for %s", i, codim, t))
	}
	if codim == 0 {
		return t
	}
	if codim == t.dim {
		return Point()
	}
	b := t.Base()
	if t.IsPrism() {
		n := size0(b, codim)
		m := size0(b, codim-1)
		switch {
		case i < n:
			return PrismOver(SubTopology(b, codim, i))
		case i < n+m:
			return SubTopology(b, codim-1, i-n)
		default:
			return SubTopology(b, codim-1, i-n-m)
		}
	}
	m := size0(b, codim-1)
	if i < m {
		return SubTopology(b, codim-1, i)
	}
	return PyramidOver(SubTopology(b, codim, i-m))
}

// SubEntityNumber returns the index, within the parent's codim-(c+cc)
// numbering, of the j-th codim-cc subentity of the parent's codim-c
// subentity number i.
func SubEntityNumber(t Topology, codim, i, subcodim, j int) int {
	if codim < 0 || subcodim < 0 || codim+subcodim > t.dim {
		panic(fmt.Sprintf("topology: codim pair (%d,%d) out of range for %s", codim, subcodim, t))
	}
	if i < 0 || i >= Size(t, codim) {
		panic(fmt.Sprintf("topology: subentity (%d,%d) out of range for %s", i, codim, t))
	}
	if j < 0 || j >= Size(SubTopology(t, codim, i), subcodim) {
		panic(fmt.Sprintf("topology: sub-subentity (%d,%d) of (%d,%d) out of range for %s", j, subcodim, i, codim, t))
	}
	return subNumber(t, codim, i, subcodim, j)
}

func subNumber(t Topology, codim, i, subcodim, j int) int {
	if subcodim == 0 {
		return i
	}
	if codim == 0 {
		return j
	}
	b := t.Base()
	// Offsets of the blocks the parent's codim-(c+cc) numbering is made of.
	np := size0(b, codim+subcodim)
	mp := size0(b, codim+subcodim-1)
	if t.IsPrism() {
		n := size0(b, codim)
		m := size0(b, codim-1)
		switch {
		case i < n:
			// Swept subentity Prism<s>: its own blocks are the swept
			// subentities of s, then the bottom and top copies.
			s := SubTopology(b, codim, i)
			ns := size0(s, subcodim)
			ms := size0(s, subcodim-1)
			switch {
			case j < ns:
				return subNumber(b, codim, i, subcodim, j)
			case j < ns+ms:
				return np + subNumber(b, codim, i, subcodim-1, j-ns)
			default:
				return np + mp + subNumber(b, codim, i, subcodim-1, j-ns-ms)
			}
		case i < n+m:
			return np + subNumber(b, codim-1, i-n, subcodim, j)
		default:
			return np + mp + subNumber(b, codim-1, i-n-m, subcodim, j)
		}
	}
	m := size0(b, codim-1)
	if i < m {
		// Subentity in the base facet; so are all of its subentities.
		return subNumber(b, codim-1, i, subcodim, j)
	}
	// Cone Pyramid<s>: base part of the cone first, then sub-cones. The
	// sub-cone block degenerates to the apex at full codimension.
	s := SubTopology(b, codim, i-m)
	ms := size0(s, subcodim-1)
	if j < ms {
		return subNumber(b, codim, i-m, subcodim-1, j)
	}
	if codim+subcodim == t.dim {
		return Size(t, t.dim) - 1
	}
	return mp + subNumber(b, codim, i-m, subcodim, j-ms)
}

// IsCodimHybrid reports whether the codim-c subentities are not all of the
// same shape. This can only happen for codimensions strictly between 0 and
// the dimension, on mixed prism/pyramid compositions.
func IsCodimHybrid(t Topology, codim int) bool {
	n := Size(t, codim)
	if n <= 1 {
		return false
	}
	first := SubTopology(t, codim, 0)
	for i := 1; i < n; i++ {
		if !first.SameShape(SubTopology(t, codim, i)) {
			return true
		}
	}
	return false
}
