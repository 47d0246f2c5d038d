// Package refelement provides reference elements for the topologies of
// package topology: corner coordinates, subentity bookkeeping, containment
// tests, volumes, outer normals and the corner mappings onto subentities.
package refelement

import (
	"fmt"

	"github.com/KriFos1/refelements/topology"
)

// insideTolerance absorbs roundoff when testing containment near the
// boundary of the reference domain.
const insideTolerance = 64 * 2.220446049250313e-16

// Corners returns the reference corner coordinates in the generic numbering:
// the base corners at extrusion coordinate zero first, followed by the top
// copy for a prism extrusion or the apex for a pyramid extrusion.
func Corners(t topology.Topology) [][]float64 {
	corners := make([][]float64, t.NumCorners())
	for i := range corners {
		corners[i] = make([]float64, t.Dimension())
	}
	fillCorners(t, corners)
	return corners
}

func fillCorners(t topology.Topology, corners [][]float64) int {
	if t.Dimension() == 0 {
		return 1
	}
	var (
		n = fillCorners(t.Base(), corners)
		d = t.Dimension() - 1
	)
	if t.IsPrism() {
		for i := 0; i < n; i++ {
			copy(corners[n+i], corners[i])
			corners[n+i][d] = 1
		}
		return 2 * n
	}
	for k := range corners[n] {
		corners[n][k] = 0
	}
	corners[n][d] = 1
	return n + 1
}

// CheckInside reports whether x lies in the reference domain, up to
// insideTolerance. The coordinate slice must have the topology's dimension.
func CheckInside(t topology.Topology, x []float64) bool {
	if len(x) != t.Dimension() {
		panic(fmt.Sprintf("refelement: coordinate dimension %d does not match %s", len(x), t))
	}
	return checkInside(t, x, 1)
}

// checkInside walks the extrusion chain from the outside in. For a pyramid
// extrusion the base shrinks linearly towards the apex, so the admissible
// range of the remaining coordinates scales with factor.
func checkInside(t topology.Topology, x []float64, factor float64) bool {
	if t.Dimension() == 0 {
		return true
	}
	xn := x[t.Dimension()-1]
	if xn <= -insideTolerance || factor-xn <= -insideTolerance {
		return false
	}
	baseFactor := factor
	if !t.IsPrism() {
		baseFactor = factor - xn
	}
	return checkInside(t.Base(), x, baseFactor)
}

// Volume returns the volume of the reference domain: each pyramid extrusion
// at dimension d divides the base volume by d, prism extrusions keep it.
func Volume(t topology.Topology) float64 {
	v := 1.0
	for cur := t; cur.Dimension() > 0; cur = cur.Base() {
		if !cur.IsPrism() {
			v /= float64(cur.Dimension())
		}
	}
	return v
}

// IntegrationOuterNormal returns the outer normal of the given facet, scaled
// so that its length times the facet volume equals the integration element
// of the facet embedding. The normals of axis-parallel facets are unit
// vectors; slanted facets carry longer normals.
func IntegrationOuterNormal(t topology.Topology, face int) []float64 {
	if face < 0 || face >= topology.Size(t, 1) {
		panic(fmt.Sprintf("refelement: face %d out of range for %s", face, t))
	}
	n := make([]float64, t.Dimension())
	fillNormal(t, face, n)
	return n
}

func fillNormal(t topology.Topology, face int, n []float64) {
	dim := t.Dimension()
	if dim == 1 {
		if face == 0 {
			n[0] = -1
		} else {
			n[0] = 1
		}
		return
	}
	b := t.Base()
	if t.IsPrism() {
		nb := topology.Size(b, 1)
		switch {
		case face < nb:
			fillNormal(b, face, n[:dim-1])
		case face == nb:
			n[dim-1] = -1
		default:
			n[dim-1] = 1
		}
		return
	}
	if face == 0 {
		n[dim-1] = -1
		return
	}
	// Slant face: sweep the base facet's normal up to the apex. Every vertex
	// of the base facet lies in the slant plane, so the missing component is
	// the inner product with any one of them.
	fillNormal(b, face-1, n[:dim-1])
	v := topology.SubEntityNumber(b, 1, face-1, b.Dimension()-1, 0)
	c := Corners(b)[v]
	var dot float64
	for k := 0; k < dim-1; k++ {
		dot += n[k] * c[k]
	}
	n[dim-1] = dot
}
