package refelement

import (
	"fmt"

	"github.com/KriFos1/refelements/topology"
)

// A CornerMapping is the multilinear interpolation of corner coordinates
// over a reference domain. The coordinate dimension may exceed the domain
// dimension, which is how facet and edge embeddings are represented.
type CornerMapping struct {
	topo    topology.Topology
	cdim    int
	corners [][]float64
}

// NewCornerMapping builds the interpolation of the given corners, in the
// generic corner numbering of the topology.
func NewCornerMapping(t topology.Topology, corners [][]float64) *CornerMapping {
	if len(corners) != t.NumCorners() {
		panic(fmt.Sprintf("refelement: %d corners for %s, want %d", len(corners), t, t.NumCorners()))
	}
	cdim := t.Dimension()
	if len(corners) > 0 {
		cdim = len(corners[0])
	}
	for _, c := range corners {
		if len(c) != cdim {
			panic(fmt.Sprintf("refelement: mixed corner coordinate dimensions %d and %d", cdim, len(c)))
		}
	}
	if cdim < t.Dimension() {
		panic(fmt.Sprintf("refelement: coordinate dimension %d below domain dimension of %s", cdim, t))
	}
	return &CornerMapping{topo: t, cdim: cdim, corners: corners}
}

// identityMapping maps the reference domain onto itself.
func identityMapping(t topology.Topology) *CornerMapping {
	return &CornerMapping{topo: t, cdim: t.Dimension(), corners: Corners(t)}
}

// Topology returns the domain topology.
func (m *CornerMapping) Topology() topology.Topology { return m.topo }

// GeometryType returns the domain's geometry type.
func (m *CornerMapping) GeometryType() topology.GeometryType { return topology.TypeFrom(m.topo) }

// NumCorners returns the corner count.
func (m *CornerMapping) NumCorners() int { return len(m.corners) }

// CoordDimension returns the image coordinate dimension.
func (m *CornerMapping) CoordDimension() int { return m.cdim }

// Corner returns the i-th corner coordinate.
func (m *CornerMapping) Corner(i int) []float64 {
	if i < 0 || i >= len(m.corners) {
		panic(fmt.Sprintf("refelement: corner %d out of range for %s", i, m.topo))
	}
	return m.corners[i]
}

// CheckInside reports whether a local coordinate lies in the domain.
func (m *CornerMapping) CheckInside(local []float64) bool {
	return CheckInside(m.topo, local)
}

// Global evaluates the interpolation at a local coordinate.
func (m *CornerMapping) Global(local []float64) []float64 {
	if len(local) != m.topo.Dimension() {
		panic(fmt.Sprintf("refelement: local dimension %d does not match %s", len(local), m.topo))
	}
	y := make([]float64, m.cdim)
	evalCorners(m.topo, m.corners, local, 1, 1, y)
	return y
}

// evalCorners accumulates scale times the interpolation of the homogeneous
// domain stretched by rf, evaluated at x. Pyramid extrusions interpolate
// between the apex and a base stretched by the remaining height, which keeps
// the evaluation polynomial even though the chart itself is rational; prism
// extrusions divide the stretch back out.
func evalCorners(t topology.Topology, corners [][]float64, x []float64, rf, scale float64, y []float64) {
	if t.Dimension() == 0 {
		w := scale * rf
		for k, c := range corners[0] {
			y[k] += w * c
		}
		return
	}
	var (
		b  = t.Base()
		xn = x[t.Dimension()-1]
	)
	if t.IsPrism() {
		n := len(corners) / 2
		w := rf
		if w < insideTolerance {
			w = insideTolerance
		}
		evalCorners(b, corners[:n], x, rf, scale*(rf-xn)/w, y)
		evalCorners(b, corners[n:], x, rf, scale*xn/w, y)
		return
	}
	n := len(corners) - 1
	evalCorners(b, corners[:n], x, rf-xn, scale, y)
	w := scale * xn
	for k, c := range corners[n] {
		y[k] += w * c
	}
}
