package quadrature

import (
	"fmt"
	"math"
	"sync"

	"github.com/KriFos1/refelements/topology"
)

// A Rule integrates over the reference domain of one topology: the sum of
// weights equals the reference volume, and polynomials up to the rule's
// order integrate exactly.
type Rule struct {
	topo    topology.Topology
	order   int
	points  [][]float64
	weights []float64
}

var ruleRegistry = struct {
	sync.Mutex
	rules map[ruleKey]*Rule
}{rules: make(map[ruleKey]*Rule)}

type ruleKey struct {
	id    uint32
	dim   int
	order int
}

// ForTopology returns the rule of the given order on a topology, building
// it on first use and caching it for the life of the process.
func ForTopology(t topology.Topology, order int) *Rule {
	if order < 0 {
		panic(fmt.Sprintf("quadrature: invalid order %d", order))
	}
	key := ruleKey{id: t.ID(), dim: t.Dimension(), order: order}
	ruleRegistry.Lock()
	defer ruleRegistry.Unlock()
	if r, ok := ruleRegistry.rules[key]; ok {
		return r
	}
	r := &Rule{topo: t, order: order}
	r.points, r.weights = build(t, order)
	ruleRegistry.rules[key] = r
	return r
}

// ForType returns the rule of the given order on a geometry type.
func ForType(g topology.GeometryType, order int) *Rule {
	return ForTopology(g.Topology(), order)
}

// build assembles the rule along the extrusion chain: a prism extrusion
// takes the tensor product with a Gauss rule in the new coordinate, a
// pyramid extrusion the conical product, with the base scaled towards the
// apex. Shrinking the base multiplies the integration element by
// (1-z)^baseDim, which the interval rule must absorb, hence its raised
// order.
func build(t topology.Topology, order int) (points [][]float64, weights []float64) {
	if t.Dimension() == 0 {
		return [][]float64{{}}, []float64{1}
	}
	var (
		b      = t.Base()
		bp, bw = build(b, order)
		d      = t.Dimension() - 1
	)
	if t.IsPrism() {
		x, w := GaussLegendre(order)
		for i := range bp {
			for j := range x {
				pt := make([]float64, d+1)
				copy(pt, bp[i])
				pt[d] = x[j]
				points = append(points, pt)
				weights = append(weights, bw[i]*w[j])
			}
		}
		return
	}
	x, w := GaussLegendre(order + d)
	for j := range x {
		var (
			z     = x[j]
			scale = math.Pow(1-z, float64(d))
		)
		for i := range bp {
			pt := make([]float64, d+1)
			for k, c := range bp[i] {
				pt[k] = c * (1 - z)
			}
			pt[d] = z
			points = append(points, pt)
			weights = append(weights, bw[i]*w[j]*scale)
		}
	}
	return
}

// Topology returns the rule's domain.
func (r *Rule) Topology() topology.Topology { return r.topo }

// Order returns the polynomial order the rule integrates exactly.
func (r *Rule) Order() int { return r.order }

// NumPoints returns the number of quadrature points.
func (r *Rule) NumPoints() int { return len(r.points) }

// Point returns the i-th quadrature point.
func (r *Rule) Point(i int) []float64 { return r.points[i] }

// Weight returns the i-th quadrature weight.
func (r *Rule) Weight(i int) float64 { return r.weights[i] }

// Integrate applies the rule to a function of the local coordinate.
func (r *Rule) Integrate(f func(x []float64) float64) (sum float64) {
	for i, pt := range r.points {
		sum += r.weights[i] * f(pt)
	}
	return
}
