// Package quadrature provides Gauss-Legendre rules on the unit interval and
// their tensor and conical products over the reference topologies.
package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// GaussLegendre returns the nodes and weights of the Gauss-Legendre rule on
// [0,1] that integrates polynomials up to the given order exactly.
func GaussLegendre(order int) (points, weights []float64) {
	if order < 0 {
		panic(fmt.Sprintf("quadrature: invalid order %d", order))
	}
	n := order/2 + 1

	// Golub-Welsch: the Jacobi matrix of the Legendre three-term recurrence
	// has the nodes on [-1,1] as eigenvalues; the squared first components
	// of the normalized eigenvectors carry the weights.
	J := mat.NewSymDense(n, nil)
	for i := 1; i < n; i++ {
		J.SetSym(i-1, i, float64(i)/math.Sqrt(float64(2*i-1)*float64(2*i+1)))
	}
	var eig mat.EigenSym
	if !eig.Factorize(J, true) {
		panic("quadrature: Legendre eigendecomposition failed")
	}
	var (
		vectors mat.Dense
		nodes   = eig.Values(nil)
	)
	eig.VectorsTo(&vectors)

	points = make([]float64, n)
	weights = make([]float64, n)
	for i := 0; i < n; i++ {
		points[i] = (nodes[i] + 1) / 2
		// Weight 2*v0^2 on [-1,1], halved by the map onto [0,1].
		v0 := vectors.At(0, i)
		weights[i] = v0 * v0
	}
	return
}
