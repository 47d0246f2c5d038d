package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaussLegendreLowOrders(t *testing.T) {
	x, w := GaussLegendre(1)
	require.Len(t, x, 1)
	assert.InDelta(t, 0.5, x[0], 1e-15)
	assert.InDelta(t, 1.0, w[0], 1e-15)

	x, w = GaussLegendre(3)
	require.Len(t, x, 2)
	d := 0.5 / math.Sqrt(3)
	assert.InDelta(t, 0.5-d, x[0], 1e-14)
	assert.InDelta(t, 0.5+d, x[1], 1e-14)
	assert.InDelta(t, 0.5, w[0], 1e-14)
	assert.InDelta(t, 0.5, w[1], 1e-14)
}

// An n-point rule integrates x^p on [0,1] exactly for p up to 2n-1.
func TestGaussLegendreExactness(t *testing.T) {
	for order := 0; order <= 15; order++ {
		var (
			x, w = GaussLegendre(order)
			n    = len(x)
		)
		require.Equal(t, order/2+1, n)
		for p := 0; p <= 2*n-1; p++ {
			var sum float64
			for i := range x {
				sum += w[i] * math.Pow(x[i], float64(p))
			}
			require.InDeltaf(t, 1/float64(p+1), sum, 1e-13, "order %d monomial %d", order, p)
		}
	}
}

func TestGaussLegendreSymmetry(t *testing.T) {
	x, w := GaussLegendre(9)
	n := len(x)
	for i := 0; i < n/2; i++ {
		assert.InDelta(t, 1, x[i]+x[n-1-i], 1e-14)
		assert.InDelta(t, w[i], w[n-1-i], 1e-14)
	}
}
