package topology

import (
	"fmt"
	"sync"
)

// The legacy numbering convention is defined per named shape only. Each
// composed topology is classified into one of a closed set of shape
// families; shapes without a historically fixed convention keep the generic
// numbering (identity permutation).
type shapeFamily int

const (
	familyIdentity shapeFamily = iota
	familyTriangle
	familyTetrahedron
	familyCube3
	familyCube4
	familyPyramid
	familyPrism
)

func familyOf(id uint32, dim int) shapeFamily {
	switch dim {
	case 2:
		if id>>1 == 0 {
			return familyTriangle
		}
		return familyIdentity // quadrilateral
	case 3:
		switch id >> 1 {
		case 0:
			return familyTetrahedron
		case 1:
			return familyPyramid
		case 2:
			return familyPrism
		default:
			return familyCube3
		}
	case 4:
		if id>>1 == 7 {
			return familyCube4
		}
		return familyIdentity
	default:
		return familyIdentity
	}
}

// Hand-derived permutations, one pair per family and codimension. Each
// generic2* table is the inverse of the corresponding *2generic table.
var (
	tetL2GEdge = []int{0, 2, 1, 3, 4, 5}

	cube3Edge = []int{0, 1, 2, 3, 4, 5, 8, 9, 6, 7, 10, 11} // involution

	cube4L2GCodim2 = []int{
		0, 1, 2, 3, 4, 5, 8, 9, 12, 13, 18, 19,
		6, 7, 10, 11, 14, 15, 20, 21, 16, 17, 22, 23,
	}
	cube4G2LCodim2 = []int{
		0, 1, 2, 3, 4, 5, 12, 13, 6, 7, 14, 15,
		8, 9, 16, 17, 20, 21, 10, 11, 18, 19, 22, 23,
	}
	cube4L2GCodim3 = []int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 20, 21, 22, 23,
		12, 13, 16, 17, 24, 25, 28, 29, 14, 15, 18, 19, 26, 27, 30, 31,
	}
	cube4G2LCodim3 = []int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 16, 17, 24, 25,
		18, 19, 26, 27, 12, 13, 14, 15, 20, 21, 28, 29, 22, 23, 30, 31,
	}

	pyramidVertex  = []int{0, 1, 3, 2, 4} // involution
	pyramidL2GEdge = []int{2, 1, 3, 0, 4, 5, 7, 6}
	pyramidG2LEdge = []int{3, 1, 0, 2, 4, 5, 7, 6}
	pyramidL2GFace = []int{0, 3, 2, 4, 1}
	pyramidG2LFace = []int{0, 4, 2, 1, 3}

	prismL2GEdge = []int{3, 5, 4, 0, 1, 2, 6, 8, 7}
	prismG2LEdge = []int{3, 4, 5, 0, 2, 1, 6, 8, 7}
	prismL2GFace = []int{3, 0, 2, 1, 4}
	prismG2LFace = []int{1, 3, 2, 0, 4}
)

func familyLegacy2Generic(f shapeFamily, codim, i int) int {
	switch f {
	case familyTriangle:
		if codim == 1 {
			return 2 - i
		}
	case familyTetrahedron:
		if codim == 1 {
			return 3 - i
		}
		if codim == 2 {
			return tetL2GEdge[i]
		}
	case familyCube3:
		if codim == 2 {
			return cube3Edge[i]
		}
	case familyCube4:
		if codim == 2 {
			return cube4L2GCodim2[i]
		}
		if codim == 3 {
			return cube4L2GCodim3[i]
		}
	case familyPyramid:
		switch codim {
		case 1:
			return pyramidL2GFace[i]
		case 2:
			return pyramidL2GEdge[i]
		case 3:
			return pyramidVertex[i]
		}
	case familyPrism:
		if codim == 1 {
			return prismL2GFace[i]
		}
		if codim == 2 {
			return prismL2GEdge[i]
		}
	}
	return i
}

func familyGeneric2Legacy(f shapeFamily, codim, i int) int {
	switch f {
	case familyTriangle, familyTetrahedron, familyCube3:
		// Involutions: same permutation both ways.
		return familyLegacy2Generic(f, codim, i)
	case familyCube4:
		if codim == 2 {
			return cube4G2LCodim2[i]
		}
		if codim == 3 {
			return cube4G2LCodim3[i]
		}
	case familyPyramid:
		switch codim {
		case 1:
			return pyramidG2LFace[i]
		case 2:
			return pyramidG2LEdge[i]
		case 3:
			return pyramidVertex[i]
		}
	case familyPrism:
		if codim == 1 {
			return prismG2LFace[i]
		}
		if codim == 2 {
			return prismG2LEdge[i]
		}
	}
	return i
}

// NumberingProvider holds, for one dimension, the dense permutation tables
// between the legacy and the generic numbering for every topology id and
// codimension. Tables are built once and read-only afterwards.
type NumberingProvider struct {
	dim          int
	legacy2generic [][][]int // [topologyId][codim][i]
	generic2legacy [][][]int
}

var numberingRegistry = struct {
	sync.Mutex
	providers map[int]*NumberingProvider
}{providers: make(map[int]*NumberingProvider)}

// ForDimension returns the numbering provider for the given dimension,
// building it on first use and caching it for the life of the process.
func ForDimension(dim int) *NumberingProvider {
	numberingRegistry.Lock()
	defer numberingRegistry.Unlock()
	if p, ok := numberingRegistry.providers[dim]; ok {
		return p
	}
	p := newNumberingProvider(dim)
	numberingRegistry.providers[dim] = p
	return p
}

func newNumberingProvider(dim int) (p *NumberingProvider) {
	var (
		numTopologies = 1 << uint(dim)
	)
	p = &NumberingProvider{
		dim:          dim,
		legacy2generic: make([][][]int, numTopologies),
		generic2legacy: make([][][]int, numTopologies),
	}
	for id := 0; id < numTopologies; id++ {
		t := New(uint32(id), dim)
		f := familyOf(uint32(id), dim)
		p.legacy2generic[id] = make([][]int, dim+1)
		p.generic2legacy[id] = make([][]int, dim+1)
		for codim := 0; codim <= dim; codim++ {
			size := Size(t, codim)
			d2g := make([]int, size)
			g2d := make([]int, size)
			for i := 0; i < size; i++ {
				d2g[i] = familyLegacy2Generic(f, codim, i)
				g2d[i] = familyGeneric2Legacy(f, codim, i)
			}
			p.legacy2generic[id][codim] = d2g
			p.generic2legacy[id][codim] = g2d
		}
	}
	return
}

// NumTopologies returns the number of topology ids at this dimension.
func (p *NumberingProvider) NumTopologies() int { return 1 << uint(p.dim) }

// Legacy2Generic translates a legacy subentity index into the generic one.
func (p *NumberingProvider) Legacy2Generic(topologyId uint32, i, codim int) int {
	p.check(topologyId, codim)
	m := p.legacy2generic[topologyId][codim]
	if i < 0 || i >= len(m) {
		panic(fmt.Sprintf("topology: index %d out of range for id %d codim %d", i, topologyId, codim))
	}
	return m[i]
}

// Generic2Legacy translates a generic subentity index into the legacy one.
func (p *NumberingProvider) Generic2Legacy(topologyId uint32, i, codim int) int {
	p.check(topologyId, codim)
	m := p.generic2legacy[topologyId][codim]
	if i < 0 || i >= len(m) {
		panic(fmt.Sprintf("topology: index %d out of range for id %d codim %d", i, topologyId, codim))
	}
	return m[i]
}

// Size returns the subentity count backing the tables, handy for iteration.
func (p *NumberingProvider) Size(topologyId uint32, codim int) int {
	p.check(topologyId, codim)
	return len(p.legacy2generic[topologyId][codim])
}

func (p *NumberingProvider) check(topologyId uint32, codim int) {
	if topologyId >= uint32(1)<<uint(p.dim) {
		panic(fmt.Sprintf("topology: id %d out of range for dimension %d", topologyId, p.dim))
	}
	if codim < 0 || codim > p.dim {
		panic(fmt.Sprintf("topology: codim %d out of range for dimension %d", codim, p.dim))
	}
}
