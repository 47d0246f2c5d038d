package refelement

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/KriFos1/refelements/topology"
)

// subEntity carries the precomputed data of one subentity: its topology,
// the barycenter of its corners, and for each further codimension the
// indices of its own subentities within the element's numbering.
type subEntity struct {
	topo     topology.Topology
	gtype    topology.GeometryType
	position []float64
	// numbering[cc][j] is the element index of the subentity's j-th
	// codim-cc subentity, cc counted relative to the subentity.
	numbering [][]int
}

// A ReferenceElement bundles everything known about one reference cell:
// subentity counts and numbering, geometry types, corner positions,
// containment, volume and facet normals. Values are built once per topology
// and shared, see Elements.
type ReferenceElement struct {
	topo    topology.Topology
	gtype   topology.GeometryType
	volume  float64
	sub     [][]subEntity
	normals [][]float64
	mapping *CornerMapping
}

func newReferenceElement(t topology.Topology) *ReferenceElement {
	var (
		dim     = t.Dimension()
		corners = Corners(t)
		r       = &ReferenceElement{
			topo:    t,
			gtype:   topology.TypeFrom(t),
			volume:  Volume(t),
			sub:     make([][]subEntity, dim+1),
			mapping: identityMapping(t),
		}
	)
	for c := 0; c <= dim; c++ {
		r.sub[c] = make([]subEntity, topology.Size(t, c))
		for i := range r.sub[c] {
			sub := topology.SubTopology(t, c, i)
			e := subEntity{
				topo:      sub,
				gtype:     topology.TypeFrom(sub),
				numbering: make([][]int, dim-c+1),
			}
			for cc := 0; cc <= dim-c; cc++ {
				e.numbering[cc] = make([]int, topology.Size(sub, cc))
				for j := range e.numbering[cc] {
					e.numbering[cc][j] = topology.SubEntityNumber(t, c, i, cc, j)
				}
			}
			e.position = barycenter(corners, e.numbering[dim-c])
			r.sub[c][i] = e
		}
	}
	if dim > 0 {
		r.normals = make([][]float64, topology.Size(t, 1))
		for face := range r.normals {
			r.normals[face] = IntegrationOuterNormal(t, face)
		}
	}
	return r
}

func barycenter(corners [][]float64, verts []int) []float64 {
	var (
		dim = 0
		pos []float64
	)
	if len(corners) > 0 {
		dim = len(corners[0])
	}
	pos = make([]float64, dim)
	for _, v := range verts {
		for k, c := range corners[v] {
			pos[k] += c
		}
	}
	for k := range pos {
		pos[k] /= float64(len(verts))
	}
	return pos
}

// Topology returns the element's topology.
func (r *ReferenceElement) Topology() topology.Topology { return r.topo }

// Type returns the element's geometry type.
func (r *ReferenceElement) Type() topology.GeometryType { return r.gtype }

// Dimension returns the element's dimension.
func (r *ReferenceElement) Dimension() int { return r.topo.Dimension() }

// Size returns the number of codim-c subentities.
func (r *ReferenceElement) Size(c int) int {
	r.checkCodim(c)
	return len(r.sub[c])
}

// SubSize returns the number of codim-cc subentities of the i-th codim-c
// subentity. Both codimensions count from the element.
func (r *ReferenceElement) SubSize(i, c, cc int) int {
	e := r.subEntity(i, c)
	if cc < c || cc > r.topo.Dimension() {
		panic(fmt.Sprintf("refelement: codim %d out of range below codim %d of %s", cc, c, r.topo))
	}
	return len(e.numbering[cc-c])
}

// SubEntity returns the element index of the ii-th codim-cc subentity of the
// i-th codim-c subentity. Both codimensions count from the element.
func (r *ReferenceElement) SubEntity(i, c, ii, cc int) int {
	n := r.SubSize(i, c, cc)
	if ii < 0 || ii >= n {
		panic(fmt.Sprintf("refelement: sub-subentity %d out of range for (%d,%d) of %s", ii, i, c, r.topo))
	}
	return r.sub[c][i].numbering[cc-c][ii]
}

// SubType returns the geometry type of the i-th codim-c subentity.
func (r *ReferenceElement) SubType(i, c int) topology.GeometryType {
	return r.subEntity(i, c).gtype
}

// Position returns the barycenter of the i-th codim-c subentity's corners.
func (r *ReferenceElement) Position(i, c int) []float64 {
	return r.subEntity(i, c).position
}

// Corner returns the i-th corner coordinate.
func (r *ReferenceElement) Corner(i int) []float64 {
	return r.Position(i, r.topo.Dimension())
}

// CheckInside reports whether x lies in the reference domain.
func (r *ReferenceElement) CheckInside(x []float64) bool {
	return CheckInside(r.topo, x)
}

// Volume returns the reference volume.
func (r *ReferenceElement) Volume() float64 { return r.volume }

// IntegrationOuterNormal returns the integration outer normal of a facet.
func (r *ReferenceElement) IntegrationOuterNormal(face int) []float64 {
	if r.topo.Dimension() == 0 {
		panic("refelement: a vertex has no facets")
	}
	if face < 0 || face >= len(r.normals) {
		panic(fmt.Sprintf("refelement: face %d out of range for %s", face, r.topo))
	}
	n := make([]float64, len(r.normals[face]))
	copy(n, r.normals[face])
	return n
}

// VolumeOuterNormal is an older name for IntegrationOuterNormal, kept for
// callers of the pre-rename API.
func (r *ReferenceElement) VolumeOuterNormal(face int) []float64 {
	return r.IntegrationOuterNormal(face)
}

// Mapping returns the embedding of the i-th codim-c subentity's reference
// domain into the element's coordinates. Codim 0 yields the identity.
func (r *ReferenceElement) Mapping(i, c int) *CornerMapping {
	r.subEntity(i, c)
	return Trace(r.mapping, c, i)
}

// Global maps a local coordinate of the i-th codim-c subentity into the
// element's coordinates. The local slice must have the subentity's
// dimension.
func (r *ReferenceElement) Global(local []float64, i, c int) ([]float64, error) {
	e := r.subEntity(i, c)
	if len(local) != e.topo.Dimension() {
		return nil, fmt.Errorf("refelement: local dimension %d does not match codim-%d subentity of %s",
			len(local), c, r.topo)
	}
	return r.Mapping(i, c).Global(local), nil
}

// VertexIncidence returns the incidence between the codim-c subentities and
// the vertices as a CSR matrix with one row per subentity, a one in column v
// when vertex v belongs to the subentity.
func (r *ReferenceElement) VertexIncidence(c int) *sparse.CSR {
	var (
		dim  = r.topo.Dimension()
		rows = r.Size(c)
		dok  = sparse.NewDOK(rows, r.Size(dim))
	)
	for i := 0; i < rows; i++ {
		for _, v := range r.sub[c][i].numbering[dim-c] {
			dok.Set(i, v, 1)
		}
	}
	return dok.ToCSR()
}

func (r *ReferenceElement) subEntity(i, c int) *subEntity {
	r.checkCodim(c)
	if i < 0 || i >= len(r.sub[c]) {
		panic(fmt.Sprintf("refelement: subentity (%d,%d) out of range for %s", i, c, r.topo))
	}
	return &r.sub[c][i]
}

func (r *ReferenceElement) checkCodim(c int) {
	if c < 0 || c > r.topo.Dimension() {
		panic(fmt.Sprintf("refelement: codim %d out of range for %s", c, r.topo))
	}
}
