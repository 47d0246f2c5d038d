package refelement

import (
	"fmt"
	"sync"

	"github.com/KriFos1/refelements/topology"
)

// The trace of a mapping on a subentity is the corner mapping spanned by the
// parent corners belonging to that subentity. Vertex selections depend only
// on the parent topology and codimension, so they are resolved once per
// (topology, codim) pair and cached for the life of the process.

type traceKey struct {
	id    uint32
	dim   int
	codim int
}

// traceSelection lists, per subentity, its topology and the parent corner
// each of its corners maps to.
type traceSelection struct {
	topo     topology.Topology
	vertices []int
}

var traceRegistry = struct {
	sync.Mutex
	tables map[traceKey][]traceSelection
}{tables: make(map[traceKey][]traceSelection)}

func traceTable(t topology.Topology, codim int) []traceSelection {
	key := traceKey{id: t.ID(), dim: t.Dimension(), codim: codim}
	traceRegistry.Lock()
	defer traceRegistry.Unlock()
	if table, ok := traceRegistry.tables[key]; ok {
		return table
	}
	table := buildTraceTable(t, codim)
	traceRegistry.tables[key] = table
	return table
}

func buildTraceTable(t topology.Topology, codim int) []traceSelection {
	var (
		n      = topology.Size(t, codim)
		hybrid = topology.IsCodimHybrid(t, codim)
		table  = make([]traceSelection, n)
	)
	// On a non-hybrid codimension all subentities share one shape, so the
	// first slot's topology serves for every trace.
	uniform := topology.SubTopology(t, codim, 0)
	for i := 0; i < n; i++ {
		sub := uniform
		if hybrid {
			sub = topology.SubTopology(t, codim, i)
		}
		verts := make([]int, sub.NumCorners())
		for j := range verts {
			verts[j] = topology.SubEntityNumber(t, codim, i, t.Dimension()-codim, j)
		}
		table[i] = traceSelection{topo: sub, vertices: verts}
	}
	return table
}

// Trace returns the corner mapping of the i-th codim-c subentity of the
// parent mapping, embedding the subentity's reference domain into the
// parent's image space.
func Trace(parent *CornerMapping, codim, i int) *CornerMapping {
	if codim < 0 || codim > parent.topo.Dimension() {
		panic(fmt.Sprintf("refelement: codim %d out of range for %s", codim, parent.topo))
	}
	table := traceTable(parent.topo, codim)
	if i < 0 || i >= len(table) {
		panic(fmt.Sprintf("refelement: subentity (%d,%d) out of range for %s", i, codim, parent.topo))
	}
	sel := table[i]
	corners := make([][]float64, len(sel.vertices))
	for j, v := range sel.vertices {
		corners[j] = parent.corners[v]
	}
	return &CornerMapping{topo: sel.topo, cdim: parent.cdim, corners: corners}
}
