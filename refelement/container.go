package refelement

import (
	"fmt"
	"sync"

	"github.com/KriFos1/refelements/topology"
)

// A Container holds the reference elements of one dimension, one per
// topology id. Containers are built lazily per dimension and shared
// process-wide; the elements they hand out are immutable.
type Container struct {
	dim      int
	elements []*ReferenceElement
}

var containerRegistry = struct {
	sync.Mutex
	byDim map[int]*Container
}{byDim: make(map[int]*Container)}

// Elements returns the container for the given dimension, building it on
// first use.
func Elements(dim int) *Container {
	if dim < 0 || dim > 31 {
		panic(fmt.Sprintf("refelement: invalid dimension %d", dim))
	}
	containerRegistry.Lock()
	defer containerRegistry.Unlock()
	if c, ok := containerRegistry.byDim[dim]; ok {
		return c
	}
	c := &Container{
		dim:      dim,
		elements: make([]*ReferenceElement, 1<<uint(dim)),
	}
	for id := range c.elements {
		c.elements[id] = newReferenceElement(topology.New(uint32(id), dim))
	}
	containerRegistry.byDim[dim] = c
	return c
}

// Dimension returns the container's dimension.
func (c *Container) Dimension() int { return c.dim }

// General returns the reference element of a geometry type.
func (c *Container) General(g topology.GeometryType) *ReferenceElement {
	if g.Dim() != c.dim {
		panic(fmt.Sprintf("refelement: %v does not belong to the dimension-%d container", g, c.dim))
	}
	// Topology() rejects none types, which have no reference element.
	return c.elements[g.Topology().ID()]
}

// ByTopologyID returns the reference element of a raw topology id.
func (c *Container) ByTopologyID(id uint32) *ReferenceElement {
	if id >= uint32(len(c.elements)) {
		panic(fmt.Sprintf("refelement: topology id %d out of range for dimension %d", id, c.dim))
	}
	return c.elements[id]
}

// Simplex returns the simplex reference element of the container's dimension.
func (c *Container) Simplex() *ReferenceElement {
	return c.ByTopologyID(topology.Simplex(c.dim).ID())
}

// Cube returns the hypercube reference element of the container's dimension.
func (c *Container) Cube() *ReferenceElement {
	return c.ByTopologyID(topology.Cube(c.dim).ID())
}

// Pyramid returns the pyramid reference element; the container's dimension
// must be at least 3.
func (c *Container) Pyramid() *ReferenceElement {
	return c.General(topology.NewGeometryType(topology.BasicPyramid, c.dim))
}

// Prism returns the prism reference element; the container's dimension must
// be at least 3.
func (c *Container) Prism() *ReferenceElement {
	return c.General(topology.NewGeometryType(topology.BasicPrism, c.dim))
}

// All returns the container's reference elements in topology-id order.
func (c *Container) All() []*ReferenceElement {
	out := make([]*ReferenceElement, len(c.elements))
	copy(out, c.elements)
	return out
}
