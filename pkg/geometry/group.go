package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// Group is an append-only collection of geometry queried by linear scan.
// Materials live in a side table indexed like the members; a member pushed
// without one has a nil entry.
//
// A Group is mutated only while the scene is built. Once rendering starts it
// is read-only and safe to share between goroutines.
type Group struct {
	items     []Geometry
	materials []material.Material
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{}
}

// Push appends a member and returns its index
func (g *Group) Push(item Geometry) int {
	return g.PushWithMaterial(item, nil)
}

// PushWithMaterial appends a member together with its material
func (g *Group) PushWithMaterial(item Geometry, m material.Material) int {
	g.items = append(g.items, item)
	g.materials = append(g.materials, m)
	return len(g.items) - 1
}

// Len returns the number of members
func (g *Group) Len() int {
	return len(g.items)
}

// At returns member i
func (g *Group) At(i int) Geometry {
	return g.items[i]
}

// MaterialAt returns the material pushed with member i, or nil
func (g *Group) MaterialAt(i int) material.Material {
	return g.materials[i]
}

// IntersectIndex returns the nearest hit over all members and the index of
// the member that produced it
func (g *Group) IntersectIndex(ray core.Ray) (Hit, int, bool) {
	var closest Hit
	index := -1
	for i, item := range g.items {
		hit, ok := item.Intersect(ray)
		if !ok {
			continue
		}
		if index < 0 || hit.Distance < closest.Distance {
			closest = hit
			index = i
		}
	}
	return closest, index, index >= 0
}

// IntersectMaterial returns the nearest hit and the material that shades it.
// Nested groups are searched recursively: the innermost material wins and an
// outer entry applies only to members pushed without one. The material is nil
// when nothing on the path to the hit carries one.
func (g *Group) IntersectMaterial(ray core.Ray) (Hit, material.Material, bool) {
	var closest Hit
	var closestMaterial material.Material
	found := false
	for i, item := range g.items {
		var hit Hit
		var m material.Material
		var ok bool
		if inner, isGroup := item.(*Group); isGroup {
			hit, m, ok = inner.IntersectMaterial(ray)
		} else {
			hit, ok = item.Intersect(ray)
		}
		if !ok {
			continue
		}
		if !found || hit.Distance < closest.Distance {
			closest = hit
			closestMaterial = m
			if closestMaterial == nil {
				closestMaterial = g.materials[i]
			}
			found = true
		}
	}
	return closest, closestMaterial, found
}

// Intersect returns the nearest hit over all members
func (g *Group) Intersect(ray core.Ray) (Hit, bool) {
	hit, _, ok := g.IntersectIndex(ray)
	return hit, ok
}

// DoesIntersect stops at the first member that reports a hit
func (g *Group) DoesIntersect(ray core.Ray) bool {
	for _, item := range g.items {
		if item.DoesIntersect(ray) {
			return true
		}
	}
	return false
}

// Bounds returns the union of all member bounds. An empty group returns
// EmptyAABB.
func (g *Group) Bounds() AABB {
	box := EmptyAABB()
	for _, item := range g.items {
		box = box.Union(item.Bounds())
	}
	return box
}
