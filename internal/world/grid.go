package world

import (
	"math"

	"github.com/zerohour/missiond/internal/core/ecs"
)

// Grid is a cell-based spatial index over object positions. Range queries
// walk only the cells overlapping the query square; callers do the exact
// distance test. Accessed only from the frame loop goroutine, no locks.
type Grid struct {
	cellSize float64
	cells    map[cellKey]map[ecs.EntityID]struct{}
}

type cellKey struct {
	cx int32
	cy int32
}

// DefaultCellSize is used when the configured cell size is not positive.
const DefaultCellSize = 64

func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey]map[ecs.EntityID]struct{}),
	}
}

// cellOf is the unclamped cell coordinate of v.
func (g *Grid) cellOf(v float64) float64 {
	return math.Floor(v / g.cellSize)
}

// toCell saturates at the int32 range, so far-off positions share the edge
// cells instead of wrapping around.
func (g *Grid) toCell(v float64) int32 {
	c := g.cellOf(v)
	switch {
	case c >= math.MaxInt32:
		return math.MaxInt32
	case c <= math.MinInt32 || math.IsNaN(c):
		return math.MinInt32
	}
	return int32(c)
}

func (g *Grid) key(p Coord) cellKey {
	return cellKey{cx: g.toCell(p.X), cy: g.toCell(p.Y)}
}

// Add places an object into the grid.
func (g *Grid) Add(id ecs.EntityID, p Coord) {
	k := g.key(p)
	cell := g.cells[k]
	if cell == nil {
		cell = make(map[ecs.EntityID]struct{})
		g.cells[k] = cell
	}
	cell[id] = struct{}{}
}

// Remove takes an object out of the grid.
func (g *Grid) Remove(id ecs.EntityID, p Coord) {
	k := g.key(p)
	cell := g.cells[k]
	if cell != nil {
		delete(cell, id)
		if len(cell) == 0 {
			delete(g.cells, k)
		}
	}
}

// Move updates an object's cell when its position changes.
func (g *Grid) Move(id ecs.EntityID, from, to Coord) {
	if g.key(from) == g.key(to) {
		return
	}
	g.Remove(id, from)
	g.Add(id, to)
}

// Candidates appends to dst the ids in every cell overlapping the square of
// half-size radius around center. The result is a superset of the objects
// within radius.
func (g *Grid) Candidates(dst []ecs.EntityID, center Coord, radius float64) []ecs.EntityID {
	if !(radius >= 0) {
		return dst
	}
	minX, maxX := g.toCell(center.X-radius), g.toCell(center.X+radius)
	minY, maxY := g.toCell(center.Y-radius), g.toCell(center.Y+radius)
	// The span is measured before clamping; a square wider than the
	// populated cells degenerates into a walk over every populated cell.
	spanX := g.cellOf(center.X+radius) - g.cellOf(center.X-radius) + 1
	spanY := g.cellOf(center.Y+radius) - g.cellOf(center.Y-radius) + 1
	if !(spanX*spanY <= float64(len(g.cells))) {
		for k, cell := range g.cells {
			if k.cx < minX || k.cx > maxX || k.cy < minY || k.cy > maxY {
				continue
			}
			for id := range cell {
				dst = append(dst, id)
			}
		}
		return dst
	}
	// int64 counters so a span ending on the last int32 cell terminates.
	for cx := int64(minX); cx <= int64(maxX); cx++ {
		for cy := int64(minY); cy <= int64(maxY); cy++ {
			for id := range g.cells[cellKey{cx: int32(cx), cy: int32(cy)}] {
				dst = append(dst, id)
			}
		}
	}
	return dst
}

// Len is the number of indexed objects.
func (g *Grid) Len() int {
	n := 0
	for _, cell := range g.cells {
		n += len(cell)
	}
	return n
}
