package game

import "math"

// Sphere is a world-space snapshot of one rock segment, post-rotation.
// The grid holds copies, never live segment references.
type Sphere struct {
	X, Y float64
	R    float64
}

// Grid is a uniform cell partition of the play area used for O(1) average
// particle-vs-rock lookups. It is derived state: rebuilt from current rock
// geometry every tick, never persisted across ticks.
type Grid struct {
	cellSize   float64
	cols, rows int
	cells      [][]Sphere
}

func NewGrid(w, h float64) *Grid {
	g := &Grid{cellSize: GridCellSize}
	g.Resize(w, h)
	return g
}

// Resize re-derives grid dimensions from the viewport. Buckets are only
// reallocated when the dimensions actually change.
func (g *Grid) Resize(w, h float64) {
	cols := int(math.Ceil(w/g.cellSize)) + 1
	rows := int(math.Ceil(h/g.cellSize)) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == g.cols && rows == g.rows {
		return
	}
	g.cols = cols
	g.rows = rows
	g.cells = make([][]Sphere, cols*rows)
}

// Rebuild clears all buckets (keeping capacity) and re-registers every rock
// segment in world space. A sphere lands in every cell its bounding box
// overlaps, so one segment may appear in several buckets.
func (g *Grid) Rebuild(rocks []Rock) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for ri := range rocks {
		rock := &rocks[ri]
		sin, cos := math.Sincos(rock.Angle)
		for si := range rock.Segments {
			seg := &rock.Segments[si]
			sx := rock.X + seg.DX*cos - seg.DY*sin
			sy := rock.Y + seg.DX*sin + seg.DY*cos
			g.insert(Sphere{X: sx, Y: sy, R: seg.R})
		}
	}
}

func (g *Grid) insert(s Sphere) {
	minCX := clamp(int((s.X-s.R)/g.cellSize), 0, g.cols-1)
	maxCX := clamp(int((s.X+s.R)/g.cellSize), 0, g.cols-1)
	minCY := clamp(int((s.Y-s.R)/g.cellSize), 0, g.rows-1)
	maxCY := clamp(int((s.Y+s.R)/g.cellSize), 0, g.rows-1)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			idx := cy*g.cols + cx
			g.cells[idx] = append(g.cells[idx], s)
		}
	}
}

// Query returns the sphere bucket for the single cell containing (x, y), or
// nil out of range. A particle right at a cell boundary can miss a sphere
// registered only in the neighbouring cell; that single-cell approximation
// is deliberate and keeps the lookup O(1).
func (g *Grid) Query(x, y float64) []Sphere {
	cx := int(math.Floor(x / g.cellSize))
	cy := int(math.Floor(y / g.cellSize))
	if cx < 0 || cy < 0 || cx >= g.cols || cy >= g.rows {
		return nil
	}
	return g.cells[cy*g.cols+cx]
}
