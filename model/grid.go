package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid represents a square, fixed-size game board. Cells are addressed as
// (x, y) with x as the column and y as the row; positions outside [0, size)
// simply do not exist, so edges never wrap around.
type Grid struct {
	size  int
	cells [][]bool
}

// New creates an all-dead grid of the given dimension
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Errorf("[New] invalid grid dimension: %d", size)
	}
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return &Grid{size: size, cells: cells}, nil
}

// Size returns the grid dimension
func (g *Grid) Size() int {
	return g.size
}

// Set sets a cell to alive (true) or dead (false); out-of-range writes are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.size && y >= 0 && y < g.size {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell; out-of-range positions read as dead
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return false
	}
	return g.cells[y][x]
}

// CountNeighbors counts living cells among the up-to-8 neighbors of (x, y).
// Bounds are clamped to the grid, so edge and corner cells see fewer
// neighbors instead of wrapping to the opposite side.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.size-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.size-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Validate checks that the backing storage matches the declared dimension.
// A mismatch indicates a caller bug and is never repaired silently.
func (g *Grid) Validate() error {
	if g == nil {
		return errors.New("[Validate] nil grid")
	}
	if g.size <= 0 {
		return errors.Errorf("[Validate] invalid grid dimension: %d", g.size)
	}
	if len(g.cells) != g.size {
		return errors.Errorf("[Validate] grid has %d rows, declared dimension %d", len(g.cells), g.size)
	}
	for y, row := range g.cells {
		if len(row) != g.size {
			return errors.Errorf("[Validate] row %d has %d cells, declared dimension %d", y, len(row), g.size)
		}
	}
	return nil
}

// Equal reports whether both grids have identical dimension and cell content
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([][]bool, g.size)
	for y := range cells {
		cells[y] = make([]bool, g.size)
		copy(cells[y], g.cells[y])
	}
	return &Grid{size: g.size, cells: cells}
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Reset resizes the grid and clears all cells, reusing rows when possible
func (g *Grid) Reset(size int) {
	g.size = size

	if len(g.cells) != size {
		g.cells = make([][]bool, size)
	}
	for i := range g.cells {
		if len(g.cells[i]) != size {
			g.cells[i] = make([]bool, size)
		} else {
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.size {
		for x := range g.size {
			g.cells[y][x] = false
		}
	}
}
