package model

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when tile rows cannot form a grid.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is a fixed size tile map. Tile 0 is walkable, any other value is a wall
// whose texture slot is value-1.
type Grid struct {
	width  int
	height int
	tiles  []int
}

// NewGrid copies rows into a new grid. Rows must be non-empty, rectangular and
// hold no negative tiles.
func NewGrid(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no tiles", ErrInvalidGrid)
	}

	g := &Grid{
		width:  len(rows[0]),
		height: len(rows),
		tiles:  make([]int, len(rows)*len(rows[0])),
	}

	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidGrid, y, len(row), g.width)
		}
		for x, tile := range row {
			if tile < 0 {
				return nil, fmt.Errorf("%w: negative tile %d at (%d,%d)", ErrInvalidGrid, tile, x, y)
			}
			g.tiles[y*g.width+x] = tile
		}
	}

	return g, nil
}

// ParseGrid builds a grid from digit rows such as "1001". Spaces and '.' are
// read as walkable tiles.
func ParseGrid(lines []string) (*Grid, error) {
	rows := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, 0, len(line))
		for x, r := range line {
			switch {
			case r == ' ' || r == '.':
				row = append(row, 0)
			case r >= '0' && r <= '9':
				row = append(row, int(r-'0'))
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrInvalidGrid, r, x, y)
			}
		}
		rows[y] = row
	}
	return NewGrid(rows)
}

// DefaultGrid is the 10x10 demo map: a walled border, an inner 3x3 ring at
// rows and columns 3-5, and a short column of tile 3.
func DefaultGrid() *Grid {
	g, err := NewGrid([][]int{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 2, 2, 2, 0, 0, 0, 1},
		{1, 0, 0, 2, 0, 2, 0, 0, 0, 1},
		{1, 0, 0, 2, 2, 2, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 3, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 3, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 3, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	})
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// Contains reports whether the cell lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return g != nil && x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the tile at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) int {
	if !g.Contains(x, y) {
		return 0
	}
	return g.tiles[y*g.width+x]
}

// Walkable reports whether a world position lies on an empty in-grid cell.
func (g *Grid) Walkable(x, y float64) bool {
	if x < 0 || y < 0 {
		return false
	}
	mx, my := int(x), int(y)
	return g.Contains(mx, my) && g.tiles[my*g.width+mx] == 0
}
