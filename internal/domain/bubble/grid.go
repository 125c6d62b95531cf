package bubble

import "math"

// Grid describes how bubbles are laid out
type Grid struct {
	Columns  int
	Rows     int
	CellSize float64
}

// ComputeGrid fits as many square cells of cellSize as possible into the
// available area. A non-positive cell size yields an empty grid.
func ComputeGrid(availableWidth, availableHeight, cellSize float64) Grid {
	if cellSize <= 0 || availableWidth <= 0 || availableHeight <= 0 {
		return Grid{CellSize: cellSize}
	}
	return Grid{
		Columns:  int(math.Floor(availableWidth / cellSize)),
		Rows:     int(math.Floor(availableHeight / cellSize)),
		CellSize: cellSize,
	}
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	if g.Columns <= 0 || g.Rows <= 0 {
		return 0
	}
	return g.Columns * g.Rows
}

// Align returns the center of cell i (row-major) when the grid is placed as
// a block centered inside a width x height area.
func (g Grid) Align(i int, width, height float64) Point {
	if g.Columns <= 0 {
		return Point{X: width / 2, Y: height / 2}
	}
	originX := (width - float64(g.Columns)*g.CellSize) / 2
	originY := (height - float64(g.Rows)*g.CellSize) / 2
	col := i % g.Columns
	row := i / g.Columns
	return Point{
		X: originX + float64(col)*g.CellSize + g.CellSize/2,
		Y: originY + float64(row)*g.CellSize + g.CellSize/2,
	}
}
