// Package board computes the visual layout of the playing field prototype.
//
// The field is a sparse set of (row, column) coordinates placed on a uniform
// grid of equal-width tracks. Layout is a pure function of the input spec:
// the same spec always yields the same placements, labels and keys.
package board

import "fmt"

// Coordinate identifies one grid cell. Value identity on (Row, Col).
type Coordinate struct {
	Row int
	Col int
}

// Key returns the stable cell identity used to match cells across renders.
func (c Coordinate) Key() string {
	return fmt.Sprintf("%d-%d", c.Row, c.Col)
}

// Label returns the literal text rendered inside the cell.
func (c Coordinate) Label() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// GridSpec is an ordered sequence of rows of coordinates. A coordinate's Row
// value places it vertically on its own; it does not have to match the
// position of its row in the outer slice.
type GridSpec [][]Coordinate

// Columns derives the track count: one more than the highest column index
// observed anywhere in the spec. An empty spec has zero tracks.
func (s GridSpec) Columns() int {
	max := -1
	for _, row := range s {
		for _, c := range row {
			if c.Col > max {
				max = c.Col
			}
		}
	}
	return max + 1
}

// Cell is one positioned, labeled grid cell. RowLine and ColLine are 1-based
// grid line numbers: coordinate (r, c) sits at lines (r+1, c+1). Grid line
// numbering is 1-based while coordinates are 0-based, and the offset is part
// of the contract.
type Cell struct {
	Coord   Coordinate
	RowLine int
	ColLine int
	Label   string
	Key     string
}

// Layout places every coordinate of the spec. Placement order follows the
// spec's own ordering, so an unchanged spec yields an identical slice.
func Layout(spec GridSpec) []Cell {
	var cells []Cell
	for _, row := range spec {
		for _, c := range row {
			cells = append(cells, Cell{
				Coord:   c,
				RowLine: c.Row + 1,
				ColLine: c.Col + 1,
				Label:   c.Label(),
				Key:     c.Key(),
			})
		}
	}
	return cells
}

// Validate rejects a spec containing two cells with the same coordinate.
// Layout is undefined for collisions, so static specs are checked once at
// startup rather than on every render.
func Validate(spec GridSpec) error {
	seen := make(map[Coordinate]struct{})
	for _, row := range spec {
		for _, c := range row {
			if _, dup := seen[c]; dup {
				return fmt.Errorf("board: duplicate coordinate (%d, %d)", c.Row, c.Col)
			}
			seen[c] = struct{}{}
		}
	}
	return nil
}
