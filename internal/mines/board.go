package mines

import "iter"

// Board is a rows x cols grid of cells stored row-major.
type Board struct {
	rows, cols int
	mineTotal  int
	cells      []Cell
}

func newBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) MineTotal() int {
	return b.mineTotal
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.rows && 0 <= col && col < b.cols
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

func (b *Board) coords(index int) (row int, col int) {
	return index / b.cols, index % b.cols
}

// At returns a copy of the cell at (row, col). ok is false when the
// coordinates are out of bounds.
func (b *Board) At(row, col int) (cell Cell, ok bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[b.index(row, col)], true
}

// cell is the bounds-checked write accessor; nil when out of bounds.
func (b *Board) cell(row, col int) *Cell {
	if !b.InBounds(row, col) {
		return nil
	}
	return &b.cells[b.index(row, col)]
}

func (b *Board) neighborRange(row, col int) (fromRow, toRow, fromCol, toCol int) {
	fromRow, toRow = max(0, row-1), min(row+1, b.rows-1)
	fromCol, toCol = max(0, col-1), min(col+1, b.cols-1)
	return
}

// Neighbors yields the in-bounds cells sharing an edge or a corner with
// (row, col), excluding the cell itself.
func (b *Board) Neighbors(row, col int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		fromRow, toRow, fromCol, toCol := b.neighborRange(row, col)
		for r := fromRow; r <= toRow; r++ {
			for c := fromCol; c <= toCol; c++ {
				if r == row && c == col {
					continue
				}
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

func (b *Board) neighborIndexes(index int) iter.Seq[int] {
	return func(yield func(int) bool) {
		row, col := b.coords(index)
		for r, c := range b.Neighbors(row, col) {
			if !yield(b.index(r, c)) {
				return
			}
		}
	}
}

// countMines recomputes adjacency counts for every safe cell.
func (b *Board) countMines() {
	for i := range b.cells {
		if b.cells[i].mined {
			b.cells[i].count = 0
			continue
		}
		var n int8
		for j := range b.neighborIndexes(i) {
			if b.cells[j].mined {
				n++
			}
		}
		b.cells[i].count = n
	}
}
