package mines

import "fmt"

type RevealKind int8

const (
	RevealNoOp RevealKind = iota
	Revealed
	Detonated
	RevealSessionOver
)

func (k RevealKind) String() string {
	switch k {
	case RevealNoOp:
		return "noop"
	case Revealed:
		return "revealed"
	case Detonated:
		return "detonated"
	case RevealSessionOver:
		return "session over"
	default:
		return "!"
	}
}

// RevealOutcome is the result of a reveal. Count is the adjacency count of
// the requested cell and is only meaningful for [Revealed].
type RevealOutcome struct {
	Kind  RevealKind
	Count int
}

func (o RevealOutcome) String() string {
	if o.Kind == Revealed {
		return fmt.Sprintf("%s(%d)", o.Kind, o.Count)
	}
	return o.Kind.String()
}

// Reveal uncovers the cell at (row, col). Out-of-bounds, revealed and
// marked cells are left alone. A zero cell starts a flood fill over its
// zero-connected region and the numbered cells bordering it.
func Reveal(b *Board, row, col int) RevealOutcome {
	c := b.cell(row, col)
	if c == nil || c.revealed || c.marked {
		return RevealOutcome{Kind: RevealNoOp}
	}

	if c.mined {
		c.revealed = true
		return RevealOutcome{Kind: Detonated}
	}

	if c.count > 0 {
		c.revealed = true
		return RevealOutcome{Kind: Revealed, Count: int(c.count)}
	}

	floodFill(b, b.index(row, col))
	return RevealOutcome{Kind: Revealed, Count: 0}
}

// floodFill reveals breadth-first from start. Only zero cells expand; marked
// cells are neither revealed nor expanded. Returns the number of cells
// revealed.
func floodFill(b *Board, start int) (opened int) {
	todo := newCelltodo(len(b.cells))
	todo.add(start)
	for {
		i, ok := todo.pop()
		if !ok {
			break
		}
		c := &b.cells[i]
		if c.marked || c.mined {
			continue
		}
		if !c.revealed {
			c.revealed = true
			opened++
		}
		if c.count == 0 {
			for j := range b.neighborIndexes(i) {
				if !b.cells[j].revealed {
					todo.add(j)
				}
			}
		}
	}
	return opened
}

// RevealMines uncovers every unmarked mine for display after a loss. Safe
// cells and marks are left as they are.
func RevealMines(b *Board) {
	for i := range b.cells {
		if b.cells[i].mined && !b.cells[i].marked {
			b.cells[i].revealed = true
		}
	}
}
