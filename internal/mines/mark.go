package mines

type MarkOutcome int8

const (
	MarkNoOp MarkOutcome = iota
	Marked
	Unmarked
	MarkSessionOver
)

func (o MarkOutcome) String() string {
	switch o {
	case MarkNoOp:
		return "noop"
	case Marked:
		return "marked"
	case Unmarked:
		return "unmarked"
	case MarkSessionOver:
		return "session over"
	default:
		return "!"
	}
}

// Tally counts the markers on a board. Correct counts markers sitting on
// mines, so Correct <= Marked always holds.
type Tally struct {
	Marked  int
	Correct int
}

// ToggleMark flips the marker on an unrevealed in-bounds cell and returns the
// tally adjusted in the same direction.
func ToggleMark(b *Board, row, col int, t Tally) (MarkOutcome, Tally) {
	c := b.cell(row, col)
	if c == nil || c.revealed {
		return MarkNoOp, t
	}

	delta := 1
	outcome := Marked
	if c.marked {
		delta = -1
		outcome = Unmarked
	}

	c.marked = !c.marked
	t.Marked += delta
	if c.mined {
		t.Correct += delta
	}
	return outcome, t
}
