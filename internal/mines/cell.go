package mines

// Cell is one board position. It is either a mine or holds the number of
// mined neighbors. A cell is never marked and revealed at the same time.
type Cell struct {
	mined    bool
	count    int8
	revealed bool
	marked   bool
}

func (c Cell) Mined() bool {
	return c.mined
}

// Count is the adjacency count of a safe cell; 0 for mines.
func (c Cell) Count() int {
	if c.mined {
		return 0
	}
	return int(c.count)
}

func (c Cell) Revealed() bool {
	return c.revealed
}

func (c Cell) Marked() bool {
	return c.marked
}

func (c Cell) display() Display {
	switch {
	case c.marked:
		return Flagged
	case !c.revealed:
		return Hidden
	case c.mined:
		return Mine
	default:
		return Display(c.count)
	}
}
