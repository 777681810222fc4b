package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Display is what a renderer shows for a cell:
//
//   - 0 is an opened cell with no mined neighbors;
//   - 1 to 8 is an opened cell with that many mined neighbors;
//   - [Flagged] is a marked cell;
//   - [Hidden] is an unopened, unmarked cell;
//   - [Mine] is an opened mine.
type Display int8

const (
	Hidden  Display = -2
	Flagged Display = -1
	Empty   Display = 0
	Mine    Display = 64
)

func (d Display) String() string {
	switch {
	case d == Hidden:
		return "-"
	case d == Flagged:
		return "F"
	case d == Mine:
		return "*"
	case d == Empty:
		return "."
	case 1 <= d && d <= 8:
		return strconv.Itoa(int(d))
	default:
		return "!"
	}
}

// IsCount reports whether d is a neighbor count in 1..8.
func (d Display) IsCount() bool {
	return 1 <= d && d <= 8
}

type CellView struct {
	Revealed bool
	Marked   bool
	Display  Display
}

// Grid is a row-major snapshot of cell displays.
type Grid []Display

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
