package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Rows      int `schema:"rows,required"`
	Cols      int `schema:"cols,required"`
	MineCount int `schema:"mines,required"`
}

func (p GameParams) Unpack() (rows int, cols int, mineCount int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p GameParams) Size() int {
	return p.Rows * p.Cols
}

// Validate reports an error wrapping [ErrInvalidConfiguration] unless
// rows > 0, cols > 0 and 0 <= mines < rows*cols. Values are never clamped.
func (p GameParams) Validate() error {
	switch {
	case p.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfiguration, p.Rows)
	case p.Cols <= 0:
		return fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidConfiguration, p.Cols)
	case p.MineCount < 0 || p.MineCount >= p.Size():
		return fmt.Errorf(
			"%w: mine count must be in [0, %d), got %d",
			ErrInvalidConfiguration, p.Size(), p.MineCount,
		)
	}
	return nil
}

// Seed encodes params as "rows:cols:mines".
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Rows, p.Cols, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}
