package mines

import "github.com/sirupsen/logrus"

// Source is the random source used for mine placement. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Generate builds a board with params.MineCount mines at distinct cells chosen
// uniformly at random, and fills in every safe cell's adjacency count. The
// result is fully determined by params and the state of rnd.
func Generate(params GameParams, rnd Source) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	rows, cols, mineCount := params.Unpack()
	board := newBoard(rows, cols)

	/*
	 * Rejection sampling: mineCount < rows*cols, so a free cell always
	 * exists and the loop terminates.
	 */
	size := params.Size()
	for planted := 0; planted < mineCount; {
		i := rnd.IntN(size)
		if !board.cells[i].mined {
			board.cells[i].mined = true
			planted++
		}
	}
	board.mineTotal = mineCount
	board.countMines()

	Log.WithFields(logrus.Fields{
		"rows":  rows,
		"cols":  cols,
		"mines": mineCount,
	}).Debug("board generated")

	return board, nil
}
