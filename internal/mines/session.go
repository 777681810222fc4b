package mines

import "github.com/sirupsen/logrus"

type Status int8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "!"
	}
}

func (s Status) Over() bool {
	return s != InProgress
}

// Session is a single game: one board, the marker tally and the game status.
// It is the only object a UI needs to talk to. A Session is not safe for
// concurrent use.
type Session struct {
	params GameParams
	board  *Board
	tally  Tally
	status Status
}

func NewSession(params GameParams, rnd Source) (*Session, error) {
	board, err := Generate(params, rnd)
	if err != nil {
		return nil, err
	}
	return &Session{params: params, board: board}, nil
}

// evaluate is the win rule: every marker sits on a mine and every mine is
// marked. Revealing the safe cells is not required.
func evaluate(t Tally, mineTotal int) Status {
	if t.Marked == mineTotal && t.Correct == mineTotal {
		return Won
	}
	return InProgress
}

func (s *Session) finish(status Status) {
	s.status = status
	Log.WithFields(logrus.Fields{
		"params": s.params.String(),
		"status": status.String(),
		"marked": s.tally.Marked,
	}).Debug("game over")
}

func (s *Session) Reveal(row, col int) RevealOutcome {
	if s.status.Over() {
		return RevealOutcome{Kind: RevealSessionOver}
	}
	outcome := Reveal(s.board, row, col)
	if outcome.Kind == Detonated {
		RevealMines(s.board)
		s.finish(Lost)
	}
	return outcome
}

func (s *Session) ToggleMark(row, col int) MarkOutcome {
	if s.status.Over() {
		return MarkSessionOver
	}
	outcome, tally := ToggleMark(s.board, row, col, s.tally)
	if outcome == MarkNoOp {
		return outcome
	}
	s.tally = tally
	if status := evaluate(s.tally, s.board.mineTotal); status.Over() {
		s.finish(status)
	}
	return outcome
}

// Forfeit ends an in-progress game as lost and shows the mines.
func (s *Session) Forfeit() {
	if s.status.Over() {
		return
	}
	RevealMines(s.board)
	s.finish(Lost)
}

// Reset replaces the board, tally and status with a freshly generated game.
// On invalid params the session is left unchanged.
func (s *Session) Reset(params GameParams, rnd Source) (*Session, error) {
	board, err := Generate(params, rnd)
	if err != nil {
		return nil, err
	}
	*s = Session{params: params, board: board}
	Log.WithField("params", params.String()).Debug("session reset")
	return s, nil
}

// Restart is [Session.Reset] with the current params.
func (s *Session) Restart(rnd Source) (*Session, error) {
	return s.Reset(s.params, rnd)
}

func (s *Session) Status() Status {
	return s.status
}

func (s *Session) Params() GameParams {
	return s.params
}

func (s *Session) MarkedCount() int {
	return s.tally.Marked
}

// MinesLeft is the mine total minus placed markers; negative when the
// player has placed more markers than there are mines.
func (s *Session) MinesLeft() int {
	return s.board.mineTotal - s.tally.Marked
}

func (s *Session) CellView(row, col int) (CellView, bool) {
	c, ok := s.board.At(row, col)
	if !ok {
		return CellView{}, false
	}
	return CellView{Revealed: c.revealed, Marked: c.marked, Display: c.display()}, true
}

// Snapshot copies the display of every cell, row-major.
func (s *Session) Snapshot() Grid {
	grid := make(Grid, len(s.board.cells))
	for i, c := range s.board.cells {
		grid[i] = c.display()
	}
	return grid
}

func (s *Session) String() string {
	return s.Snapshot().ToString(s.board.cols)
}
