package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// Console translates text commands into calls on a [mines.Session] and
// prints the resulting board.
type Console struct {
	session *mines.Session
	rnd     mines.Source
	out     io.Writer
	logger  *slog.Logger
}

func New(session *mines.Session, rnd mines.Source, out io.Writer, logger *slog.Logger) *Console {
	return &Console{
		session: session,
		rnd:     rnd,
		out:     out,
		logger:  logger,
	}
}

func (c *Console) Session() *mines.Session {
	return c.session
}

func (c *Console) Execute(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if nargs >= 0 && nargs != len(parts)-1 {
		return ErrBadArguments
	}

	switch parts[0] {
	case "g":
		c.printBoard()
	case "o":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		outcome := c.session.Reveal(row, col)
		c.logger.Debug("reveal", "row", row, "col", col, "outcome", outcome.String())
		fmt.Fprintln(c.out, outcome)
		c.printBoard()
	case "f":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		outcome := c.session.ToggleMark(row, col)
		c.logger.Debug("toggle mark", "row", row, "col", col, "outcome", outcome.String())
		fmt.Fprintln(c.out, outcome)
		c.printBoard()
	case "n":
		if _, err := c.session.Restart(c.rnd); err != nil {
			return err
		}
		c.logger.Info("new game", "params", c.session.Params().String())
		c.printBoard()
	case "r":
		params, err := parseParams(c.session.Params(), parts[1:])
		if err != nil {
			return err
		}
		if _, err := c.session.Reset(params, c.rnd); err != nil {
			return err
		}
		c.logger.Info("new game", "params", params.String())
		c.printBoard()
	case "x":
		c.session.Forfeit()
		c.printBoard()
	case "h":
		fmt.Fprintf(c.out, usage, strings.Join(config.PresetNames(), ", "))
	case "q":
		return ErrQuit
	}
	return nil
}

func (c *Console) printBoard() {
	s := c.session
	fmt.Fprint(c.out, s.String())
	fmt.Fprintf(c.out, "%s, mines left: %d\n", s.Status(), s.MinesLeft())
}

// Run executes lines from in until EOF, a quit command or ctx is done.
// Command errors are printed and do not stop the loop.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	c.printBoard()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			err := c.Execute(line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				c.logger.Debug("command failed", "line", line, "error", err)
				fmt.Fprintln(c.out, "error:", err)
			}
		}
	}
}
