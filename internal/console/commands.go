package console

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var (
	ErrQuit           = errors.New("quit")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("invalid number of arguments")
)

// Maps known commands to number of arguments; -1 means variable.
var commandNargs = map[string]int{
	"g": 0,  // print grid
	"o": 2,  // open (reveal) row col
	"f": 2,  // toggle flag row col
	"n": 0,  // new game, same params
	"x": 0,  // forfeit
	"r": -1, // reset [preset | rows:cols:mines | rows=.. cols=.. mines=..]
	"q": 0,  // quit
	"h": 0,  // help
}

const usage = `commands:
  o ROW COL   reveal a cell
  f ROW COL   toggle a flag
  g           print the grid
  n           new game with the same size
  r PRESET    new game from a preset (%s)
  r R:C:M     new game with R rows, C cols and M mines
  r rows=R cols=C mines=M
  x           give up and show the mines
  q           quit
`

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// parseParams reads the arguments of a reset command. No arguments means
// the current params.
func parseParams(current mines.GameParams, args []string) (mines.GameParams, error) {
	switch {
	case len(args) == 0:
		return current, nil
	case len(args) == 1 && strings.Contains(args[0], ":"):
		p, err := mines.ParseSeed(args[0])
		if err != nil {
			return mines.GameParams{}, err
		}
		return *p, p.Validate()
	case len(args) == 1 && !strings.Contains(args[0], "="):
		return config.Preset(args[0])
	}

	values := url.Values{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return mines.GameParams{}, fmt.Errorf("expected key=value, got %q", arg)
		}
		values.Add(key, value)
	}
	return config.DecodeParams(values)
}
