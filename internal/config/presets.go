package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

const DefaultPreset = "easy"

var Presets = map[string]mines.GameParams{
	"easy":   {Rows: 10, Cols: 10, MineCount: 10},
	"normal": {Rows: 20, Cols: 20, MineCount: 80},
	"hard":   {Rows: 15, Cols: 15, MineCount: 60},
}

func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func Preset(name string) (mines.GameParams, error) {
	params, ok := Presets[strings.ToLower(name)]
	if !ok {
		return mines.GameParams{}, fmt.Errorf(
			"unknown preset %q, must be one of %s",
			name, strings.Join(PresetNames(), ", "),
		)
	}
	return params, nil
}

// DefaultParams resolves MINES_PRESET, falling back to [DefaultPreset].
func DefaultParams() (mines.GameParams, error) {
	name, ok := os.LookupEnv("MINES_PRESET")
	if !ok || name == "" {
		name = DefaultPreset
	}
	return Preset(name)
}

// DecodeParams decodes rows, cols and mines from url-style values and
// validates the result.
func DecodeParams(src map[string][]string) (mines.GameParams, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var params mines.GameParams
	if err := dec.Decode(&params, src); err != nil {
		return mines.GameParams{}, err
	}
	if err := params.Validate(); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}
