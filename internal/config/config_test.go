package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestPresetsValidate(t *testing.T) {
	for name, params := range Presets {
		assert.NoError(t, params.Validate(), name)
	}
}

func TestPreset(t *testing.T) {
	p, err := Preset("Normal")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Rows: 20, Cols: 20, MineCount: 80}, p)

	_, err = Preset("nightmare")
	assert.ErrorContains(t, err, "easy, hard, normal")
}

func TestDefaultParams(t *testing.T) {
	t.Setenv("MINES_PRESET", "hard")
	p, err := DefaultParams()
	require.NoError(t, err)
	assert.Equal(t, Presets["hard"], p)

	t.Setenv("MINES_PRESET", "")
	p, err = DefaultParams()
	require.NoError(t, err)
	assert.Equal(t, Presets[DefaultPreset], p)
}

func TestDecodeParams(t *testing.T) {
	tests := []struct {
		query string
		want  mines.GameParams
		err   bool
	}{
		{query: "rows=9&cols=9&mines=10", want: mines.GameParams{Rows: 9, Cols: 9, MineCount: 10}},
		{query: "rows=2&cols=3&mines=0&extra=1", want: mines.GameParams{Rows: 2, Cols: 3, MineCount: 0}},
		{query: "rows=9&cols=9", err: true},
		{query: "rows=x&cols=9&mines=1", err: true},
		{query: "rows=3&cols=3&mines=9", err: true},
	}
	for _, test := range tests {
		t.Run(test.query, func(t *testing.T) {
			values, err := url.ParseQuery(test.query)
			require.NoError(t, err)
			got, err := DecodeParams(values)
			if test.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestDecodeParamsInvalidConfiguration(t *testing.T) {
	_, err := DecodeParams(url.Values{"rows": {"0"}, "cols": {"4"}, "mines": {"1"}})
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

func TestSeed(t *testing.T) {
	t.Setenv("MINES_SEED", "42")
	seed, ok, err := Seed()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(42), seed)

	t.Setenv("MINES_SEED", "-1")
	_, ok, err = Seed()
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}
