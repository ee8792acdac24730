package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/game/maze"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMaze(t *testing.T) {
	t.Run("Draws the forced entry scenario", func(t *testing.T) {
		var out bytes.Buffer
		err := run([]string{"-rows", "3", "-cols", "3", "-p", "0", "-q", "0", "-seed", "1", "-entry", "1"}, &out)
		require.NoError(t, err)

		want := "" +
			"seed 1, entry (0,1)\n" +
			"goal (2,1) at distance 2\n" +
			"+---+---+---+\n" +
			"|     S     |\n" +
			"+   +   +   +\n" +
			"|     *     |\n" +
			"+   +   +   +\n" +
			"|     G     |\n" +
			"+---+---+---+\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("JSON summary", func(t *testing.T) {
		var out bytes.Buffer
		err := run([]string{"-rows", "4", "-cols", "2", "-p", "0", "-q", "0", "-seed", "3", "-entry", "0", "-json"}, &out)
		require.NoError(t, err)

		var s summary
		require.NoError(t, json.Unmarshal(out.Bytes(), &s))
		require.NotNil(t, s.Distance)
		assert.Equal(t, 3, *s.Distance)
		assert.Equal(t, maze.CellPosition{Row: 3, Col: 0}, *s.Goal)
		assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 0}}, s.Path)
	})

	t.Run("Unreachable bottom row is not an error", func(t *testing.T) {
		var out bytes.Buffer
		err := run([]string{"-rows", "3", "-cols", "3", "-p", "1", "-q", "1", "-seed", "9"}, &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "bottom row unreachable")
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		assert.ErrorIs(t, run([]string{"-rows", "0"}, &bytes.Buffer{}), maze.ErrInvalidDimension)
		assert.ErrorIs(t, run([]string{"-p", "2"}, &bytes.Buffer{}), maze.ErrInvalidProbability)
		assert.ErrorIs(t, run([]string{"-cols", "3", "-entry", "3"}, &bytes.Buffer{}), maze.ErrOutOfRange)
	})
}

func TestRunToken(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"token", "-secret", "s3cret", "-issuer", "maze-operator"}, &out))

	claims, err := token.NewJwtService("s3cret", "maze-operator").Decode(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.True(t, token.HasScope(claims, i.ScopeMazeWrite))

	assert.Error(t, run([]string{"token", "-secret", "s3cret"}, &bytes.Buffer{}))
}
