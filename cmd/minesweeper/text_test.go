package main

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestPlayTextWin(t *testing.T) {
	var out strings.Builder
	in := strings.NewReader("nonsense\n5 5 0\n0 0 2\n0 0 0\n")

	err := playText(in, &out, mines.GameParams{Rows: 1, Cols: 2, MineCount: 0}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	s := out.String()
	assert.Equal(t, 4, strings.Count(s, "Please, type in 3 numbers (row[0, 0], col[0, 1], action[0, 1]): "))
	assert.Contains(t, s, "0 | X X \n")
	assert.Contains(t, s, "Mines set: 0\n")
	assert.True(t, strings.HasSuffix(s, "0 | . . \nMines set: 0\nYou win\n"))
}

func TestPlayTextLose(t *testing.T) {
	var out strings.Builder
	in := strings.NewReader("0 0 0\n")

	err := playText(in, &out, mines.GameParams{Rows: 1, Cols: 1, MineCount: 1}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "0 | X \n")
	assert.Contains(t, s, "Mines set: 0\n")
	assert.True(t, strings.HasSuffix(s, "0 | M \nMines set: 0\nYou lose\n"))
}

func TestPlayTextInputClosed(t *testing.T) {
	var out strings.Builder
	err := playText(strings.NewReader("0 0 1\n"), &out,
		mines.GameParams{Rows: 2, Cols: 2, MineCount: 1}, rand.New(rand.NewPCG(1, 2)))
	assert.ErrorIs(t, err, errInputClosed)
}

func TestParseStep(t *testing.T) {
	g, err := mines.NewRandomGame(mines.GameParams{Rows: 3, Cols: 4, MineCount: 1}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	row, col, action, ok := parseStep(g, " 2 3 1 ")
	assert.True(t, ok)
	assert.Equal(t, []int{2, 3, 1}, []int{row, col, action})

	for _, line := range []string{"", "1 2", "1 2 3 4", "3 0 0", "0 4 0", "0 0 2", "a b c"} {
		_, _, _, ok := parseStep(g, line)
		assert.False(t, ok, line)
	}
}
