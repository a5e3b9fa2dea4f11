package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

const (
	actionReveal = 0
	actionMark   = 1
)

var errInputClosed = errors.New("input closed")

func prompt(g *mines.Game) string {
	return fmt.Sprintf("Please, type in 3 numbers (row[0, %d], col[0, %d], action[0, 1]): ",
		g.Rows()-1, g.Cols()-1)
}

func parseStep(g *mines.Game, line string) (row, col, action int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return
		}
		nums[i] = n
	}
	row, col, action = nums[0], nums[1], nums[2]
	ok = g.Board().InBounds(row, col) && (action == actionReveal || action == actionMark)
	return
}

// readStep prompts until a valid move is entered.
func readStep(sc *bufio.Scanner, w io.Writer, g *mines.Game) (row, col, action int, err error) {
	for {
		fmt.Fprint(w, prompt(g))
		if !sc.Scan() {
			if err = sc.Err(); err == nil {
				err = errInputClosed
			}
			return
		}
		var ok bool
		if row, col, action, ok = parseStep(g, sc.Text()); ok {
			return
		}
	}
}

func step(g *mines.Game, row, col, action int) error {
	if action == actionReveal {
		return g.Reveal(row, col)
	}
	return g.CycleMark(row, col)
}

// playText runs a game in the terminal until it is won or lost.
func playText(r io.Reader, w io.Writer, params mines.GameParams, rnd *rand.Rand) error {
	g, err := mines.NewRandomGame(params, rnd)
	if err != nil {
		return err
	}

	sc := bufio.NewScanner(r)
	for !g.Over() {
		if err := render.Field(w, g, false); err != nil {
			return err
		}
		fmt.Fprintln(w, render.Stats(g))

		row, col, action, err := readStep(sc, w, g)
		if err != nil {
			return err
		}
		fmt.Fprintln(w)

		if err := step(g, row, col, action); err != nil {
			return err
		}
	}

	return render.Game(w, g)
}
