package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

type wsCommand string

const (
	wsNoop      wsCommand = "g"
	wsReveal    wsCommand = "o"
	wsCycleMark wsCommand = "f"
	wsNewGame   wsCommand = "n"
)

var errUnknownCommand = errors.New("unknown command")

// session is the game played over one connection. It is only touched by
// the goroutine serving that connection.
type session struct {
	params mines.GameParams
	game   *mines.Game
	rnd    *rand.Rand
	log    logrus.FieldLogger
}

func newSession(params mines.GameParams, rnd *rand.Rand, log logrus.FieldLogger) (*session, error) {
	s := &session{params: params, rnd: rnd, log: log}
	if err := s.newGame(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) newGame() error {
	game, err := mines.NewRandomGame(s.params, s.rnd)
	if err != nil {
		return err
	}
	s.game = game
	s.log.WithField("params", s.params.String()).Debug("new game")
	return nil
}

func (s *session) reveal(args []string) error {
	row, col, err := parseRowCol(args)
	if err != nil {
		return err
	}
	return s.game.Reveal(row, col)
}

func (s *session) cycleMark(args []string) error {
	row, col, err := parseRowCol(args)
	if err != nil {
		return err
	}
	return s.game.CycleMark(row, col)
}

func (s *session) execute(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	cmd, args := wsCommand(tokens[0]), tokens[1:]
	switch cmd {
	case wsNoop:
		return nil
	case wsReveal:
		return s.reveal(args)
	case wsCycleMark:
		return s.cycleMark(args)
	case wsNewGame:
		return s.newGame()
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, tokens[0])
	}
}

// executeAll runs the commands of one message, one per line. It stops at the
// first failing command or when the game ends.
func (s *session) executeAll(message string) error {
	for line := range commandLines(message) {
		wasOver := s.game.Over()
		if err := s.execute(line); err != nil {
			return fmt.Errorf("command %q: %w", line, err)
		}
		if !wasOver && s.game.Over() {
			s.log.WithFields(logrus.Fields{
				"params": s.params.String(),
				"status": s.game.Status().String(),
			}).Info("game over")
			break
		}
	}
	return nil
}

func parseRowCol(args []string) (row int, col int, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("invalid args")
		return
	}
	if row, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}
