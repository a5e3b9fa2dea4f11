package handlers

import (
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

// maxMessageSize bounds a single command batch read from a client.
const maxMessageSize = 8 << 10

type GameHandler struct {
	log              logrus.FieldLogger
	ws               *config.WebSocket
	defaults         mines.GameParams
	maxRows, maxCols int
	newRand          func() *rand.Rand
}

func NewGameHandler(
	log logrus.FieldLogger,
	ws *config.WebSocket,
	defaults mines.GameParams,
	maxRows, maxCols int,
) *GameHandler {
	return &GameHandler{
		log:      log,
		ws:       ws,
		defaults: defaults,
		maxRows:  maxRows,
		maxCols:  maxCols,
		newRand:  mines.NewRand,
	}
}

func (h *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	SendJSONOrLog(w, h.log, map[string]string{
		"status":         "ok",
		"default_params": h.defaults.String(),
	})
}

// Connect starts a game with the query params and plays it over a websocket.
// Every client message is a batch of commands and is answered with a
// snapshot of the game.
func (h *GameHandler) Connect(w http.ResponseWriter, r *http.Request) {
	params, err := ParseNewGameParams(r.URL.Query(), h.defaults, h.maxRows, h.maxCols)
	if err != nil {
		SendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	log := h.log.WithField("remoteAddr", r.RemoteAddr)
	s, err := newSession(params, h.newRand(), log)
	if err != nil {
		SendErrorOrLog(w, h.log, http.StatusInternalServerError, err)
		return
	}

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		log.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()

	log.Debug("established WS connection")

	if err := s.run(conn); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			log.Debug("WS connection closed")
			return
		}
		log.WithError(err).Warn("error in ws loop")
	}
}

func (s *session) run(conn *websocket.Conn) error {
	conn.SetReadLimit(maxMessageSize)
	if err := conn.WriteJSON(NewGameDTO(s.game)); err != nil {
		return err
	}
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		cmdErr := s.executeAll(string(buf))
		dto := NewGameDTO(s.game)
		if cmdErr != nil {
			s.log.WithError(cmdErr).Debug("command failed")
			dto.Error = cmdErr.Error()
		}

		if err := conn.WriteJSON(dto); err != nil {
			return err
		}
	}
}
