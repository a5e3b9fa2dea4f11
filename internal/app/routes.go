package app

import (
	"github.com/vancomm/minesweeper/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.log, a.ws, a.defaults, a.config.MaxRows, a.config.MaxCols,
	)

	base := a.config.BasePath
	a.router.HandleFunc("GET "+base+"/status", game.Status)
	a.router.HandleFunc("GET "+base+"/game/connect", game.Connect)
}
