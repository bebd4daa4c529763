package echoapi

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/somohq/somo/core"
	"github.com/somohq/somo/storage/database"
)

// Readiness endpoint. A database that stops answering is an integrity
// failure: the handler returns a shutdown error so the error handler can
// stop the server gracefully.

type healthApi struct {
	db *sql.DB
}

func registerHealthAPI(g *echo.Group, db *sql.DB) {
	api := healthApi{db: db}
	g.GET("/health", api.check)
}

func (api *healthApi) check(ctx echo.Context) error {
	if err := database.StatusCheck(ctx.Request().Context(), api.db); err != nil {
		return core.NewShutdownError("database not ready: " + err.Error())
	}
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
