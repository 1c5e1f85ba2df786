package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pbui/pokerd/game"
	"github.com/pbui/pokerd/logging"
)

var restLogger = logging.GetZeroLogger("rest::admin", nil)

var table *game.Table

// setupRouter builds the read-only admin surface. Nothing here mutates
// the table.
func setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/table-status", tableStatus)
	r.GET("/players", players)
	r.GET("/ready", ready)
	return r
}

// RunAdminServer serves the admin endpoints until the context ends.
func RunAdminServer(ctx context.Context, addr string, t *game.Table) error {
	table = t
	gin.SetMode(gin.ReleaseMode)

	srv := &http.Server{Addr: addr, Handler: setupRouter()}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	restLogger.Info().Str("address", addr).Msg("Admin server listening")
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func tableStatus(c *gin.Context) {
	c.JSON(http.StatusOK, table.Status())
}

func players(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"players": table.PlayerList()})
}

func ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
