package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"dining_sync/internal/cache"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/health", h.Health)
	r.GET("/eateries", h.ListEateries)
	r.GET("/eateries/:id", h.GetEatery)
	r.POST("/favorites/matches", h.MatchFavorites)
	r.POST(cache.RefreshPath, h.RefreshCache)
}

// NewRouter returns a gin engine in release mode with recovery and request logging.
func NewRouter(h *Handler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))
	RegisterRoutes(r, h)
	return r
}
