package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine.
// token guards the dataset routes; /healthz and /metrics stay open.
func NewRouter(logger *zap.Logger, h *DatasetHandler, metrics http.Handler, token string) *gin.Engine {
	r := gin.New()
	r.Use(RecoveryMiddleware(logger), LoggingMiddleware(logger))

	r.GET("/healthz", Health)
	r.GET("/metrics", gin.WrapH(metrics))

	datasets := r.Group("/api/v1/datasets")
	datasets.Use(TokenMiddleware(token))
	{
		datasets.POST("", h.Generate)
		datasets.GET("", h.List)
		datasets.GET("/:id", h.Get)
		datasets.GET("/:id/tables/:table", h.Table)
		datasets.GET("/:id/archive", h.Archive)
	}

	r.NoRoute(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "not found", errors.New("route not found"))
	})

	return r
}
