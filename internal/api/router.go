package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-well-viewer/docs"
	"go-well-viewer/internal/api/handler"
	"go-well-viewer/internal/metrics"
	"go-well-viewer/pkg/router"
)

// RegisterRoutes wires the dashboard page, the scene API and the operational
// endpoints onto r
func RegisterRoutes(r *router.Router) {
	r.GET("/", handler.Index)
	r.GET("/healthz", handler.Health)
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/swagger/*", httpSwagger.WrapHandler)

	r.POST("/api/v1/scene", handler.UploadScene)
	r.POST("/api/v1/scene/preview", handler.PreviewScene)
	r.GET("/api/v1/builds", handler.ListBuilds)
	r.GET("/api/v1/builds/*", handler.GetBuild)
}
