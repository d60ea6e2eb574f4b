package routes

import (
	projecthttp "github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/http"
	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIDeps struct {
	Projects *service.ProjectService
	Logger   *zap.Logger
}

// RegisterAPI mounts the public /api routes.
func RegisterAPI(r *gin.Engine, dep APIDeps) {
	api := r.Group("/api")

	projectHandler := projecthttp.New(dep.Projects, dep.Logger)
	projectHandler.Register(api.Group("/projects"))
}
