package bootstrap

import (
	httpapi "github.com/GoSim-25-26J-441/energy-catalog-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/api/http/routes"
	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/repository"
	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Catalog     *repository.Catalog
	Logger      *zap.Logger
	// Registry receives the HTTP collectors. A fresh registry is created when nil.
	Registry *prometheus.Registry
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	logger := dep.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reg := dep.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := middleware.NewMetrics(reg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware(logger))
	r.Use(metrics.Middleware())
	httpapi.RegisterFallbacks(r)

	projectService := service.NewProjectService(dep.Catalog)
	metrics.SetProjects(projectService.Count())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, projectService)
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	routes.RegisterAPI(r, routes.APIDeps{
		Projects: projectService,
		Logger:   logger,
	})

	return r
}
