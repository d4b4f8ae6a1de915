// Package router assembles the gin engine and runs the HTTP server.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/config"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/interfaces/http/handlers"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// Handlers bundles every endpoint handler the router mounts.
type Handlers struct {
	Health      *handlers.HealthHandler
	Dashboard   *handlers.DashboardHandler
	Lease       *handlers.LeaseHandler
	Maintenance *handlers.MaintenanceHandler
	Document    *handlers.DocumentHandler
	QA          *handlers.QAHandler
}

// Router owns the gin engine and the HTTP server lifecycle.
type Router struct {
	engine   *gin.Engine
	config   *config.Config
	logger   logger.Logger
	handlers Handlers
	server   *http.Server
}

// New creates the router. Middleware order: recovery first, then request ID,
// logging, CORS, and per-route auth and rate limiting.
func New(cfg *config.Config, log logger.Logger, h Handlers, globalMiddleware []gin.HandlerFunc, protected []gin.HandlerFunc) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	r := &Router{
		engine:   engine,
		config:   cfg,
		logger:   log,
		handlers: h,
	}
	r.setup(globalMiddleware, protected)
	return r
}

func (r *Router) setup(globalMiddleware []gin.HandlerFunc, protected []gin.HandlerFunc) {
	r.engine.Use(globalMiddleware...)

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.engine.GET("/health/live", r.handlers.Health.Liveness)
	r.engine.GET("/health/ready", r.handlers.Health.Readiness)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if r.config.Server.EnablePprof {
		pprof.Register(r.engine)
	}

	v1 := r.engine.Group("/api/v1")
	v1.Use(protected...)
	{
		v1.GET("/dashboard", r.handlers.Dashboard.GetDashboard)

		leases := v1.Group("/leases")
		{
			leases.POST("", r.handlers.Lease.Create)
			leases.GET("", r.handlers.Lease.List)
			leases.GET("/:id", r.handlers.Lease.Get)
			leases.PUT("/:id", r.handlers.Lease.Update)
			leases.DELETE("/:id", r.handlers.Lease.Delete)
			leases.GET("/:id/documents", r.handlers.Document.ListByLease)
		}

		maintenance := v1.Group("/maintenance")
		{
			maintenance.POST("/report", r.handlers.Maintenance.Report)
		}

		workOrders := v1.Group("/work-orders")
		{
			workOrders.GET("", r.handlers.Maintenance.List)
			workOrders.GET("/:id", r.handlers.Maintenance.Get)
			workOrders.POST("/:id/assign", r.handlers.Maintenance.Assign)
			workOrders.POST("/:id/confirm", r.handlers.Maintenance.Confirm)
			workOrders.POST("/:id/resolve", r.handlers.Maintenance.Resolve)
			workOrders.POST("/:id/escalate", r.handlers.Maintenance.Escalate)
		}

		documents := v1.Group("/documents")
		{
			documents.POST("", r.handlers.Document.Ingest)
			documents.GET("/:id", r.handlers.Document.Get)
		}

		qa := v1.Group("/qa")
		{
			qa.POST("/ask", r.handlers.QA.Ask)
		}
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":             "not_found",
			"error_description": "the requested resource was not found",
		})
	})
}

// Start runs the HTTP server until it is shut down.
func (r *Router) Start() error {
	r.server = &http.Server{
		Addr:           r.config.Server.Addr(),
		Handler:        r.engine,
		ReadTimeout:    r.config.Server.ReadTimeout,
		WriteTimeout:   r.config.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	r.logger.Info(context.Background(), "starting http server",
		logger.String("address", r.config.Server.Addr()))

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully.
func (r *Router) Stop(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	r.logger.Info(ctx, "stopping http server")
	return r.server.Shutdown(ctx)
}

// Engine exposes the gin engine for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
