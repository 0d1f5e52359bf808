package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	analyticsdomain "github.com/smallbiznis/praxis/internal/analytics/domain"
	"github.com/smallbiznis/praxis/internal/analytics/export"
	"github.com/smallbiznis/praxis/internal/config"
	"github.com/smallbiznis/praxis/internal/observability"
	obsmiddleware "github.com/smallbiznis/praxis/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/praxis/internal/observability/metrics"
	obstracing "github.com/smallbiznis/praxis/internal/observability/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	addr := strings.TrimSpace(cfg.HTTPAddr)
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	reporting    *config.ReportingConfigHolder
	analyticsSvc analyticsdomain.Service
	renderer     *export.Renderer
	httpMetrics  *obsmetrics.HTTPMetrics
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Reporting    *config.ReportingConfigHolder
	AnalyticsSvc analyticsdomain.Service
	Renderer     *export.Renderer
	HTTPMetrics  *obsmetrics.HTTPMetrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		reporting:    p.Reporting,
		analyticsSvc: p.AnalyticsSvc,
		renderer:     p.Renderer,
		httpMetrics:  p.HTTPMetrics,
	}

	s.RegisterAnalyticsRoutes()

	return s
}

func (s *Server) RegisterAnalyticsRoutes() {
	group := s.engine.Group("/analytics")
	group.Use(ClinicianScope())

	group.GET("", s.GetDashboard)
	group.GET("/home", s.GetHomeSummary)
	group.GET("/outstanding-balances", s.GetOutstandingBalances)
	group.GET("/income", s.GetIncomeReport)
	group.GET("/income/export", s.ExportIncomeReport)
	group.GET("/income/statement", s.GetIncomeStatement)
	group.GET("/appointments", s.GetAppointmentHistogram)
	group.GET("/notes", s.GetNotesHistogram)
	group.GET("/uninvoiced", s.GetUninvoicedTotal)
}
