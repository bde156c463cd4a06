package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dentalanalytics/clinicas/clinicas"
	"github.com/dentalanalytics/clinicas/config"
	clinicasErrors "github.com/dentalanalytics/clinicas/errors"
	"github.com/dentalanalytics/clinicas/logger"
	"github.com/dentalanalytics/clinicas/store"
)

func Start(e *echo.Echo, cfg *config.Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	address := fmt.Sprintf(":%d", cfg.Port)
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Infof("API listening on http://localhost:%d", cfg.Port)
				if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Errorw("server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func NewServer(handler *Handler, cfg *config.Config, zapLogger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Pre middleware runs before routing so unmatched routes and preflight
	// requests still carry the response headers
	e.Pre(echozap.ZapLogger(zapLogger))
	e.Pre(CORS(DefaultCORSConfig(cfg.AllowedOrigin)))
	e.Use(middleware.Recover())

	e.HTTPErrorHandler = clinicasErrors.CustomHTTPErrorHandler
	RegisterHandlers(e, handler)

	return e
}

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewConfig,
			logger.NewProductionLogger,
			logger.Suggar,
			store.NewConfig,
			store.NewSessions,
			clinicas.NewService,
			NewHandler,
			NewServer,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
	}
}

func MainLoop() {
	fx.New(
		append(Dependencies(), fx.Invoke(Start))...,
	).Run()
}
