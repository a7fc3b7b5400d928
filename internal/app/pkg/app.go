package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cruises/internal/app/config"
	"cruises/internal/app/handler"
	"cruises/internal/app/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
	}
}

// NewRouter builds the engine with the middleware every route shares.
func NewRouter(conf *config.Config) *gin.Engine {
	observability.RegisterMetrics()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger())
	router.Use(observability.RequestMetrics())
	if len(conf.CorsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: conf.CorsOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	return router
}

// Mount installs templates, static files and routes on the router.
func (a *Application) Mount() error {
	if err := a.Handler.RegisterTemplates(a.Router); err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	a.Handler.RegisterStatic(a.Router)
	a.Handler.SetupRoutes(a.Router)
	return nil
}

// RunApp serves until SIGINT or SIGTERM, then drains in-flight requests
// for at most ShutdownTimeout.
func (a *Application) RunApp() error {
	logrus.Info("Server start up")

	if err := a.Mount(); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		return nil
	case sig := <-quit:
		logrus.Infof("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logrus.Info("Server down")
	return nil
}
