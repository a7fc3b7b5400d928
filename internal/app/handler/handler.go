package handler

import (
	"context"
	"net/http"

	"cruises/internal/app/ds"
	"cruises/internal/app/handler/api"
	"cruises/internal/app/storage"
	"cruises/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Store is what the HTML pages read.
type Store interface {
	CruiseLister
	GetShips(ctx context.Context) ([]ds.Ship, error)
	GetShipsByName(ctx context.Context, name string) ([]ds.Ship, error)
	GetShip(ctx context.Context, id int64) (ds.Ship, error)
	Ping(ctx context.Context) error
}

// Repository is the full store surface, pages and JSON API together.
type Repository interface {
	Store
	api.ShipRepository
	api.CruiseRepository
}

type Handler struct {
	Repository       Store
	ShipAPIHandler   *api.ShipHandler
	CruiseAPIHandler *api.CruiseHandler
}

// NewHandler wires the handlers to rep. images may be nil, in which case
// photo uploads answer 503.
func NewHandler(rep Repository, images storage.ImageStore) *Handler {
	return &Handler{
		Repository:       rep,
		ShipAPIHandler:   &api.ShipHandler{Repository: rep, Images: images},
		CruiseAPIHandler: &api.CruiseHandler{Repository: rep},
	}
}

// SetupRoutes is the complete URL table of the service.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/cruises/", CruiseIndex(h.Repository))
	router.GET("/ships", h.GetShips)
	router.GET("/ship/:id", h.GetShip)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ready", h.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/cruises", h.CruiseAPIHandler.GetCruisesAPI)
		apiGroup.GET("/cruises/:id", h.CruiseAPIHandler.GetCruiseAPI)
		apiGroup.POST("/cruises", h.CruiseAPIHandler.CreateCruiseAPI)

		apiGroup.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
		apiGroup.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)
		apiGroup.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
		apiGroup.PUT("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
		apiGroup.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
		apiGroup.POST("/ships/:id/image", h.ShipAPIHandler.AddShipImageAPI)
	}
}

func (h *Handler) RegisterTemplates(router *gin.Engine) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)
	return nil
}

func (h *Handler) RegisterStatic(router *gin.Engine) {
	router.StaticFS("/static", http.FS(web.Static()))
}

// Ready reports whether the database answers.
func (h *Handler) Ready(c *gin.Context) {
	if err := h.Repository.Ping(c.Request.Context()); err != nil {
		logrus.Warnf("readiness check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}

func (h *Handler) errorHandler(c *gin.Context, code int, err error) {
	errorHandler(c, code, err)
}

func errorHandler(c *gin.Context, code int, err error) {
	logrus.Error(err.Error())
	c.JSON(code, gin.H{
		"description": err.Error(),
	})
}
