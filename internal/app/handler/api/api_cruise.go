package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cruises/internal/app/ds"
	"cruises/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CruiseRepository interface {
	GetCruises(ctx context.Context) ([]ds.Cruise, error)
	GetCruise(ctx context.Context, id int64) (ds.Cruise, error)
	CreateCruise(ctx context.Context, cruise *ds.Cruise) error
	GetShip(ctx context.Context, id int64) (ds.Ship, error)
}

type CruiseHandler struct {
	Repository CruiseRepository
}

// GetCruisesAPI - GET /api/cruises

// @Summary List cruises
// @Tags cruises
// @Produce json
// @Success 200 {object} object "data: []ds.Cruise, count: int"
// @Failure 500 {object} object "description: string"
// @Router /api/cruises [get]
func (h *CruiseHandler) GetCruisesAPI(c *gin.Context) {
	cruises, err := h.Repository.GetCruises(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  cruises,
		"count": len(cruises),
	})
}

// GetCruiseAPI - GET /api/cruises/:id

// @Summary Get a cruise
// @Tags cruises
// @Produce json
// @Param id path int true "Cruise ID"
// @Success 200 {object} object "data: ds.Cruise"
// @Failure 400 {object} object "description: string"
// @Failure 404 {object} object "description: string"
// @Router /api/cruises/{id} [get]
func (h *CruiseHandler) GetCruiseAPI(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	cruise, err := h.Repository.GetCruise(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": cruise,
	})
}

// CreateCruiseAPI - POST /api/cruises

// @Summary Create a cruise
// @Tags cruises
// @Accept json
// @Produce json
// @Param cruise body object{name=string,ship_id=int,departs_on=string,nights=int} true "Cruise"
// @Success 201 {object} object "data: ds.Cruise"
// @Failure 400 {object} object "description: string"
// @Failure 500 {object} object "description: string"
// @Router /api/cruises [post]
func (h *CruiseHandler) CreateCruiseAPI(c *gin.Context) {
	var input struct {
		Name      string    `json:"name"`
		ShipID    int64     `json:"ship_id"`
		DepartsOn time.Time `json:"departs_on"`
		Nights    int       `json:"nights"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"description": err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	ship, err := h.Repository.GetShip(ctx, input.ShipID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"description": fmt.Sprintf("ship %d does not exist", input.ShipID),
			})
			return
		}
		errorResponse(c, err)
		return
	}

	cruise := ds.Cruise{
		Name:      input.Name,
		ShipID:    ship.ID,
		DepartsOn: input.DepartsOn,
		Nights:    input.Nights,
	}
	if err := h.Repository.CreateCruise(ctx, &cruise); err != nil {
		errorResponse(c, err)
		return
	}
	cruise.Ship = ship

	logrus.Infof("cruise created: %s", cruise)
	c.JSON(http.StatusCreated, gin.H{
		"data": cruise,
	})
}
