package api

import (
	"context"
	"net/http"
	"path/filepath"

	"cruises/internal/app/ds"
	"cruises/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ShipRepository interface {
	GetShips(ctx context.Context) ([]ds.Ship, error)
	GetShip(ctx context.Context, id int64) (ds.Ship, error)
	CreateShip(ctx context.Context, ship *ds.Ship) error
	UpdateShip(ctx context.Context, id int64, ship *ds.Ship) error
	SetShipPhoto(ctx context.Context, id int64, photo string) error
	DeleteShip(ctx context.Context, id int64) error
}

type ShipHandler struct {
	Repository ShipRepository
	Images     storage.ImageStore
}

type shipInput struct {
	Name    string `json:"name"`
	Tonnage int    `json:"tonnage"`
}

// GetShipsAPI - GET /api/ships

// @Summary List ships
// @Tags ships
// @Produce json
// @Success 200 {object} object "data: []ds.Ship, count: int"
// @Failure 500 {object} object "description: string"
// @Router /api/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	ships, err := h.Repository.GetShips(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  ships,
		"count": len(ships),
	})
}

// GetShipAPI - GET /api/ships/:id

// @Summary Get a ship
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} object "data: ds.Ship"
// @Failure 400 {object} object "description: string"
// @Failure 404 {object} object "description: string"
// @Router /api/ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ship, err := h.Repository.GetShip(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ship,
	})
}

// CreateShipAPI - POST /api/ships

// @Summary Create a ship
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body object{name=string,tonnage=int} true "Ship"
// @Success 201 {object} object "data: ds.Ship"
// @Failure 400 {object} object "description: string"
// @Failure 500 {object} object "description: string"
// @Router /api/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var input shipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"description": err.Error(),
		})
		return
	}

	ship := ds.Ship{Name: input.Name, Tonnage: input.Tonnage}
	if err := h.Repository.CreateShip(c.Request.Context(), &ship); err != nil {
		errorResponse(c, err)
		return
	}

	logrus.Infof("ship created: %s", ship)
	c.JSON(http.StatusCreated, gin.H{
		"data": ship,
	})
}

// UpdateShipAPI - PUT /api/ships/:id

// @Summary Update a ship
// @Description Replaces name and tonnage. The id in the path is authoritative.
// @Tags ships
// @Accept json
// @Produce json
// @Param id path int true "Ship ID"
// @Param ship body object{name=string,tonnage=int} true "Ship"
// @Success 200 {object} object "data: ds.Ship"
// @Failure 400 {object} object "description: string"
// @Failure 404 {object} object "description: string"
// @Router /api/ships/{id} [put]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input shipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"description": err.Error(),
		})
		return
	}

	ship := ds.Ship{Name: input.Name, Tonnage: input.Tonnage}
	if err := h.Repository.UpdateShip(c.Request.Context(), id, &ship); err != nil {
		errorResponse(c, err)
		return
	}

	updated, err := h.Repository.GetShip(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
	})
}

// DeleteShipAPI - DELETE /api/ships/:id

// @Summary Delete a ship
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} object "message: string"
// @Failure 404 {object} object "description: string"
// @Failure 409 {object} object "description: string"
// @Router /api/ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Repository.DeleteShip(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ship deleted successfully",
	})
}

// AddShipImageAPI - POST /api/ships/:id/image

// @Summary Upload a ship photo
// @Tags ships
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Ship ID"
// @Param file formData file true "Image"
// @Success 200 {object} object "data: {ship_id: int, photo_url: string}"
// @Failure 400 {object} object "description: string"
// @Failure 404 {object} object "description: string"
// @Failure 503 {object} object "description: string"
// @Router /api/ships/{id}/image [post]
func (h *ShipHandler) AddShipImageAPI(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if h.Images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"description": "Image storage is not configured",
		})
		return
	}

	ctx := c.Request.Context()
	ship, err := h.Repository.GetShip(ctx, id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"description": "Failed to parse form data",
		})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		file, header, err = c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"description": "No image file provided",
			})
			return
		}
	}
	defer file.Close()

	newFileName := uuid.NewString() + filepath.Ext(header.Filename)
	if err := h.Images.Put(ctx, newFileName, file, header.Size, header.Header.Get("Content-Type")); err != nil {
		logrus.Errorf("upload %s for ship %d: %v", newFileName, id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"description": "Failed to upload image",
		})
		return
	}

	if err := h.Repository.SetShipPhoto(ctx, id, newFileName); err != nil {
		if rmErr := h.Images.Remove(ctx, newFileName); rmErr != nil {
			logrus.Warnf("remove orphaned image %s: %v", newFileName, rmErr)
		}
		errorResponse(c, err)
		return
	}

	if ship.PhotoURL != "" {
		if err := h.Images.Remove(ctx, filepath.Base(ship.PhotoURL)); err != nil {
			logrus.Warnf("remove previous image %s: %v", ship.PhotoURL, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"ship_id":   id,
			"photo_url": newFileName,
		},
	})
}
