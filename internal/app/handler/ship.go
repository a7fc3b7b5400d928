package handler

import (
	"net/http"
	"strconv"

	"cruises/internal/app/ds"
	"cruises/internal/app/handler/api"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetShips(ctx *gin.Context) {
	var ships []ds.Ship
	var err error

	searchQuery := ctx.Query("search")
	if searchQuery == "" {
		ships, err = h.Repository.GetShips(ctx.Request.Context())
	} else {
		ships, err = h.Repository.GetShipsByName(ctx.Request.Context(), searchQuery)
	}
	if err != nil {
		h.errorHandler(ctx, api.StatusFor(err), err)
		return
	}

	ctx.HTML(http.StatusOK, "ships/index.html", gin.H{
		"ships":  ships,
		"search": searchQuery,
	})
}

func (h *Handler) GetShip(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	ship, err := h.Repository.GetShip(ctx.Request.Context(), id)
	if err != nil {
		h.errorHandler(ctx, api.StatusFor(err), err)
		return
	}

	ctx.HTML(http.StatusOK, "ships/ship.html", gin.H{
		"ship": ship,
	})
}
