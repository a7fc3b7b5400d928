package handler

import (
	"context"
	"net/http"

	"cruises/internal/app/ds"
	"cruises/internal/app/handler/api"

	"github.com/gin-gonic/gin"
)

// CruiseLister is the only thing the cruise index needs from the store.
type CruiseLister interface {
	GetCruises(ctx context.Context) ([]ds.Cruise, error)
}

// CruiseIndex renders every cruise into cruises/index.html under the
// "cruises" binding. The request itself is not inspected. A store failure
// aborts with the mapped error status; nothing is rendered partially.
func CruiseIndex(store CruiseLister) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cruises, err := store.GetCruises(ctx.Request.Context())
		if err != nil {
			errorHandler(ctx, api.StatusFor(err), err)
			return
		}

		ctx.HTML(http.StatusOK, "cruises/index.html", gin.H{
			"cruises": cruises,
		})
	}
}
