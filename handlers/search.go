package handlers

import (
	"net/http"

	"teacherdekho/services/search"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the teacher discovery surface.
type SearchHandler struct {
	Service search.SearchService
	Logger  *zap.Logger
}

func NewSearchHandler(svc search.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{Service: svc, Logger: logger}
}

// Search filters teacher listings by the posted criteria. An empty body (or
// all-empty criteria) returns every listing.
func (h *SearchHandler) Search(c *gin.Context) {
	var criteria search.Criteria
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&criteria); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
	}

	listings, err := h.Service.Search(criteria)
	if err != nil {
		h.Logger.Error("teacher search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(listings), "results": listings})
}
