package handlers

import (
	"net/http"

	"lfg-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves the activity catalog
type ActivityHandler struct {
	catalog *config.ActivityCatalog
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(catalog *config.ActivityCatalog) *ActivityHandler {
	return &ActivityHandler{catalog: catalog}
}

// ActivitiesResponse lists the supported activities
type ActivitiesResponse struct {
	Activities []config.Activity `json:"activities"`
}

// ListActivities lists the activities groups may be created for
// @Summary List activities
// @Tags activities
// @Produce json
// @Param category query string false "Filter by category (new, returning)"
// @Success 200 {object} ActivitiesResponse "Activity catalog"
// @Security BearerAuth
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities := h.catalog.Activities
	if category := c.Query("category"); category != "" {
		activities = h.catalog.ByCategory(config.ActivityCategory(category))
	}
	if activities == nil {
		activities = []config.Activity{}
	}

	c.JSON(http.StatusOK, ActivitiesResponse{Activities: activities})
}
