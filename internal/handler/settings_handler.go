package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/trip-metrics-backend-go/internal/models"
	"github.com/jengzang/trip-metrics-backend-go/internal/service"
	"github.com/jengzang/trip-metrics-backend-go/pkg/response"
)

// SettingsHandler handles HTTP requests for user settings
type SettingsHandler struct {
	service *service.TripService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service *service.TripService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetUnits handles GET /api/v1/settings/units
func (h *SettingsHandler) GetUnits(c *gin.Context) {
	pref, err := h.service.GetUnitPreference(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to read unit preference", err)
		return
	}

	response.Success(c, pref)
}

// UpdateUnits handles PUT /api/v1/settings/units
func (h *SettingsHandler) UpdateUnits(c *gin.Context) {
	var pref models.UnitPreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid unit preference", err)
		return
	}

	if err := h.service.UpdateUnitPreference(c.Request.Context(), pref); err != nil {
		response.InternalError(c, "Failed to update unit preference", err)
		return
	}

	response.Success(c, pref)
}
