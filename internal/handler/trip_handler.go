package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/trip-metrics-backend-go/internal/models"
	"github.com/jengzang/trip-metrics-backend-go/internal/service"
	"github.com/jengzang/trip-metrics-backend-go/internal/tripmetrics"
	"github.com/jengzang/trip-metrics-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for trips
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// GetTrips handles GET /api/v1/trips
func (h *TripHandler) GetTrips(c *gin.Context) {
	var filter models.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	trips, err := h.service.GetTrips(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, "Failed to get trips", err)
		return
	}

	response.Success(c, trips)
}

// GetTripByID handles GET /api/v1/trips/:id
func (h *TripHandler) GetTripByID(c *gin.Context) {
	trip, err := h.service.GetTripByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, "Failed to get trip", err)
		return
	}

	response.Success(c, trip)
}

// CreateTrip handles POST /api/v1/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid trip payload", err)
		return
	}

	trip, err := h.service.CreateTrip(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, "Failed to create trip", err)
		return
	}

	response.Created(c, trip)
}

// DeleteTrip handles DELETE /api/v1/trips/:id
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	if err := h.service.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, "Failed to delete trip", err)
		return
	}

	response.Success(c, gin.H{"id": c.Param("id")})
}

// GetTripMetrics handles GET /api/v1/trips/:id/metrics?sequence=N
func (h *TripHandler) GetTripMetrics(c *gin.Context) {
	var sequence *int64
	if raw, ok := c.GetQuery("sequence"); ok {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid sequence parameter")
			return
		}
		sequence = &v
	}

	m, err := h.service.ComputeMetrics(c.Request.Context(), c.Param("id"), sequence)
	if err != nil {
		writeServiceError(c, "Failed to compute trip metrics", err)
		return
	}

	response.Success(c, m)
}

func writeServiceError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		response.NotFound(c, "Trip not found")
	case errors.Is(err, service.ErrPointNotFound):
		response.NotFound(c, "Trip point not found")
	case errors.Is(err, tripmetrics.ErrMalformedTrip):
		response.Error(c, http.StatusBadRequest, "Trip points have duplicate sequence numbers", err)
	case errors.Is(err, tripmetrics.ErrInsufficientData):
		response.Error(c, http.StatusUnprocessableEntity, "Trip has no points", err)
	default:
		response.InternalError(c, message, err)
	}
}
