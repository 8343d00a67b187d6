package main

import (
	"errors"
	"net/http"

	"sunflight/internal/airports"
	"sunflight/internal/recommend"

	"github.com/gin-gonic/gin"
)

// handleCalculateSeat godoc
// @Summary Calculate the best seat for a sunrise or sunset view
// @Description Computes the flight trajectory, the sun's position along it, and recommends the cabin side and seat with the best view, adjusted for forecast weather
// @Tags flight
// @Accept json
// @Produce json
// @Param request body recommend.Request true "Flight details"
// @Success 200 {object} recommend.Response
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /calculate-seat [post]
func (app *App) handleCalculateSeat(c *gin.Context) {
	var req recommend.Request

	// Bind and validate the request body
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := app.recommendService.Recommend(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, airports.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, recommend.ErrSameAirport),
			errors.Is(err, recommend.ErrInvalidPreference),
			errors.Is(err, recommend.ErrBadDeparture):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			// Unexpected failures stay generic; details go to the log only.
			app.logger.Error("failed to compute recommendation",
				"departure", req.DepartureAirport,
				"arrival", req.ArrivalAirport,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute recommendation"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
