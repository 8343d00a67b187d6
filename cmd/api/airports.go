package main

import (
	"errors"
	"net/http"

	"sunflight/internal/airports"

	"github.com/gin-gonic/gin"
)

// SearchAirportsInput defines the query parameters for the airport search endpoint
type SearchAirportsInput struct {
	Query string `form:"query" binding:"required,min=2"` // Code, name or city fragment
	Limit int    `form:"limit,default=10" binding:"min=1,max=50"`
}

// handleGetAirport godoc
// @Summary Get airport details
// @Description Retrieve airport details by IATA code
// @Tags airports
// @Produce json
// @Param code path string true "IATA airport code" example(WAW)
// @Success 200 {object} airports.Airport
// @Failure 404 {object} map[string]string
// @Router /airports/{code} [get]
func (app *App) handleGetAirport(c *gin.Context) {
	airport, err := app.directory.Lookup(c.Param("code"))
	if err != nil {
		if errors.Is(err, airports.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to look up airport", "code", c.Param("code"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up airport"})
		return
	}

	c.JSON(http.StatusOK, airport)
}

// handleSearchAirports godoc
// @Summary Search airports
// @Description Search airports by IATA code, name or city
// @Tags airports
// @Produce json
// @Param query query string true "Search text" minLength(2) example(warsaw)
// @Param limit query int false "Maximum results" minimum(1) maximum(50) default(10)
// @Success 200 {array} airports.Airport
// @Failure 400 {object} map[string]string
// @Router /airports/search [get]
func (app *App) handleSearchAirports(c *gin.Context) {
	var input SearchAirportsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app.directory.Search(input.Query, input.Limit))
}
