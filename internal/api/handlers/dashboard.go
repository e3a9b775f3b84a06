package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmagar/ytdash/internal/dataset"
	"github.com/jmagar/ytdash/internal/metrics"
	"github.com/jmagar/ytdash/internal/models"
	"github.com/jmagar/ytdash/internal/services"
)

// DashboardHandler dispatches selection changes to the dashboard service
type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(store *dataset.Store) *DashboardHandler {
	return &DashboardHandler{
		Service: services.NewDashboardService(store),
	}
}

// GetDashboard godoc
// @Summary Derive the dashboard view for a country
// @Tags dashboard
// @Produce json
// @Param country path string true "Country key"
// @Param selected_rows query []int false "Selected table rows; the first one is used" collectionFormat(multi)
// @Success 200 {object} models.DashboardUpdate
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /dashboard/{country} [get]
//
// GET /api/v1/dashboard/:country
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	selected, err := parseSelectedRows(c.QueryArray("selected_rows"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_SELECTION", err.Error())
		return
	}

	h.respond(c, c.Param("country"), selected)
}

// PostUpdate godoc
// @Summary Apply a selection change sent by the page
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.UpdateRequest true "Selection state"
// @Success 200 {object} models.DashboardUpdate
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /dashboard/update [post]
//
// POST /api/v1/dashboard/update
func (h *DashboardHandler) PostUpdate(c *gin.Context) {
	var req models.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format: "+err.Error())
		return
	}

	var selected *int
	if len(req.SelectedRows) > 0 {
		selected = &req.SelectedRows[0]
	}

	h.respond(c, req.Country, selected)
}

// GetCountries godoc
// @Summary List loaded countries
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /countries [get]
//
// GET /api/v1/countries
func (h *DashboardHandler) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":  h.Service.Store.Summaries(),
		"total": h.Service.Store.Len(),
	})
}

func (h *DashboardHandler) respond(c *gin.Context, country string, selected *int) {
	update, err := h.Service.Update(country, selected)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCountry) {
			respondError(c, http.StatusNotFound, "UNKNOWN_COUNTRY", fmt.Sprintf("No dataset loaded for country %q", country))
			return
		}

		log.Printf("Error updating dashboard for %s: %v", country, err)
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update dashboard")
		return
	}

	metrics.RecordUpdate(update)
	c.JSON(http.StatusOK, update)
}

// parseSelectedRows returns the first selected row, or nil when nothing is
// selected. Values may be repeated or comma separated.
func parseSelectedRows(values []string) (*int, error) {
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			row, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("selected_rows must be integers, got %q", part)
			}
			return &row, nil
		}
	}

	return nil, nil
}
