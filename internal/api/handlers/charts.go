package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmagar/ytdash/internal/dataset"
	"github.com/jmagar/ytdash/internal/models"
	"github.com/jmagar/ytdash/internal/render"
	"github.com/jmagar/ytdash/internal/services"
)

// Chart names served as PNG images
const (
	ChartViews    = "views"
	ChartTotals   = "totals"
	ChartSelected = "selected"
)

// ChartHandler renders dashboard figures server side
type ChartHandler struct {
	Service *services.DashboardService
}

func NewChartHandler(store *dataset.Store) *ChartHandler {
	return &ChartHandler{
		Service: services.NewDashboardService(store),
	}
}

// GetChart godoc
// @Summary Render a dashboard figure as PNG
// @Tags charts
// @Produce png
// @Param country path string true "Country key"
// @Param chart path string true "views.png, totals.png or selected.png"
// @Param row query int false "Selected row" default(0)
// @Param width query int false "Image width in pixels, at most 2048"
// @Param height query int false "Image height in pixels, at most 2048"
// @Success 200 {file} binary
// @Success 204 "Nothing to draw for this selection"
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /charts/{country}/{chart} [get]
//
// GET /api/v1/charts/:country/:chart
func (h *ChartHandler) GetChart(c *gin.Context) {
	name := strings.TrimSuffix(c.Param("chart"), ".png")

	row, err := strconv.Atoi(c.DefaultQuery("row", "0"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_SELECTION", "row must be an integer")
		return
	}
	width, err := parseDimension(c.Query("width"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_SIZE", "width "+err.Error())
		return
	}
	height, err := parseDimension(c.Query("height"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_SIZE", "height "+err.Error())
		return
	}

	update, err := h.Service.Update(c.Param("country"), &row)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCountry) {
			respondError(c, http.StatusNotFound, "UNKNOWN_COUNTRY", fmt.Sprintf("No dataset loaded for country %q", c.Param("country")))
			return
		}
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update dashboard")
		return
	}

	var fig models.Figure
	switch name {
	case ChartViews:
		fig = update.ViewsChart
	case ChartTotals:
		fig = update.TotalsChart
	case ChartSelected:
		fig = models.EmptyFigure()
		if update.Detail != nil {
			fig = update.Detail.Chart
		}
	default:
		respondError(c, http.StatusNotFound, "UNKNOWN_CHART", fmt.Sprintf("Unknown chart %q", name))
		return
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, fig, width, height); err != nil {
		if errors.Is(err, render.ErrEmptyFigure) {
			c.Status(http.StatusNoContent)
			return
		}

		log.Printf("Error rendering %s chart for %s: %v", name, update.Country, err)
		respondError(c, http.StatusInternalServerError, "RENDER_FAILED", "Failed to render chart")
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// parseDimension reads an optional image size. Empty means the renderer's default.
func parseDimension(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > render.MaxDimension {
		return 0, fmt.Errorf("must be an integer between 0 and %d", render.MaxDimension)
	}
	return n, nil
}
