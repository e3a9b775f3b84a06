package handlers

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmagar/ytdash/internal/dataset"
	"github.com/jmagar/ytdash/internal/models"
	"github.com/jmagar/ytdash/internal/services"
)

//go:embed templates/dashboard.html
var dashboardTemplate string

// regionIDs names the page elements the client script redraws
var regionIDs = map[string]string{
	"dropdown":      models.RegionCountryDropdown,
	"views":         models.RegionViewsChart,
	"totals":        models.RegionTotalsChart,
	"table":         models.RegionVideoTable,
	"detail":        models.RegionDetail,
	"selectedStats": models.RegionSelectedStats,
}

var funcMap = template.FuncMap{
	"region": func(layout models.Layout, id string) models.Region {
		region, _ := layout.Region(id)
		return region
	},
	"regionIDs": func() map[string]string {
		return regionIDs
	},
}

// PageHandler serves the dashboard page and its layout
type PageHandler struct {
	Layout models.Layout
	tmpl   *template.Template
}

func NewPageHandler(store *dataset.Store, defaultCountry string) (*PageHandler, error) {
	tmpl, err := template.New("dashboard").Funcs(funcMap).Parse(dashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	return &PageHandler{
		Layout: services.BuildLayout(store, defaultCountry),
		tmpl:   tmpl,
	}, nil
}

// GET /
func (h *PageHandler) Index(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, h.Layout); err != nil {
		log.Printf("Error rendering dashboard page: %v", err)
		respondError(c, http.StatusInternalServerError, "RENDER_FAILED", "Failed to render dashboard")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// GetLayout godoc
// @Summary Describe the dashboard regions
// @Tags layout
// @Produce json
// @Success 200 {object} models.Layout
// @Router /layout [get]
//
// GET /api/v1/layout
func (h *PageHandler) GetLayout(c *gin.Context) {
	c.JSON(http.StatusOK, h.Layout)
}
