package services

import (
	"log"

	"github.com/jmagar/ytdash/internal/dataset"
	"github.com/jmagar/ytdash/internal/models"
)

const (
	DashboardTitle = "YouTube Analytics Dashboard"
	tableHeight    = "400px"
)

// BuildLayout describes the dashboard page for the loaded countries. The
// dropdown starts on defaultCountry, or on the first loaded country when
// that one is not available.
func BuildLayout(store *dataset.Store, defaultCountry string) models.Layout {
	keys := store.Keys()

	options := make([]models.Option, 0, len(keys))
	for _, key := range keys {
		options = append(options, models.Option{Label: key, Value: key})
	}

	selected := dataset.NormalizeKey(defaultCountry)
	if _, ok := store.Get(selected); !ok && len(keys) > 0 {
		log.Printf("Default country %q not loaded, using %s", defaultCountry, keys[0])
		selected = keys[0]
	}

	return models.Layout{
		Title: DashboardTitle,
		Theme: models.Theme{
			Background: models.ColorBackground,
			Accent:     models.ColorAccent,
			Text:       models.ColorText,
		},
		Rows: []models.LayoutRow{
			{Regions: []models.Region{{
				ID:      models.RegionCountryDropdown,
				Kind:    models.RegionKindDropdown,
				Width:   12,
				Options: options,
				Value:   selected,
			}}},
			{Regions: []models.Region{
				{ID: models.RegionViewsChart, Kind: models.RegionKindGraph, Width: 12},
				{ID: models.RegionTotalsChart, Kind: models.RegionKindGraph, Width: 6},
				{
					ID:            models.RegionVideoTable,
					Kind:          models.RegionKindTable,
					Width:         6,
					Columns:       TableColumns,
					RowSelectable: "single",
					SelectedRows:  []int{0},
					Height:        tableHeight,
				},
			}},
			{Regions: []models.Region{
				{ID: models.RegionDetail, Kind: models.RegionKindPanel, Width: 12},
			}},
		},
	}
}
