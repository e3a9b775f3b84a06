package services

import (
	"testing"

	"github.com/jmagar/ytdash/internal/dataset"
	"github.com/jmagar/ytdash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLayout(t *testing.T) {
	svc := newTestService(t)

	layout := BuildLayout(svc.Store, "us")
	assert.Equal(t, "YouTube Analytics Dashboard", layout.Title)
	assert.Equal(t, models.ColorBackground, layout.Theme.Background)

	dropdown, ok := layout.Region(models.RegionCountryDropdown)
	require.True(t, ok)
	assert.Equal(t, "US", dropdown.Value)
	assert.Equal(t, []models.Option{{Label: "US", Value: "US"}, {Label: "GB", Value: "GB"}}, dropdown.Options)

	table, ok := layout.Region(models.RegionVideoTable)
	require.True(t, ok)
	assert.Equal(t, "single", table.RowSelectable)
	assert.Equal(t, []int{0}, table.SelectedRows)
	assert.Equal(t, "400px", table.Height)
	assert.Len(t, table.Columns, 3)

	for _, id := range []string{models.RegionViewsChart, models.RegionTotalsChart, models.RegionDetail} {
		_, ok := layout.Region(id)
		assert.True(t, ok, id)
	}

	_, ok = layout.Region("does-not-exist")
	assert.False(t, ok)
}

func TestBuildLayout_DefaultFallsBackToFirstCountry(t *testing.T) {
	store, err := dataset.NewStore(&models.Dataset{Country: "CA"}, &models.Dataset{Country: "DE"})
	require.NoError(t, err)

	layout := BuildLayout(store, "US")
	dropdown, ok := layout.Region(models.RegionCountryDropdown)
	require.True(t, ok)
	assert.Equal(t, "CA", dropdown.Value)
}
