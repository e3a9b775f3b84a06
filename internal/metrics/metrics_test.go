package metrics

import (
	"testing"

	"github.com/jmagar/ytdash/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordUpdate(t *testing.T) {
	row := 2
	before := testutil.ToFloat64(DashboardUpdatesTotal.WithLabelValues("XA", "selection"))

	RecordUpdate(&models.DashboardUpdate{Country: "XA", SelectedRow: &row})
	RecordUpdate(&models.DashboardUpdate{Country: "XA"})

	assert.Equal(t, before+1, testutil.ToFloat64(DashboardUpdatesTotal.WithLabelValues("XA", "selection")))
	assert.Equal(t, float64(1), testutil.ToFloat64(DashboardUpdatesTotal.WithLabelValues("XA", "no_selection")))
}

func TestRecordDataset(t *testing.T) {
	ds := &models.Dataset{
		Country:           "XB",
		Videos:            make([]models.Video, 4),
		DateParseFailures: 2,
	}

	RecordDataset(ds)

	assert.Equal(t, float64(4), testutil.ToFloat64(DatasetRows.WithLabelValues("XB")))
	assert.Equal(t, float64(2), testutil.ToFloat64(ParseFailuresTotal.WithLabelValues("XB", "date")))
	assert.Equal(t, float64(0), testutil.ToFloat64(ParseFailuresTotal.WithLabelValues("XB", "number")))
}

func TestRecordRequest(t *testing.T) {
	RecordRequest("GET", "/health", "200", 0.01)
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")))
}
