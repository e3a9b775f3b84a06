package services

import (
	"strings"
	"testing"

	"github.com/jmagar/ytdash/internal/dataset"
	"github.com/jmagar/ytdash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExport = "video_id,trending_date,title,channel_title,category_id,publish_time,tags,views,likes,dislikes,comment_count,comments_disabled,ratings_disabled,video_error_or_removed,description\n" +
	"a1,17.14.11,First,Chan A,22,2017-11-13T17:13:01.000Z,one,100,10,1,5,False,False,False,first\n" +
	"a2,17.14.11,Second,Chan B,24,not-a-date,two,200,20,2,6,False,False,False,second\n" +
	"a3,17.15.11,Third,Chan C,10,2017-11-12T05:37:17.000Z,,300,30,3,7,False,False,False,third\n"

func newTestService(t *testing.T) *DashboardService {
	t.Helper()
	us, err := dataset.Parse("US", strings.NewReader(testExport))
	require.NoError(t, err)
	gb, err := dataset.Parse("GB", strings.NewReader(testExport[:strings.Index(testExport, "\n")+1]))
	require.NoError(t, err)

	store, err := dataset.NewStore(us, gb)
	require.NoError(t, err)
	return NewDashboardService(store)
}

func intPtr(i int) *int { return &i }

func TestDashboardService_Update_Selection(t *testing.T) {
	svc := newTestService(t)

	update, err := svc.Update("US", intPtr(1))
	require.NoError(t, err)

	assert.Equal(t, "US", update.Country)
	require.NotNil(t, update.SelectedRow)
	assert.Equal(t, 1, *update.SelectedRow)
	assert.Empty(t, update.NoUpdate)

	// Region totals cover every row, not just the selected one
	require.Len(t, update.TotalsChart.Data, 1)
	assert.Equal(t, []int64{60, 6}, update.TotalsChart.Data[0].Values)
	assert.Equal(t, []string{"Likes", "Dislikes"}, update.TotalsChart.Data[0].Labels)
	assert.Equal(t, "Total Likes vs Dislikes (Region)", update.TotalsChart.Layout.Title)

	require.NotNil(t, update.Detail)
	require.Len(t, update.Detail.Chart.Data, 1)
	assert.Equal(t, []int64{20, 2}, update.Detail.Chart.Data[0].Values)
	assert.Equal(t, "Selected Video Information", update.Detail.Heading)
}

func TestDashboardService_Update_ViewsKeepFileOrder(t *testing.T) {
	svc := newTestService(t)

	update, err := svc.Update("US", intPtr(0))
	require.NoError(t, err)

	require.Len(t, update.ViewsChart.Data, 1)
	trace := update.ViewsChart.Data[0]
	assert.Equal(t, models.TraceBar, trace.Type)
	assert.Equal(t, "Views", trace.Name)
	assert.Equal(t, []string{"17.14.11", "17.14.11", "17.15.11"}, trace.X)
	assert.Equal(t, []int64{100, 200, 300}, trace.Y)
	assert.Equal(t, "Views Over Time", update.ViewsChart.Layout.Title)
}

func TestDashboardService_Update_NoSelection(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		selected *int
	}{
		{name: "absent", selected: nil},
		{name: "negative", selected: intPtr(-1)},
		{name: "past the end", selected: intPtr(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update, err := svc.Update("US", tt.selected)
			require.NoError(t, err)

			assert.True(t, update.ViewsChart.IsEmpty())
			assert.True(t, update.TotalsChart.IsEmpty())
			assert.Nil(t, update.Table)
			assert.Nil(t, update.Detail)
			assert.Nil(t, update.SelectedRow)
			assert.Equal(t, []string{models.RegionVideoTable, models.RegionDetail}, update.NoUpdate)
		})
	}
}

func TestDashboardService_Update_EmptyDataset(t *testing.T) {
	svc := newTestService(t)

	update, err := svc.Update("GB", intPtr(0))
	require.NoError(t, err)
	assert.True(t, update.ViewsChart.IsEmpty())
	assert.Nil(t, update.Table)
}

func TestDashboardService_Update_UnknownCountry(t *testing.T) {
	svc := newTestService(t)

	update, err := svc.Update("ZZ", intPtr(0))
	assert.ErrorIs(t, err, ErrUnknownCountry)
	assert.Nil(t, update)
}

func TestDashboardService_Update_Idempotent(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Update("us", intPtr(2))
	require.NoError(t, err)
	second, err := svc.Update("US", intPtr(2))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTableProjection(t *testing.T) {
	svc := newTestService(t)
	ds, _ := svc.Store.Get("US")

	table := TableProjection(ds)
	require.Len(t, table.Rows, ds.Len())
	assert.Equal(t, models.TableRow{VideoID: "a1", Title: "First", ChannelTitle: "Chan A"}, table.Rows[0])
	assert.Equal(t, "a3", table.Rows[2].VideoID)

	ids := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		ids = append(ids, col.ID)
	}
	assert.Equal(t, []string{"video_id", "title", "channel_title"}, ids)
}

func TestDetailFor(t *testing.T) {
	svc := newTestService(t)
	ds, _ := svc.Store.Get("US")

	detail := DetailFor(ds, 0)

	names := make([]string, 0, len(detail.Fields))
	values := make(map[string]string)
	for _, f := range detail.Fields {
		names = append(names, f.Name)
		values[f.Name] = f.Value
	}

	for excluded := range detailExclusions {
		assert.NotContains(t, names, excluded)
	}
	assert.Equal(t, []string{
		"trending_date", "title", "channel_title", "publish_time",
		"views", "likes", "dislikes", "comment_count",
	}, names)

	assert.Equal(t, "2017-11-13 17:13:01", values["publish_time"])
	assert.Equal(t, "100", values["views"])
	assert.Equal(t, "5", values["comment_count"])

	// Unparseable publish times show as missing
	missing := DetailFor(ds, 1)
	for _, f := range missing.Fields {
		if f.Name == "publish_time" {
			assert.Equal(t, models.MissingTime, f.Value)
		}
	}
}

func TestTotals(t *testing.T) {
	ds := &models.Dataset{Videos: []models.Video{
		{Likes: 10, Dislikes: 1},
		{Likes: 20, Dislikes: 2},
		{Likes: 30, Dislikes: 3},
	}}

	likes, dislikes := Totals(ds)
	assert.Equal(t, int64(60), likes)
	assert.Equal(t, int64(6), dislikes)
}
