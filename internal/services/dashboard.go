package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jmagar/ytdash/internal/dataset"
	"github.com/jmagar/ytdash/internal/models"
)

var ErrUnknownCountry = errors.New("unknown country")

const (
	viewsTitle     = "Views Over Time"
	totalsTitle    = "Total Likes vs Dislikes (Region)"
	selectedTitle  = "Likes vs Dislikes (Selected Video)"
	detailHeading  = "Selected Video Information"
	viewsTraceName = "Views"
	likesLabel     = "Likes"
	dislikesLabel  = "Dislikes"
)

// detailExclusions are never shown in the detail panel
var detailExclusions = map[string]bool{
	models.ColumnCommentsDisabled:    true,
	models.ColumnRatingsDisabled:     true,
	models.ColumnVideoErrorOrRemoved: true,
	models.ColumnVideoID:             true,
	models.ColumnCategoryID:          true,
	models.ColumnTags:                true,
	models.ColumnDescription:         true,
}

// TableColumns are the columns of the selectable video table.
var TableColumns = []models.TableColumn{
	{Name: "Video ID", ID: models.ColumnVideoID, Presentation: "markdown"},
	{Name: "Title", ID: models.ColumnTitle, Presentation: "markdown"},
	{Name: "Channel Title", ID: models.ColumnChannelTitle, Presentation: "markdown"},
}

// DashboardService derives the dashboard artifacts from the loaded datasets.
// It holds no state besides the read-only store.
type DashboardService struct {
	Store *dataset.Store
}

func NewDashboardService(store *dataset.Store) *DashboardService {
	return &DashboardService{Store: store}
}

// Update computes the view for a country and an optional selected row.
// A missing or out of range row yields empty charts and leaves the table
// and detail panel as they are.
func (s *DashboardService) Update(country string, selected *int) (*models.DashboardUpdate, error) {
	ds, ok := s.Store.Get(country)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}

	update := &models.DashboardUpdate{Country: ds.Country}

	if selected == nil || *selected < 0 || *selected >= ds.Len() {
		update.ViewsChart = models.EmptyFigure()
		update.TotalsChart = models.EmptyFigure()
		update.NoUpdate = []string{models.RegionVideoTable, models.RegionDetail}
		return update, nil
	}

	row := *selected
	update.SelectedRow = &row

	likes, dislikes := Totals(ds)
	update.ViewsChart = ViewsOverTime(ds)
	update.TotalsChart = likesDislikesPie(totalsTitle, likes, dislikes)
	update.Table = TableProjection(ds)
	update.Detail = DetailFor(ds, row)

	return update, nil
}

// Totals sums likes and dislikes over every row of the dataset
func Totals(ds *models.Dataset) (likes, dislikes int64) {
	for i := range ds.Videos {
		likes += ds.Videos[i].Likes
		dislikes += ds.Videos[i].Dislikes
	}
	return likes, dislikes
}

// ViewsOverTime pairs trending dates with views in file order. Repeated
// dates stay separate points.
func ViewsOverTime(ds *models.Dataset) models.Figure {
	x := make([]string, 0, ds.Len())
	y := make([]int64, 0, ds.Len())
	for i := range ds.Videos {
		x = append(x, ds.Videos[i].TrendingDate)
		y = append(y, ds.Videos[i].Views)
	}

	return models.Figure{
		Data: []models.Trace{{
			Type:   models.TraceBar,
			Name:   viewsTraceName,
			X:      x,
			Y:      y,
			Marker: &models.Marker{Color: models.ColorAccent},
		}},
		Layout: models.FigureLayout{
			Title:        viewsTitle,
			PaperBGColor: models.ColorBackground,
			PlotBGColor:  models.ColorBackground,
			Font:         &models.Font{Color: models.ColorText},
		},
	}
}

func likesDislikesPie(title string, likes, dislikes int64) models.Figure {
	return models.Figure{
		Data: []models.Trace{{
			Type:   models.TracePie,
			Labels: []string{likesLabel, dislikesLabel},
			Values: []int64{likes, dislikes},
			Marker: &models.Marker{Colors: []string{models.ColorAccent, models.ColorText}},
		}},
		Layout: models.FigureLayout{
			Title:        title,
			PaperBGColor: models.ColorBackground,
			Font:         &models.Font{Color: models.ColorText},
		},
	}
}

// TableProjection keeps only the table columns of every row.
func TableProjection(ds *models.Dataset) *models.TableData {
	rows := make([]models.TableRow, 0, ds.Len())
	for i := range ds.Videos {
		v := &ds.Videos[i]
		rows = append(rows, models.TableRow{
			VideoID:      v.VideoID,
			Title:        v.Title,
			ChannelTitle: v.ChannelTitle,
		})
	}

	return &models.TableData{
		Columns: TableColumns,
		Rows:    rows,
	}
}

// DetailFor lists the non-excluded columns of one row in header order,
// with a pie of that row's likes and dislikes.
func DetailFor(ds *models.Dataset, row int) *models.DetailPanel {
	v := &ds.Videos[row]

	fields := make([]models.DetailField, 0, len(ds.Columns))
	for i, col := range ds.Columns {
		if detailExclusions[col] {
			continue
		}
		fields = append(fields, models.DetailField{
			Name:  col,
			Value: cellValue(v, col, i),
		})
	}

	return &models.DetailPanel{
		Heading: detailHeading,
		Row:     row,
		Fields:  fields,
		Chart:   likesDislikesPie(selectedTitle, v.Likes, v.Dislikes),
	}
}

func cellValue(v *models.Video, col string, i int) string {
	switch col {
	case models.ColumnPublishTime:
		if v.PublishTime == nil {
			return models.MissingTime
		}
		return v.PublishTime.Format(models.DisplayTimeLayout)
	case models.ColumnViews:
		return strconv.FormatInt(v.Views, 10)
	case models.ColumnLikes:
		return strconv.FormatInt(v.Likes, 10)
	case models.ColumnDislikes:
		return strconv.FormatInt(v.Dislikes, 10)
	}

	if i < len(v.Raw) {
		return v.Raw[i]
	}
	return ""
}
