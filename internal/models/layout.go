package models

// Region ids shared by the page, the layout and dashboard updates
const (
	RegionCountryDropdown = "country-dropdown"
	RegionViewsChart      = "views-bar-chart"
	RegionTotalsChart     = "likes-dislikes-pie-chart"
	RegionVideoTable      = "video-table"
	RegionDetail          = "selected-video-info"
	RegionSelectedStats   = "selected-video-stats"
)

type RegionKind string

const (
	RegionKindDropdown RegionKind = "dropdown"
	RegionKindGraph    RegionKind = "graph"
	RegionKindTable    RegionKind = "table"
	RegionKindPanel    RegionKind = "panel"
)

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type TableColumn struct {
	Name         string `json:"name"`
	ID           string `json:"id"`
	Presentation string `json:"presentation,omitempty"`
}

// Region is one UI slot. Width is on a 12-column grid.
type Region struct {
	ID            string        `json:"id"`
	Kind          RegionKind    `json:"kind"`
	Width         int           `json:"width"`
	Options       []Option      `json:"options,omitempty"`
	Value         string        `json:"value,omitempty"`
	Columns       []TableColumn `json:"columns,omitempty"`
	RowSelectable string        `json:"row_selectable,omitempty"`
	SelectedRows  []int         `json:"selected_rows,omitempty"`
	Height        string        `json:"height,omitempty"`
}

type LayoutRow struct {
	Regions []Region `json:"regions"`
}

type Theme struct {
	Background string `json:"background"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
}

// Layout is the static description of the dashboard page.
type Layout struct {
	Title string      `json:"title"`
	Theme Theme       `json:"theme"`
	Rows  []LayoutRow `json:"rows"`
}

// Region finds a region by id.
func (l Layout) Region(id string) (Region, bool) {
	for _, row := range l.Rows {
		for _, region := range row.Regions {
			if region.ID == id {
				return region, true
			}
		}
	}
	return Region{}, false
}
