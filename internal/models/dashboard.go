package models

// Theme colors of the dashboard page and its figures
const (
	ColorBackground = "#1E1E1E"
	ColorAccent     = "#FF4136"
	ColorText       = "#FFFFFF"
)

// Trace types understood by the page and the PNG renderer
const (
	TraceBar = "bar"
	TracePie = "pie"
)

// Figure is a chart description in the shape plotly.js accepts.
type Figure struct {
	Data   []Trace      `json:"data"`
	Layout FigureLayout `json:"layout"`
}

type Trace struct {
	Type   string   `json:"type"`
	Name   string   `json:"name,omitempty"`
	X      []string `json:"x,omitempty"`
	Y      []int64  `json:"y,omitempty"`
	Labels []string `json:"labels,omitempty"`
	Values []int64  `json:"values,omitempty"`
	Marker *Marker  `json:"marker,omitempty"`
}

type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
}

type FigureLayout struct {
	Title        string `json:"title,omitempty"`
	PaperBGColor string `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string `json:"plot_bgcolor,omitempty"`
	Font         *Font  `json:"font,omitempty"`
}

type Font struct {
	Color string `json:"color"`
}

// EmptyFigure returns a placeholder figure with no traces.
func EmptyFigure() Figure {
	return Figure{Data: []Trace{}}
}

// IsEmpty reports whether the figure has nothing to draw
func (f Figure) IsEmpty() bool {
	return len(f.Data) == 0
}

// TableRow is the projection of a video shown in the selectable table.
type TableRow struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
}

type TableData struct {
	Columns []TableColumn `json:"columns"`
	Rows    []TableRow    `json:"rows"`
}

type DetailField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DetailPanel holds everything shown about the selected video.
type DetailPanel struct {
	Heading string        `json:"heading"`
	Row     int           `json:"row"`
	Fields  []DetailField `json:"fields"`
	Chart   Figure        `json:"chart"`
}

// DashboardUpdate is the set of artifacts derived from one selection.
// Table and Detail are nil when the page should keep what it already shows;
// the ids of those regions are then listed in NoUpdate.
type DashboardUpdate struct {
	Country     string       `json:"country"`
	SelectedRow *int         `json:"selected_row"`
	ViewsChart  Figure       `json:"views_chart"`
	TotalsChart Figure       `json:"totals_chart"`
	Table       *TableData   `json:"table,omitempty"`
	Detail      *DetailPanel `json:"detail,omitempty"`
	NoUpdate    []string     `json:"no_update,omitempty"`
}

// UpdateRequest is the body of a dashboard update dispatched by the page.
type UpdateRequest struct {
	Country      string `json:"country" binding:"required"`
	SelectedRows []int  `json:"selected_rows"`
}
