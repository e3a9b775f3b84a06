// Package render draws dashboard figures as PNG images.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmagar/ytdash/internal/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 480
	maxTicks      = 8
)

// MaxDimension bounds both sides of a rendered image.
const MaxDimension = 2048

// ErrEmptyFigure is returned for figures with nothing to draw.
var ErrEmptyFigure = errors.New("figure has no data to draw")

// PNG writes the figure as a PNG image. Only the first trace is drawn.
// Sizes of zero or less use the defaults; larger than MaxDimension are capped.
func PNG(w io.Writer, fig models.Figure, width, height int) error {
	if fig.IsEmpty() {
		return ErrEmptyFigure
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	width = min(width, MaxDimension)
	height = min(height, MaxDimension)

	trace := fig.Data[0]
	switch trace.Type {
	case models.TraceBar:
		return renderSeries(w, fig.Layout, trace, width, height)
	case models.TracePie:
		return renderPie(w, fig.Layout, trace, width, height)
	default:
		return fmt.Errorf("unsupported trace type %q", trace.Type)
	}
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func background(layout models.FigureLayout) chart.Style {
	bg := layout.PaperBGColor
	if bg == "" {
		bg = models.ColorBackground
	}
	return chart.Style{
		FillColor: color(bg),
		Padding:   chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
	}
}

func fontColor(layout models.FigureLayout) drawing.Color {
	if layout.Font != nil && layout.Font.Color != "" {
		return color(layout.Font.Color)
	}
	return color(models.ColorText)
}

// renderSeries draws a bar trace as a filled series over row positions so
// that thousands of rows stay legible. Dates label a handful of ticks.
func renderSeries(w io.Writer, layout models.FigureLayout, trace models.Trace, width, height int) error {
	if len(trace.Y) == 0 {
		return ErrEmptyFigure
	}

	xs := make([]float64, len(trace.Y))
	ys := make([]float64, len(trace.Y))
	var maxY float64
	for i, v := range trace.Y {
		xs[i] = float64(i)
		ys[i] = float64(v)
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	// A single point has no x extent to draw against.
	if len(xs) == 1 {
		xs = append(xs, 1)
		ys = append(ys, ys[0])
	}

	barColor := color(models.ColorAccent)
	if trace.Marker != nil && trace.Marker.Color != "" {
		barColor = color(trace.Marker.Color)
	}

	text := fontColor(layout)
	axisStyle := chart.Style{FontColor: text, StrokeColor: text}

	var yRange chart.Range
	if maxY == 0 {
		yRange = &chart.ContinuousRange{Min: 0, Max: 1}
	}

	canvas := color(models.ColorBackground)
	if layout.PlotBGColor != "" {
		canvas = color(layout.PlotBGColor)
	}

	ch := chart.Chart{
		Title:      layout.Title,
		TitleStyle: chart.Style{FontColor: text},
		Width:      width,
		Height:     height,
		Background: background(layout),
		Canvas:     chart.Style{FillColor: canvas},
		XAxis: chart.XAxis{
			Style: axisStyle,
			Ticks: dateTicks(trace.X, len(trace.Y)),
		},
		YAxis: chart.YAxis{
			Style: axisStyle,
			Range: yRange,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    trace.Name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: barColor,
					StrokeWidth: 1,
					FillColor:   barColor.WithAlpha(160),
				},
			},
		},
	}

	return ch.Render(chart.PNG, w)
}

// dateTicks spreads at most maxTicks labels evenly over n points.
func dateTicks(labels []string, n int) []chart.Tick {
	if len(labels) == 0 || n == 0 {
		return nil
	}
	if n > len(labels) {
		n = len(labels)
	}

	step := 1
	if n > maxTicks {
		step = (n + maxTicks - 1) / maxTicks
	}

	ticks := make([]chart.Tick, 0, maxTicks+1)
	for i := 0; i < n; i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: labels[i]})
	}
	return ticks
}

func renderPie(w io.Writer, layout models.FigureLayout, trace models.Trace, width, height int) error {
	var total int64
	values := make([]chart.Value, 0, len(trace.Values))
	for i, v := range trace.Values {
		total += v
		label := ""
		if i < len(trace.Labels) {
			label = trace.Labels[i]
		}

		style := chart.Style{FontColor: color(models.ColorBackground)}
		if trace.Marker != nil && i < len(trace.Marker.Colors) {
			style.FillColor = color(trace.Marker.Colors[i])
		}

		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %d", label, v),
			Value: float64(v),
			Style: style,
		})
	}
	if total == 0 {
		return ErrEmptyFigure
	}

	pie := chart.PieChart{
		Title:      layout.Title,
		TitleStyle: chart.Style{FontColor: fontColor(layout)},
		Width:      width,
		Height:     height,
		Background: background(layout),
		Canvas:     chart.Style{FillColor: color(models.ColorBackground)},
		Values:     values,
	}

	return pie.Render(chart.PNG, w)
}
