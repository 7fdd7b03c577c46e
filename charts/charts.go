package charts

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/souravdas090300/recipe-app/models"
)

// Kind selects the chart variant. The zero value is invalid so a
// forgotten assignment cannot silently render the wrong chart.
type Kind int

const (
	KindBar Kind = iota + 1
	KindPie
	KindLine
)

var ErrInvalidKind = errors.New("charts: invalid chart kind")

// ParseKind maps the request selector to a Kind. Anything outside
// bar/pie/line is an error, never a default.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bar":
		return KindBar, nil
	case "pie":
		return KindPie, nil
	case "line":
		return KindLine, nil
	}
	return 0, ErrInvalidKind
}

func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindPie:
		return "pie"
	case KindLine:
		return "line"
	}
	return "invalid"
}

// LegendEntry is one difficulty slice of the pie summary. All four
// labels are always present, zero counts included, so the legend stays
// stable across searches.
type LegendEntry struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // one decimal place
}

// Payload is the rendered chart. NoData marks the zero-result
// placeholder image.
type Payload struct {
	Kind      Kind          `json:"-"`
	MediaType string        `json:"mediaType"`
	Data      []byte        `json:"-"`
	NoData    bool          `json:"noData"`
	Legend    []LegendEntry `json:"legend,omitempty"`
}

// DataURI encodes the payload for inline embedding in an <img> tag.
func (p Payload) DataURI() string {
	return "data:" + p.MediaType + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

const (
	chartWidth  = 800
	chartHeight = 500
)

// Palette carried over from the original templates.
var (
	barBlue           = drawing.Color{R: 0x34, G: 0x98, B: 0xdb, A: 255}
	lineViolet        = drawing.Color{R: 0x9b, G: 0x59, B: 0xb6, A: 255}
	difficultyPalette = map[models.Difficulty]drawing.Color{
		models.DifficultyEasy:         {R: 0x2e, G: 0xcc, B: 0x71, A: 255},
		models.DifficultyMedium:       {R: 0xf3, G: 0x9c, B: 0x12, A: 255},
		models.DifficultyIntermediate: {R: 0xe6, G: 0x7e, B: 0x22, A: 255},
		models.DifficultyHard:         {R: 0xe7, G: 0x4c, B: 0x3c, A: 255},
	}
)

// Build renders the requested chart over the filtered result set. The
// results slice is read, never mutated; everything derived (counts,
// difficulties) is recomputed here. Zero results produce a "no data"
// placeholder image instead of an error.
func Build(results []models.Recipe, kind Kind) (Payload, error) {
	switch kind {
	case KindBar, KindPie, KindLine:
	default:
		return Payload{}, ErrInvalidKind
	}

	if len(results) == 0 {
		data, err := placeholderPNG("No matching recipes")
		if err != nil {
			return Payload{}, err
		}
		p := Payload{Kind: kind, MediaType: "image/png", Data: data, NoData: true}
		if kind == KindPie {
			p.Legend = difficultyLegend(nil)
		}
		return p, nil
	}

	var buf bytes.Buffer
	var legend []LegendEntry
	var err error

	switch kind {
	case KindBar:
		err = renderBar(results, &buf)
	case KindPie:
		legend = difficultyLegend(results)
		err = renderPie(legend, &buf)
	case KindLine:
		err = renderLine(results, &buf)
	}
	if err != nil {
		return Payload{}, err
	}

	return Payload{Kind: kind, MediaType: "image/png", Data: buf.Bytes(), Legend: legend}, nil
}

func renderBar(results []models.Recipe, buf *bytes.Buffer) error {
	bars := make([]chart.Value, 0, len(results))
	maxTime := 1.0
	for _, rec := range results {
		v := float64(rec.CookingTime)
		if v > maxTime {
			maxTime = v
		}
		bars = append(bars, chart.Value{
			Value: v,
			Label: rec.Name,
			Style: chart.Style{FillColor: barBlue, StrokeColor: barBlue},
		})
	}

	bc := chart.BarChart{
		Title:      "Cooking Time by Recipe",
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   40,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis: chart.YAxis{
			Name:  "Cooking Time (minutes)",
			Range: &chart.ContinuousRange{Min: 0, Max: maxTime},
		},
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}
	return bc.Render(chart.PNG, buf)
}

func renderPie(legend []LegendEntry, buf *bytes.Buffer) error {
	// go-chart drops zero-value slices during normalization, which is
	// what we want drawn; the full four-label summary travels in the
	// payload legend.
	values := make([]chart.Value, 0, len(legend))
	for _, e := range legend {
		if e.Count == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(e.Count),
			Label: fmt.Sprintf("%s (%.1f%%)", e.Label, e.Percent),
			Style: chart.Style{FillColor: difficultyPalette[models.Difficulty(e.Label)]},
		})
	}

	pc := chart.PieChart{
		Title:  "Recipe Distribution by Difficulty",
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}
	return pc.Render(chart.PNG, buf)
}

func renderLine(results []models.Recipe, buf *bytes.Buffer) error {
	xs := make([]float64, len(results))
	ys := make([]float64, len(results))
	ticks := make([]chart.Tick, len(results))
	maxTime := 1.0
	for i, rec := range results {
		xs[i] = float64(i)
		ys[i] = float64(rec.CookingTime)
		ticks[i] = chart.Tick{Value: float64(i), Label: rec.Name}
		if ys[i] > maxTime {
			maxTime = ys[i]
		}
	}

	// go-chart refuses a one-point series (zero x-range delta), so a
	// single result is padded with a duplicate at x=1; the flat segment
	// still shows the one marker and value.
	if len(results) == 1 {
		xs = append(xs, 1)
		ys = append(ys, ys[0])
		ticks = append(ticks, chart.Tick{Value: 1, Label: ""})
	}

	graph := chart.Chart{
		Title:  "Cooking Time Trend",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(xs)-1) + 0.5},
			Style: chart.Style{TextRotationDegrees: 45},
		},
		YAxis: chart.YAxis{
			Name:  "Cooking Time (minutes)",
			Range: &chart.ContinuousRange{Min: 0, Max: maxTime},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeColor: lineViolet,
					StrokeWidth: 2,
					DotColor:    lineViolet,
					DotWidth:    5,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(chart.PNG, buf)
}

// difficultyLegend counts results per label. Percentages are rounded to
// one decimal; a nil/empty result set yields four zero entries.
func difficultyLegend(results []models.Recipe) []LegendEntry {
	counts := map[models.Difficulty]int{}
	for _, rec := range results {
		counts[rec.Difficulty()]++
	}

	total := len(results)
	legend := make([]LegendEntry, 0, 4)
	for _, d := range models.Difficulties() {
		entry := LegendEntry{Label: string(d), Count: counts[d]}
		if total > 0 {
			entry.Percent = math.Round(float64(counts[d])/float64(total)*1000) / 10
		}
		legend = append(legend, entry)
	}
	return legend
}

// placeholderPNG draws a plain image with a centered message for
// zero-result charts.
func placeholderPNG(msg string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 640, 400))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, msg).Ceil()
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0x7f, G: 0x8c, B: 0x8d, A: 255}),
		Face: face,
		Dot:  fixed.P((640-textWidth)/2, 200),
	}
	d.DrawString(msg)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
