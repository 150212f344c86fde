package embeds

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	chartWidth  = 1024
	chartHeight = 640
)

// Discordのダークテーマに合わせた配色
var (
	backgroundColor = drawing.ColorFromHex("2c2f33")
	foregroundColor = drawing.ColorFromHex("ffffff")
	lineColor       = drawing.ColorFromHex("7289da")
)

// dayTicks X軸の目盛り（日）
var dayTicks = []int{2, 7, 14, 21, 28, 31}

// ActiveChart 1か月分のアクティブ症例数グラフ
type ActiveChart struct {
	Region string
	Month  string
	Year   string
	Values []float64 // Values[i] は i+1 日目
}

// Title グラフのタイトル
func (c ActiveChart) Title() string {
	month := cases.Title(language.English).String(c.Month)
	return fmt.Sprintf("Active Cases / Day, %s, %s %s", c.Region, month, c.Year)
}

// BuildActiveCasesChartPNG 日ごとのアクティブ症例数を折れ線グラフPNGにする
func BuildActiveCasesChartPNG(c ActiveChart) (*bytes.Buffer, error) {
	if len(c.Values) < 2 {
		// go-chartは幅0の範囲を描けないので代替画像を返す
		return buildPlaceholderPNG(c.Title(), "Not enough data to draw a graph.")
	}

	days := len(c.Values)
	xs := make([]float64, days)
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	ticks := make([]chart.Tick, 0, len(dayTicks))
	for _, d := range dayTicks {
		if d <= days {
			ticks = append(ticks, chart.Tick{Value: float64(d), Label: strconv.Itoa(d)})
		}
	}

	axisStyle := chart.Style{
		StrokeColor: foregroundColor,
		StrokeWidth: 1,
		FontColor:   foregroundColor,
		FontSize:    10,
	}
	nameStyle := chart.Style{FontColor: foregroundColor, FontSize: 11}

	graph := chart.Chart{
		Title:      c.Title(),
		TitleStyle: chart.Style{FontColor: foregroundColor, FontSize: 14},
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{
			FillColor: backgroundColor,
			Padding:   chart.Box{Top: 48, Left: 24, Right: 32, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: backgroundColor},
		XAxis: chart.XAxis{
			Name:      "Day",
			NameStyle: nameStyle,
			Style:     axisStyle,
			Range:     &chart.ContinuousRange{Min: 1, Max: float64(days)},
			Ticks:     ticks,
		},
		YAxis: chart.YAxis{
			Name:           "# of Active Cases / Day",
			NameStyle:      nameStyle,
			Style:          axisStyle,
			Range:          yRange(c.Values),
			ValueFormatter: countFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    c.Region,
				XValues: xs,
				YValues: c.Values,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
				},
			},
		},
	}

	buf := &bytes.Buffer{}
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf, nil
}

// yRange 値の範囲に5%の余白を付ける。全て同じ値でも幅を持たせる
func yRange(values []float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.05, 1)
	}
	lower := lo - pad
	if lo >= 0 && lower < 0 {
		lower = 0
	}
	return &chart.ContinuousRange{Min: lower, Max: hi + pad}
}

func countFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprint(v)
	}
	return humanize.Comma(int64(math.Round(f)))
}

func buildPlaceholderPNG(title, message string) (*bytes.Buffer, error) {
	const width, height = 640, 200

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.Color(backgroundColor)}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawCentered(img, face, title, width, height/2-12)
	drawCentered(img, face, message, width, height/2+12)

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf, nil
}

func drawCentered(img draw.Image, face font.Face, text string, width, y int) {
	x := (width - font.MeasureString(face, text).Ceil()) / 2
	if x < 0 {
		x = 0
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Color(foregroundColor)),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
