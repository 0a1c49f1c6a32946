// Package chart renders the comparison radar chart as PNG.
package chart

import (
	"errors"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/rotisserie/eris"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// MinAxes is the smallest number of metrics a radar can show.
const MinAxes = 3

const (
	defaultSize  = 480
	rings        = 4
	labelPadding = 28
	fontSize     = 13
)

// ErrNotEnoughAxes is returned when fewer than MinAxes metrics or no series
// are given.
var ErrNotEnoughAxes = errors.New("radar needs at least three metrics and one series")

// Series is one polygon on the radar; Values align with the metric axes.
type Series struct {
	Name   string
	Values []float64
}

// Fill and stroke colours, one per series, reused cyclically.
var palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
}

var (
	faceOnce sync.Once
	faceErr  error
	face     font.Face
)

func labelFace() (font.Face, error) {
	faceOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			faceErr = eris.Wrap(err, "chart: parse font")
			return
		}
		face = truetype.NewFace(f, &truetype.Options{Size: fontSize, Hinting: font.HintingNone})
	})
	return face, faceErr
}

// RenderRadar draws one closed polygon per series over the metric axes and
// writes the PNG to w. All series share one radial scale whose outer ring is
// the largest value.
func RenderRadar(w io.Writer, metrics []string, series []Series) error {
	if len(metrics) < MinAxes || len(series) == 0 {
		return ErrNotEnoughAxes
	}
	for _, s := range series {
		if len(s.Values) != len(metrics) {
			return eris.Errorf("chart: series %q has %d values for %d metrics", s.Name, len(s.Values), len(metrics))
		}
	}

	lf, err := labelFace()
	if err != nil {
		return err
	}

	dc := gg.NewContext(defaultSize, defaultSize)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(lf)

	cx, cy := float64(defaultSize)/2, float64(defaultSize)/2
	radius := float64(defaultSize)/2 - labelPadding*2
	n := len(metrics)
	angle := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}

	// Grid rings and spokes.
	dc.SetRGB(0.8, 0.8, 0.8)
	dc.SetLineWidth(1)
	for r := 1; r <= rings; r++ {
		rr := radius * float64(r) / rings
		for i := 0; i < n; i++ {
			a := angle(i)
			dc.LineTo(cx+rr*math.Cos(a), cy+rr*math.Sin(a))
		}
		dc.ClosePath()
		dc.Stroke()
	}
	for i := 0; i < n; i++ {
		a := angle(i)
		dc.DrawLine(cx, cy, cx+radius*math.Cos(a), cy+radius*math.Sin(a))
		dc.Stroke()
	}

	// Axis labels.
	dc.SetRGB(0.2, 0.2, 0.2)
	for i, m := range metrics {
		a := angle(i)
		lx := cx + (radius+labelPadding/2)*math.Cos(a)
		ly := cy + (radius+labelPadding/2)*math.Sin(a)
		dc.DrawStringAnchored(m, lx, ly, 0.5-0.5*math.Cos(a), 0.5-0.5*math.Sin(a))
	}

	top := maxValue(series)
	for si, s := range series {
		c := palette[si%len(palette)]
		for i, v := range s.Values {
			rr := 0.0
			if top > 0 && v > 0 {
				rr = radius * v / top
			}
			a := angle(i)
			dc.LineTo(cx+rr*math.Cos(a), cy+rr*math.Sin(a))
		}
		dc.ClosePath()
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 0x50)
		dc.FillPreserve()
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 0xff)
		dc.SetLineWidth(2)
		dc.Stroke()

		// Legend.
		ly := float64(labelPadding/2 + si*(fontSize+6))
		dc.DrawRectangle(8, ly-fontSize/2, 10, 10)
		dc.Fill()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(s.Name, 24, ly, 0, 0.5)
	}

	return eris.Wrap(dc.EncodePNG(w), "chart: encode png")
}

func maxValue(series []Series) float64 {
	top := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			if v > top {
				top = v
			}
		}
	}
	return top
}
