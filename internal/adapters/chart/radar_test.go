package chart

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderRadar(t *testing.T) {
	Convey("Given two players over five metrics", t, func() {
		metrics := []string{"Goles", "Asist.", "TA", "TR", "PJ"}
		series := []Series{
			{Name: "Ana", Values: []float64{4, 2, 1, 0, 10}},
			{Name: "Lea", Values: []float64{1, 5, 3, 1, 8}},
		}
		var buf bytes.Buffer

		err := RenderRadar(&buf, metrics, series)

		Convey("Then a decodable PNG should be written", func() {
			So(err, ShouldBeNil)
			img, err := png.Decode(&buf)
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, defaultSize)
			So(img.Bounds().Dy(), ShouldEqual, defaultSize)
		})
	})

	Convey("Given only zero values", t, func() {
		var buf bytes.Buffer
		err := RenderRadar(&buf, []string{"a", "b", "c"}, []Series{{Name: "x", Values: []float64{0, 0, 0}}})

		Convey("Then the chart should still render", func() {
			So(err, ShouldBeNil)
			So(buf.Len(), ShouldBeGreaterThan, 0)
		})
	})

	Convey("Given too few axes or no series", t, func() {
		var buf bytes.Buffer

		Convey("Then ErrNotEnoughAxes should be returned", func() {
			err := RenderRadar(&buf, []string{"a", "b"}, []Series{{Name: "x", Values: []float64{1, 2}}})
			So(errors.Is(err, ErrNotEnoughAxes), ShouldBeTrue)

			err = RenderRadar(&buf, []string{"a", "b", "c"}, nil)
			So(errors.Is(err, ErrNotEnoughAxes), ShouldBeTrue)
			So(buf.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given a series with the wrong number of values", t, func() {
		var buf bytes.Buffer
		err := RenderRadar(&buf, []string{"a", "b", "c"}, []Series{{Name: "x", Values: []float64{1}}})

		Convey("Then rendering should fail", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrNotEnoughAxes), ShouldBeFalse)
		})
	})
}
