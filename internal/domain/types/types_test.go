package types_test

import (
	"testing"

	types "github.com/okian/scout/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBounds(t *testing.T) {
	Convey("Given inclusive bounds 18..23", t, func() {
		b := types.Bounds{Min: 18, Max: 23}

		Convey("Then both ends should be contained", func() {
			So(b.Contains(18), ShouldBeTrue)
			So(b.Contains(23), ShouldBeTrue)
			So(b.Contains(20), ShouldBeTrue)
		})

		Convey("Then values outside should not be contained", func() {
			So(b.Contains(17.9), ShouldBeFalse)
			So(b.Contains(25), ShouldBeFalse)
		})
	})

	Convey("Given degenerate bounds", t, func() {
		b := types.Bounds{Min: 5, Max: 5}
		So(b.Contains(5), ShouldBeTrue)
		So(b.Contains(5.01), ShouldBeFalse)
	})
}
