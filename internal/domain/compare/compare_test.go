package compare_test

import (
	"testing"

	"github.com/okian/scout/internal/domain/compare"
	"github.com/okian/scout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func num(v float64) *float64 { return &v }

func stats(goals, assists, yellow, red, played *float64) map[string]*float64 {
	return map[string]*float64{
		model.MetricGoals:       goals,
		model.MetricAssists:     assists,
		model.MetricYellowCards: yellow,
		model.MetricRedCards:    red,
		model.MetricPlayed:      played,
	}
}

func TestCompare(t *testing.T) {
	Convey("Given a dataset with every metric column", t, func() {
		columns := append([]string{model.ColumnName}, model.Metrics...)
		ds := model.NewDataset("x", columns, []model.PlayerRecord{
			{Name: "Ana", Metrics: stats(num(3), num(1), num(0), num(0), num(10))},
			{Name: "Ana", Metrics: stats(num(2), nil, num(1), num(0), num(5))},
			{Name: "Lea", Metrics: stats(num(0), num(4), num(2), num(1), num(12))},
		})
		ratings := []model.Rating{
			{ID: 1, PlayerName: "Ana", Score: 9, ScoutName: "X"},
			{ID: 2, PlayerName: "Mia", Score: 5},
			{ID: 3, PlayerName: "Ana", Score: 7, ScoutName: "Y"},
		}

		Convey("When comparing two players", func() {
			c := compare.Compare(ds, ratings, "Ana", "Lea")

			Convey("Then metrics should be summed per player with nulls as zero", func() {
				So(c.A.Totals[model.MetricGoals], ShouldEqual, 5)
				So(c.A.Totals[model.MetricAssists], ShouldEqual, 1)
				So(c.A.Totals[model.MetricPlayed], ShouldEqual, 15)
				So(c.B.Values(c.Metrics), ShouldResemble, []float64{0, 4, 2, 1, 12})
			})

			Convey("Then the radar should be available over all five metrics", func() {
				So(c.RadarAvailable, ShouldBeTrue)
				So(c.Metrics, ShouldResemble, model.Metrics)
			})

			Convey("Then rating histories should be attached in insertion order", func() {
				So(c.A.Ratings, ShouldHaveLength, 2)
				So(c.A.Ratings[0].ScoutName, ShouldEqual, "X")
				So(c.B.Ratings, ShouldBeEmpty)
			})

			Convey("Then both players should be found with their rows", func() {
				So(c.A.Found, ShouldBeTrue)
				So(c.A.Rows, ShouldHaveLength, 2)
				So(c.B.Rows, ShouldHaveLength, 1)
			})
		})

		Convey("When one player is not in the dataset", func() {
			c := compare.Compare(ds, ratings, "Ana", "Mia")

			Convey("Then that side should be empty but keep its ratings", func() {
				So(c.B.Found, ShouldBeFalse)
				So(c.B.Rows, ShouldBeEmpty)
				So(c.B.Totals[model.MetricGoals], ShouldEqual, 0)
				So(c.B.Ratings, ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given a dataset with only two metric columns", t, func() {
		ds := model.NewDataset("x", []string{model.ColumnName, model.MetricGoals, model.MetricPlayed},
			[]model.PlayerRecord{{Name: "Ana", Metrics: map[string]*float64{model.MetricGoals: num(1)}}})

		Convey("Then only those metrics should be compared and the radar hidden", func() {
			c := compare.Compare(ds, nil, "Ana", "Ana")
			So(c.Metrics, ShouldResemble, []string{model.MetricGoals, model.MetricPlayed})
			So(c.RadarAvailable, ShouldBeFalse)
			So(c.A.Totals, ShouldResemble, map[string]float64{model.MetricGoals: 1, model.MetricPlayed: 0})
		})
	})
}
