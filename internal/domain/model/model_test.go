package model_test

import (
	"errors"
	"io"
	"testing"

	model "github.com/okian/scout/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func ptr(v float64) *float64 { return &v }

func TestDataset(t *testing.T) {
	convey.Convey("Given a dataset with name and photo columns", t, func() {
		ds := model.NewDataset("sheet.xlsx",
			[]string{model.ColumnName, model.ColumnPhoto, model.ColumnAge},
			[]model.PlayerRecord{
				{Name: "Ana", Photo: "http://img/ana.png"},
				{Name: "Ana", Photo: "http://img/ana-2.png"},
				{Name: "Lea"},
				{Name: "", Photo: "http://img/orphan.png"},
			})

		convey.Convey("Then column capability checks should reflect the header", func() {
			convey.So(ds.Has(model.ColumnName), convey.ShouldBeTrue)
			convey.So(ds.Has(model.ColumnAge), convey.ShouldBeTrue)
			convey.So(ds.Has(model.ColumnTeam), convey.ShouldBeFalse)
			convey.So(ds.Len(), convey.ShouldEqual, 4)
		})

		convey.Convey("Then photos should keep the first non-empty URL per player", func() {
			photos := ds.Photos()
			convey.So(photos, convey.ShouldResemble, map[string]string{"Ana": "http://img/ana.png"})
		})
	})

	convey.Convey("Given a dataset without a photo column", t, func() {
		ds := model.NewDataset("x", []string{model.ColumnName}, []model.PlayerRecord{{Name: "Ana", Photo: "p"}})

		convey.Convey("Then photos should be empty", func() {
			convey.So(ds.Photos(), convey.ShouldBeEmpty)
		})
	})

	convey.Convey("Given a nil dataset", t, func() {
		var ds *model.Dataset

		convey.Convey("Then it should behave as empty", func() {
			convey.So(ds.Has(model.ColumnName), convey.ShouldBeFalse)
			convey.So(ds.Len(), convey.ShouldEqual, 0)
			convey.So(ds.Photos(), convey.ShouldBeEmpty)
		})
	})
}

func TestPlayerRecordMetric(t *testing.T) {
	convey.Convey("Given a player with some metrics", t, func() {
		p := model.PlayerRecord{Metrics: map[string]*float64{
			model.MetricGoals:   ptr(4),
			model.MetricAssists: nil,
		}}

		convey.Convey("Then set metrics should be returned", func() {
			v, ok := p.Metric(model.MetricGoals)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(v, convey.ShouldEqual, 4)
		})

		convey.Convey("Then null and absent metrics should report unset", func() {
			_, ok := p.Metric(model.MetricAssists)
			convey.So(ok, convey.ShouldBeFalse)
			_, ok = p.Metric(model.MetricPlayed)
			convey.So(ok, convey.ShouldBeFalse)
		})
	})

	convey.Convey("Given the column catalogue", t, func() {
		convey.So(model.IsNumericColumn(model.ColumnAge), convey.ShouldBeTrue)
		convey.So(model.IsNumericColumn(model.MetricRedCards), convey.ShouldBeTrue)
		convey.So(model.IsNumericColumn(model.ColumnTeam), convey.ShouldBeFalse)
		convey.So(model.Metrics, convey.ShouldHaveLength, 5)
	})
}

func TestKindError(t *testing.T) {
	convey.Convey("Given a wrapped storage failure", t, func() {
		err := model.WrapKind("ratings.add", model.ErrStorage, io.ErrUnexpectedEOF)

		convey.Convey("Then it should match both the kind and the cause", func() {
			convey.So(errors.Is(err, model.ErrStorage), convey.ShouldBeTrue)
			convey.So(errors.Is(err, io.ErrUnexpectedEOF), convey.ShouldBeTrue)
			convey.So(errors.Is(err, model.ErrValidation), convey.ShouldBeFalse)
			convey.So(err.Error(), convey.ShouldEqual, "ratings.add: ratings storage failed: unexpected EOF")
		})
	})

	convey.Convey("Given a kind without a cause", t, func() {
		err := model.NewKind("ratings.submit", model.ErrValidation)

		convey.Convey("Then it should match the kind", func() {
			convey.So(errors.Is(err, model.ErrValidation), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldEqual, "ratings.submit: invalid rating")
		})
	})

	convey.Convey("Given a nil cause", t, func() {
		convey.So(model.WrapKind("op", model.ErrStorage, nil), convey.ShouldBeNil)
	})
}
