package config_test

import (
	"path/filepath"
	"testing"

	"github.com/okian/scout/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.RatingsDB, convey.ShouldEqual, "jugadoras.db")
			convey.So(cfg.ReportPath, convey.ShouldEqual, "informe_jugadoras.pdf")
			convey.So(cfg.LeaderboardSize, convey.ShouldEqual, 10)
			convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 100)
			convey.So(cfg.Datasets, convey.ShouldHaveLength, 2)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then the first dataset should be selected", func() {
			convey.So(cfg.SelectedDataset(), convey.ShouldEqual, cfg.Datasets[0])
			cfg.Dataset = "other.xlsx"
			convey.So(cfg.SelectedDataset(), convey.ShouldEqual, "other.xlsx")
		})

		convey.Convey("Then dataset paths should resolve against the data dir", func() {
			convey.So(cfg.DatasetPath("a.xlsx"), convey.ShouldEqual, filepath.Join("data", "a.xlsx"))
			abs := filepath.Join(string(filepath.Separator), "tmp", "a.xlsx")
			convey.So(cfg.DatasetPath(abs), convey.ShouldEqual, abs)
			convey.So(cfg.DatasetPath(""), convey.ShouldEqual, "")
		})
	})

	convey.Convey("Given a config without datasets", t, func() {
		cfg := config.New()
		cfg.Datasets = nil

		convey.Convey("Then no dataset should be selected", func() {
			convey.So(cfg.SelectedDataset(), convey.ShouldEqual, "")
		})
	})
}
