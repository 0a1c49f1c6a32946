package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/scout/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.RatingsDB, convey.ShouldEqual, "jugadoras.db")
				convey.So(cfg.LeaderboardSize, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("SCOUT_ADDR", ":8080")
			_ = os.Setenv("SCOUT_RATINGS_DB", "/tmp/ratings.db")
			_ = os.Setenv("SCOUT_LEADERBOARD_SIZE", "5")
			_ = os.Setenv("SCOUT_DATA_DIR", "/srv/scouting")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.RatingsDB, convey.ShouldEqual, "/tmp/ratings.db")
				convey.So(cfg.LeaderboardSize, convey.ShouldEqual, 5)
				convey.So(cfg.DataDir, convey.ShouldEqual, "/srv/scouting")
				convey.So(cfg.ReportPath, convey.ShouldEqual, "informe_jugadoras.pdf")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
data_dir: "/data"
datasets:
  - "season.xlsx"
ratings_db: "scouting.db"
report_path: "report.pdf"
leaderboard_size: 20
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SCOUT_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DataDir, convey.ShouldEqual, "/data")
				convey.So(cfg.RatingsDB, convey.ShouldEqual, "scouting.db")
				convey.So(cfg.ReportPath, convey.ShouldEqual, "report.pdf")
				convey.So(cfg.LeaderboardSize, convey.ShouldEqual, 20)
			})

			convey.Convey("Then the dataset list should replace the defaults", func() {
				convey.So(cfg.Datasets, convey.ShouldResemble, []string{"season.xlsx"})
				convey.So(cfg.SelectedDataset(), convey.ShouldEqual, "season.xlsx")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
ratings_db: "scouting.db"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SCOUT_CONFIG", tmpFile)
			_ = os.Setenv("SCOUT_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")          // Overridden by env
				convey.So(cfg.RatingsDB, convey.ShouldEqual, "scouting.db") // From file
				convey.So(cfg.LeaderboardSize, convey.ShouldEqual, 10)     // From defaults
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SCOUT_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("SCOUT_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("SCOUT_LEADERBOARD_SIZE", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigValidation(t *testing.T) {
	convey.Convey("Given config files with invalid values", t, func() {
		ctx := context.Background()
		cases := map[string]string{
			"addr must not be empty":             `addr: ""`,
			"ratings_db must not be empty":       `ratings_db: ""`,
			"leaderboard_size must be at least 1": `leaderboard_size: 0`,
			"max_leaderboard_limit":              "leaderboard_size: 50\nmax_leaderboard_limit: 10",
		}

		for msg, content := range cases {
			tmpFile := createTempConfigFile(content)
			_ = os.Setenv("SCOUT_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, msg)
			convey.So(cfg, convey.ShouldBeNil)

			clearConfigEnvVars()
			_ = os.Remove(tmpFile)
		}
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"SCOUT_CONFIG",
		"SCOUT_ADDR",
		"SCOUT_RATINGS_DB",
		"SCOUT_LEADERBOARD_SIZE",
		"SCOUT_DATA_DIR",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "scout-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
