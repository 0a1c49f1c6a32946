package seedratings

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/ranking"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/internal/domain/types"
	"github.com/okian/scout/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// fakeService serves the endpoints the seed tool talks to.
type fakeService struct {
	mu      sync.Mutex
	players []string
	ratings []model.Rating
	// skew corrupts the served leaderboard when set.
	skew bool
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /players", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"players": f.players})
	})
	mux.HandleFunc("POST /ratings", func(w http.ResponseWriter, r *http.Request) {
		var form scoring.Form
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if form.PlayerName == "Lea" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		f.mu.Lock()
		f.ratings = append(f.ratings, model.Rating{
			ID: int64(len(f.ratings) + 1), ScoutName: form.ScoutName, PlayerName: form.PlayerName,
			Score: form.Score, Comment: form.Comment,
		})
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /ratings", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(f.ratings)
	})
	mux.HandleFunc("GET /leaderboard", func(w http.ResponseWriter, r *http.Request) {
		n, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		f.mu.Lock()
		entries := ranking.TopRated(f.ratings, map[string]string{"Ana": "http://img/ana.png"}, n)
		f.mu.Unlock()
		if f.skew && len(entries) > 0 {
			entries[0].Mean += 1
		}
		_ = json.NewEncoder(w).Encode(entries)
	})
	return mux
}

func TestGenerateRatings(t *testing.T) {
	Convey("Given a seeded generator", t, func() {
		rng := rand.New(rand.NewSource(7))
		players := []string{"Ana", "Sofía"}

		Convey("When generating ratings", func() {
			forms := generateRatings(rng, players, 50, "seed", "run-1")

			Convey("Then every form should be valid and tagged", func() {
				So(forms, ShouldHaveLength, 50)
				v := scoring.NewValidator()
				for _, f := range forms {
					So(v.Validate(f), ShouldBeNil)
					So(f.Comment, ShouldEndWith, "(seed run run-1)")
					So(players, ShouldContain, f.PlayerName)
				}
			})
		})

		Convey("When there are no players", func() {
			So(generateRatings(rng, nil, 10, "seed", "r"), ShouldBeEmpty)
		})
	})
}

func TestVerifyLeaderboard(t *testing.T) {
	Convey("Given stored ratings", t, func() {
		ratings := []model.Rating{
			{PlayerName: "Ana", Score: 7},
			{PlayerName: "Sofía", Score: 9},
			{PlayerName: "Ana", Score: 9},
		}
		expected := ranking.TopRated(ratings, nil, 10)

		Convey("When the leaderboard matches, photos aside", func() {
			served := append([]types.Entry(nil), expected...)
			served[0].Photo = "http://img/x.png"

			Convey("Then there should be no mismatches", func() {
				So(verifyLeaderboard(ratings, served, 10), ShouldBeEmpty)
			})
		})

		Convey("When an entry is missing", func() {
			m := verifyLeaderboard(ratings, expected[:1], 10)

			Convey("Then the missing rank should be reported", func() {
				So(m, ShouldHaveLength, 1)
				So(m[0].Rank, ShouldEqual, 2)
				So(m[0].String(), ShouldContainSubstring, "Ana")
			})
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a running service", t, func() {
		fake := &fakeService{players: []string{"Ana", "Sofía", "Lea"}}
		srv := httptest.NewServer(fake.handler())
		defer srv.Close()

		cfg := &Config{
			BaseURL:    srv.URL,
			NumRatings: 60,
			TopN:       10,
			Workers:    4,
			Timeout:    5 * time.Second,
			Scout:      "seed",
			Seed:       42,
			OutputFile: filepath.Join(t.TempDir(), "out", "ratings.json"),
		}

		Convey("When seeding", func() {
			stats, err := Run(context.Background(), cfg)

			Convey("Then the leaderboard should verify", func() {
				So(err, ShouldBeNil)
				So(stats.RatingsGenerated, ShouldEqual, 60)
				So(stats.RatingsSubmitted, ShouldEqual, 60)
				So(stats.RatingsSuccessful+stats.RatingsRejected, ShouldEqual, 60)
				So(stats.RatingsFailed, ShouldEqual, 0)
				So(stats.Mismatches, ShouldEqual, 0)
				So(countRun(fake.ratings, stats.RunID), ShouldEqual, stats.RatingsSuccessful)
			})

			Convey("Then the submitted ratings should be saved", func() {
				data, err := os.ReadFile(cfg.OutputFile)
				So(err, ShouldBeNil)
				var forms []scoring.Form
				So(json.Unmarshal(data, &forms), ShouldBeNil)
				So(forms, ShouldHaveLength, 60)
			})
		})

		Convey("When the service serves a wrong leaderboard", func() {
			fake.skew = true
			stats, err := Run(context.Background(), cfg)

			Convey("Then the mismatch should be reported", func() {
				So(errors.Is(err, ErrMismatch), ShouldBeTrue)
				So(stats.Mismatches, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When the service has no players", func() {
			fake.players = nil
			_, err := Run(context.Background(), cfg)

			Convey("Then the run should fail early", func() {
				So(errors.Is(err, ErrNoPlayers), ShouldBeTrue)
				So(fake.ratings, ShouldBeEmpty)
			})
		})
	})
}

func TestSetupLogging(t *testing.T) {
	Convey("Given a log file", t, func() {
		path := filepath.Join(t.TempDir(), "seed.log")

		Convey("When logging is set up", func() {
			So(SetupLogging(path, false), ShouldBeNil)
			logger.Get().Info(context.Background(), "hello seed")

			Convey("Then entries should reach the file", func() {
				data, err := os.ReadFile(path)
				So(err, ShouldBeNil)
				So(strings.Contains(string(data), "hello seed"), ShouldBeTrue)
			})
		})
	})
}
