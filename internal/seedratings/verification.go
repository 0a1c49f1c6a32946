package seedratings

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/ranking"
	"github.com/okian/scout/internal/domain/types"
	"github.com/okian/scout/pkg/logger"
)

// Mismatch describes one leaderboard position that differs from the
// locally computed ranking.
type Mismatch struct {
	Rank     int
	Expected types.Entry
	Got      types.Entry
}

func (m Mismatch) String() string {
	return fmt.Sprintf("rank %d: expected %s (%.3f, %d) got %s (%.3f, %d)",
		m.Rank, m.Expected.Name, m.Expected.Mean, m.Expected.Count, m.Got.Name, m.Got.Mean, m.Got.Count)
}

// verifyLeaderboard recomputes the top n from ratings and compares it with
// the served leaderboard. Photos are not compared.
func verifyLeaderboard(ratings []model.Rating, leaderboard []types.Entry, n int) []Mismatch {
	expected := ranking.TopRated(ratings, nil, n)

	size := len(expected)
	if len(leaderboard) > size {
		size = len(leaderboard)
	}

	var out []Mismatch
	for i := 0; i < size; i++ {
		var want, got types.Entry
		if i < len(expected) {
			want = expected[i]
		}
		if i < len(leaderboard) {
			got = leaderboard[i]
		}
		if want.Name != got.Name || want.Mean != got.Mean || want.Count != got.Count || want.Rank != got.Rank {
			out = append(out, Mismatch{Rank: i + 1, Expected: want, Got: got})
		}
	}
	return out
}

// countRun returns how many ratings carry the run id in their comment.
func countRun(ratings []model.Rating, runID string) int {
	n := 0
	suffix := "(" + commentPrefix + runID + ")"
	for _, r := range ratings {
		if strings.HasSuffix(r.Comment, suffix) {
			n++
		}
	}
	return n
}

// displayTopPerformers logs the served leaderboard.
func displayTopPerformers(ctx context.Context, leaderboard []types.Entry) {
	for _, e := range leaderboard {
		logger.Get().Info(ctx, "leaderboard entry",
			logger.Int("rank", e.Rank),
			logger.String("player", e.Name),
			logger.Float64("mean", e.Mean),
			logger.Int("count", e.Count))
	}
}
