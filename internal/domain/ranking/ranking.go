// Package ranking aggregates scout ratings into the top-rated leaderboard.
package ranking

import (
	"sort"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/types"
)

// group accumulates one player's scores in first-seen order.
type group struct {
	name  string
	sum   int
	count int
	seen  int
}

// TopRated groups ratings by player, ranks players by mean score descending
// and returns at most n entries. Players with equal means keep the order in
// which they first appear in ratings. Photos are joined by name; a missing
// photo is "".
func TopRated(ratings []model.Rating, photos map[string]string, n int) []types.Entry {
	if len(ratings) == 0 || n <= 0 {
		return []types.Entry{}
	}

	byName := make(map[string]*group)
	groups := make([]*group, 0)
	for _, r := range ratings {
		g, ok := byName[r.PlayerName]
		if !ok {
			g = &group{name: r.PlayerName, seen: len(groups)}
			byName[r.PlayerName] = g
			groups = append(groups, g)
		}
		g.sum += r.Score
		g.count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		mi, mj := mean(groups[i]), mean(groups[j])
		if mi != mj {
			return mi > mj
		}
		return groups[i].seen < groups[j].seen
	})

	if n > len(groups) {
		n = len(groups)
	}
	out := make([]types.Entry, n)
	for i, g := range groups[:n] {
		out[i] = types.Entry{
			Rank:  i + 1,
			Name:  g.name,
			Mean:  mean(g),
			Count: g.count,
			Photo: photos[g.name],
		}
	}
	return out
}

func mean(g *group) float64 {
	return float64(g.sum) / float64(g.count)
}

// History returns the ratings of one player in insertion order.
func History(ratings []model.Rating, name string) []model.Rating {
	out := make([]model.Rating, 0)
	for _, r := range ratings {
		if r.PlayerName == name {
			out = append(out, r)
		}
	}
	return out
}
