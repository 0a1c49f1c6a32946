package seedratings

import (
	"math/rand"

	"github.com/okian/scout/internal/domain/scoring"
)

var comments = []string{
	"Buen posicionamiento",
	"Mucha intensidad en la presión",
	"Le falta continuidad",
	"Gran golpeo con ambas piernas",
	"Lectura de juego por encima de la media",
	"Debe mejorar en el juego aéreo",
}

// generateRatings builds n valid rating forms over players, spreading
// scores across the rating scale. Every comment carries runID.
func generateRatings(rng *rand.Rand, players []string, n int, scout, runID string) []scoring.Form {
	if len(players) == 0 || n <= 0 {
		return nil
	}
	scale := scoring.DefaultScale
	forms := make([]scoring.Form, n)
	for i := range forms {
		forms[i] = scoring.Form{
			ScoutName:  scout,
			PlayerName: players[rng.Intn(len(players))],
			Score:      scale[rng.Intn(len(scale))],
			Comment:    comments[rng.Intn(len(comments))] + " (" + commentPrefix + runID + ")",
		}
	}
	return forms
}
