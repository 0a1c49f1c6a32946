package model

// Rating is a scout's scored judgment of a player. Position and club are
// copied from the dataset when the rating is submitted.
type Rating struct {
	ID         int64  `json:"id"`
	ScoutName  string `json:"scout_name"`
	PlayerName string `json:"player_name"`
	Position   string `json:"position"`
	Club       string `json:"club"`
	Score      int    `json:"score"`
	Comment    string `json:"comment"`
}
