package models

// Quest difficulty labels, as shown on quest cards.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Quest is a static catalog entry: a named prompt-writing challenge with
// a fixed XP reward.
type Quest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Challenge   string `json:"challenge"`
	Icon        string `json:"icon"`
	Difficulty  string `json:"difficulty"`
	XPReward    int    `json:"xpReward"`
}
