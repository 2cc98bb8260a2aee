package progression

import (
	"time"

	"github.com/google/uuid"
	"github.com/promptquest/backend/internal/models"
)

// AchievementRule is one row of the achievement table. completedCount is
// the number of distinct quests completed including the one just applied.
type AchievementRule struct {
	Type        string
	Name        string
	Description string
	Icon        string
	Qualifies   func(newXP, newStreak, completedCount int) bool
}

var AchievementRules = []AchievementRule{
	{"level_5", "Rising Star", "Reached Level 5", "⭐",
		func(xp, _, _ int) bool { return CalculateLevel(xp) >= 5 }},
	{"level_10", "Expert Prompter", "Reached Level 10", "🏆",
		func(xp, _, _ int) bool { return CalculateLevel(xp) >= 10 }},
	{"quests_5", "Quest Explorer", "Completed 5 quests", "🗺️",
		func(_, _, count int) bool { return count >= 5 }},
	{"quests_10", "Quest Master", "Completed 10 quests", "🎖️",
		func(_, _, count int) bool { return count >= 10 }},
}

// CheckForNewAchievements returns achievements newly earned by this
// update, evaluated against the pre-update record for idempotency.
// Quest-count rules see only first completions, so resubmitting an
// already-completed quest cannot fire them early.
func CheckForNewAchievements(current *models.PlayerProgress, newXP, newStreak, completedCount int, now time.Time) []models.Achievement {
	var earned []models.Achievement
	for _, rule := range AchievementRules {
		if current.HasAchievement(rule.Type) || !rule.Qualifies(newXP, newStreak, completedCount) {
			continue
		}
		earned = append(earned, models.Achievement{
			ID:          uuid.NewString(),
			Type:        rule.Type,
			Name:        rule.Name,
			Description: rule.Description,
			Icon:        rule.Icon,
			EarnedAt:    now,
		})
	}
	return earned
}
