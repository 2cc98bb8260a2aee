package progression

import (
	"time"

	"github.com/google/uuid"
	"github.com/promptquest/backend/internal/models"
)

// BadgeRule is one row of the badge table. Qualifies sees the post-update
// xp and streak and the score of the triggering submission.
type BadgeRule struct {
	Type        string
	Name        string
	Description string
	Icon        string
	Qualifies   func(newXP, newStreak, score int) bool
}

// BadgeRules is evaluated in order; output order follows table order.
var BadgeRules = []BadgeRule{
	{"xp_100", "First Steps", "Earned 100 XP", "🌟",
		func(xp, _, _ int) bool { return xp >= 100 }},
	{"xp_500", "Prompt Apprentice", "Earned 500 XP", "🎯",
		func(xp, _, _ int) bool { return xp >= 500 }},
	{"xp_1000", "Prompt Master", "Earned 1000 XP", "👑",
		func(xp, _, _ int) bool { return xp >= 1000 }},
	{"streak_3", "Consistent Learner", "3-day streak", "🔥",
		func(_, streak, _ int) bool { return streak >= 3 }},
	{"streak_7", "Week Warrior", "7-day streak", "⚡",
		func(_, streak, _ int) bool { return streak >= 7 }},
	{"perfect_score", "Perfect Prompt", "Scored 9+ on a quest", "💎",
		func(_, _, score int) bool { return score >= 9 }},
}

// CheckForNewBadges returns the badges newly earned by this update.
// current is the pre-update record: a rule fires at most once per player,
// no matter how often its condition keeps holding afterwards. Multiple
// rules may fire in a single call.
func CheckForNewBadges(current *models.PlayerProgress, newXP, newStreak, score int, now time.Time) []models.Badge {
	var earned []models.Badge
	for _, rule := range BadgeRules {
		if current.HasBadge(rule.Type) || !rule.Qualifies(newXP, newStreak, score) {
			continue
		}
		earned = append(earned, models.Badge{
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
