package progression

import (
	"time"

	"github.com/promptquest/backend/internal/models"
)

// DefaultAvatar is assigned during onboarding and when loading records
// that predate the avatar field.
const DefaultAvatar = "🧙‍♂️"

// XPPerLevel is the flat level curve: every 100 XP is one level.
const XPPerLevel = 100

// CalculateLevel derives level from total XP. Total over all xp >= 0;
// 0 XP is level 1, there is no upper bound.
func CalculateLevel(xp int) int {
	return xp/XPPerLevel + 1
}

// XPForLevel returns the XP threshold at which a level begins. Used by
// clients to render progress toward the next level.
func XPForLevel(level int) int {
	return (level - 1) * XPPerLevel
}

// InitialProgress returns the zeroed player record created when no saved
// state exists.
func InitialProgress(now time.Time) models.PlayerProgress {
	return models.PlayerProgress{
		Avatar:          DefaultAvatar,
		Level:           1,
		LastActivity:    now,
		CompletedQuests: []string{},
		Badges:          []models.Badge{},
		Achievements:    []models.Achievement{},
	}
}

// NextStreak computes the streak after activity at now, given the streak
// and lastActivity recorded before it. Calendar-day semantics in UTC:
// repeated submissions on the same day leave the streak unchanged, the
// next day extends it, any longer gap resets it to 1.
func NextStreak(streak int, lastActivity, now time.Time) int {
	if streak <= 0 {
		return 1
	}

	last := lastActivity.UTC().Truncate(24 * time.Hour)
	today := now.UTC().Truncate(24 * time.Hour)
	days := int(today.Sub(last).Hours() / 24)

	switch {
	case days == 0:
		return streak
	case days == 1:
		return streak + 1
	default:
		return 1
	}
}

// UpdateProgress applies one scored quest attempt and returns the new
// record plus any newly earned awards. The input is never mutated.
//
// XP is awarded only on a quest's first completion; resubmissions are
// re-scored for feedback but leave xp and completedQuests alone. Level is
// always recomputed from xp, and lastActivity moves with the streak.
func UpdateProgress(p models.PlayerProgress, questID string, earnedXP, score int, now time.Time) (models.PlayerProgress, []models.Badge, []models.Achievement) {
	next := p.Clone()

	next.Streak = NextStreak(p.Streak, p.LastActivity, now)
	next.LastActivity = now

	if !p.HasCompleted(questID) {
		next.XP += earnedXP
		next.CompletedQuests = append(next.CompletedQuests, questID)
	}
	next.Level = CalculateLevel(next.XP)

	// Award checks run against the pre-update record so a type earned in
	// this very call cannot double-fire.
	newBadges := CheckForNewBadges(&p, next.XP, next.Streak, score, now)
	newAchievements := CheckForNewAchievements(&p, next.XP, next.Streak, len(next.CompletedQuests), now)

	next.Badges = append(next.Badges, newBadges...)
	next.Achievements = append(next.Achievements, newAchievements...)

	return next, newBadges, newAchievements
}
