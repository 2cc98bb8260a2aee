package quests

import (
	"strconv"
	"strings"
	"time"

	"github.com/promptquest/backend/internal/models"
)

// dailyPrompts rotates by date; the pick is a pure function of the UTC
// calendar day so every player sees the same quest.
var dailyPrompts = []string{
	"Design a city powered by dreams.",
	"Write a message to your future AI assistant.",
	"Invent a new subject for schools in 2120.",
	"Describe a creature that lives on the moon.",
	"Create a new sport using gravity.",
}

const dailyXPReward = 75

// DailyQuestID returns the id under which today's attempt is recorded,
// e.g. "daily-2026-08-28". A new id each day is what lets the same player
// earn daily XP again tomorrow.
func DailyQuestID(now time.Time) string {
	return "daily-" + now.UTC().Format("2006-01-02")
}

// DailyPrompt returns today's challenge text.
func DailyPrompt(now time.Time) string {
	date := now.UTC().Format("2006-01-02")
	seed, _ := strconv.Atoi(strings.ReplaceAll(date, "-", ""))
	return dailyPrompts[seed%len(dailyPrompts)]
}

// Daily assembles today's quest.
func Daily(now time.Time) models.Quest {
	return models.Quest{
		ID:          DailyQuestID(now),
		Title:       "Daily Quest",
		Description: "Creative prompt challenge",
		Challenge:   DailyPrompt(now),
		Icon:        "📅",
		Difficulty:  models.DifficultyIntermediate,
		XPReward:    dailyXPReward,
	}
}

// Resolve finds a quest by id, accepting both catalog ids and daily ids.
// Daily ids resolve only for the current day.
func Resolve(id string, now time.Time) (models.Quest, bool) {
	if q, ok := ByID(id); ok {
		return q, true
	}
	if id == DailyQuestID(now) {
		return Daily(now), true
	}
	return models.Quest{}, false
}

// IsDailyCompleted reports whether today's daily quest id is already in
// the completed set.
func IsDailyCompleted(completedQuests []string, now time.Time) bool {
	today := DailyQuestID(now)
	for _, id := range completedQuests {
		if id == today {
			return true
		}
	}
	return false
}
