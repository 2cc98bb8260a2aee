package models

import "time"

// PlayerProgress is the single per-player state record. The JSON field
// names are the persisted schema: a payload exported from a browser's
// promptQuestUser key loads unchanged.
type PlayerProgress struct {
	ID              string        `json:"id,omitempty"`
	Name            string        `json:"name"`
	Avatar          string        `json:"avatar"`
	XP              int           `json:"xp"`
	Level           int           `json:"level"`
	Streak          int           `json:"streak"`
	LastActivity    time.Time     `json:"lastActivity"`
	CompletedQuests []string      `json:"completedQuests"`
	Badges          []Badge       `json:"badges"`
	Achievements    []Achievement `json:"achievements"`
}

// Badge is a permanent award. At most one badge of a given Type exists
// per player.
type Badge struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// Achievement is structurally identical to Badge but tracked as a
// separate collection with its own rule table.
type Achievement struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// HasBadge reports whether the player already holds a badge of the
// given type.
func (p *PlayerProgress) HasBadge(badgeType string) bool {
	for _, b := range p.Badges {
		if b.Type == badgeType {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the player already holds an achievement
// of the given type.
func (p *PlayerProgress) HasAchievement(achievementType string) bool {
	for _, a := range p.Achievements {
		if a.Type == achievementType {
			return true
		}
	}
	return false
}

// HasCompleted reports whether the quest has already been completed.
// completedQuests is semantically a set; membership is what matters.
func (p *PlayerProgress) HasCompleted(questID string) bool {
	for _, q := range p.CompletedQuests {
		if q == questID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so progression updates never alias the
// caller's slices.
func (p PlayerProgress) Clone() PlayerProgress {
	cp := p
	cp.CompletedQuests = append([]string(nil), p.CompletedQuests...)
	cp.Badges = append([]Badge(nil), p.Badges...)
	cp.Achievements = append([]Achievement(nil), p.Achievements...)
	return cp
}

// QuestSubmission is one scored attempt, logged for history display.
type QuestSubmission struct {
	ID          string    `json:"id"`
	PlayerKey   string    `json:"player_key"`
	QuestID     string    `json:"quest_id"`
	UserPrompt  string    `json:"user_prompt"`
	Score       int       `json:"score"`
	EarnedXP    int       `json:"earned_xp"`
	Fallback    bool      `json:"fallback"`
	SubmittedAt time.Time `json:"submitted_at"`
}
