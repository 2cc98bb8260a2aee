package models

import "time"

// ScoreBreakdown holds the four 1-10 sub-scores attached to every
// feedback result, whichever path produced it.
type ScoreBreakdown struct {
	Clarity       int `json:"clarity"`
	Specificity   int `json:"specificity"`
	Creativity    int `json:"creativity"`
	Effectiveness int `json:"effectiveness"`
}

// Feedback is the structured scoring result. The oracle must return this
// shape; the fallback heuristic produces it directly.
type Feedback struct {
	Score          int            `json:"score"`
	ScoreBreakdown ScoreBreakdown `json:"scoreBreakdown"`
	Strengths      []string       `json:"strengths"`
	Improvements   []string       `json:"improvements"`
	Suggestions    []string       `json:"suggestions"`
	Overall        string         `json:"overall"`
	NextSteps      string         `json:"nextSteps"`
}

// ── Request Types ─────────────────────────────────────────

type FeedbackRequest struct {
	UserPrompt       string `json:"userPrompt"`
	QuestTitle       string `json:"questTitle"`
	QuestDescription string `json:"questDescription"`
	UserID           string `json:"userId,omitempty"`
}

type HintRequest struct {
	QuestID         string   `json:"questId"`
	QuestTitle      string   `json:"questTitle"`
	QuestChallenge  string   `json:"questChallenge"`
	QuestDifficulty string   `json:"questDifficulty"`
	HintHistory     []string `json:"hintHistory"`
}

type SubmitQuestRequest struct {
	QuestID string `json:"questId"`
	Prompt  string `json:"prompt"`
}

// ── Response Types ────────────────────────────────────────

type FeedbackResponse struct {
	Feedback
	EarnedXP    int       `json:"earnedXP"`
	QuestTitle  string    `json:"questTitle"`
	SubmittedAt time.Time `json:"submittedAt"`
	// Note is set only when the heuristic produced the result.
	Note string `json:"note,omitempty"`
}

type HintResponse struct {
	Hint       string  `json:"hint"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

type SubmitQuestResponse struct {
	Feedback        FeedbackResponse `json:"feedback"`
	Progress        PlayerProgress   `json:"progress"`
	NewBadges       []Badge          `json:"newBadges"`
	NewAchievements []Achievement    `json:"newAchievements"`
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	XP            int    `json:"xp"`
	Level         int    `json:"level"`
	Streak        int    `json:"streak"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
