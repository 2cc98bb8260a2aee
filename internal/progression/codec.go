package progression

import (
	"encoding/json"
	"time"

	"github.com/promptquest/backend/internal/models"
)

// EncodeProgress serializes a record in the persisted layout.
func EncodeProgress(p models.PlayerProgress) ([]byte, error) {
	return json.Marshal(p)
}

// DecodeProgress loads a persisted record, defaulting any missing or
// malformed field to its initial value. It never fails: a payload that
// isn't a JSON object at all comes back as a fresh initial record. Level
// is recomputed from xp so the two can never disagree.
func DecodeProgress(data []byte, now time.Time) models.PlayerProgress {
	p := InitialProgress(now)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return p
	}

	decodeField(fields, "id", &p.ID)
	decodeField(fields, "name", &p.Name)

	var avatar string
	if decodeField(fields, "avatar", &avatar) && avatar != "" {
		p.Avatar = avatar
	}

	var xp int
	if decodeField(fields, "xp", &xp) && xp >= 0 {
		p.XP = xp
	}
	var streak int
	if decodeField(fields, "streak", &streak) && streak >= 0 {
		p.Streak = streak
	}

	var lastActivity time.Time
	if decodeField(fields, "lastActivity", &lastActivity) && !lastActivity.IsZero() {
		p.LastActivity = lastActivity
	}

	var completed []string
	if decodeField(fields, "completedQuests", &completed) && completed != nil {
		p.CompletedQuests = completed
	}
	var badges []models.Badge
	if decodeField(fields, "badges", &badges) && badges != nil {
		p.Badges = badges
	}
	var achievements []models.Achievement
	if decodeField(fields, "achievements", &achievements) && achievements != nil {
		p.Achievements = achievements
	}

	p.Level = CalculateLevel(p.XP)
	return p
}

func decodeField[T any](fields map[string]json.RawMessage, key string, dst *T) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	*dst = v
	return true
}
