package quests

import (
	"testing"
	"time"
)

func TestCatalog_UniqueIDsAndSaneRewards(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range Catalog {
		if q.ID == "" || q.Title == "" || q.Challenge == "" {
			t.Errorf("quest %q has empty required fields", q.ID)
		}
		if seen[q.ID] {
			t.Errorf("duplicate quest id %q", q.ID)
		}
		seen[q.ID] = true
		if q.XPReward <= 0 {
			t.Errorf("quest %q has non-positive reward %d", q.ID, q.XPReward)
		}
	}
}

func TestByID(t *testing.T) {
	q, ok := ByID("math-mage")
	if !ok || q.Title != "Math Mage Challenge" {
		t.Errorf("ByID(math-mage) = %+v, %v", q, ok)
	}
	if _, ok := ByID("no-such-quest"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestDaily_DeterministicPerDay(t *testing.T) {
	morning := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 28, 22, 30, 0, 0, time.UTC)

	if DailyPrompt(morning) != DailyPrompt(evening) {
		t.Error("daily prompt changed within a single day")
	}
	if DailyQuestID(morning) != "daily-2026-08-28" {
		t.Errorf("unexpected daily id %q", DailyQuestID(morning))
	}
}

func TestDaily_RotatesAcrossDays(t *testing.T) {
	day := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	prompts := make(map[string]bool)
	for i := 0; i < len(dailyPrompts); i++ {
		prompts[DailyPrompt(day.AddDate(0, 0, i))] = true
	}
	if len(prompts) < 2 {
		t.Error("daily prompt never rotates")
	}
}

func TestResolve(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	if _, ok := Resolve("storytelling", now); !ok {
		t.Error("catalog quest should resolve")
	}
	if q, ok := Resolve("daily-2026-08-28", now); !ok || q.Title != "Daily Quest" {
		t.Errorf("today's daily id should resolve, got %+v, %v", q, ok)
	}
	if _, ok := Resolve("daily-2026-08-27", now); ok {
		t.Error("yesterday's daily id should not resolve")
	}
}

func TestIsDailyCompleted(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	if IsDailyCompleted([]string{"daily-2026-08-27", "math-mage"}, now) {
		t.Error("yesterday's daily should not count as completed today")
	}
	if !IsDailyCompleted([]string{"daily-2026-08-28"}, now) {
		t.Error("today's daily should count as completed")
	}
}
