package progression

import (
	"testing"
	"time"
)

func TestCheckForNewAchievements_LevelThresholds(t *testing.T) {
	p := InitialProgress(baseTime)

	if earned := CheckForNewAchievements(&p, 399, 1, 0, baseTime); len(earned) != 0 {
		t.Errorf("xp 399 (level 4) should earn nothing, got %v", earned)
	}

	earned := CheckForNewAchievements(&p, 400, 1, 0, baseTime)
	if len(earned) != 1 || earned[0].Type != "level_5" {
		t.Fatalf("xp 400 (level 5) should earn level_5, got %v", earned)
	}

	earned = CheckForNewAchievements(&p, 900, 1, 0, baseTime)
	want := []string{"level_5", "level_10"}
	if len(earned) != 2 || earned[0].Type != want[0] || earned[1].Type != want[1] {
		t.Errorf("xp 900 (level 10) should earn %v, got %v", want, earned)
	}
}

// Completing a 5th distinct quest fires quests_5 in the same call that
// records it, before the caller has persisted the longer list.
func TestCheckForNewAchievements_FifthQuestFires(t *testing.T) {
	p := progressWithCompleted(4)

	next, _, newAchievements := UpdateProgress(p, "brand-new", 50, 6, baseTime)

	found := false
	for _, a := range newAchievements {
		if a.Type == "quests_5" {
			found = true
		}
	}
	if !found {
		t.Fatalf("quests_5 should fire on the 5th completion, got %v", newAchievements)
	}
	if len(next.CompletedQuests) != 5 {
		t.Errorf("expected 5 completed quests, got %d", len(next.CompletedQuests))
	}
}

// Resubmitting an already-completed quest must not advance the completed
// count, so quest-count achievements cannot fire early off repeats.
func TestCheckForNewAchievements_ResubmissionDoesNotCount(t *testing.T) {
	p := progressWithCompleted(4)

	next, _, newAchievements := UpdateProgress(p, p.CompletedQuests[0], 50, 6, baseTime)

	for _, a := range newAchievements {
		if a.Type == "quests_5" {
			t.Fatal("quests_5 fired on a resubmission")
		}
	}
	if len(next.CompletedQuests) != 4 {
		t.Errorf("completed count changed on resubmission: %d", len(next.CompletedQuests))
	}
}

func TestCheckForNewAchievements_IdempotentPerType(t *testing.T) {
	p := InitialProgress(baseTime)
	earned := CheckForNewAchievements(&p, 500, 1, 5, baseTime)
	p.Achievements = append(p.Achievements, earned...)

	again := CheckForNewAchievements(&p, 600, 1, 6, baseTime.Add(time.Hour))
	if len(again) != 0 {
		t.Errorf("already-earned achievements fired again: %v", again)
	}
}
