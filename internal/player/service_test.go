package player

import (
	"context"
	"testing"
	"time"

	"github.com/promptquest/backend/internal/feedback"
	"github.com/promptquest/backend/internal/models"
)

var baseTime = time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC)

func newTestService() (*Service, *MemStore) {
	store := NewMemStore()
	return newServiceWith(store), store
}

func newServiceWith(store Store) *Service {
	svc := NewService(store, feedback.NewService(nil))
	svc.now = func() time.Time { return baseTime }
	return svc
}

func TestGetProgress_NewPlayerGetsDefaults(t *testing.T) {
	svc, _ := newTestService()
	p, err := svc.GetProgress(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if p.XP != 0 || p.Level != 1 || p.Streak != 0 {
		t.Errorf("defaults = xp %d level %d streak %d", p.XP, p.Level, p.Streak)
	}
	if p.CompletedQuests == nil || p.Badges == nil || p.Achievements == nil {
		t.Error("collections must be non-nil")
	}
}

func TestSaveProgress_NormalizesSnapshot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Level inconsistent with XP and a negative streak.
	raw := []byte(`{"xp": 250, "level": 99, "streak": -3, "completedQuests": ["1"]}`)
	saved, err := svc.SaveProgress(ctx, "p1", raw)
	if err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}
	if saved.Level != 3 {
		t.Errorf("Level = %d, want 3 (derived from xp 250)", saved.Level)
	}
	if saved.Streak != 0 {
		t.Errorf("Streak = %d, want 0", saved.Streak)
	}

	loaded, err := svc.GetProgress(ctx, "p1")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if loaded.XP != 250 || loaded.Level != 3 {
		t.Errorf("round-trip = xp %d level %d", loaded.XP, loaded.Level)
	}
}

func TestSubmitQuest_EndToEnd(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.SubmitQuest(ctx, "p1", models.SubmitQuestRequest{
		QuestID: "2",
		Prompt:  "Write a nostalgic poem about childhood memories of playing in the rain, using vivid sensory details and a gentle rhythm",
	})
	if err != nil {
		t.Fatalf("SubmitQuest: %v", err)
	}

	if resp.Feedback.Score < 1 {
		t.Errorf("score = %d", resp.Feedback.Score)
	}
	if resp.Feedback.Note == "" {
		t.Error("heuristic path should set the fallback note")
	}
	if resp.Progress.XP != resp.Feedback.EarnedXP {
		t.Errorf("XP = %d, want %d", resp.Progress.XP, resp.Feedback.EarnedXP)
	}
	if !resp.Progress.HasCompleted("2") {
		t.Error("quest not marked completed")
	}
	if resp.Progress.Streak != 1 {
		t.Errorf("Streak = %d, want 1", resp.Progress.Streak)
	}

	// Progress must have been persisted.
	loaded, err := svc.GetProgress(ctx, "p1")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if loaded.XP != resp.Progress.XP {
		t.Errorf("persisted XP = %d, want %d", loaded.XP, resp.Progress.XP)
	}

	subs, err := svc.ListSubmissions(ctx, "p1", 0)
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("submissions = %d, want 1", len(subs))
	}
	if subs[0].QuestID != "2" || subs[0].ID == "" || !subs[0].Fallback {
		t.Errorf("unexpected submission %+v", subs[0])
	}
}

func TestSubmitQuest_ResubmissionAwardsNoXP(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	req := models.SubmitQuestRequest{
		QuestID: "math-mage",
		Prompt:  "Solve the quadratic equation step by step, explaining the factoring process clearly for a student",
	}

	first, err := svc.SubmitQuest(ctx, "p1", req)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.SubmitQuest(ctx, "p1", req)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if second.Progress.XP != first.Progress.XP {
		t.Errorf("resubmission changed XP: %d -> %d", first.Progress.XP, second.Progress.XP)
	}
	if len(second.Progress.CompletedQuests) != 1 {
		t.Errorf("completed quests = %d, want 1", len(second.Progress.CompletedQuests))
	}

	// Both attempts still appear in history.
	subs, _ := svc.ListSubmissions(ctx, "p1", 0)
	if len(subs) != 2 {
		t.Errorf("submissions = %d, want 2", len(subs))
	}
}

func TestSubmitQuest_UnknownQuest(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.SubmitQuest(context.Background(), "p1", models.SubmitQuestRequest{
		QuestID: "no-such-quest",
		Prompt:  "anything at all that is long enough",
	})
	if err != ErrQuestNotFound {
		t.Errorf("err = %v, want ErrQuestNotFound", err)
	}
}

func TestSubmitQuest_DailyQuest(t *testing.T) {
	svc, _ := newTestService()
	resp, err := svc.SubmitQuest(context.Background(), "p1", models.SubmitQuestRequest{
		QuestID: "daily-2026-08-20",
		Prompt:  "Create a detailed plan for organizing a community garden, including layout and volunteer schedules",
	})
	if err != nil {
		t.Fatalf("SubmitQuest daily: %v", err)
	}
	if !resp.Progress.HasCompleted("daily-2026-08-20") {
		t.Error("daily quest not recorded")
	}
}

func TestLeaderboard(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveProgress(ctx, "p1", []byte(`{"name": "Rook", "xp": 2000, "streak": 2}`)); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	board, err := svc.Leaderboard(ctx, "p1")
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(board.Entries) != len(mockRivals)+1 {
		t.Fatalf("entries = %d, want %d", len(board.Entries), len(mockRivals)+1)
	}

	var me *models.LeaderboardEntry
	for i := range board.Entries {
		e := &board.Entries[i]
		if e.Rank != i+1 {
			t.Errorf("entry %d has rank %d", i, e.Rank)
		}
		if i > 0 && board.Entries[i-1].XP < e.XP {
			t.Error("entries not sorted by XP descending")
		}
		if e.IsCurrentUser {
			me = e
		}
	}
	if me == nil {
		t.Fatal("requesting player missing from board")
	}
	if me.Name != "Rook" || me.XP != 2000 || me.Rank != 3 {
		t.Errorf("player entry %+v, want Rook at rank 3", me)
	}
}

func TestLeaderboard_AnonymousRosterOnly(t *testing.T) {
	svc, _ := newTestService()
	board, err := svc.Leaderboard(context.Background(), "")
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(board.Entries) != len(mockRivals) {
		t.Errorf("entries = %d, want %d", len(board.Entries), len(mockRivals))
	}
	for _, e := range board.Entries {
		if e.IsCurrentUser {
			t.Error("no entry should be the current user")
		}
	}
}
