package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/promptquest/backend/internal/feedback"
	"github.com/promptquest/backend/internal/models"
	"github.com/promptquest/backend/internal/progression"
	"github.com/promptquest/backend/internal/quests"
)

var ErrQuestNotFound = errors.New("quest not found")

type Service struct {
	store    Store
	feedback *feedback.Service
	now      func() time.Time
}

func NewService(store Store, fb *feedback.Service) *Service {
	return &Service{store: store, feedback: fb, now: func() time.Time { return time.Now().UTC() }}
}

// GetProgress loads the player's snapshot, repairing missing or
// malformed fields. A player with no snapshot gets fresh defaults.
func (s *Service) GetProgress(ctx context.Context, key string) (models.PlayerProgress, error) {
	data, ok, err := s.store.Load(ctx, key)
	if err != nil {
		return models.PlayerProgress{}, err
	}
	if !ok {
		return progression.InitialProgress(s.now()), nil
	}
	return progression.DecodeProgress(data, s.now()), nil
}

// SaveProgress accepts a raw client snapshot, normalizes it through the
// decoder so invalid fields cannot persist, and stores the result.
func (s *Service) SaveProgress(ctx context.Context, key string, raw []byte) (models.PlayerProgress, error) {
	p := progression.DecodeProgress(raw, s.now())
	data, err := progression.EncodeProgress(p)
	if err != nil {
		return models.PlayerProgress{}, fmt.Errorf("encode progress: %w", err)
	}
	if err := s.store.Save(ctx, key, data); err != nil {
		return models.PlayerProgress{}, err
	}
	return p, nil
}

// SubmitQuest scores a prompt against a quest and applies the result to
// the player's progress in one pass.
func (s *Service) SubmitQuest(ctx context.Context, key string, req models.SubmitQuestRequest) (*models.SubmitQuestResponse, error) {
	now := s.now()
	quest, ok := quests.Resolve(req.QuestID, now)
	if !ok {
		return nil, ErrQuestNotFound
	}

	progress, err := s.GetProgress(ctx, key)
	if err != nil {
		return nil, err
	}

	fbResp := s.feedback.Evaluate(ctx, models.FeedbackRequest{
		UserPrompt:       req.Prompt,
		QuestTitle:       quest.Title,
		QuestDescription: quest.Description,
		UserID:           key,
	})

	updated, newBadges, newAchievements := progression.UpdateProgress(progress, quest.ID, fbResp.EarnedXP, fbResp.Score, now)

	data, err := progression.EncodeProgress(updated)
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	if err := s.store.Save(ctx, key, data); err != nil {
		return nil, err
	}

	err = s.store.LogSubmission(ctx, models.QuestSubmission{
		ID:          uuid.NewString(),
		PlayerKey:   key,
		QuestID:     quest.ID,
		UserPrompt:  strings.TrimSpace(req.Prompt),
		Score:       fbResp.Score,
		EarnedXP:    fbResp.EarnedXP,
		Fallback:    fbResp.Note != "",
		SubmittedAt: now,
	})
	if err != nil {
		return nil, err
	}

	return &models.SubmitQuestResponse{
		Feedback:        fbResp,
		Progress:        updated,
		NewBadges:       newBadges,
		NewAchievements: newAchievements,
	}, nil
}

func (s *Service) ListSubmissions(ctx context.Context, key string, limit int) ([]models.QuestSubmission, error) {
	return s.store.ListSubmissions(ctx, key, limit)
}
