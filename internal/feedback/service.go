// Package feedback scores user prompts, preferring the configured oracle
// and falling back to the deterministic heuristic when it is unavailable.
package feedback

import (
	"context"
	"log"
	"time"

	"github.com/promptquest/backend/internal/models"
	"github.com/promptquest/backend/internal/oracle"
	"github.com/promptquest/backend/internal/scoring"
)

const oracleTimeout = 30 * time.Second

const fallbackNote = "AI feedback unavailable, using basic scoring"

type Service struct {
	client oracle.LLMClient
}

// NewService builds a feedback service. client may be nil, in which case
// every request is scored by the heuristic.
func NewService(client oracle.LLMClient) *Service {
	return &Service{client: client}
}

// Evaluate scores the prompt and assembles the full response envelope.
// Oracle errors and malformed replies are logged and scored by the
// heuristic instead; the response shape is identical either way.
func (s *Service) Evaluate(ctx context.Context, req models.FeedbackRequest) models.FeedbackResponse {
	questTitle := req.QuestTitle
	if questTitle == "" {
		questTitle = "Daily Quest"
	}

	fb, note := s.score(ctx, req)
	return models.FeedbackResponse{
		Feedback:    fb,
		EarnedXP:    scoring.EarnedXP(fb.Score),
		QuestTitle:  questTitle,
		SubmittedAt: time.Now().UTC(),
		Note:        note,
	}
}

func (s *Service) score(ctx context.Context, req models.FeedbackRequest) (models.Feedback, string) {
	if s.client == nil {
		return scoring.Evaluate(req.UserPrompt), fallbackNote
	}

	ctx, cancel := context.WithTimeout(ctx, oracleTimeout)
	defer cancel()

	systemPrompt := oracle.FeedbackSystemPrompt()
	userPrompt := oracle.BuildFeedbackUserPrompt(req.QuestTitle, req.QuestDescription, req.UserPrompt)

	resp, err := s.client.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("[feedback] oracle call failed, using heuristic: %v", err)
		return scoring.Evaluate(req.UserPrompt), fallbackNote
	}

	fb, err := oracle.ParseFeedback(resp.Content)
	if err != nil {
		log.Printf("[feedback] unusable oracle reply, using heuristic: %v", err)
		return scoring.Evaluate(req.UserPrompt), fallbackNote
	}
	return *fb, ""
}
