// Package hints produces quest hints, preferring the configured oracle
// and falling back to a curated scripted pool when it is unavailable.
package hints

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/promptquest/backend/internal/models"
	"github.com/promptquest/backend/internal/oracle"
)

const oracleTimeout = 20 * time.Second

type Service struct {
	client oracle.LLMClient
	rng    *rand.Rand
}

// NewService builds a hint service. client may be nil, in which case
// every request is served from the scripted pool.
func NewService(client oracle.LLMClient, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{client: client, rng: rng}
}

// GenerateHint returns a hint for the quest. Oracle errors and malformed
// replies are logged and served from the scripted pool instead.
func (s *Service) GenerateHint(ctx context.Context, req models.HintRequest) models.HintResponse {
	if s.client == nil {
		return ScriptedHint(req.QuestID, s.rng)
	}

	ctx, cancel := context.WithTimeout(ctx, oracleTimeout)
	defer cancel()

	systemPrompt := oracle.HintSystemPrompt(req.QuestTitle, req.QuestChallenge, req.QuestDifficulty, req.HintHistory)
	resp, err := s.client.Generate(ctx, systemPrompt, oracle.HintUserPrompt())
	if err != nil {
		log.Printf("[hints] oracle call failed, using scripted hint: %v", err)
		return ScriptedHint(req.QuestID, s.rng)
	}

	hint, err := oracle.ParseHint(resp.Content)
	if err != nil {
		log.Printf("[hints] unusable oracle reply, using scripted hint: %v", err)
		return ScriptedHint(req.QuestID, s.rng)
	}
	return *hint
}
