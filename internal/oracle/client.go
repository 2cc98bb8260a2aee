// Package oracle adapts external text-generation services behind a small
// client interface. Everything here can fail; callers fall back to the
// deterministic scoring heuristic or scripted hints when it does.
package oracle

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// LLMClient is the interface all oracle implementations satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// NewClient picks an oracle implementation from the environment. It
// returns nil when no oracle is configured at all; callers treat nil as
// "always use the fallback path".
func NewClient() LLMClient {
	if os.Getenv("USE_CLI_ORACLE") == "true" {
		cliPath := os.Getenv("CLAUDE_CLI_PATH")
		if cliPath == "" {
			cliPath = "claude"
		}
		log.Println("[oracle] using Claude CLI")
		return NewCLIClient(cliPath)
	}

	if os.Getenv("MOCK_ORACLE") == "true" {
		log.Println("[oracle] using mock responses")
		return NewMockClient()
	}

	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		log.Println("[oracle] no API key configured, fallback scoring only")
		return nil
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-sonnet-4-5-20250929"
	}
	log.Println("[oracle] using Anthropic API:", model)
	return NewAPIClient(model)
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   1024,
		Temperature: param.NewOpt(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("[oracle] retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			select {
			case <-time.After(sleepDuration):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("[oracle] Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      mockFeedbackJSON,
		PromptTokens: 400,
		OutputTokens: 250,
	}, nil
}

const mockFeedbackJSON = `{
  "score": 7,
  "scoreBreakdown": {"clarity": 7, "specificity": 6, "creativity": 8, "effectiveness": 7},
  "strengths": ["[Mock] Clear request", "[Mock] Good use of context", "[Mock] Creative angle"],
  "improvements": ["[Mock] Specify the output format", "[Mock] Name the target audience"],
  "suggestions": ["[Mock] Add an example", "[Mock] State the desired length", "[Mock] Mention the tone"],
  "overall": "🌟 [Mock] Solid prompt with room to sharpen the details.",
  "nextSteps": "[Mock] Add format and audience to your next attempt"
}`
