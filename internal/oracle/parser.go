package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/promptquest/backend/internal/models"
)

// ValidationError reports why an oracle reply was rejected. Callers treat
// any parse or validation failure identically: switch to the fallback.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ParseFeedback extracts a structured feedback object from a raw model
// reply. Markdown code fences are tolerated; anything that does not
// validate against the feedback schema is rejected.
func ParseFeedback(responseBody string) (*models.Feedback, error) {
	cleaned := stripCodeFences(responseBody)

	var fb models.Feedback
	if err := json.Unmarshal([]byte(cleaned), &fb); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateFeedback(&fb); err != nil {
		return nil, err
	}

	// Lists may legitimately be empty but must never be null in responses.
	if fb.Strengths == nil {
		fb.Strengths = []string{}
	}
	if fb.Improvements == nil {
		fb.Improvements = []string{}
	}
	if fb.Suggestions == nil {
		fb.Suggestions = []string{}
	}

	return &fb, nil
}

func validateFeedback(fb *models.Feedback) error {
	var errs []string

	if fb.Score < 1 || fb.Score > 10 {
		errs = append(errs, fmt.Sprintf("score %d outside range [1, 10]", fb.Score))
	}

	subs := map[string]int{
		"clarity":       fb.ScoreBreakdown.Clarity,
		"specificity":   fb.ScoreBreakdown.Specificity,
		"creativity":    fb.ScoreBreakdown.Creativity,
		"effectiveness": fb.ScoreBreakdown.Effectiveness,
	}
	for name, v := range subs {
		if v < 1 || v > 10 {
			errs = append(errs, fmt.Sprintf("%s %d outside range [1, 10]", name, v))
		}
	}

	if strings.TrimSpace(fb.Overall) == "" {
		errs = append(errs, "empty overall summary")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ParseHint extracts a hint from a raw model reply. A reply that is not
// JSON at all is accepted as a plain-text hint with default confidence;
// an empty reply is rejected.
func ParseHint(responseBody string) (*models.HintResponse, error) {
	cleaned := stripCodeFences(responseBody)
	if cleaned == "" {
		return nil, fmt.Errorf("empty hint response")
	}

	if !strings.HasPrefix(cleaned, "{") {
		// Plain-text reply: the whole body is the hint.
		return &models.HintResponse{
			Hint:       cleaned,
			Confidence: 0.85,
			Reasoning:  "AI-generated hint",
		}, nil
	}

	var hint models.HintResponse
	if err := json.Unmarshal([]byte(cleaned), &hint); err != nil {
		return nil, fmt.Errorf("failed to parse hint JSON: %w", err)
	}
	if strings.TrimSpace(hint.Hint) == "" {
		return nil, &ValidationError{Errors: []string{"empty hint field"}}
	}

	if hint.Confidence < 0.7 || hint.Confidence > 0.95 {
		hint.Confidence = 0.85
	}
	if hint.Reasoning == "" {
		hint.Reasoning = "AI-generated hint based on quest requirements"
	}
	return &hint, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
