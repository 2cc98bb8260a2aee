// Package scoring is the deterministic fallback oracle: it derives a 1-10
// quality score for a submitted prompt from lexical features alone, so
// feedback keeps working when the AI oracle is unreachable. Identical input
// always yields identical output.
package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/promptquest/backend/internal/models"
)

// MaxHeuristicScore caps the fallback at 8: a 9 or 10 is a judgment the
// heuristic is not entitled to make without the real oracle.
const MaxHeuristicScore = 8

var (
	// A 1-5 letter token with no digits or punctuation is keyboard noise.
	degeneratePattern = regexp.MustCompile(`(?i)^[a-z]{1,5}$`)

	actionPattern    = regexp.MustCompile(`(?i)create|write|generate|make|build|design|analyze|explain|describe|show|tell|help|develop|implement|solve|calculate|compute|process|organize|structure`)
	questionPattern  = regexp.MustCompile(`(?i)\b(what|how|why|when|where|who|which)\b`)
	technicalPattern = regexp.MustCompile(`(?i)\b(function|code|algorithm|data|analysis|system|process|method|technique|approach|program|script|application|database|api|framework|library|module|class|object)\b`)
	contextPattern   = regexp.MustCompile(`(?i)\b(about|regarding|concerning|related to|involving|featuring|including|with|for|to|from|by|through|using|via|throughout|within|among|between)\b`)
	detailPattern    = regexp.MustCompile(`(?i)\b(specific|detailed|comprehensive|thorough|complete|full|extensive|elaborate|precise|exact|accurate|clear|explicit|definite|particular|certain|concrete|tangible|measurable)\b`)

	mentionsTechTopic = regexp.MustCompile(`(?i)function|code|data`)
)

type features struct {
	length    int
	wordCount int
	action    bool
	question  bool
	technical bool
	context   bool
	detail    bool
}

func analyze(prompt string) features {
	return features{
		length:    utf8.RuneCountInString(prompt),
		wordCount: len(strings.Fields(prompt)),
		action:    actionPattern.MatchString(prompt),
		question:  questionPattern.MatchString(prompt),
		technical: technicalPattern.MatchString(prompt),
		context:   contextPattern.MatchString(prompt),
		detail:    detailPattern.MatchString(prompt),
	}
}

// Evaluate scores a submission without any AI involvement.
func Evaluate(prompt string) models.Feedback {
	trimmed := strings.TrimSpace(prompt)
	f := analyze(trimmed)

	score := 1
	if f.length < 10 || degeneratePattern.MatchString(trimmed) {
		return models.Feedback{
			Score:          1,
			ScoreBreakdown: models.ScoreBreakdown{Clarity: 1, Specificity: 1, Creativity: 1, Effectiveness: 1},
			Strengths:      strengthsFor(f),
			Improvements:   improvementsFor(f, trimmed),
			Suggestions:    suggestions(),
			Overall:        overallFor(1),
			NextSteps:      nextSteps,
		}
	}

	// Length tiers.
	if f.length >= 20 {
		score++
	}
	if f.length >= 50 {
		score++
	}
	if f.length >= 100 {
		score++
	}

	// Word-count tiers.
	if f.wordCount >= 3 {
		score++
	}
	if f.wordCount >= 5 {
		score++
	}

	// Lexical feature classes, one point each.
	for _, present := range []bool{f.action, f.question, f.technical, f.context, f.detail} {
		if present {
			score++
		}
	}

	if score > MaxHeuristicScore {
		score = MaxHeuristicScore
	}

	return models.Feedback{
		Score:          score,
		ScoreBreakdown: breakdownFor(score),
		Strengths:      strengthsFor(f),
		Improvements:   improvementsFor(f, trimmed),
		Suggestions:    suggestions(),
		Overall:        overallFor(score),
		NextSteps:      nextSteps,
	}
}

// EarnedXP converts a score into XP, uniformly for both scoring paths.
func EarnedXP(score int) int {
	return score * 10
}

// breakdownFor maps a score to its qualitative sub-score band.
func breakdownFor(score int) models.ScoreBreakdown {
	switch {
	case score >= 7:
		return models.ScoreBreakdown{Clarity: 7, Specificity: 6, Creativity: 8, Effectiveness: 7}
	case score >= 5:
		return models.ScoreBreakdown{Clarity: 5, Specificity: 4, Creativity: 6, Effectiveness: 5}
	case score >= 3:
		return models.ScoreBreakdown{Clarity: 3, Specificity: 2, Creativity: 4, Effectiveness: 3}
	default:
		return models.ScoreBreakdown{Clarity: 2, Specificity: 1, Creativity: 2, Effectiveness: 2}
	}
}

func strengthsFor(f features) []string {
	var strengths []string
	if f.length > 20 {
		strengths = append(strengths, "Shows effort in writing a longer response")
	}
	if f.action {
		strengths = append(strengths, "Uses action-oriented language")
	}
	if f.question {
		strengths = append(strengths, "Attempts to ask for specific information")
	}
	if f.technical {
		strengths = append(strengths, "Includes technical terminology")
	}
	if f.context {
		strengths = append(strengths, "Provides some context")
	}
	if strengths == nil {
		strengths = []string{}
	}
	return strengths
}

func improvementsFor(f features, prompt string) []string {
	var improvements []string
	if f.length < 20 {
		improvements = append(improvements, "Could provide much more detail and context")
	}
	if !f.action {
		improvements = append(improvements, "Try using more specific action words (create, write, generate, etc.)")
	}
	if !f.question {
		improvements = append(improvements, "Consider asking specific questions to clarify your request")
	}
	if !f.technical && mentionsTechTopic.MatchString(prompt) {
		improvements = append(improvements, "Use more specific technical terms")
	}
	if !f.context {
		improvements = append(improvements, "Add context about what you want to achieve")
	}
	if improvements == nil {
		improvements = []string{}
	}
	return improvements
}

// suggestions is the same generic prompting advice regardless of input.
func suggestions() []string {
	return []string{
		"Be more descriptive about what you want to create or achieve",
		"Add specific examples or context to clarify your request",
		"Specify the format, style, or approach you prefer",
		"Consider the audience and purpose of your prompt",
	}
}

func overallFor(score int) string {
	switch {
	case score >= 7:
		return "🌟 Good work! Your prompt shows understanding of effective prompting."
	case score >= 5:
		return "👍 Nice effort! Keep practicing to improve your prompt skills."
	case score >= 3:
		return "🔍 Basic attempt. Focus on being more specific and detailed."
	default:
		return "📝 Try writing a more complete prompt with clear instructions."
	}
}

const nextSteps = "Practice writing more detailed and specific prompts"
