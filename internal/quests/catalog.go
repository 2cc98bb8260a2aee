// Package quests holds the static challenge catalog and the rotating
// daily quest. Quest content is data, not logic: the catalog is fixed at
// compile time and every lookup is by quest id.
package quests

import "github.com/promptquest/backend/internal/models"

// Catalog is the full quest list in display order.
var Catalog = []models.Quest{
	{
		ID:          "1",
		Title:       "Prompt Basics",
		Description: "Learn how to write a basic AI prompt.",
		Challenge:   "Write a prompt to generate a paragraph about the solar system.",
		Icon:        "📚",
		Difficulty:  models.DifficultyBeginner,
		XPReward:    50,
	},
	{
		ID:          "2",
		Title:       "Creative Writing",
		Description: "Make AI write a short poem.",
		Challenge:   "Write a prompt that makes AI generate a poem about rain and childhood memories.",
		Icon:        "✨",
		Difficulty:  models.DifficultyIntermediate,
		XPReward:    75,
	},
	{
		ID:          "3",
		Title:       "Image Prompting",
		Description: "Generate visuals with text.",
		Challenge:   "Write a prompt that makes an AI image generator create a cyberpunk city at night.",
		Icon:        "🎨",
		Difficulty:  models.DifficultyAdvanced,
		XPReward:    100,
	},
	{
		ID:          "math-mage",
		Title:       "Math Mage Challenge",
		Description: "Master mathematical prompts and solve complex equations with AI",
		Challenge:   "Write a prompt asking AI to solve a quadratic equation step-by-step.",
		Icon:        "🧮",
		Difficulty:  models.DifficultyBeginner,
		XPReward:    50,
	},
	{
		ID:          "ai-dungeon",
		Title:       "AI Dungeon Explorer",
		Description: "Navigate through AI-generated adventures and storytelling",
		Challenge:   "Write a prompt to start an epic fantasy adventure with a unique character.",
		Icon:        "🏰",
		Difficulty:  models.DifficultyIntermediate,
		XPReward:    75,
	},
	{
		ID:          "history-hacker",
		Title:       "History Hacker Quest",
		Description: "Uncover historical mysteries through strategic prompting",
		Challenge:   "Create a prompt to analyze the causes of a major historical event.",
		Icon:        "📜",
		Difficulty:  models.DifficultyAdvanced,
		XPReward:    100,
	},
	{
		ID:          "basic-prompting",
		Title:       "The Art of Clear Instructions",
		Description: "Learn to write clear, specific prompts that get better AI responses",
		Challenge:   "Write a prompt asking for a chocolate chip cookie recipe. Make it specific and clear.",
		Icon:        "📝",
		Difficulty:  models.DifficultyBeginner,
		XPReward:    50,
	},
	{
		ID:          "context-setting",
		Title:       "Setting the Perfect Context",
		Description: "Master the art of providing context for better AI responses",
		Challenge:   "Write a prompt for a professional email declining a meeting invitation.",
		Icon:        "🎯",
		Difficulty:  models.DifficultyBeginner,
		XPReward:    60,
	},
	{
		ID:          "code-generation",
		Title:       "Code Crafting Quest",
		Description: "Master prompts for generating and debugging code",
		Challenge:   "Write a prompt asking AI to create a Python function that sorts a list of numbers and returns the result.",
		Icon:        "💻",
		Difficulty:  models.DifficultyIntermediate,
		XPReward:    75,
	},
	{
		ID:          "storytelling",
		Title:       "Crafting Compelling Stories",
		Description: "Learn to write prompts that generate engaging narratives",
		Challenge:   "Write a prompt asking AI to create a short story about a time traveler who discovers they can only travel to the past.",
		Icon:        "📖",
		Difficulty:  models.DifficultyIntermediate,
		XPReward:    75,
	},
	{
		ID:          "character-dev",
		Title:       "Character Development Magic",
		Description: "Master the art of creating detailed character descriptions",
		Challenge:   "Write a prompt asking AI to create a detailed character profile for a fantasy hero with unique abilities.",
		Icon:        "👤",
		Difficulty:  models.DifficultyIntermediate,
		XPReward:    75,
	},
	{
		ID:          "data-analysis",
		Title:       "Data Detective Challenge",
		Description: "Learn to write prompts for data analysis and visualization",
		Challenge:   "Write a prompt asking AI to analyze a dataset and create a summary of key insights.",
		Icon:        "📊",
		Difficulty:  models.DifficultyAdvanced,
		XPReward:    100,
	},
	{
		ID:          "chain-of-thought",
		Title:       "Chain of Thought Mastery",
		Description: "Master advanced reasoning prompts that show step-by-step thinking",
		Challenge:   "Write a prompt asking AI to solve a complex logic puzzle by showing its reasoning process.",
		Icon:        "🧠",
		Difficulty:  models.DifficultyAdvanced,
		XPReward:    100,
	},
	{
		ID:          "few-shot",
		Title:       "Few-Shot Learning Expert",
		Description: "Learn to write prompts with examples for better AI responses",
		Challenge:   "Write a prompt with 2-3 examples showing how to format a business email, then ask AI to write a new one.",
		Icon:        "🎯",
		Difficulty:  models.DifficultyAdvanced,
		XPReward:    100,
	},
	{
		ID:          "prompt-chaining",
		Title:       "Advanced Prompt Chaining",
		Description: "Master the technique of using multiple prompts to achieve complex goals",
		Challenge:   "Write a series of 3 connected prompts: first to generate a story outline, then to expand one scene, then to add dialogue.",
		Icon:        "🔗",
		Difficulty:  models.DifficultyAdvanced,
		XPReward:    100,
	},
}

var byID = func() map[string]models.Quest {
	m := make(map[string]models.Quest, len(Catalog))
	for _, q := range Catalog {
		m[q.ID] = q
	}
	return m
}()

// ByID looks up a catalog quest. Daily quest ids resolve through Daily,
// not the catalog.
func ByID(id string) (models.Quest, bool) {
	q, ok := byID[id]
	return q, ok
}
