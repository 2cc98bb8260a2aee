package hints

import (
	"math/rand"

	"github.com/promptquest/backend/internal/models"
)

// scriptedHints maps quest IDs to curated hint pools. Quests without an
// entry fall back to genericHints.
var scriptedHints = map[string][]string{
	"1": { // Prompt Basics
		"Start with a clear subject and ask for specific details. Try: 'Write a paragraph about the solar system, focusing on the planets and their unique characteristics.'",
		"Example structure: [Topic] + [Specific request] + [Desired output format]. Like: 'Explain the solar system in a paragraph suitable for middle school students.'",
		"Be specific about what you want. Instead of 'tell me about space', try 'describe the solar system's planets in order from the sun.'",
	},
	"2": { // Creative Writing
		"Set the mood and emotion first. Try: 'Write a nostalgic poem about childhood memories of playing in the rain, using vivid sensory details.'",
		"Include emotional triggers: 'Create a poem that captures the innocence of childhood and the magic of rain, with imagery of puddles and laughter.'",
		"Mention the desired tone and style. Specify if you want it rhyming, free verse, or a particular length.",
	},
	"3": { // Image Prompting
		"Include visual elements: lighting, style, mood, and composition. Try: 'A neon-lit cyberpunk cityscape at night with flying cars, rain-slicked streets, and towering skyscrapers.'",
		"Add artistic style: 'Cyberpunk city at night, neon lights reflecting in puddles, cinematic lighting, detailed architecture, 4K quality.'",
		"Specify the art style, lighting, and mood. Include details about colors, atmosphere, and perspective.",
	},
	"math-mage": {
		"Ask for step-by-step explanation: 'Solve this quadratic equation step by step, showing your work and explaining each step clearly.'",
		"Include the equation: 'Solve x² + 5x + 6 = 0 step by step, showing the factoring process and explaining why each step works.'",
		"Request detailed explanations and ask for the reasoning behind each mathematical step.",
	},
	"ai-dungeon": {
		"Set the scene and character: 'Start an epic fantasy adventure where I play as a time-traveling knight with a magical sword that glows in the presence of danger.'",
		"Include setting details: 'Begin a fantasy adventure in a mystical forest where ancient ruins hold secrets, and I'm a hero with unique abilities.'",
		"Describe your character's abilities, the setting, and what kind of adventure you want to experience.",
	},
}

var genericHints = []string{
	"Be specific about what you want. Include details about format, length, style, and target audience.",
	"Use this structure: [What you want] + [How you want it] + [For whom/why]. Example: 'Write a [description] in [format] for [audience].'",
	"Start with the main request, then add context and specifications. Be clear about your expectations.",
}

const scriptedReasoning = "Scripted hint based on quest requirements and difficulty level"

// ScriptedHint picks a hint for the quest from the curated pool, with a
// confidence in [0.8, 0.95).
func ScriptedHint(questID string, rng *rand.Rand) models.HintResponse {
	pool, ok := scriptedHints[questID]
	if !ok {
		pool = genericHints
	}
	return models.HintResponse{
		Hint:       pool[rng.Intn(len(pool))],
		Confidence: 0.8 + rng.Float64()*0.15,
		Reasoning:  scriptedReasoning,
	}
}
