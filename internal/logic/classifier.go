package logic

import (
	"strings"

	"strombreaker-backend/internal/common"
)

// category couples a keyword set with its mood score, label, canned reply,
// and canned activity list. The rule-based classifier and the templated
// composer read the same matched entry, so label and reply never diverge.
type category struct {
	Label      string
	Score      float64
	Keywords   []string
	Reply      string
	Activities []string
}

// categories is checked in order; the first keyword hit wins. The order is
// part of the contract — reordering changes which mood a mixed message
// resolves to.
var categories = []category{
	{
		Label:    "anxious",
		Score:    -0.5,
		Keywords: []string{"anxious", "worried", "scared", "nervous", "stress"},
		Reply: "I understand you're feeling anxious. Let's try some breathing exercises together. " +
			"Take a deep breath in for 4 counts, hold for 4 counts, and exhale slowly for 6 counts. " +
			"Repeat this and notice how your body feels calmer.",
		Activities: []string{"Deep breathing exercise", "Guided meditation", "Write in your journal"},
	},
	{
		Label:    "sad",
		Score:    -0.7,
		Keywords: []string{"sad", "down", "depressed", "upset"},
		Reply: "I'm sorry you're feeling down. It's okay to feel sad sometimes. Remember, these " +
			"feelings are temporary. Would you like to try some gentle activities to help lift your mood?",
		Activities: []string{"Gentle stretching", "Listen to uplifting music", "Practice gratitude"},
	},
	{
		Label:    "seeking support",
		Score:    -0.3,
		Keywords: []string{"help", "need", "support", "struggling"},
		Reply: "I'm here to support you. You're not alone in this. Sometimes talking about our " +
			"feelings can help us feel better. What's on your mind?",
		Activities: []string{"Talk to someone you trust", "Write about your feelings", "Take a mindful break"},
	},
	{
		Label:    "seeking calm",
		Score:    0.3,
		Keywords: []string{"meditate", "meditation", "calm", "peace"},
		Reply: "Great choice! Meditation can help you find inner peace. Let's start with a simple " +
			"5-minute session. Find a comfortable position and focus on your breathing.",
		Activities: []string{"Guided meditation", "Breathing exercise", "Mindful walking"},
	},
	{
		Label:    "positive",
		Score:    0.8,
		Keywords: []string{"great", "good", "happy", "amazing", "wonderful", "excellent"},
		Reply: "That's wonderful! I'm so glad you're feeling great today. Positive energy is " +
			"contagious - maybe you could share some of that good feeling with someone else?",
		Activities: []string{"Share your positive energy", "Plan something fun", "Help someone else feel good"},
	},
}

// neutral is the catch-all when no keyword matches, and the soft-fallback
// classification for collaborator failures.
var neutral = category{
	Label: "neutral",
	Score: 0.0,
	Reply: "Thank you for sharing that with me. How are you feeling right now? " +
		"I'm here to listen and support you.",
	Activities: []string{"Take a mindful moment", "Check in with yourself", "Practice self-compassion"},
}

// matchCategory lower-cases the message and returns the first category with
// a keyword hit, or neutral.
func matchCategory(message string) category {
	lowered := strings.ToLower(message)
	for _, cat := range categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lowered, kw) {
				return cat
			}
		}
	}
	return neutral
}

// ClassifyRules scores a message with the fixed keyword table.
func ClassifyRules(message string) (float64, string) {
	cat := matchCategory(message)
	return common.ClampScore(cat.Score), cat.Label
}
