package common

// PersonaPrompt is the system instruction for the delegated reply strategy.
// The detected mood is appended by the caller.
const PersonaPrompt = "You are StromBreaker, an empathetic AI companion for youth mental wellness. " +
	"Be empathetic, supportive, and non-judgmental. Use age-appropriate language for youth. " +
	"Offer practical coping strategies and suggest specific wellness activities when appropriate. " +
	"Keep responses conversational, encouraging, and concise. Never give medical advice."

// DefaultReply is returned whenever the external collaborator fails.
const DefaultReply = "I'm here to listen and support you. How are you feeling today?"

// FallbackMeditationScript is served when no collaborator is configured or
// the generation call fails.
const FallbackMeditationScript = "Take a comfortable position. Close your eyes and focus on your breathing. " +
	"Breathe in slowly for 4 counts, hold for 4 counts, and exhale for 6 counts. " +
	"Repeat this cycle and let your mind find peace."

// APIBanner is the root endpoint greeting.
const APIBanner = "StromBreaker API - AI-Powered Youth Mental Wellness"

// ClampScore bounds a mood score to [-1, 1]. Every score is clamped before
// it is stored or returned, regardless of which classifier produced it.
func ClampScore(score float64) float64 {
	if score < -1.0 {
		return -1.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
