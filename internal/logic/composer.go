package logic

import (
	"strombreaker-backend/internal/common"
)

// ChatResult is the composed outcome of one chat message, independent of
// which strategy produced it.
type ChatResult struct {
	Reply      string
	MoodScore  float64
	MoodLabel  string
	Activities []string
}

// ComposeRules resolves reply, score, label, and activities from a single
// pass over the keyword table, so the reply always matches the label.
func ComposeRules(message string) ChatResult {
	cat := matchCategory(message)
	return ChatResult{
		Reply:      cat.Reply,
		MoodScore:  common.ClampScore(cat.Score),
		MoodLabel:  cat.Label,
		Activities: cat.Activities,
	}
}
