package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	langopenai "github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/memory"
	"go.uber.org/zap"

	"strombreaker-backend/internal/common"
	"strombreaker-backend/internal/config"
	"strombreaker-backend/internal/db"
)

// Collaborator wraps the external text-generation service behind the
// delegated strategy. Every call carries a timeout; failures degrade to the
// documented defaults instead of reaching the client.
type Collaborator struct {
	llm     llms.Model
	timeout time.Duration
	log     *zap.Logger
}

func NewCollaborator(cfg config.LLMConfig, log *zap.Logger) (*Collaborator, error) {
	opts := []langopenai.Option{
		langopenai.WithToken(cfg.APIKey),
		langopenai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, langopenai.WithBaseURL(cfg.BaseURL))
	}
	model, err := langopenai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Collaborator{llm: model, timeout: cfg.Timeout, log: log}, nil
}

// AnalyzeMood asks the collaborator for a {mood_score, mood_label} JSON
// object. It never fails: timeouts, transport errors, and malformed output
// all degrade to (0.0, "neutral").
func (c *Collaborator) AnalyzeMood(ctx context.Context, message string) (float64, string) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"You are a mental health assistant. Analyze the emotional tone of this message: %q. "+
			"Respond only with a JSON object in the form "+
			`{"mood_score": <float from -1 to 1>, "mood_label": <short string>}`, message)
	out, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt,
		llms.WithTemperature(0.3), llms.WithMaxTokens(100))
	if err != nil {
		c.log.Warn("mood analysis failed, falling back to neutral", zap.Error(err))
		return 0.0, "neutral"
	}

	var parsed struct {
		MoodScore float64 `json:"mood_score"`
		MoodLabel string  `json:"mood_label"`
	}
	if err := json.Unmarshal([]byte(extractJSON(out)), &parsed); err != nil || parsed.MoodLabel == "" {
		c.log.Warn("mood analysis returned malformed JSON, falling back to neutral",
			zap.String("output", out))
		return 0.0, "neutral"
	}
	return common.ClampScore(parsed.MoodScore), parsed.MoodLabel
}

// GenerateReply runs a conversation chain seeded with the persona prompt,
// the detected mood, and the user's recent turns. The caller applies the
// default-reply fallback on error.
func (c *Collaborator) GenerateReply(ctx context.Context, message string, score float64, label string, history []db.ConversationTurn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	chatMemory := memory.NewConversationWindowBuffer(10)
	system := fmt.Sprintf("%s The user's current mood is: %s (score: %.2f).",
		common.PersonaPrompt, label, score)
	chatMemory.ChatHistory.AddUserMessage(ctx, system)
	for _, turn := range history {
		chatMemory.ChatHistory.AddUserMessage(ctx, turn.Message)
		chatMemory.ChatHistory.AddAIMessage(ctx, turn.Response)
	}

	chain := chains.NewConversation(c.llm, chatMemory)
	return chains.Run(ctx, chain, message, chains.WithMaxTokens(200))
}

// MeditationScript generates a guided meditation of the requested length.
func (c *Collaborator) MeditationScript(ctx context.Context, minutes int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Create a %d-minute guided meditation script for youth. Include breathing "+
			"instructions, body relaxation, and positive affirmations. Keep it simple and encouraging.",
		minutes)
	return llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithTemperature(0.7))
}

// extractJSON trims code fences and surrounding prose so a bare JSON object
// can be unmarshalled from a chatty model response.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}
