package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"strombreaker-backend/internal/common"
)

// One case per keyword category, plus the neutral default.
func TestClassifyRulesCategories(t *testing.T) {
	cases := []struct {
		message string
		score   float64
		label   string
	}{
		{"I feel really anxious about my exam", -0.5, "anxious"},
		{"everything makes me so worried lately", -0.5, "anxious"},
		{"I've been feeling sad all week", -0.7, "sad"},
		{"feeling pretty down today", -0.7, "sad"},
		{"I need some support right now", -0.3, "seeking support"},
		{"I'm struggling with school", -0.3, "seeking support"},
		{"can we meditate together", 0.3, "seeking calm"},
		{"I just want some peace", 0.3, "seeking calm"},
		{"I'm doing great today", 0.8, "positive"},
		{"today was amazing", 0.8, "positive"},
		{"the weather outside", 0.0, "neutral"},
		{"", 0.0, "neutral"},
	}
	for _, tc := range cases {
		score, label := ClassifyRules(tc.message)
		assert.Equal(t, tc.score, score, "message: %s", tc.message)
		assert.Equal(t, tc.label, label, "message: %s", tc.message)
	}
}

// Matching is case-insensitive.
func TestClassifyRulesCaseInsensitive(t *testing.T) {
	score, label := ClassifyRules("I am SO ANXIOUS")
	assert.Equal(t, -0.5, score)
	assert.Equal(t, "anxious", label)
}

// When a message hits several categories, the earliest one in the priority
// list wins.
func TestClassifyRulesPriorityOrder(t *testing.T) {
	// anxious (1st) beats positive (5th)
	score, label := ClassifyRules("I'm anxious but also happy")
	assert.Equal(t, -0.5, score)
	assert.Equal(t, "anxious", label)

	// sad (2nd) beats seeking support (3rd)
	score, label = ClassifyRules("I'm sad and need help")
	assert.Equal(t, -0.7, score)
	assert.Equal(t, "sad", label)

	// seeking support (3rd) beats positive (5th)
	score, label = ClassifyRules("I'm happy but I need something")
	assert.Equal(t, -0.3, score)
	assert.Equal(t, "seeking support", label)
}

// Keyword matching and reply selection come from the same table pass, so
// label and reply stay consistent per category.
func TestComposeRulesLabelReplyConsistency(t *testing.T) {
	for _, cat := range categories {
		for _, kw := range cat.Keywords {
			result := ComposeRules("talking about " + kw + " things")
			assert.Equal(t, cat.Label, result.MoodLabel)
			assert.Equal(t, cat.Reply, result.Reply)
			assert.Equal(t, cat.Activities, result.Activities)
		}
	}
}

func TestComposeRulesNeutralDefault(t *testing.T) {
	result := ComposeRules("just a plain message")
	assert.Equal(t, "neutral", result.MoodLabel)
	assert.Equal(t, 0.0, result.MoodScore)
	assert.Equal(t, neutral.Reply, result.Reply)
	assert.Len(t, result.Activities, 3)
}

// Every table score is already inside [-1, 1] and clamping holds for
// arbitrary inputs.
func TestScoreClamping(t *testing.T) {
	for _, cat := range categories {
		assert.GreaterOrEqual(t, cat.Score, -1.0)
		assert.LessOrEqual(t, cat.Score, 1.0)
	}
	assert.Equal(t, -1.0, common.ClampScore(-2.5))
	assert.Equal(t, 1.0, common.ClampScore(7.0))
	assert.Equal(t, 0.4, common.ClampScore(0.4))
	assert.Equal(t, -1.0, common.ClampScore(-1.0))
	assert.Equal(t, 1.0, common.ClampScore(1.0))
}
