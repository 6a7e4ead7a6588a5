package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The four bands partition [-1, 1]: every score lands in exactly one set,
// and the lower bound of each band is inclusive.
func TestActivityBandsPartition(t *testing.T) {
	for score := -1.0; score <= 1.0; score += 0.01 {
		set := SuggestActivities(score)
		assert.NotEmpty(t, set, "score %f must fall in a band", score)
		assert.GreaterOrEqual(t, len(set), 2)
		assert.LessOrEqual(t, len(set), 3)
	}
}

func TestActivityBandBoundaries(t *testing.T) {
	assert.Equal(t, distressActivities, SuggestActivities(-1.0))
	assert.Equal(t, distressActivities, SuggestActivities(-0.51))
	// -0.5 belongs to the mild-relief band, not distress
	assert.Equal(t, mildReliefActivities, SuggestActivities(-0.5))
	assert.Equal(t, mildReliefActivities, SuggestActivities(-0.01))
	// 0 belongs to maintenance
	assert.Equal(t, maintenanceActivities, SuggestActivities(0.0))
	assert.Equal(t, maintenanceActivities, SuggestActivities(0.49))
	// 0.5 belongs to amplification
	assert.Equal(t, amplificationActivities, SuggestActivities(0.5))
	assert.Equal(t, amplificationActivities, SuggestActivities(1.0))
}

func TestSamplePromptsDistinct(t *testing.T) {
	for i := 0; i < 50; i++ {
		prompts := SamplePrompts(3)
		assert.Len(t, prompts, 3)
		seen := map[string]bool{}
		for _, p := range prompts {
			assert.False(t, seen[p], "prompt repeated within one sample: %s", p)
			seen[p] = true
			assert.Contains(t, journalingPrompts, p)
		}
	}
}

func TestSamplePromptsCappedAtPoolSize(t *testing.T) {
	prompts := SamplePrompts(100)
	assert.Len(t, prompts, len(journalingPrompts))
}
