package logic

// Activity sets per mood band. Bands are half-open, inclusive on the lower
// bound: [-1, -0.5), [-0.5, 0), [0, 0.5), [0.5, 1]. Together they cover the
// whole score range with no overlap.
var (
	distressActivities = []string{
		"Deep breathing exercise (5 minutes)",
		"Guided meditation for stress relief",
		"Write in your journal about your feelings",
	}
	mildReliefActivities = []string{
		"Quick mindfulness break",
		"Listen to calming music",
		"Take a short walk",
	}
	maintenanceActivities = []string{
		"Gratitude journaling",
		"Light stretching exercises",
		"Connect with a friend",
	}
	amplificationActivities = []string{
		"Share your positive energy with others",
		"Plan something fun for later",
		"Help someone else feel good",
	}
)

// SuggestActivities maps a mood score to its band's activity set.
func SuggestActivities(score float64) []string {
	switch {
	case score < -0.5:
		return distressActivities
	case score < 0:
		return mildReliefActivities
	case score < 0.5:
		return maintenanceActivities
	default:
		return amplificationActivities
	}
}
