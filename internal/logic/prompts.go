package logic

import (
	"math/rand"
)

// journalingPrompts is the fixed pool the API samples from.
var journalingPrompts = []string{
	"What are three things you're grateful for today?",
	"Describe a moment today when you felt proud of yourself.",
	"What's one challenge you faced today and how did you handle it?",
	"Write about someone who made you smile today.",
	"What's one thing you'd like to improve about your day tomorrow?",
	"Describe your ideal way to relax and unwind.",
	"What's a skill or hobby you'd like to learn?",
	"Write about a place that makes you feel calm and peaceful.",
}

// SamplePrompts returns n distinct prompts drawn at random from the pool.
func SamplePrompts(n int) []string {
	if n > len(journalingPrompts) {
		n = len(journalingPrompts)
	}
	picked := make([]string, 0, n)
	for _, i := range rand.Perm(len(journalingPrompts))[:n] {
		picked = append(picked, journalingPrompts[i])
	}
	return picked
}
