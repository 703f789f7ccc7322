package service

import (
	"fmt"
	"math/rand/v2"
)

// MockMarker is present in every fallback reply.
const MockMarker = "(Note: This is a mock response."

// FallbackResponder produces the placeholder replies used when no real
// completion is available.
type FallbackResponder struct {
	providerName string
	intn         func(n int) int
}

// NewFallbackResponder returns a responder whose notice names providerName.
func NewFallbackResponder(providerName string) *FallbackResponder {
	return &FallbackResponder{providerName: providerName, intn: rand.IntN}
}

// Reply picks one filler phrase, echoing message where the phrase allows it.
func (f *FallbackResponder) Reply(message string) string {
	phrases := []string{
		fmt.Sprintf("I understand your question about '%s'. Based on my knowledge...", message),
		"That's an interesting point! Let me think about that...",
		"Thank you for asking. Here's what I can tell you...",
		"I'd be happy to help with that. Here's some information...",
		"That's a great question! I suggest considering the following approach...",
	}
	return fmt.Sprintf("%s %s Please check your %s API key.)", phrases[f.intn(len(phrases))], MockMarker, f.providerName)
}
