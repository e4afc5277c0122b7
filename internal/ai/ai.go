// Package ai defines the context-classification port used by the
// relevance pipeline and a never-failing scorer on top of it.
package ai

import (
	"context"
	"strings"
)

// Label describes how a keyword is used in a project text.
type Label string

const (
	// LabelRequired marks a keyword that names a skill the client is
	// actually hiring for.
	LabelRequired Label = "required"
	// LabelMentioned marks a keyword that only appears in passing
	// ("wir nutzen intern", "Schnittstelle zu").
	LabelMentioned Label = "mentioned"
	// LabelUnclear is the fallback when the classifier cannot tell.
	LabelUnclear Label = "unclear"
)

// ParseLabel maps free-form classifier output onto a known label.
// Unknown values count as unclear.
func ParseLabel(s string) Label {
	switch Label(strings.ToLower(strings.TrimSpace(s))) {
	case LabelRequired:
		return LabelRequired
	case LabelMentioned:
		return LabelMentioned
	default:
		return LabelUnclear
	}
}

// Classifier labels keywords against a project text. Implementations
// may call out to an LLM; callers should treat errors as "no signal"
// rather than a hard failure.
type Classifier interface {
	ClassifyContext(ctx context.Context, text string, keywords []string) (map[string]Label, error)
}
