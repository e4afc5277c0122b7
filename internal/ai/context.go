package ai

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	// maxContextRunes caps the project text sent to the classifier.
	maxContextRunes = 2000
	// maxContextKeywords caps the keywords per classification call.
	maxContextKeywords = 10
	// maxAdjustKeywords caps how many tier-1 keywords a score
	// adjustment classifies.
	maxAdjustKeywords = 5
	// mentionedPenalty is subtracted from the tier-1 score for every
	// keyword that is only mentioned.
	mentionedPenalty = 10
)

// Adjustment is the outcome of a context-aware score correction.
type Adjustment struct {
	Tier1Score int
	Tier2Score int
	// Mentioned lists the tier-1 keywords that were only mentioned.
	Mentioned []string
	Labels    map[string]Label
}

// ContextScorer classifies keyword usage and corrects keyword scores.
// It never fails: classifier errors degrade to unclear labels, and a
// nil scorer or nil classifier passes scores through unchanged.
type ContextScorer struct {
	classifier Classifier
	logger     *zap.Logger
}

func NewContextScorer(classifier Classifier, logger *zap.Logger) *ContextScorer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ContextScorer{classifier: classifier, logger: logger}
}

// Enabled reports whether a classifier is wired in.
func (s *ContextScorer) Enabled() bool {
	return s != nil && s.classifier != nil
}

// ClassifyContext labels the given keywords against the project text.
// The result maps every requested keyword (lower-cased) to a label;
// keywords beyond the per-call cap are not sent and not returned.
func (s *ContextScorer) ClassifyContext(ctx context.Context, text string, keywords []string) map[string]Label {
	labels := make(map[string]Label, len(keywords))
	if !s.Enabled() || len(keywords) == 0 {
		return labels
	}

	if runes := []rune(text); len(runes) > maxContextRunes {
		text = string(runes[:maxContextRunes])
	}
	if len(keywords) > maxContextKeywords {
		keywords = keywords[:maxContextKeywords]
	}

	s.logger.Debug("classifying keyword context",
		zap.Int("keywords", len(keywords)),
		zap.Int("text_length", len(text)),
	)

	raw, err := s.classifier.ClassifyContext(ctx, text, keywords)
	if err != nil {
		s.logger.Warn("keyword context classification failed", zap.Error(err))
		for _, kw := range keywords {
			labels[strings.ToLower(kw)] = LabelUnclear
		}
		return labels
	}

	for _, kw := range keywords {
		value, ok := raw[kw]
		if !ok {
			value, ok = raw[strings.ToLower(kw)]
		}
		if !ok {
			value = LabelUnclear
		}
		labels[strings.ToLower(kw)] = ParseLabel(string(value))
	}

	return labels
}

// AdjustScore lowers the tier-1 score for keywords that are only
// mentioned in the text. The tier-2 score is never touched.
func (s *ContextScorer) AdjustScore(ctx context.Context, tier1Keywords []string, text string, baseTier1, baseTier2 int) *Adjustment {
	adj := &Adjustment{
		Tier1Score: baseTier1,
		Tier2Score: baseTier2,
		Labels:     map[string]Label{},
	}
	if !s.Enabled() || len(tier1Keywords) == 0 {
		return adj
	}

	send := tier1Keywords
	if len(send) > maxAdjustKeywords {
		send = send[:maxAdjustKeywords]
	}

	adj.Labels = s.ClassifyContext(ctx, text, send)

	for _, kw := range tier1Keywords {
		if adj.Labels[strings.ToLower(kw)] == LabelMentioned {
			adj.Mentioned = append(adj.Mentioned, kw)
		}
	}

	if n := len(adj.Mentioned); n > 0 {
		adj.Tier1Score = max(0, baseTier1-n*mentionedPenalty)
		s.logger.Info("keyword score adjusted by context",
			zap.Int("mentioned_keywords", n),
			zap.Int("penalty", n*mentionedPenalty),
		)
	}

	return adj
}

// KeywordRequired reports whether a single keyword is an actual
// requirement in the text.
func (s *ContextScorer) KeywordRequired(ctx context.Context, keyword, text string) bool {
	labels := s.ClassifyContext(ctx, text, []string{keyword})
	return labels[strings.ToLower(keyword)] == LabelRequired
}
