package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/teamwerk/tender-scout/internal/ai"
	"github.com/teamwerk/tender-scout/internal/util"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200

	systemInstruction = "Du bist ein erfahrener IT-Analyst für Projektausschreibungen. Antworte immer mit validem JSON ohne zusätzlichen Text."
)

// Classifier labels keyword usage in project texts via Gemini.
type Classifier struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewClassifier(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Classifier {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Classifier{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (c *Classifier) ClassifyContext(ctx context.Context, text string, keywords []string) (map[string]ai.Label, error) {
	if len(keywords) == 0 {
		return map[string]ai.Label{}, nil
	}

	prompt := buildPrompt(text, keywords)

	c.logger.Debug("gemini context request",
		zap.String("model", c.generator.Model()),
		zap.Int("keywords", len(keywords)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini context response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, c.maxLogLen)),
	)

	return parseLabels(raw)
}

func buildPrompt(text string, keywords []string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Projekttext:\n{{PROJECT_TEXT}}\n\nKeywords: {{KEYWORDS}}\n\nJSON:"
	}

	prompt := strings.ReplaceAll(template, "{{PROJECT_TEXT}}", text)
	return strings.ReplaceAll(prompt, "{{KEYWORDS}}", strings.Join(keywords, ", "))
}

func parseLabels(raw string) (map[string]ai.Label, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	// Response keys are matched case-insensitively against the requested
	// keywords, so they are canonicalized to lower case here.
	labels := make(map[string]ai.Label, len(data))
	for key, value := range data {
		labels[strings.ToLower(strings.TrimSpace(key))] = coerceLabel(value)
	}

	return labels, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceLabel(v any) ai.Label {
	val, ok := v.(string)
	if !ok {
		return ai.LabelUnclear
	}
	return ai.ParseLabel(val)
}
