// Package scoring implements the tiered keyword score that anchors every
// match decision: positive keywords earn capped per-tier points plus
// combination bonuses, disqualifying keywords accumulate on a separate
// weighted reject axis.
package scoring

import (
	"strings"

	"go.uber.org/zap"

	"github.com/teamwerk/tender-scout/internal/catalog"
	"github.com/teamwerk/tender-scout/internal/util"
)

// Confidence grades how much keyword evidence a score rests on.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const (
	highConfidenceAt   = 5
	mediumConfidenceAt = 2
)

// Log classification thresholds. Scores at or above eventHigh earn an
// info-level line, everything else stays on debug.
const (
	eventHigh   = 20
	eventMedium = 10

	titleLogLimit = 50
)

// Result is the full keyword breakdown for one opportunity. The positive
// total and the reject score are separate axes: a posting can score the
// positive maximum and still be disqualified.
type Result struct {
	TotalScore     int        `json:"total_score"`
	Tier1Keywords  []string   `json:"tier_1_keywords"`
	Tier2Keywords  []string   `json:"tier_2_keywords"`
	Tier3Keywords  []string   `json:"tier_3_keywords"`
	RejectKeywords []string   `json:"reject_keywords"`
	Tier1Score     int        `json:"tier_1_score"`
	Tier2Score     int        `json:"tier_2_score"`
	Tier3Score     int        `json:"tier_3_score"`
	ComboBonus     int        `json:"combo_bonus"`
	RejectScore    int        `json:"reject_score"`
	ShouldReject   bool       `json:"should_reject"`
	Confidence     Confidence `json:"confidence"`
}

// Event labels returned by Result.Event.
const (
	EventReject = "REJECT"
	EventHigh   = "HIGH"
	EventMedium = "MEDIUM"
	EventLow    = "LOW"
)

// Event classifies the result for logs and reports: REJECT, HIGH, MEDIUM
// or LOW.
func (r *Result) Event() string {
	switch {
	case r.ShouldReject:
		return EventReject
	case r.TotalScore >= eventHigh:
		return EventHigh
	case r.TotalScore >= eventMedium:
		return EventMedium
	default:
		return EventLow
	}
}

// FoundSkills lists the found tier 1 and tier 2 keywords. They name the
// concrete technologies an opportunity asks for and feed the skill overlap.
func (r *Result) FoundSkills() []string {
	out := make([]string, 0, len(r.Tier1Keywords)+len(r.Tier2Keywords))
	out = append(out, r.Tier1Keywords...)
	return append(out, r.Tier2Keywords...)
}

// Scorer scores opportunities against an immutable catalog. It is pure and
// safe for concurrent use.
type Scorer struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// New returns a scorer over the given catalog. A nil logger is replaced
// with a no-op logger.
func New(c *catalog.Catalog, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{catalog: c, logger: logger}
}

// Score computes the keyword breakdown over title, description and any
// extracted attachment text. It never fails: empty input scores zero on
// every axis with low confidence.
func (s *Scorer) Score(title, description, attachment string) *Result {
	text := strings.ToLower(title + " " + description + " " + attachment)
	limits := s.catalog.Limits()

	r := &Result{
		Tier1Keywords: s.findTier(text, catalog.Tier1),
		Tier2Keywords: s.findTier(text, catalog.Tier2),
		Tier3Keywords: s.findTier(text, catalog.Tier3),
	}

	for _, e := range s.catalog.Rejects() {
		if containsTerm(text, e.Term) {
			r.RejectKeywords = append(r.RejectKeywords, e.Term)
			r.RejectScore += e.Weight
		}
	}

	r.Tier1Score = min(len(r.Tier1Keywords)*limits.Tier1Unit, limits.Tier1Cap)
	r.Tier2Score = min(len(r.Tier2Keywords)*limits.Tier2Unit, limits.Tier2Cap)
	r.Tier3Score = min(len(r.Tier3Keywords)*limits.Tier3Unit, limits.Tier3Cap)
	r.ComboBonus = s.comboBonus(r.Tier1Keywords, r.Tier2Keywords, limits.ComboMax)
	r.TotalScore = min(r.Tier1Score+r.Tier2Score+r.Tier3Score+r.ComboBonus, limits.ScoreMax)
	r.ShouldReject = r.RejectScore >= limits.RejectThreshold

	found := len(r.Tier1Keywords) + len(r.Tier2Keywords) + len(r.Tier3Keywords)
	switch {
	case found >= highConfidenceAt:
		r.Confidence = ConfidenceHigh
	case found >= mediumConfidenceAt:
		r.Confidence = ConfidenceMedium
	default:
		r.Confidence = ConfidenceLow
	}

	s.logResult(title, r)
	return r
}

func (s *Scorer) findTier(text string, tier catalog.Tier) []string {
	var found []string
	for _, term := range s.catalog.TierTerms(tier) {
		if containsTerm(text, term) {
			found = append(found, term)
		}
	}
	return found
}

func (s *Scorer) comboBonus(tier1, tier2 []string, comboMax int) int {
	found := make(map[string]bool, len(tier1)+len(tier2))
	for _, k := range tier1 {
		found[k] = true
	}
	for _, k := range tier2 {
		found[k] = true
	}

	bonus := 0
	for _, combo := range s.catalog.Combos() {
		fired := true
		for _, m := range combo.Members {
			if !found[m] {
				fired = false
				break
			}
		}
		if fired {
			bonus += combo.Bonus
		}
	}
	return min(bonus, comboMax)
}

func (s *Scorer) logResult(title string, r *Result) {
	short := util.TruncateForLog(title, titleLogLimit)

	switch {
	case r.ShouldReject:
		s.logger.Info("keyword reject",
			zap.String("title", short),
			zap.Int("reject_score", r.RejectScore),
			zap.Strings("keywords", r.RejectKeywords),
		)
	case r.TotalScore >= eventHigh:
		s.logger.Info("keyword score high",
			zap.String("title", short),
			zap.Int("score", r.TotalScore),
			zap.Int("tier1", r.Tier1Score),
			zap.Int("tier2", r.Tier2Score),
			zap.Int("tier3", r.Tier3Score),
			zap.Int("combo", r.ComboBonus),
			zap.String("confidence", string(r.Confidence)),
		)
	case r.TotalScore >= eventMedium:
		s.logger.Debug("keyword score medium",
			zap.String("title", short),
			zap.Int("score", r.TotalScore),
			zap.String("confidence", string(r.Confidence)),
		)
	default:
		s.logger.Debug("keyword score low",
			zap.String("title", short),
			zap.Int("score", r.TotalScore),
			zap.String("confidence", string(r.Confidence)),
		)
	}
}
