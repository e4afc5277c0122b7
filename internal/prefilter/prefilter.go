// Package prefilter implements the scraper-side early screen. It runs
// before anything is stored or scored and drops projects that are
// obviously outside the team's line of work.
package prefilter

import (
	"strings"

	"github.com/teamwerk/tender-scout/internal/catalog"
	"github.com/teamwerk/tender-scout/internal/util"
	"go.uber.org/zap"
)

const titleLogLimit = 50

// Screen decides whether a scraped project is worth keeping. The
// catalog supplies the early-reject and allow terms; the industry and
// software-context tables are screen-only and never scored.
type Screen struct {
	// CheckIndustry enables the industry screen (construction,
	// facility services and similar non-IT trades).
	CheckIndustry bool
	// RequireContext demands at least one software/IT context term.
	RequireContext bool

	catalog  *catalog.Catalog
	industry []string
	context  []string
	logger   *zap.Logger
}

func New(cat *catalog.Catalog, logger *zap.Logger) *Screen {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Screen{
		CheckIndustry:  true,
		RequireContext: true,
		catalog:        cat,
		industry:       industryScreenTerms,
		context:        softwareContextTerms,
		logger:         logger,
	}
}

// ShouldSkip reports whether the project should be dropped, logging
// the decision.
func (s *Screen) ShouldSkip(title, description string) bool {
	reason := s.SkipReason(title, description)
	if reason == "" {
		return false
	}

	s.logger.Info("project skipped by early screen",
		zap.String("title", util.TruncateForLog(title, titleLogLimit)),
		zap.String("reason", reason),
	)

	return true
}

// SkipReason returns why the project would be dropped, or "" to keep
// it. Matching is plain lower-cased substring containment; the screen
// is deliberately cruder than the scorer.
func (s *Screen) SkipReason(title, description string) string {
	text := strings.ToLower(title + " " + description)

	// Industry terms only reject when the text has no software
	// context ("Portal für Straßenbauamt" stays in).
	if s.CheckIndustry {
		for _, term := range s.industry {
			if strings.Contains(text, term) && !s.hasSoftwareContext(text) {
				return "Industry reject keyword: " + term
			}
		}
	}

	if s.RequireContext && !s.hasSoftwareContext(text) {
		return "No software/IT context found"
	}

	var found []string
	for _, term := range s.catalog.EarlyRejectTerms() {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	if len(found) == 0 {
		return ""
	}

	// "Fullstack mit API-Anbindung an SAP" is still interesting even
	// though it names SAP.
	for _, allow := range s.catalog.AllowTerms() {
		if strings.Contains(text, allow) {
			s.logger.Debug("early reject keyword allowed by context",
				zap.String("keyword", found[0]),
				zap.String("context", allow),
			)
			return ""
		}
	}

	return "Early reject keyword: " + found[0]
}

func (s *Screen) hasSoftwareContext(text string) bool {
	for _, term := range s.context {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
