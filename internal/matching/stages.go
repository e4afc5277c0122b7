package matching

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/teamwerk/tender-scout/internal/classify"
	"github.com/teamwerk/tender-scout/internal/project"
	"github.com/teamwerk/tender-scout/internal/skills"
)

type earlyScreenStage struct {
	disabled bool
	reason   string
}

// NewEarlyScreen creates the stage that drops obvious non-IT postings
// before any scoring work.
func NewEarlyScreen() Stage {
	return &earlyScreenStage{}
}

func (s *earlyScreenStage) Name() string { return "early_screen" }

func (s *earlyScreenStage) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *earlyScreenStage) IsEnabled() bool { return !s.disabled }

func (s *earlyScreenStage) Validate(*Config) error { return nil }

func (s *earlyScreenStage) Apply(_ context.Context, deps Deps, p *project.Projects) (*project.Projects, Step, error) {
	initial := p.Len()
	if deps.Screen == nil {
		if deps.Logger != nil {
			deps.Logger.Info("early screen is not configured; skipping early_screen stage")
		}
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	kept := make([]*project.Project, 0, initial)
	dropped := make([]string, 0)
	for _, item := range p.Items {
		if deps.Screen.ShouldSkip(item.Title, item.Description) {
			dropped = append(dropped, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	p.Items = kept

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding projects by early screen",
			zap.Strings("excluded_projects", dropped),
			zap.Int("projects_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(dropped), Left: p.Len()}, nil
}

func (s *earlyScreenStage) Status() Status {
	return Status{Name: s.Name(), Enabled: s.IsEnabled(), Reason: s.reason}
}

type portalsStage struct {
	disabled bool
	reason   string
	portals  []string
}

// NewPortals creates a stage that removes projects from portals excluded in the config.
func NewPortals() Stage {
	return &portalsStage{}
}

func (s *portalsStage) Name() string { return "portals" }

func (s *portalsStage) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *portalsStage) IsEnabled() bool { return !s.disabled }

func (s *portalsStage) Validate(cfg *Config) error {
	s.portals = nil
	if cfg != nil {
		s.portals = append(s.portals, cfg.Portals...)
	}
	return nil
}

func (s *portalsStage) Apply(_ context.Context, deps Deps, p *project.Projects) (*project.Projects, Step, error) {
	initial := p.Len()
	if len(s.portals) == 0 {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	// Several projects can share a portal, so a plain per-target exclude
	// is not enough here.
	excluded := make(map[string]bool, len(s.portals))
	for _, portal := range s.portals {
		excluded[strings.ToLower(strings.TrimSpace(portal))] = true
	}

	kept := make([]*project.Project, 0, initial)
	dropped := make([]string, 0)
	for _, item := range p.Items {
		if excluded[strings.ToLower(strings.TrimSpace(item.Portal))] {
			dropped = append(dropped, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	p.Items = kept

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding projects by portal",
			zap.Strings("excluded_portals", s.portals),
			zap.Strings("excluded_projects", dropped),
			zap.Int("projects_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(dropped), Left: p.Len()}, nil
}

func (s *portalsStage) Status() Status {
	details := map[string]string{}
	if len(s.portals) > 0 {
		details["portals"] = strings.Join(s.portals, ",")
	}
	return Status{Name: s.Name(), Enabled: s.IsEnabled(), Reason: s.reason, Details: details}
}

type excludeFileStage struct {
	disabled bool
	reason   string
	path     string
}

// NewExcludeFile creates a stage that removes projects recorded in the exclude file.
func NewExcludeFile() Stage {
	return &excludeFileStage{}
}

func (s *excludeFileStage) Name() string { return "exclude_file" }

func (s *excludeFileStage) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *excludeFileStage) IsEnabled() bool { return !s.disabled }

func (s *excludeFileStage) Validate(*Config) error {
	s.path = strings.TrimSpace(viper.GetString("exclude-file"))
	return nil
}

func (s *excludeFileStage) Apply(_ context.Context, deps Deps, p *project.Projects) (*project.Projects, Step, error) {
	initial := p.Len()
	if s.path == "" {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	excluded, err := project.ExcludedFromFile(s.path)
	if err != nil {
		return p, Step{}, fmt.Errorf("getting excluded projects from file: %w", err)
	}

	ids := excluded.ProjectIDs()
	removed := p.Exclude(project.IDField, ids)
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding projects based on exclude file",
			zap.String("path", s.path),
			zap.Strings("excluded_projects", removed),
			zap.Int("projects_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(removed), Left: p.Len()}, nil
}

func (s *excludeFileStage) Status() Status {
	details := map[string]string{}
	if s.path != "" {
		details["path"] = s.path
	}
	return Status{Name: s.Name(), Enabled: s.IsEnabled(), Reason: s.reason, Details: details}
}

type typeScreenStage struct {
	disabled    bool
	reason      string
	keepAvoided bool
	assessments map[string]*Assessment
}

// NewTypeScreen creates a stage that classifies projects and drops types
// the team avoids.
func NewTypeScreen() Stage {
	return &typeScreenStage{}
}

func (s *typeScreenStage) Name() string { return "type_screen" }

func (s *typeScreenStage) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *typeScreenStage) IsEnabled() bool { return !s.disabled }

func (s *typeScreenStage) Validate(cfg *Config) error {
	s.keepAvoided = cfg != nil && cfg.KeepAvoided
	return nil
}

func (s *typeScreenStage) Apply(_ context.Context, deps Deps, p *project.Projects) (*project.Projects, Step, error) {
	initial := p.Len()
	kept := make([]*project.Project, 0, initial)
	s.assessments = make(map[string]*Assessment, initial)

	for _, item := range p.Items {
		ptype := classify.Classify(item.Title, item.Description)

		if classify.ShouldAvoid(ptype) && !s.keepAvoided {
			if deps.Logger != nil {
				deps.Logger.Info("project rejected by type screen",
					zap.String("project_id", item.ID),
					zap.String("project_type", string(ptype)),
				)
			}
			continue
		}

		s.assessments[item.ID] = &Assessment{
			ProjectID:      item.ID,
			Type:           ptype,
			Recommendation: classify.Recommendation(ptype),
		}
		kept = append(kept, item)
	}

	p.Items = kept
	left := p.Len()
	return p, Step{Initial: initial, Dropped: initial - left, Left: left}, nil
}

func (s *typeScreenStage) Assessments() map[string]*Assessment {
	if s.assessments == nil {
		return map[string]*Assessment{}
	}
	return s.assessments
}

func (s *typeScreenStage) Status() Status {
	details := map[string]string{
		"keep_avoided": strconv.FormatBool(s.keepAvoided),
	}
	return Status{Name: s.Name(), Enabled: s.IsEnabled(), Reason: s.reason, Details: details}
}

type relevanceStage struct {
	disabled    bool
	reason      string
	verdict     *VerdictConfig
	assessments map[string]*Assessment
}

// NewRelevance creates the scoring stage: keywords, context adjustment,
// team overlap and the final verdict.
func NewRelevance() Stage {
	return &relevanceStage{}
}

func (s *relevanceStage) Name() string { return "relevance" }

func (s *relevanceStage) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *relevanceStage) IsEnabled() bool { return !s.disabled }

func (s *relevanceStage) Validate(cfg *Config) error {
	v := &VerdictConfig{ApplyAt: defaultApplyAt, ReviewAt: defaultReviewAt}
	if cfg != nil && cfg.Verdict != nil {
		if cfg.Verdict.ApplyAt != 0 {
			v.ApplyAt = cfg.Verdict.ApplyAt
		}
		if cfg.Verdict.ReviewAt != 0 {
			v.ReviewAt = cfg.Verdict.ReviewAt
		}
		v.PublicSectorBonus = cfg.Verdict.PublicSectorBonus
	}

	if v.ApplyAt > scoreCeiling {
		return fmt.Errorf("apply threshold %d exceeds the %d-point scale", v.ApplyAt, scoreCeiling)
	}
	if v.ReviewAt > v.ApplyAt {
		return fmt.Errorf("review threshold %d exceeds apply threshold %d", v.ReviewAt, v.ApplyAt)
	}
	if v.PublicSectorBonus < 0 {
		return fmt.Errorf("public sector bonus must not be negative")
	}

	s.verdict = v
	return nil
}

func (s *relevanceStage) Apply(ctx context.Context, deps Deps, p *project.Projects) (*project.Projects, Step, error) {
	initial := p.Len()
	if deps.Scorer == nil {
		return p, Step{}, fmt.Errorf("scorer is required")
	}

	kept := make([]*project.Project, 0, initial)
	s.assessments = make(map[string]*Assessment, initial)

	for _, item := range p.Items {
		a := s.assess(ctx, deps, item)

		if a.Verdict == VerdictReject {
			if deps.Logger == nil {
				continue
			}
			if a.Keywords.ShouldReject {
				deps.Logger.Info("project rejected by keywords",
					zap.String("project_id", item.ID),
					zap.Int("reject_score", a.Keywords.RejectScore),
					zap.Strings("reject_keywords", a.Keywords.RejectKeywords),
				)
			} else {
				deps.Logger.Info("project below review threshold",
					zap.String("project_id", item.ID),
					zap.Int("final_score", a.FinalScore),
				)
			}
			continue
		}

		if deps.Logger != nil {
			deps.Logger.Info("project shortlisted",
				zap.String("project_id", item.ID),
				zap.Int("final_score", a.FinalScore),
				zap.String("verdict", a.Verdict),
			)
		}

		item.Match = a.Summary()
		kept = append(kept, item)
		s.assessments[item.ID] = a
	}

	p.Items = kept
	p.SortByFinalScore()

	left := p.Len()

	if deps.Logger != nil && initial != left {
		deps.Logger.Info("relevance matching completed",
			zap.Int("initial_projects", initial),
			zap.Int("kept_projects", left),
		)
	}

	return p, Step{Initial: initial, Dropped: initial - left, Left: left}, nil
}

// assess gathers every axis for one project. Keyword-rejected projects
// return early with a reject verdict and skip the context call.
func (s *relevanceStage) assess(ctx context.Context, deps Deps, item *project.Project) *Assessment {
	result := deps.Scorer.Score(item.Title, item.Description, item.AttachmentText)
	ptype := classify.Classify(item.Title, item.Description)

	a := &Assessment{
		ProjectID:      item.ID,
		Type:           ptype,
		Recommendation: classify.Recommendation(ptype),
		Keywords:       result,
	}

	if result.ShouldReject {
		a.Verdict = VerdictReject
		a.Reasons = append(a.Reasons, rejectKeywordsReason(result.RejectKeywords))
		return a
	}

	if deps.Context.Enabled() && len(result.Tier1Keywords) > 0 {
		a.Adjustment = deps.Context.AdjustScore(ctx, result.Tier1Keywords, item.Text(), result.Tier1Score, result.Tier2Score)
	}

	found := result.FoundSkills()
	if deps.Team != nil && deps.Team.Len() > 0 {
		sets := deps.Team.SkillSets()
		pool := skills.TeamPool(sets)
		a.Overlap = skills.TeamOverlap(found, sets)
		a.Matching = skills.Matching(found, pool)
		a.Missing = skills.Missing(found, pool)
	} else {
		// No team configured: the overlap axis stays neutral.
		a.Overlap = 0.5
	}

	compose(a, s.verdict, item.PublicSector)

	if len(result.RejectKeywords) > 0 {
		a.Reasons = append(a.Reasons, rejectKeywordsReason(result.RejectKeywords))
	}
	a.Reasons = append(a.Reasons, a.Recommendation)
	if a.Adjustment != nil && len(a.Adjustment.Mentioned) > 0 {
		a.Reasons = append(a.Reasons, fmt.Sprintf("Nur erwähnt, nicht gefordert: %s", strings.Join(a.Adjustment.Mentioned, ", ")))
	}
	if len(a.Missing) > 0 {
		a.Reasons = append(a.Reasons, fmt.Sprintf("Fehlende Team-Skills: %s", strings.Join(a.Missing, ", ")))
	}

	return a
}

func (s *relevanceStage) Assessments() map[string]*Assessment {
	if s.assessments == nil {
		return map[string]*Assessment{}
	}
	return s.assessments
}

func (s *relevanceStage) Status() Status {
	details := map[string]string{}
	if s.verdict != nil {
		details["apply_at"] = strconv.Itoa(s.verdict.ApplyAt)
		details["review_at"] = strconv.Itoa(s.verdict.ReviewAt)
		if s.verdict.PublicSectorBonus != 0 {
			details["public_sector_bonus"] = strconv.Itoa(s.verdict.PublicSectorBonus)
		}
	}
	return Status{Name: s.Name(), Enabled: s.IsEnabled(), Reason: s.reason, Details: details}
}

func rejectKeywordsReason(keywords []string) string {
	return fmt.Sprintf("Reject-Keywords gefunden: %s", strings.Join(keywords, ", "))
}
