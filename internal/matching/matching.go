package matching

import (
	"context"
	"fmt"

	"github.com/teamwerk/tender-scout/internal/ai"
	"github.com/teamwerk/tender-scout/internal/prefilter"
	"github.com/teamwerk/tender-scout/internal/project"
	"github.com/teamwerk/tender-scout/internal/scoring"
	"github.com/teamwerk/tender-scout/internal/team"
	"go.uber.org/zap"
)

// Stage represents a single screening step applied to projects.
type Stage interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, p *project.Projects) (*project.Projects, Step, error)
}

// Deps aggregates dependencies shared across all matching stages.
type Deps struct {
	Logger  *zap.Logger
	Scorer  *scoring.Scorer
	Screen  *prefilter.Screen
	Context *ai.ContextScorer
	Team    *team.Team
}

// Step describes the result of executing a matching stage.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the stages.
type Config struct {
	Portals     []string
	KeepAvoided bool
	Verdict     *VerdictConfig
}

// VerdictConfig sets the final-score thresholds and the optional bonus
// for public-sector opportunities.
type VerdictConfig struct {
	ApplyAt           int
	ReviewAt          int
	PublicSectorBonus int
}

// Status represents runtime information about a stage.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by stages that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a stage with the provided name as disabled while keeping it in the list.
func DisableByName(stages []Stage, name, reason string) {
	for _, stage := range stages {
		if stage.Name() == name {
			stage.Disable(reason)
		}
	}
}

// Run executes the supplied stages sequentially, returning the resulting
// project list and the assessments collected along the way.
func Run(ctx context.Context, cfg *Config, deps Deps, stages []Stage, p *project.Projects) (*project.Projects, map[string]*Assessment, error) {
	for _, stage := range stages {
		if !stage.IsEnabled() {
			continue
		}
		if err := stage.Validate(cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", stage.Name(), err)
		}
	}

	assessments := make(map[string]*Assessment)
	for _, stage := range stages {
		if !stage.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("stage disabled", zap.String("name", stage.Name()))
			}
			continue
		}

		next, info, err := stage.Apply(ctx, deps, p)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", stage.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("matching stage",
				zap.String("name", stage.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		p = next

		if collector, ok := stage.(interface {
			Assessments() map[string]*Assessment
		}); ok {
			for id, assessment := range collector.Assessments() {
				assessments[id] = assessment
			}
		}
	}

	return p, assessments, nil
}

// Describe returns status entries for the provided stages.
func Describe(stages []Stage) []Status {
	statuses := make([]Status, 0, len(stages))
	for _, stage := range stages {
		if reporter, ok := stage.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    stage.Name(),
			Enabled: stage.IsEnabled(),
		})
	}
	return statuses
}
