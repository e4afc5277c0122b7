package matching

import (
	"math"

	"github.com/teamwerk/tender-scout/internal/ai"
	"github.com/teamwerk/tender-scout/internal/classify"
	"github.com/teamwerk/tender-scout/internal/project"
	"github.com/teamwerk/tender-scout/internal/scoring"
)

// Verdicts for an assessed project.
const (
	VerdictApply  = "apply"
	VerdictReview = "review"
	VerdictReject = "reject"
)

// The final score combines four axes on a 100-point scale: keywords and
// team overlap weigh 40 points each, project type and keyword confidence
// 10 each. The keyword axis keeps its 40-point ceiling even when a custom
// catalog raises the raw score cap.
const (
	scoreCeiling = 100

	keywordScale = 40
	overlapScale = 40

	typePreferredPoints = 10
	typeNeutralPoints   = 5

	confidenceHighPoints   = 10
	confidenceMediumPoints = 5

	defaultApplyAt  = 75
	defaultReviewAt = 60
)

// Assessment is the complete relevance picture for one project: the
// keyword breakdown, the context adjustment, the team fit and the final
// verdict.
type Assessment struct {
	ProjectID      string
	Type           classify.ProjectType
	Recommendation string
	Keywords       *scoring.Result
	Adjustment     *ai.Adjustment
	AdjustedTotal  int
	Overlap        float64
	Matching       []string
	Missing        []string
	FinalScore     int
	Verdict        string
	Reasons        []string
}

// compose computes the final score and verdict from the already gathered
// axes. Assessments of keyword-rejected projects never reach it.
func compose(a *Assessment, cfg *VerdictConfig, publicSector bool) {
	adjusted := a.Keywords.Tier1Score
	if a.Adjustment != nil {
		adjusted = a.Adjustment.Tier1Score
	}

	total := adjusted + a.Keywords.Tier2Score + a.Keywords.Tier3Score + a.Keywords.ComboBonus
	if total > keywordScale {
		total = keywordScale
	}
	a.AdjustedTotal = total

	overlapPoints := int(math.Round(a.Overlap * overlapScale))

	typePoints := typeNeutralPoints
	switch {
	case classify.IsPreferred(a.Type):
		typePoints = typePreferredPoints
	case classify.ShouldAvoid(a.Type):
		typePoints = 0
	}

	confidencePoints := 0
	switch a.Keywords.Confidence {
	case scoring.ConfidenceHigh:
		confidencePoints = confidenceHighPoints
	case scoring.ConfidenceMedium:
		confidencePoints = confidenceMediumPoints
	}

	final := total + overlapPoints + typePoints + confidencePoints
	if publicSector {
		final += cfg.PublicSectorBonus
	}
	if final > scoreCeiling {
		final = scoreCeiling
	}
	a.FinalScore = final

	switch {
	case final >= cfg.ApplyAt:
		a.Verdict = VerdictApply
	case final >= cfg.ReviewAt:
		a.Verdict = VerdictReview
	default:
		a.Verdict = VerdictReject
	}
}

// Summary converts the assessment into the serializable form attached to
// a project.
func (a *Assessment) Summary() *project.MatchSummary {
	return &project.MatchSummary{
		ProjectType:    string(a.Type),
		KeywordScore:   a.Keywords.TotalScore,
		AdjustedScore:  a.AdjustedTotal,
		RejectScore:    a.Keywords.RejectScore,
		Confidence:     string(a.Keywords.Confidence),
		Overlap:        a.Overlap,
		FinalScore:     a.FinalScore,
		Verdict:        a.Verdict,
		Reasons:        a.Reasons,
		MatchingSkills: a.Matching,
		MissingSkills:  a.Missing,
	}
}
