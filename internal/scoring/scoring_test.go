package scoring

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/teamwerk/tender-scout/internal/catalog"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	return New(catalog.Default(), zap.NewNop())
}

func TestScoreRejectOverridesHighPositiveScore(t *testing.T) {
	s := newTestScorer(t)

	r := s.Score("Vue.js Entwickler", "Vue und Python, Integration mit SAP", "")

	if !r.ShouldReject {
		t.Fatalf("ShouldReject = false, want true")
	}
	if r.RejectScore != 100 {
		t.Errorf("RejectScore = %d, want 100", r.RejectScore)
	}
	// The positive axis is unaffected by the reject axis.
	if r.TotalScore != 40 {
		t.Errorf("TotalScore = %d, want 40", r.TotalScore)
	}
	if got := r.Event(); got != "REJECT" {
		t.Errorf("Event() = %q, want REJECT", got)
	}
}

func TestScoreComboBonus(t *testing.T) {
	s := newTestScorer(t)

	r := s.Score("React und Node Projekt", "", "")

	if r.Tier2Score != 17 {
		t.Errorf("Tier2Score = %d, want 17 (capped)", r.Tier2Score)
	}
	if r.ComboBonus != 6 {
		t.Errorf("ComboBonus = %d, want 6", r.ComboBonus)
	}
	if r.TotalScore != 23 {
		t.Errorf("TotalScore = %d, want 23", r.TotalScore)
	}
	if r.Confidence != ConfidenceMedium {
		t.Errorf("Confidence = %q, want %q", r.Confidence, ConfidenceMedium)
	}
}

func TestScoreEmptyInput(t *testing.T) {
	s := newTestScorer(t)

	r := s.Score("", "", "")

	if r.TotalScore != 0 || r.Tier1Score != 0 || r.Tier2Score != 0 || r.Tier3Score != 0 {
		t.Errorf("expected zero scores, got %+v", r)
	}
	if r.RejectScore != 0 || r.ShouldReject {
		t.Errorf("expected no reject, got score %d", r.RejectScore)
	}
	if r.Confidence != ConfidenceLow {
		t.Errorf("Confidence = %q, want %q", r.Confidence, ConfidenceLow)
	}
	if got := r.Event(); got != "LOW" {
		t.Errorf("Event() = %q, want LOW", got)
	}
	if len(r.FoundSkills()) != 0 {
		t.Errorf("FoundSkills() = %v, want empty", r.FoundSkills())
	}
}

func TestScoreTierCaps(t *testing.T) {
	s := newTestScorer(t)

	tests := []struct {
		name  string
		title string
		check func(t *testing.T, r *Result)
	}{
		{
			name:  "tier 1 capped",
			title: "vue python java",
			check: func(t *testing.T, r *Result) {
				if r.Tier1Score != 32 {
					t.Errorf("Tier1Score = %d, want 32", r.Tier1Score)
				}
				if r.TotalScore != 40 {
					t.Errorf("TotalScore = %d, want 40", r.TotalScore)
				}
			},
		},
		{
			name:  "tier 2 capped",
			title: "react angular typescript",
			check: func(t *testing.T, r *Result) {
				if r.Tier2Score != 17 {
					t.Errorf("Tier2Score = %d, want 17", r.Tier2Score)
				}
			},
		},
		{
			name:  "tier 3 capped",
			title: "agile scrum devops",
			check: func(t *testing.T, r *Result) {
				if r.Tier3Score != 12 {
					t.Errorf("Tier3Score = %d, want 12", r.Tier3Score)
				}
				if r.TotalScore != 12 {
					t.Errorf("TotalScore = %d, want 12", r.TotalScore)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, s.Score(tt.title, "", ""))
		})
	}
}

func TestScoreComboBonusCapped(t *testing.T) {
	s := newTestScorer(t)

	// vue+python, vue+django and python+postgresql together exceed the cap.
	r := s.Score("vue django python postgresql", "", "")

	if r.ComboBonus != 11 {
		t.Errorf("ComboBonus = %d, want 11", r.ComboBonus)
	}
	if r.TotalScore != 40 {
		t.Errorf("TotalScore = %d, want 40", r.TotalScore)
	}
}

func TestScoreRejectAccumulation(t *testing.T) {
	s := newTestScorer(t)

	tests := []struct {
		name       string
		title      string
		wantScore  int
		wantReject bool
	}{
		{"single soft term stays", "PHP Projekt", 50, false},
		{"variant terms add up", "PHP Entwickler gesucht", 100, true},
		{"below threshold", "WordPress und Helpdesk", 80, false},
		{"mixed terms cross threshold", "WordPress Helpdesk Support", 110, true},
		{"industry term disqualifies alone", "Bauarbeiten am Rathaus", 150, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := s.Score(tt.title, "", "")
			if r.RejectScore != tt.wantScore {
				t.Errorf("RejectScore = %d, want %d (found %v)", r.RejectScore, tt.wantScore, r.RejectKeywords)
			}
			if r.ShouldReject != tt.wantReject {
				t.Errorf("ShouldReject = %v, want %v", r.ShouldReject, tt.wantReject)
			}
		})
	}
}

func TestScoreConfidence(t *testing.T) {
	s := newTestScorer(t)

	tests := []struct {
		name  string
		title string
		want  Confidence
	}{
		{"five keywords", "vue python java react node", ConfidenceHigh},
		{"two keywords", "vue und react", ConfidenceMedium},
		{"one keyword", "nur vue", ConfidenceLow},
		{"no keywords", "Lieferung von Winterreifen", ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := s.Score(tt.title, "", ""); r.Confidence != tt.want {
				t.Errorf("Confidence = %q, want %q", r.Confidence, tt.want)
			}
		})
	}
}

func TestScoreEvents(t *testing.T) {
	s := newTestScorer(t)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"high", "vue python backend", "HIGH"},
		{"medium", "scrum und git", "MEDIUM"},
		{"low", "agile arbeitsweise", "LOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.title, "", "").Event(); got != tt.want {
				t.Errorf("Event() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScoreIdempotent(t *testing.T) {
	s := newTestScorer(t)

	title := "Vue und Python Portal"
	description := "REST API mit PostgreSQL, Docker Deployment"

	first := s.Score(title, description, "")
	second := s.Score(title, description, "")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scoring differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestScoreUsesAttachmentText(t *testing.T) {
	s := newTestScorer(t)

	without := s.Score("Portal Projekt", "", "")
	with := s.Score("Portal Projekt", "", "Anforderungen: Vue, Python und PostgreSQL")

	if with.TotalScore <= without.TotalScore {
		t.Errorf("attachment text ignored: %d <= %d", with.TotalScore, without.TotalScore)
	}
	if len(with.Tier1Keywords) != 2 {
		t.Errorf("Tier1Keywords = %v, want vue and python", with.Tier1Keywords)
	}
}

func TestFoundSkills(t *testing.T) {
	s := newTestScorer(t)

	r := s.Score("Vue mit React", "", "")

	want := []string{"vue", "react"}
	if !reflect.DeepEqual(r.FoundSkills(), want) {
		t.Errorf("FoundSkills() = %v, want %v", r.FoundSkills(), want)
	}
}
