package classify

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        ProjectType
	}{
		{
			name:        "webapp portal",
			title:       "Relaunch Bürgerportal",
			description: "Responsive Webanwendung mit Vue und Dashboard",
			want:        TypeWebapp,
		},
		{
			name:        "backend api",
			title:       "REST API Entwicklung",
			description: "Microservices mit GraphQL Endpoint",
			want:        TypeAPI,
		},
		{
			name:        "mobile only",
			title:       "App-Entwicklung iOS und Android",
			description: "Flutter, React Native",
			want:        TypeMobile,
		},
		{
			name:        "devops",
			title:       "CI/CD Pipeline",
			description: "Kubernetes, Terraform, Monitoring mit Prometheus und Grafana",
			want:        TypeDevOps,
		},
		{
			name:        "consulting",
			title:       "IT-Berater Projektmanagement",
			description: "Anforderungsanalyse und Konzeption",
			want:        TypeConsulting,
		},
		{
			name:  "tie resolves to earlier type",
			title: "Portal Schnittstelle",
			want:  TypeWebapp,
		},
		{
			name:  "no hits",
			title: "Lieferung von Streugut",
			want:  TypeOther,
		},
		{
			name: "empty input",
			want: TypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.title, tt.description); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyDetailed(t *testing.T) {
	b := ClassifyDetailed("Vue Portal", "Portal mit Vue und REST Schnittstelle")

	if b.Primary != TypeWebapp {
		t.Errorf("Primary = %q, want %q", b.Primary, TypeWebapp)
	}
	if b.Scores[TypeWebapp] != 2 {
		t.Errorf("webapp score = %d, want 2", b.Scores[TypeWebapp])
	}
	if b.Scores[TypeAPI] != 2 {
		t.Errorf("api score = %d, want 2", b.Scores[TypeAPI])
	}

	counts := map[string]int{}
	for _, term := range b.Matched {
		counts[term]++
	}
	if counts["vue"] != 1 || counts["portal"] != 1 {
		t.Errorf("matched terms not deduplicated: %v", b.Matched)
	}
}

func TestClassifyDetailedNoMatches(t *testing.T) {
	b := ClassifyDetailed("Winterdienst", "")
	if b.Primary != TypeOther {
		t.Errorf("Primary = %q, want %q", b.Primary, TypeOther)
	}
	if len(b.Matched) != 0 {
		t.Errorf("Matched = %v, want empty", b.Matched)
	}
	if b.Scores[TypeWebapp] != 0 {
		t.Errorf("webapp score = %d, want 0", b.Scores[TypeWebapp])
	}
}

func TestTypeSets(t *testing.T) {
	for _, preferred := range []ProjectType{TypeWebapp, TypeAPI, TypeData} {
		if !IsPreferred(preferred) {
			t.Errorf("IsPreferred(%q) = false", preferred)
		}
		if ShouldAvoid(preferred) {
			t.Errorf("ShouldAvoid(%q) = true", preferred)
		}
	}
	for _, avoid := range []ProjectType{TypeMobile, TypeDevOps, TypeAdmin, TypeConsulting} {
		if !ShouldAvoid(avoid) {
			t.Errorf("ShouldAvoid(%q) = false", avoid)
		}
	}
	for _, neutral := range []ProjectType{TypeLegacy, TypeOther} {
		if IsPreferred(neutral) || ShouldAvoid(neutral) {
			t.Errorf("type %q should be neutral", neutral)
		}
	}
}

func TestRecommendation(t *testing.T) {
	tests := []struct {
		ptype ProjectType
		want  string
	}{
		{TypeWebapp, "passt gut zum Team-Profil"},
		{TypeMobile, "passt nicht zum Team-Profil"},
		{TypeLegacy, "Einzelfallprüfung empfohlen"},
	}
	for _, tt := range tests {
		got := Recommendation(tt.ptype)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Recommendation(%q) = %q, want substring %q", tt.ptype, got, tt.want)
		}
		if !strings.Contains(got, string(tt.ptype)) {
			t.Errorf("Recommendation(%q) does not name the type: %q", tt.ptype, got)
		}
	}
}
