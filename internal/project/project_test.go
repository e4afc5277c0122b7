package project

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseItemsEnvelope(t *testing.T) {
	data := []byte(`{"items": [
		{"id": 123, "title": "Webportal", "portal": "bund.de", "public_sector": true},
		{"id": "fm-1", "title": "Vue Projekt", "skills": ["Vue.js", "Python"]}
	]}`)

	projects, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if projects.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", projects.Len())
	}

	// Numeric ids are coerced to strings.
	if got := projects.Items[0].ID; got != "123" {
		t.Errorf("ID = %q, want %q", got, "123")
	}
	if !projects.Items[0].PublicSector {
		t.Error("PublicSector = false, want true")
	}
	if got := projects.Items[1].Skills; !reflect.DeepEqual(got, []string{"Vue.js", "Python"}) {
		t.Errorf("Skills = %v, want [Vue.js Python]", got)
	}
}

func TestParseBareArray(t *testing.T) {
	projects, err := Parse([]byte(`[{"id": "a", "title": "T"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if projects.Len() != 1 || projects.Items[0].ID != "a" {
		t.Fatalf("unexpected projects: %+v", projects.Items)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"items": `)); err == nil {
		t.Fatal("expected error on invalid JSON")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte(`{"items": [{"id": "p1"}]}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	projects, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if projects.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", projects.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnsureIDs(t *testing.T) {
	projects := &Projects{Items: []*Project{
		{ID: "keep-me"},
		{Title: "no id"},
		{ID: "  "},
	}}

	if got := projects.EnsureIDs(); got != 2 {
		t.Errorf("EnsureIDs() = %d, want 2", got)
	}

	if projects.Items[0].ID != "keep-me" {
		t.Errorf("existing id overwritten: %q", projects.Items[0].ID)
	}

	seen := map[string]bool{}
	for _, project := range projects.Items {
		if project.ID == "" || strings.TrimSpace(project.ID) == "" {
			t.Errorf("project without id after EnsureIDs: %+v", project)
		}
		if seen[project.ID] {
			t.Errorf("duplicate id %q", project.ID)
		}
		seen[project.ID] = true
	}
}

func TestExclude(t *testing.T) {
	projects := &Projects{Items: []*Project{
		{ID: "a", Portal: "gulp"},
		{ID: "b", Portal: "bund.de"},
		{ID: "c", Portal: "gulp"},
	}}

	excluded := projects.Exclude(IDField, []string{"b"})
	if !reflect.DeepEqual(excluded, []string{"b"}) {
		t.Errorf("Exclude() = %v, want [b]", excluded)
	}
	if projects.Len() != 2 {
		t.Errorf("Len() = %d, want 2", projects.Len())
	}

	excluded = projects.Exclude(PortalField, []string{"gulp", "gulp"})
	if len(excluded) != 2 {
		t.Errorf("Exclude() removed %d, want 2", len(excluded))
	}
	if projects.Len() != 0 {
		t.Errorf("Len() = %d, want 0", projects.Len())
	}
}

func TestFindByID(t *testing.T) {
	projects := &Projects{Items: []*Project{{ID: "a"}, {ID: "b", Title: "B"}}}

	if got := projects.FindByID("b"); got == nil || got.Title != "B" {
		t.Errorf("FindByID(b) = %+v, want title B", got)
	}
	if got := projects.FindByID("missing"); got != nil {
		t.Errorf("FindByID(missing) = %+v, want nil", got)
	}
}

func TestSortByFinalScore(t *testing.T) {
	projects := &Projects{Items: []*Project{
		{ID: "low", Match: &MatchSummary{FinalScore: 61}},
		{ID: "none"},
		{ID: "high", Match: &MatchSummary{FinalScore: 88}},
	}}

	projects.SortByFinalScore()

	var order []string
	for _, project := range projects.Items {
		order = append(order, project.ID)
	}
	if !reflect.DeepEqual(order, []string{"high", "low", "none"}) {
		t.Errorf("order = %v, want [high low none]", order)
	}
}

func TestReportByPortal(t *testing.T) {
	projects := &Projects{Items: []*Project{
		{ID: "a", Portal: "gulp", Title: "A", Match: &MatchSummary{FinalScore: 80, Verdict: "apply"}},
		{ID: "b", Portal: "gulp", Title: "B"},
		{ID: "c", Title: "C"},
	}}

	report := projects.ReportByPortal()

	if len(report["gulp"]) != 2 {
		t.Errorf("gulp rows = %d, want 2", len(report["gulp"]))
	}
	if len(report["unknown"]) != 1 {
		t.Errorf("unknown rows = %d, want 1", len(report["unknown"]))
	}
	if got := report["gulp"][0]["score"]; got != "80" {
		t.Errorf("score = %q, want 80", got)
	}
}

func TestExcludeFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excluded.json")

	projects := &Projects{Items: []*Project{
		{ID: "a", Title: "A", Portal: "gulp"},
		{ID: "b", Title: "B", Portal: "bund.de"},
	}}

	excluded := projects.ToExcluded("keyword reject")
	if err := excluded.ToFile(path); err != nil {
		t.Fatalf("ToFile: %v", err)
	}

	loaded, err := ExcludedFromFile(path)
	if err != nil {
		t.Fatalf("ExcludedFromFile: %v", err)
	}

	if got := loaded.ProjectIDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("ProjectIDs() = %v, want [a b]", got)
	}
	if loaded.Items[0].Reason != "keyword reject" {
		t.Errorf("Reason = %q, want %q", loaded.Items[0].Reason, "keyword reject")
	}

	more := &Projects{Items: []*Project{{ID: "c"}}}
	loaded.Append(more.ToExcluded("manual"))
	if got := loaded.ProjectIDs(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("ProjectIDs() after append = %v, want [a b c]", got)
	}
}

func TestExcludedFromEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excluded.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	excluded, err := ExcludedFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(excluded.Items) != 0 {
		t.Fatalf("Items = %v, want empty", excluded.Items)
	}
}

func TestDumpToTmpFile(t *testing.T) {
	projects := &Projects{Items: []*Project{{ID: "a", Title: "A"}}}

	path, err := projects.DumpToTmpFile()
	if err != nil {
		t.Fatalf("DumpToTmpFile: %v", err)
	}
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.Contains(string(data), `"id": "a"`) {
		t.Errorf("dump missing project: %s", data)
	}
}
