package team

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeTeamFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "team.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write team file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTeamFile(t, `
[[member]]
name = "Anna"
role = "Fullstack"
skills = ["Vue.js", "Python 3", "PostgreSQL"]
years_experience = 8

[[member]]
name = "Ben"
role = "Backend"
skills = ["Java", "Spring Boot"]
years_experience = 12
`)

	team, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if team.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", team.Len())
	}
	if got := team.Names(); !reflect.DeepEqual(got, []string{"Anna", "Ben"}) {
		t.Errorf("Names() = %v, want [Anna Ben]", got)
	}

	sets := team.SkillSets()
	if len(sets) != 2 {
		t.Fatalf("SkillSets() returned %d sets, want 2", len(sets))
	}
	if !reflect.DeepEqual(sets[1], []string{"Java", "Spring Boot"}) {
		t.Errorf("SkillSets()[1] = %v, want [Java Spring Boot]", sets[1])
	}

	if team.Members[0].YearsExperience != 8 {
		t.Errorf("YearsExperience = %d, want 8", team.Members[0].YearsExperience)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty file",
			content: "",
			wantErr: "at least one member",
		},
		{
			name: "member without name",
			content: `
[[member]]
skills = ["Vue"]
`,
			wantErr: "name is required",
		},
		{
			name: "member without skills",
			content: `
[[member]]
name = "Anna"
`,
			wantErr: "at least one skill",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTeamFile(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadReportsAllViolations(t *testing.T) {
	path := writeTeamFile(t, `
[[member]]
role = "Fullstack"

[[member]]
name = "Ben"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"member 1: name is required", "member 1", "member 2 (Ben)"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeTeamFile(t, "[[member\nname =")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}
