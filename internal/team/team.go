// Package team loads the freelancer-team profile that projects are
// matched against.
package team

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Member is one team member as declared in the team file.
type Member struct {
	Name            string   `toml:"name"`
	Role            string   `toml:"role"`
	Skills          []string `toml:"skills"`
	YearsExperience int      `toml:"years_experience"`
}

type Team struct {
	Members []Member `toml:"member"`
}

// Load reads and validates a team file ([[member]] blocks in TOML).
func Load(path string) (*Team, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand team path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read team file: %w", err)
	}

	var t Team
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse team file: %w", err)
	}

	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("invalid team file %s: %w", expanded, err)
	}

	return &t, nil
}

func (t *Team) validate() error {
	var errs []error

	if len(t.Members) == 0 {
		errs = append(errs, errors.New("at least one member is required"))
	}

	for i, member := range t.Members {
		if strings.TrimSpace(member.Name) == "" {
			errs = append(errs, fmt.Errorf("member %d: name is required", i+1))
		}
		if len(member.Skills) == 0 {
			errs = append(errs, fmt.Errorf("member %d (%s): at least one skill is required", i+1, member.Name))
		}
	}

	return errors.Join(errs...)
}

// SkillSets returns each member's skills as its own list, preserving
// member order.
func (t *Team) SkillSets() [][]string {
	sets := make([][]string, 0, len(t.Members))
	for _, member := range t.Members {
		sets = append(sets, member.Skills)
	}
	return sets
}

func (t *Team) Names() []string {
	names := make([]string, 0, len(t.Members))
	for _, member := range t.Members {
		names = append(names, member.Name)
	}
	return names
}

func (t *Team) Len() int {
	return len(t.Members)
}

func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
