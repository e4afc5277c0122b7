package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// catalogFile is the TOML shape for operator-tuned catalogs. Sections left
// out keep the built-in defaults, so a file can tune a single weight
// without restating the full tables.
type catalogFile struct {
	Limits limitsFile   `toml:"limits"`
	Tier1  []string     `toml:"tier1"`
	Tier2  []string     `toml:"tier2"`
	Tier3  []string     `toml:"tier3"`
	Allow  []string     `toml:"allow"`
	Reject []rejectFile `toml:"reject"`
	Combo  []comboFile  `toml:"combo"`
}

type limitsFile struct {
	Tier1Unit       int `toml:"tier1_unit"`
	Tier1Cap        int `toml:"tier1_cap"`
	Tier2Unit       int `toml:"tier2_unit"`
	Tier2Cap        int `toml:"tier2_cap"`
	Tier3Unit       int `toml:"tier3_unit"`
	Tier3Cap        int `toml:"tier3_cap"`
	ScoreMax        int `toml:"score_max"`
	ComboMax        int `toml:"combo_max"`
	RejectThreshold int `toml:"reject_threshold"`
}

type rejectFile struct {
	Term     string `toml:"term"`
	Category string `toml:"category"`
	Weight   int    `toml:"weight"`
	Early    bool   `toml:"early"`
}

type comboFile struct {
	Members []string `toml:"members"`
	Bonus   int      `toml:"bonus"`
}

// Load reads a catalog from a TOML file and validates it.
func Load(path string) (*Catalog, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand catalog path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c, err := New(f.entries(), f.combos(), f.allowTerms(), f.Limits.merge(DefaultLimits()))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", expanded, err)
	}
	return c, nil
}

func (f catalogFile) entries() []Entry {
	t1, t2, t3 := f.Tier1, f.Tier2, f.Tier3
	if len(t1) == 0 {
		t1 = tier1Terms
	}
	if len(t2) == 0 {
		t2 = tier2Terms
	}
	if len(t3) == 0 {
		t3 = tier3Terms
	}

	var out []Entry
	for _, t := range t1 {
		out = append(out, Entry{Term: t, Tier: Tier1})
	}
	for _, t := range t2 {
		out = append(out, Entry{Term: t, Tier: Tier2})
	}
	for _, t := range t3 {
		out = append(out, Entry{Term: t, Tier: Tier3})
	}

	if len(f.Reject) == 0 {
		return append(out, defaultRejectEntries()...)
	}
	for _, r := range f.Reject {
		out = append(out, Entry{
			Term:        r.Term,
			Tier:        TierReject,
			Category:    Category(strings.ToLower(r.Category)),
			Weight:      r.Weight,
			EarlyReject: r.Early,
		})
	}
	return out
}

func (f catalogFile) combos() []Combo {
	if len(f.Combo) == 0 {
		return defaultCombos()
	}
	out := make([]Combo, len(f.Combo))
	for i, c := range f.Combo {
		out[i] = Combo{Members: slices.Clone(c.Members), Bonus: c.Bonus}
	}
	return out
}

func (f catalogFile) allowTerms() []string {
	if len(f.Allow) == 0 {
		return defaultAllowTerms()
	}
	return f.Allow
}

func (lf limitsFile) merge(d Limits) Limits {
	set := func(dst *int, v int) {
		if v > 0 {
			*dst = v
		}
	}
	set(&d.Tier1Unit, lf.Tier1Unit)
	set(&d.Tier1Cap, lf.Tier1Cap)
	set(&d.Tier2Unit, lf.Tier2Unit)
	set(&d.Tier2Cap, lf.Tier2Cap)
	set(&d.Tier3Unit, lf.Tier3Unit)
	set(&d.Tier3Cap, lf.Tier3Cap)
	set(&d.ScoreMax, lf.ScoreMax)
	set(&d.ComboMax, lf.ComboMax)
	set(&d.RejectThreshold, lf.RejectThreshold)
	return d
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
