package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Tier ranks how strongly a keyword speaks for or against an opportunity.
type Tier string

const (
	// Tier1 marks core competencies of the team.
	Tier1 Tier = "tier1"
	// Tier2 marks strong-fit technologies around the core stack.
	Tier2 Tier = "tier2"
	// Tier3 marks nice-to-have tooling.
	Tier3 Tier = "tier3"
	// TierReject marks disqualifying terms carrying a weighted severity.
	TierReject Tier = "reject"
)

func (t Tier) positive() bool {
	return t == Tier1 || t == Tier2 || t == Tier3
}

func (t Tier) known() bool {
	return t.positive() || t == TierReject
}

// Category groups reject keywords by the kind of work they indicate.
// Positive keywords carry no category.
type Category string

const (
	CategoryNone       Category = ""
	CategoryLegacy     Category = "legacy"
	CategoryCMS        Category = "cms"
	CategoryAdmin      Category = "admin"
	CategoryMobile     Category = "mobile"
	CategoryHardware   Category = "hardware"
	CategoryIndustry   Category = "industry"
	CategoryEnterprise Category = "enterprise"
)

func (c Category) known() bool {
	switch c {
	case CategoryLegacy, CategoryCMS, CategoryAdmin, CategoryMobile,
		CategoryHardware, CategoryIndustry, CategoryEnterprise:
		return true
	}
	return false
}

// Entry is a single catalog keyword. Weight and EarlyReject are only
// meaningful on TierReject entries.
type Entry struct {
	Term        string
	Tier        Tier
	Category    Category
	Weight      int
	EarlyReject bool
}

// Combo awards a bonus when every member keyword is found together.
// Members must be tier 1 or tier 2 terms.
type Combo struct {
	Members []string
	Bonus   int
}

// Limits holds the scoring knobs: per-tier unit points and caps, the
// overall ceilings and the reject threshold.
type Limits struct {
	Tier1Unit       int
	Tier1Cap        int
	Tier2Unit       int
	Tier2Cap        int
	Tier3Unit       int
	Tier3Cap        int
	ScoreMax        int
	ComboMax        int
	RejectThreshold int
}

// Unit returns the per-keyword points for a positive tier.
func (l Limits) Unit(t Tier) int {
	switch t {
	case Tier1:
		return l.Tier1Unit
	case Tier2:
		return l.Tier2Unit
	case Tier3:
		return l.Tier3Unit
	}
	return 0
}

// Cap returns the maximum points a positive tier may contribute.
func (l Limits) Cap(t Tier) int {
	switch t {
	case Tier1:
		return l.Tier1Cap
	case Tier2:
		return l.Tier2Cap
	case Tier3:
		return l.Tier3Cap
	}
	return 0
}

// Catalog is the immutable keyword table shared by the scorer, the
// pre-filter and the matching pipeline. Build one with New, Default or
// Load and inject it; it is safe for concurrent readers.
type Catalog struct {
	entries []Entry
	byTerm  map[string]Entry
	tiers   map[Tier][]string
	combos  []Combo
	allow   []string
	limits  Limits
}

// New validates and assembles a catalog. All violations are reported
// together via errors.Join so a broken table surfaces completely on the
// first load, not term by term at scoring time.
func New(entries []Entry, combos []Combo, allow []string, limits Limits) (*Catalog, error) {
	var errs []error

	checkLimit := func(name string, v int) {
		if v < 1 {
			errs = append(errs, fmt.Errorf("limits: %s must be positive, got %d", name, v))
		}
	}
	checkLimit("tier1_unit", limits.Tier1Unit)
	checkLimit("tier1_cap", limits.Tier1Cap)
	checkLimit("tier2_unit", limits.Tier2Unit)
	checkLimit("tier2_cap", limits.Tier2Cap)
	checkLimit("tier3_unit", limits.Tier3Unit)
	checkLimit("tier3_cap", limits.Tier3Cap)
	checkLimit("score_max", limits.ScoreMax)
	checkLimit("combo_max", limits.ComboMax)
	checkLimit("reject_threshold", limits.RejectThreshold)

	c := &Catalog{
		byTerm: make(map[string]Entry, len(entries)),
		tiers:  make(map[Tier][]string),
		limits: limits,
	}

	for _, e := range entries {
		e.Term = normalizeTerm(e.Term)
		if e.Term == "" {
			errs = append(errs, fmt.Errorf("entry with empty term in tier %q", e.Tier))
			continue
		}
		if !e.Tier.known() {
			errs = append(errs, fmt.Errorf("term %q: unknown tier %q", e.Term, e.Tier))
			continue
		}
		if prev, ok := c.byTerm[e.Term]; ok {
			errs = append(errs, fmt.Errorf("term %q mapped to both %q and %q", e.Term, prev.Tier, e.Tier))
			continue
		}
		if e.Tier == TierReject {
			if e.Weight < 1 {
				errs = append(errs, fmt.Errorf("reject term %q: weight must be positive, got %d", e.Term, e.Weight))
			}
			if !e.Category.known() {
				errs = append(errs, fmt.Errorf("reject term %q: unknown category %q", e.Term, e.Category))
			}
		} else {
			if e.Category != CategoryNone {
				errs = append(errs, fmt.Errorf("term %q: category %q is only valid on reject terms", e.Term, e.Category))
			}
			if e.EarlyReject {
				errs = append(errs, fmt.Errorf("term %q: early_reject is only valid on reject terms", e.Term))
			}
		}
		c.entries = append(c.entries, e)
		c.byTerm[e.Term] = e
		c.tiers[e.Tier] = append(c.tiers[e.Tier], e.Term)
	}

	for i, combo := range combos {
		members := make([]string, 0, len(combo.Members))
		for _, m := range combo.Members {
			m = normalizeTerm(m)
			if !slices.Contains(members, m) {
				members = append(members, m)
			}
		}
		if len(members) < 2 {
			errs = append(errs, fmt.Errorf("combo %d: needs at least two distinct members", i))
			continue
		}
		if combo.Bonus < 1 {
			errs = append(errs, fmt.Errorf("combo %v: bonus must be positive, got %d", members, combo.Bonus))
		}
		for _, m := range members {
			e, ok := c.byTerm[m]
			if !ok || (e.Tier != Tier1 && e.Tier != Tier2) {
				errs = append(errs, fmt.Errorf("combo %v: member %q is not a tier 1 or tier 2 term", members, m))
			}
		}
		c.combos = append(c.combos, Combo{Members: members, Bonus: combo.Bonus})
	}

	for _, a := range allow {
		a = normalizeTerm(a)
		if a == "" {
			errs = append(errs, errors.New("empty allow term"))
			continue
		}
		if !slices.Contains(c.allow, a) {
			c.allow = append(c.allow, a)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// Lookup finds the entry for a term, case-insensitively.
func (c *Catalog) Lookup(term string) (Entry, bool) {
	e, ok := c.byTerm[normalizeTerm(term)]
	return e, ok
}

// TierTerms lists the terms of one tier in declaration order.
func (c *Catalog) TierTerms(t Tier) []string {
	return slices.Clone(c.tiers[t])
}

// Rejects lists all reject entries in declaration order.
func (c *Catalog) Rejects() []Entry {
	out := make([]Entry, 0, len(c.tiers[TierReject]))
	for _, e := range c.entries {
		if e.Tier == TierReject {
			out = append(out, e)
		}
	}
	return out
}

// ByCategory lists the reject entries of one category.
func (c *Catalog) ByCategory(cat Category) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// EarlyRejectTerms lists the reject terms flagged for the scraper-side
// early screen.
func (c *Catalog) EarlyRejectTerms() []string {
	var out []string
	for _, e := range c.entries {
		if e.EarlyReject {
			out = append(out, e.Term)
		}
	}
	return out
}

// AllowTerms lists the software/IT context terms that keep an
// opportunity despite early-reject hits.
func (c *Catalog) AllowTerms() []string {
	return slices.Clone(c.allow)
}

// PositiveTerms maps every tier 1-3 term to its tier.
func (c *Catalog) PositiveTerms() map[string]Tier {
	out := make(map[string]Tier)
	for _, e := range c.entries {
		if e.Tier.positive() {
			out[e.Term] = e.Tier
		}
	}
	return out
}

// Combos lists the combination bonuses.
func (c *Catalog) Combos() []Combo {
	out := make([]Combo, len(c.combos))
	for i, cb := range c.combos {
		out[i] = Combo{Members: slices.Clone(cb.Members), Bonus: cb.Bonus}
	}
	return out
}

// Entries lists every entry in declaration order.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Limits returns the scoring limits.
func (c *Catalog) Limits() Limits {
	return c.limits
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
