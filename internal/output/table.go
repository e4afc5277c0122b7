// Package output renders projects, score breakdowns and catalog entries
// for the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/teamwerk/tender-scout/internal/catalog"
	"github.com/teamwerk/tender-scout/internal/classify"
	"github.com/teamwerk/tender-scout/internal/project"
	"github.com/teamwerk/tender-scout/internal/scoring"
	"github.com/teamwerk/tender-scout/internal/util"
)

const titleWidth = 45

// Breakdown bundles everything the score command shows for one opportunity.
type Breakdown struct {
	Title    string
	Type     classify.ProjectType
	Screen   string
	Result   *scoring.Result
	Expanded []string
	Overlap  *OverlapInfo
}

// OverlapInfo carries the skill comparison against a set of candidate skills.
type OverlapInfo struct {
	Ratio    float64
	Matching []string
	Missing  []string
}

// Summary aggregates a batch scoring run.
type Summary struct {
	Total    int
	Screened int
	Rejected int
	High     int
	Medium   int
	Low      int
}

// Table writes data as a formatted table to stdout.
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer.
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case *project.Projects:
		return projectsTable(w, v)
	case *project.Project:
		return projectDetail(w, v)
	case []catalog.Entry:
		return catalogTable(w, v)
	case *Breakdown:
		return breakdownDetail(w, v)
	case *Summary:
		return summaryTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func projectsTable(w io.Writer, p *project.Projects) error {
	if p.Len() == 0 {
		fmt.Fprintln(w, "No projects found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tVERDICT\tTYPE\tTITLE\tPORTAL\tDEADLINE")
	fmt.Fprintln(tw, "-----\t-------\t----\t-----\t------\t--------")

	for _, item := range p.Items {
		score, verdict, ptype := "-", "-", "-"
		if m := item.Match; m != nil {
			score = fmt.Sprintf("%d", m.FinalScore)
			verdict = m.Verdict
			ptype = m.ProjectType
		}

		portal := item.Portal
		if portal == "" {
			portal = "unknown"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			score,
			verdict,
			ptype,
			util.TruncateForLog(item.Title, titleWidth),
			portal,
			item.Deadline,
		)
	}

	return tw.Flush()
}

func projectDetail(w io.Writer, item *project.Project) error {
	fmt.Fprintf(w, "Title:       %s\n", item.Title)
	if item.Portal != "" {
		fmt.Fprintf(w, "Portal:      %s\n", item.Portal)
	}
	if item.URL != "" {
		fmt.Fprintf(w, "URL:         %s\n", item.URL)
	}
	if item.Deadline != "" {
		fmt.Fprintf(w, "Deadline:    %s\n", item.Deadline)
	}
	if item.Budget != "" {
		fmt.Fprintf(w, "Budget:      %s\n", item.Budget)
	}
	if item.PublicSector {
		fmt.Fprintln(w, "Sector:      public")
	}

	m := item.Match
	if m == nil {
		fmt.Fprintln(w, "Match:       not assessed")
		return nil
	}

	fmt.Fprintf(w, "Verdict:     %s (%d/100)\n", m.Verdict, m.FinalScore)
	fmt.Fprintf(w, "Type:        %s\n", m.ProjectType)
	fmt.Fprintf(w, "Keywords:    %d raw, %d adjusted, confidence %s\n", m.KeywordScore, m.AdjustedScore, m.Confidence)
	fmt.Fprintf(w, "Overlap:     %.0f%%\n", m.Overlap*100)

	if len(m.MatchingSkills) > 0 {
		fmt.Fprintf(w, "Covered:     %s\n", strings.Join(m.MatchingSkills, ", "))
	}
	if len(m.MissingSkills) > 0 {
		fmt.Fprintf(w, "Missing:     %s\n", strings.Join(m.MissingSkills, ", "))
	}

	if len(m.Reasons) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Assessment:")
		for _, reason := range m.Reasons {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
	}

	return nil
}

func breakdownDetail(w io.Writer, b *Breakdown) error {
	if b.Title != "" {
		fmt.Fprintf(w, "Title:       %s\n", b.Title)
	}
	fmt.Fprintf(w, "Type:        %s\n", b.Type)

	if b.Screen != "" {
		fmt.Fprintf(w, "Screen:      %s\n", b.Screen)
	}

	r := b.Result
	fmt.Fprintf(w, "Event:       %s\n", r.Event())
	fmt.Fprintf(w, "Score:       %d\n", r.TotalScore)
	fmt.Fprintf(w, "  Tier 1:    %d%s\n", r.Tier1Score, keywordList(r.Tier1Keywords))
	fmt.Fprintf(w, "  Tier 2:    %d%s\n", r.Tier2Score, keywordList(r.Tier2Keywords))
	fmt.Fprintf(w, "  Tier 3:    %d%s\n", r.Tier3Score, keywordList(r.Tier3Keywords))
	fmt.Fprintf(w, "  Combos:    %d\n", r.ComboBonus)
	fmt.Fprintf(w, "Reject:      %d%s\n", r.RejectScore, keywordList(r.RejectKeywords))
	fmt.Fprintf(w, "Confidence:  %s\n", r.Confidence)

	if len(b.Expanded) > 0 {
		fmt.Fprintf(w, "Expanded:    %s\n", strings.Join(b.Expanded, ", "))
	}

	if o := b.Overlap; o != nil {
		fmt.Fprintf(w, "Overlap:     %.0f%%\n", o.Ratio*100)
		if len(o.Matching) > 0 {
			fmt.Fprintf(w, "Covered:     %s\n", strings.Join(o.Matching, ", "))
		}
		if len(o.Missing) > 0 {
			fmt.Fprintf(w, "Missing:     %s\n", strings.Join(o.Missing, ", "))
		}
	}

	return nil
}

func catalogTable(w io.Writer, entries []catalog.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No catalog entries match.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TERM\tTIER\tCATEGORY\tWEIGHT\tEARLY")
	fmt.Fprintln(tw, "----\t----\t--------\t------\t-----")

	for _, e := range entries {
		weight := "-"
		if e.Weight > 0 {
			weight = fmt.Sprintf("%d", e.Weight)
		}
		category := string(e.Category)
		if category == "" {
			category = "-"
		}
		early := ""
		if e.EarlyReject {
			early = "yes"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Term, e.Tier, category, weight, early)
	}

	return tw.Flush()
}

func summaryTable(w io.Writer, s *Summary) error {
	fmt.Fprintln(w, "Batch Scoring Summary")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Scored:                 %d\n", s.Total)
	fmt.Fprintf(w, "Screened out:           %d\n", s.Screened)
	fmt.Fprintf(w, "Keyword rejects:        %d\n", s.Rejected)
	fmt.Fprintf(w, "High relevance:         %d\n", s.High)
	fmt.Fprintf(w, "Medium relevance:       %d\n", s.Medium)
	fmt.Fprintf(w, "Low relevance:          %d\n", s.Low)
	return nil
}

// PortalReport prints the per-portal grouping produced by ReportByPortal.
func PortalReport(w io.Writer, report map[string][]map[string]string) error {
	if len(report) == 0 {
		fmt.Fprintln(w, "No projects found.")
		return nil
	}

	portals := make([]string, 0, len(report))
	for portal := range report {
		portals = append(portals, portal)
	}
	sort.Strings(portals)

	for i, portal := range portals {
		rows := report[portal]
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", portal, len(rows))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  SCORE\tVERDICT\tTITLE\tDEADLINE")
		for _, row := range rows {
			score := row["score"]
			if score == "" {
				score = "-"
			}
			verdict := row["verdict"]
			if verdict == "" {
				verdict = "-"
			}

			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
				score,
				verdict,
				util.TruncateForLog(row["title"], titleWidth),
				row["deadline"],
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}

func keywordList(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	return " (" + strings.Join(keywords, ", ") + ")"
}
