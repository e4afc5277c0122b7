// Package project holds the scraped-opportunity shell: the Project
// entity, collection operations and the exclude-file lifecycle.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

const (
	IDField     = "ID"
	PortalField = "Portal"
)

type Projects struct {
	Items []*Project `json:"items"`
}

// Project is one scraped opportunity. Deadline, budget and dates stay
// free-text: the portals publish them in every imaginable format.
type Project struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	AttachmentText string   `json:"attachment_text,omitempty"`
	Portal         string   `json:"portal,omitempty"`
	URL            string   `json:"url,omitempty"`
	Deadline       string   `json:"deadline,omitempty"`
	Budget         string   `json:"budget,omitempty"`
	PublicSector   bool     `json:"public_sector,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	PublishedAt    string   `json:"published_at,omitempty"`

	Match *MatchSummary `json:"match,omitempty"`
}

// MatchSummary is the serializable verdict the pipeline attaches to a
// kept project.
type MatchSummary struct {
	ProjectType    string   `json:"project_type,omitempty"`
	KeywordScore   int      `json:"keyword_score"`
	AdjustedScore  int      `json:"adjusted_score"`
	RejectScore    int      `json:"reject_score,omitempty"`
	Confidence     string   `json:"confidence,omitempty"`
	Overlap        float64  `json:"overlap"`
	FinalScore     int      `json:"final_score"`
	Verdict        string   `json:"verdict,omitempty"`
	Reasons        []string `json:"reasons,omitempty"`
	MatchingSkills []string `json:"matching_skills,omitempty"`
	MissingSkills  []string `json:"missing_skills,omitempty"`
}

// Load reads a projects file: either {"items": [...]} or a bare JSON
// array of projects.
func Load(path string) (*Projects, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes raw portal payloads leniently: unknown keys are
// ignored and numeric ids become strings.
func Parse(data []byte) (*Projects, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse projects file: %w", err)
	}

	if m, ok := raw.(map[string]any); ok {
		if items, found := m["items"]; found {
			raw = items
		}
	}

	var items []*Project
	cfg := &mapstructure.DecoderConfig{
		Result:           &items,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	return &Projects{Items: items}, nil
}

func (p *Projects) Len() int {
	return len(p.Items)
}

func (p *Projects) FindByID(id string) *Project {
	for _, project := range p.Items {
		if project.ID == id {
			return project
		}
	}
	return nil
}

// EnsureIDs assigns a UUID to every project without one and returns
// how many were assigned. Some portals publish no stable identifier.
func (p *Projects) EnsureIDs() int {
	assigned := 0
	for _, project := range p.Items {
		if strings.TrimSpace(project.ID) == "" {
			project.ID = uuid.NewString()
			assigned++
		}
	}
	return assigned
}

// Exclude removes projects whose field matches one of the targets and
// returns the removed ids.
func (p *Projects) Exclude(name string, targets []string) []string {
	var excluded []string
	for _, target := range targets {
		for idx, project := range p.Items {
			if project.GetStringField(name) == target {
				p.RemoveByIndex(idx)
				excluded = append(excluded, project.ID)
				break
			}
		}
	}
	return excluded
}

// RemoveByIndex removes a project from the list by index. Does not
// preserve order.
func (p *Projects) RemoveByIndex(idx int) {
	p.Items[idx] = p.Items[len(p.Items)-1]
	p.Items = p.Items[:len(p.Items)-1]
}

// SortByFinalScore orders projects best-first. Projects without a
// match summary sort last.
func (p *Projects) SortByFinalScore() {
	sort.SliceStable(p.Items, func(i, j int) bool {
		return p.Items[i].finalScore() > p.Items[j].finalScore()
	})
}

// ReportByPortal groups per-project summary rows by source portal.
func (p *Projects) ReportByPortal() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, project := range p.Items {
		portal := project.Portal
		if portal == "" {
			portal = "unknown"
		}

		row := map[string]string{
			"title":    project.Title,
			"url":      project.URL,
			"deadline": project.Deadline,
			"budget":   project.Budget,
		}
		if project.Match != nil {
			row["score"] = strconv.Itoa(project.Match.FinalScore)
			row["verdict"] = project.Match.Verdict
		}

		report[portal] = append(report[portal], row)
	}
	return report
}

func (p *Projects) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "projects_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (pr *Project) GetStringField(name string) string {
	switch name {
	case IDField:
		return pr.ID
	case PortalField:
		return pr.Portal
	default:
		return ""
	}
}

// Text returns the full searchable text of the project.
func (pr *Project) Text() string {
	return strings.TrimSpace(pr.Title + " " + pr.Description + " " + pr.AttachmentText)
}

func (pr *Project) finalScore() int {
	if pr.Match == nil {
		return 0
	}
	return pr.Match.FinalScore
}
