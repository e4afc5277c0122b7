package project

import (
	"encoding/json"
	"os"
	"time"
)

type ExcludedProjects struct {
	Items []*ExcludedProject `json:"items"`
}

type ExcludedProject struct {
	ID         string    `json:"id"`
	Title      string    `json:"title,omitempty"`
	Portal     string    `json:"portal,omitempty"`
	URL        string    `json:"url,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	ExcludedAt time.Time `json:"excluded_at"`
}

// ToExcluded converts the collection into exclude-file records with a
// shared reason.
func (p *Projects) ToExcluded(reason string) *ExcludedProjects {
	excluded := &ExcludedProjects{}
	for _, project := range p.Items {
		excluded.Items = append(excluded.Items, &ExcludedProject{
			ID:         project.ID,
			Title:      project.Title,
			Portal:     project.Portal,
			URL:        project.URL,
			Reason:     reason,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

// ExcludedFromFile reads an exclude file. An empty file yields an
// empty list, so a freshly touched file works.
func ExcludedFromFile(path string) (*ExcludedProjects, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedProjects{}, nil
	}

	var excluded ExcludedProjects
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedProjects) Append(other *ExcludedProjects) {
	e.Items = append(e.Items, other.Items...)
}

func (e *ExcludedProjects) ProjectIDs() []string {
	ids := make([]string, 0)
	for _, project := range e.Items {
		ids = append(ids, project.ID)
	}
	return ids
}

func (e *ExcludedProjects) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
