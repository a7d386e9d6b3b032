// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// QueryFile is the on-disk representation of a listing query. A user can
// save the controls of a listing and reapply them to a later load of the
// same or a refreshed source.
type QueryFile struct {
	Query   QueryParams  `yaml:"query"`
	Page    int          `yaml:"page,omitempty"`
	Limit   int          `yaml:"limit,omitempty"`
	Summary QuerySummary `yaml:"summary"`
}

// QueryParams stores the filter state and sort key in a serializable form.
type QueryParams struct {
	Category string `yaml:"category,omitempty"`
	Window   string `yaml:"window,omitempty"`
	Search   string `yaml:"search,omitempty"`
	Sort     string `yaml:"sort,omitempty"`
}

// QuerySummary records the result count when the query was saved.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves the engine's current query and result count.
func WriteQueryFile(path string, e *Engine, page, limit int) error {
	state, key, err := e.State()
	if err != nil {
		return err
	}
	view, err := e.View()
	if err != nil {
		return err
	}

	qf := QueryFile{
		Query: QueryParams{
			Category: state.Category,
			Window:   string(state.Window),
			Search:   state.Search,
			Sort:     string(key),
		},
		Page:  page,
		Limit: limit,
		Summary: QuerySummary{
			Total:     view.Count,
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// Apply validates the stored parameters and sets them on e. Nothing is
// applied when any value is invalid.
func (p QueryParams) Apply(e *Engine) error {
	window, err := ParseDateWindow(p.Window)
	if err != nil {
		return err
	}
	key, err := ParseSortKey(p.Sort)
	if err != nil {
		return err
	}
	category := NormalizeCategory(p.Category)
	if category == "" {
		category = CategoryAll
	}

	if err := e.SetCategoryFilter(category); err != nil {
		return err
	}
	if err := e.SetDateWindow(window); err != nil {
		return err
	}
	if err := e.SetSearchTerm(p.Search); err != nil {
		return err
	}
	return e.SetSortKey(key)
}
