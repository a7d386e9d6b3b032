// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listing filters, sorts and counts a fixed collection of content
// items (news articles, partner organizations) for display.
//
// An Engine borrows the collection passed to Initialize and recomputes its
// ResultView synchronously on every setter call. It holds no locks: share
// the collection between goroutines, not the Engine.
package listing

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

// ResultView is the output of a filter and sort pass. Items point into the
// collection given to Initialize.
type ResultView struct {
	Items []*types.ContentItem `json:"items"`
	Count int                  `json:"count"`
}

// IDs returns the item identifiers in view order.
func (v ResultView) IDs() []string {
	ids := make([]string, len(v.Items))
	for i, item := range v.Items {
		ids[i] = item.ID
	}
	return ids
}

// Engine maintains the filter state and sort key for one listing.
type Engine struct {
	items      []types.ContentItem
	searchText []string
	ready      bool

	state   FilterState
	sortKey SortKey
	view    ResultView

	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now as the reference for date windows.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New returns an uninitialized Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		state:   DefaultFilterState(),
		sortKey: SortDateDesc,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize stores items, resets the filter state to all/all/empty and
// computes the initial view. The sort key is kept. An item without an ID,
// or with an ID already used by an earlier item, fails the whole call and
// leaves the engine unchanged.
func (e *Engine) Initialize(items []types.ContentItem) error {
	seen := make(map[string]int, len(items))
	searchText := make([]string, len(items))
	for i := range items {
		id := items[i].ID
		if strings.TrimSpace(id) == "" {
			return &InvalidInputError{Index: i, Reason: "missing id"}
		}
		if first, dup := seen[id]; dup {
			return &InvalidInputError{Index: i, Reason: fmt.Sprintf("duplicate id %q (first at item %d)", id, first)}
		}
		seen[id] = i
		searchText[i] = items[i].SearchText()
	}

	e.items = items
	e.searchText = searchText
	e.state = DefaultFilterState()
	e.ready = true
	e.recompute()
	return nil
}

// SetCategoryFilter restricts results to one category, or to none with
// CategoryAll. A category no item carries yields an empty view.
func (e *Engine) SetCategoryFilter(category string) error {
	if !e.ready {
		return ErrNotInitialized
	}
	if category == "" {
		category = CategoryAll
	}
	e.state.Category = category
	e.recompute()
	return nil
}

// SetDateWindow restricts results to items published within the window.
func (e *Engine) SetDateWindow(w DateWindow) error {
	if !e.ready {
		return ErrNotInitialized
	}
	if !w.valid() {
		return invalidValue("unknown date window %q", string(w))
	}
	e.state.Window = w
	e.recompute()
	return nil
}

// SetSearchTerm restricts results to items whose title, body, tags or
// author contain term, ignoring case. Callers debounce keystrokes before
// calling it.
func (e *Engine) SetSearchTerm(term string) error {
	if !e.ready {
		return ErrNotInitialized
	}
	e.state.Search = term
	e.recompute()
	return nil
}

// SetSortKey changes the ordering without touching the filters.
func (e *Engine) SetSortKey(key SortKey) error {
	if !e.ready {
		return ErrNotInitialized
	}
	if key.compare() == nil {
		return invalidValue("unknown sort key %q", string(key))
	}
	e.sortKey = key
	e.recompute()
	return nil
}

// View returns the view computed by the last Initialize or setter call.
func (e *Engine) View() (ResultView, error) {
	if !e.ready {
		return ResultView{}, ErrNotInitialized
	}
	return ResultView{Items: slices.Clone(e.view.Items), Count: e.view.Count}, nil
}

// State returns the active filter state and sort key.
func (e *Engine) State() (FilterState, SortKey, error) {
	if !e.ready {
		return FilterState{}, "", ErrNotInitialized
	}
	return e.state, e.sortKey, nil
}

// Facets counts the whole collection per category, ignoring the filters.
func (e *Engine) Facets() ([]CategoryCount, error) {
	if !e.ready {
		return nil, ErrNotInitialized
	}
	return Facets(e.items), nil
}

func (e *Engine) recompute() {
	p := e.state.compile(e.now())

	items := make([]*types.ContentItem, 0, len(e.items))
	for i := range e.items {
		if p.match(&e.items[i], e.searchText[i]) {
			items = append(items, &e.items[i])
		}
	}
	count := len(items)

	sortItems(items, e.sortKey)
	e.view = ResultView{Items: items, Count: count}
}
