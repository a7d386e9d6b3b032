// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"strings"
	"time"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

// CategoryAll is the category sentinel that matches every item.
const CategoryAll = "all"

// NormalizeCategory lowercases a category label and joins its words with
// hyphens, so "Criminal Justice" and "criminal-justice" compare equal.
// Loaded items and query input both pass through it; the engine itself
// compares categories exactly.
func NormalizeCategory(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// DateWindow limits results to items published within a trailing window.
type DateWindow string

const (
	WindowAll     DateWindow = "all"
	Window7Days   DateWindow = "last-7-days"
	Window30Days  DateWindow = "last-30-days"
	Window90Days  DateWindow = "last-90-days"
	Window365Days DateWindow = "last-365-days"
)

const day = 24 * time.Hour

var windowDurations = map[DateWindow]time.Duration{
	Window7Days:   7 * day,
	Window30Days:  30 * day,
	Window90Days:  90 * day,
	Window365Days: 365 * day,
}

// DateWindows lists the accepted windows in menu order.
func DateWindows() []DateWindow {
	return []DateWindow{WindowAll, Window7Days, Window30Days, Window90Days, Window365Days}
}

// ParseDateWindow converts user input into a DateWindow. An empty string
// selects WindowAll.
func ParseDateWindow(s string) (DateWindow, error) {
	w := DateWindow(strings.ToLower(strings.TrimSpace(s)))
	if w == "" {
		return WindowAll, nil
	}
	if !w.valid() {
		return "", invalidValue("unknown date window %q", s)
	}
	return w, nil
}

func (w DateWindow) valid() bool {
	if w == WindowAll {
		return true
	}
	_, ok := windowDurations[w]
	return ok
}

// Cutoff returns the earliest publication time admitted by the window at
// now. The second result is false for WindowAll, which admits everything.
func (w DateWindow) Cutoff(now time.Time) (time.Time, bool) {
	d, ok := windowDurations[w]
	if !ok {
		return time.Time{}, false
	}
	return now.Add(-d), true
}

// FilterState is the active query.
type FilterState struct {
	// Category is CategoryAll or one category label.
	Category string `json:"category" yaml:"category"`

	// Window is the trailing publication window.
	Window DateWindow `json:"window" yaml:"window"`

	// Search is matched case-insensitively as a substring. Empty matches all.
	Search string `json:"search" yaml:"search"`
}

// DefaultFilterState returns all/all/empty.
func DefaultFilterState() FilterState {
	return FilterState{Category: CategoryAll, Window: WindowAll}
}

// predicate is a compiled FilterState bound to a reference time.
type predicate struct {
	category  string
	cutoff    time.Time
	hasCutoff bool
	term      string
}

func (s FilterState) compile(now time.Time) predicate {
	cutoff, ok := s.Window.Cutoff(now)
	return predicate{
		category:  s.Category,
		cutoff:    cutoff,
		hasCutoff: ok,
		term:      strings.ToLower(s.Search),
	}
}

// match evaluates the cheapest checks first; searchText is the item's
// precomputed case-folded search text.
func (p predicate) match(item *types.ContentItem, searchText string) bool {
	if p.category != CategoryAll && item.Category != p.category {
		return false
	}
	if p.hasCutoff && item.PublishedAt.Before(p.cutoff) {
		return false
	}
	if p.term != "" && !strings.Contains(searchText, p.term) {
		return false
	}
	return true
}
