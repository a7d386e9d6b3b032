// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"

	"github.com/pdiddy/praxis-listings/internal/listing"
	"github.com/pdiddy/praxis-listings/pkg/types"
)

// itemNamespace seeds IDs derived from titles so they never collide with
// IDs derived from links.
var itemNamespace = uuid.MustParse("6f2c1d0e-8a41-4b7e-9d5a-3c0f7e2b9a14")

// RawItem is a listing record as found in a data file, page markup or feed,
// before validation. Dates are kept as text and parsed leniently.
type RawItem struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Body        string   `json:"body" yaml:"body"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Category    string   `json:"category" yaml:"category"`
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Date        string   `json:"date" yaml:"date"`
	Popularity  *int     `json:"popularity,omitempty" yaml:"popularity,omitempty"`
	Author      string   `json:"author,omitempty" yaml:"author,omitempty"`
	Link        string   `json:"link,omitempty" yaml:"link,omitempty"`
}

// Normalize validates raws and converts them into ContentItems. Missing
// IDs are derived from the link, or from kind, title and date; a record
// with none of these fails with a *listing.InvalidInputError.
func Normalize(raws []RawItem, kind types.Kind, cfg types.LoaderConfig) ([]types.ContentItem, error) {
	defaultPopularity := cfg.DefaultPopularity
	if defaultPopularity < 0 {
		defaultPopularity = types.DefaultPopularity
	}

	items := make([]types.ContentItem, 0, len(raws))
	for i, raw := range raws {
		id, ok := deriveID(raw, kind)
		if !ok {
			return nil, &listing.InvalidInputError{Index: i, Reason: "no id, link or title to derive an id from"}
		}

		body := strings.TrimSpace(raw.Body)
		if body == "" {
			body = strings.TrimSpace(raw.Description)
		}
		category := listing.NormalizeCategory(raw.Category)
		if category == "" {
			category = listing.NormalizeCategory(raw.Type)
		}
		popularity := defaultPopularity
		if raw.Popularity != nil {
			popularity = max(*raw.Popularity, 0)
		}

		items = append(items, types.ContentItem{
			ID:          id,
			Kind:        kind,
			Title:       collapseSpace(raw.Title),
			Body:        collapseSpace(body),
			Tags:        normalizeTags(raw.Tags),
			Category:    category,
			PublishedAt: ParseDate(raw.Date),
			Popularity:  popularity,
			Author:      strings.TrimSpace(raw.Author),
			Link:        strings.TrimSpace(raw.Link),
		})
	}
	return items, nil
}

// ParseDate accepts any common date layout. Empty or unparseable input
// yields types.DefaultPublishedAt.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return types.DefaultPublishedAt
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil || t.IsZero() {
		return types.DefaultPublishedAt
	}
	return t
}

func deriveID(raw RawItem, kind types.Kind) (string, bool) {
	if id := strings.TrimSpace(raw.ID); id != "" {
		return id, true
	}
	if link := strings.TrimSpace(raw.Link); link != "" {
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String(), true
	}
	title := strings.ToLower(collapseSpace(raw.Title))
	if title == "" {
		return "", false
	}
	name := string(kind) + "\x00" + title + "\x00" + strings.TrimSpace(raw.Date)
	return uuid.NewSHA1(itemNamespace, []byte(name)).String(), true
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
