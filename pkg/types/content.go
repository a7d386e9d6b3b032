// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for praxis-listings: the
// listed content records, their sources, and the configuration of every
// stage (loading, filtering, pagination, bookmarks, serving).
package types

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies which listing a ContentItem belongs to.
type Kind string

const (
	KindNews    Kind = "news"
	KindPartner Kind = "partner"
)

// ParseKind accepts the singular or plural form of a listing name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "news", "article", "articles":
		return KindNews, nil
	case "partner", "partners":
		return KindPartner, nil
	default:
		return "", fmt.Errorf("unknown listing kind %q: use news or partner", s)
	}
}

// Noun returns the singular and plural nouns used in result labels.
func (k Kind) Noun() (singular, plural string) {
	if k == KindPartner {
		return "partner", "partners"
	}
	return "article", "articles"
}

// DefaultPublishedAt is the timestamp assigned to items whose publication
// date is absent or unparseable.
var DefaultPublishedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultPopularity is the mid-range score assigned when none is given.
const DefaultPopularity = 50

// ContentItem is one listed entity: a news article or a partner organization.
type ContentItem struct {
	// ID is stable and unique within a collection.
	ID string `json:"id" yaml:"id"`

	// Kind records which listing the item was loaded for.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// Title is the display title (headline or organization name).
	Title string `json:"title" yaml:"title"`

	// Body is the excerpt or description used for search.
	Body string `json:"body" yaml:"body"`

	// Tags are lowercase topic labels.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Category is a single enumerated label such as "criminal-justice" or
	// "press-release".
	Category string `json:"category" yaml:"category"`

	// PublishedAt is never zero once the item has been normalized.
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`

	// Popularity is a non-negative score.
	Popularity int `json:"popularity" yaml:"popularity"`

	// Author is optional.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Link is the item's page or external URL, when known.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

// SearchText returns the case-folded concatenation of the fields matched by
// free-text search: title, body, tags and author.
func (c *ContentItem) SearchText() string {
	parts := make([]string, 0, 3+len(c.Tags))
	parts = append(parts, c.Title, c.Body)
	parts = append(parts, c.Tags...)
	parts = append(parts, c.Author)
	return strings.ToLower(strings.Join(parts, " "))
}

// SourceFormat selects how a Source is decoded.
type SourceFormat string

const (
	FormatData   SourceFormat = "data"
	FormatMarkup SourceFormat = "markup"
	FormatFeed   SourceFormat = "feed"
)

// Source describes where a listing's items come from.
type Source struct {
	// Kind is the listing the source feeds.
	Kind Kind `json:"kind" yaml:"kind"`

	// Format is data (YAML/JSON), markup (rendered HTML) or feed (RSS/Atom).
	// Empty means infer from the location's extension.
	Format SourceFormat `json:"format,omitempty" yaml:"format,omitempty"`

	// Location is a file path or an http(s) URL.
	Location string `json:"location" yaml:"location"`
}
