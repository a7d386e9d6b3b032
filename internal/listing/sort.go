// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"cmp"
	"slices"
	"strings"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

// SortKey selects the ordering of a result view.
type SortKey string

const (
	SortDateDesc       SortKey = "date-desc"
	SortDateAsc        SortKey = "date-asc"
	SortPopularityDesc SortKey = "popularity-desc"
	SortTitleAsc       SortKey = "title-asc"
)

// SortKeys lists the accepted keys in menu order.
func SortKeys() []SortKey {
	return []SortKey{SortDateDesc, SortDateAsc, SortPopularityDesc, SortTitleAsc}
}

// ParseSortKey converts user input into a SortKey. An empty string selects
// SortDateDesc.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return SortDateDesc, nil
	}
	if k.compare() == nil {
		return "", invalidValue("unknown sort key %q", s)
	}
	return k, nil
}

func (k SortKey) compare() func(a, b *types.ContentItem) int {
	switch k {
	case SortDateDesc:
		return func(a, b *types.ContentItem) int { return b.PublishedAt.Compare(a.PublishedAt) }
	case SortDateAsc:
		return func(a, b *types.ContentItem) int { return a.PublishedAt.Compare(b.PublishedAt) }
	case SortPopularityDesc:
		return func(a, b *types.ContentItem) int { return cmp.Compare(b.Popularity, a.Popularity) }
	case SortTitleAsc:
		return func(a, b *types.ContentItem) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	default:
		return nil
	}
}

// sortItems orders items in place. Ties keep their incoming order, which
// callers guarantee is the original collection order.
func sortItems(items []*types.ContentItem, key SortKey) {
	slices.SortStableFunc(items, key.compare())
}
