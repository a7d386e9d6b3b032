// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

// Uncategorized labels items that carry no category in facet counts.
const Uncategorized = "uncategorized"

// CategoryCount is the number of items carrying one category.
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// Facets counts items per category in first-seen order.
func Facets(items []types.ContentItem) []CategoryCount {
	index := make(map[string]int)
	var counts []CategoryCount
	for i := range items {
		cat := items[i].Category
		if cat == "" {
			cat = Uncategorized
		}
		if j, ok := index[cat]; ok {
			counts[j].Count++
			continue
		}
		index[cat] = len(counts)
		counts = append(counts, CategoryCount{Category: cat, Count: 1})
	}
	return counts
}

// ResultLabel renders the "N results found" line shown above a listing,
// e.g. "1 partner found" or "1,204 articles found".
func ResultLabel(count int, kind types.Kind) string {
	singular, plural := kind.Noun()
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%s %s found", FormatNumber(count), noun)
}

// FormatNumber inserts thousands separators.
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
