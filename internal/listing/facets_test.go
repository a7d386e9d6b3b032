// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

func TestFacets(t *testing.T) {
	items := []types.ContentItem{
		{ID: "a", Category: "criminal-justice"},
		{ID: "b", Category: "health"},
		{ID: "c", Category: "criminal-justice"},
		{ID: "d"},
		{ID: "e", Category: "health"},
		{ID: "f", Category: "research"},
	}

	want := []CategoryCount{
		{Category: "criminal-justice", Count: 2},
		{Category: "health", Count: 2},
		{Category: Uncategorized, Count: 1},
		{Category: "research", Count: 1},
	}
	assert.Equal(t, want, Facets(items))
	assert.Empty(t, Facets(nil))
}

func TestEngineFacetsIgnoreFilters(t *testing.T) {
	e := newReadyEngine(t, sampleNews())
	require.NoError(t, e.SetCategoryFilter("press-release"))

	counts, err := e.Facets()
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{
		{Category: "news", Count: 3},
		{Category: "press-release", Count: 2},
	}, counts)
}

func TestResultLabel(t *testing.T) {
	tests := []struct {
		count int
		kind  types.Kind
		want  string
	}{
		{0, types.KindPartner, "0 partners found"},
		{1, types.KindPartner, "1 partner found"},
		{22, types.KindPartner, "22 partners found"},
		{1, types.KindNews, "1 article found"},
		{1204, types.KindNews, "1,204 articles found"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultLabel(tt.count, tt.kind))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
		{-123456, "-123,456"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
