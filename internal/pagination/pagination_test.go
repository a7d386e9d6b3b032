// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pagination

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hugePage times the limit of 4 wraps a 64-bit int back to 0.
const hugePage = 4611686018427387905

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        int
	}{
		{"first page", 1, 20, 0},
		{"second page", 2, 20, 20},
		{"page 3 with limit 10", 3, 10, 20},
		{"page 100 with limit 10", 100, 10, 990},
		{"offset beyond int saturates", hugePage, 4, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateOffset(tt.page, tt.limit); got != tt.want {
				t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total, limit int
		want         int
	}{
		{0, 20, 1},
		{10, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 20, 5},
		{5, 0, 1},
	}
	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestParseQueryParams(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr string
	}{
		{"defaults", "", Params{Page: 1, Limit: 20}, ""},
		{"explicit", "page=3&limit=50", Params{Page: 3, Limit: 50}, ""},
		{"max limit", "limit=100", Params{Page: 1, Limit: 100}, ""},
		{"zero page", "page=0", Params{}, "page must be a positive integer"},
		{"non-numeric page", "page=two", Params{}, "page must be a positive integer"},
		{"limit too large", "limit=101", Params{}, "limit must be between 1 and 100"},
		{"negative limit", "limit=-5", Params{}, "limit must be between 1 and 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := ParseQueryParams(q, cfg)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParamsValidateAndDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, Params{Page: 2, Limit: 10}.Validate(cfg))
	assert.Error(t, Params{Page: 0, Limit: 10}.Validate(cfg))
	assert.Error(t, Params{Page: 1, Limit: 500}.Validate(cfg))

	assert.Equal(t, Params{Page: 1, Limit: 20}, Params{}.WithDefaults(cfg))
	assert.Equal(t, Params{Page: 4, Limit: 100}, Params{Page: 4, Limit: 500}.WithDefaults(cfg))
}

func TestResolve(t *testing.T) {
	cfg := DefaultConfig()

	got, err := Params{}.Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, Params{Page: 1, Limit: 20}, got)

	got, err = Params{Page: 3}.Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, Params{Page: 3, Limit: 20}, got)

	_, err = Params{Limit: 500}.Resolve(cfg)
	assert.ErrorContains(t, err, "limit must be between 1 and 100")

	_, err = Params{Page: -1}.Resolve(cfg)
	assert.ErrorContains(t, err, "page must be a positive integer")
}

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name     string
		params   Params
		want     []string
		wantMeta Metadata
	}{
		{"first page", Params{Page: 1, Limit: 2}, []string{"a", "b"}, Metadata{Total: 5, Page: 1, Limit: 2, TotalPages: 3}},
		{"last partial page", Params{Page: 3, Limit: 2}, []string{"e"}, Metadata{Total: 5, Page: 3, Limit: 2, TotalPages: 3}},
		{"past the end", Params{Page: 9, Limit: 2}, []string{}, Metadata{Total: 5, Page: 9, Limit: 2, TotalPages: 3}},
		{"huge page does not wrap", Params{Page: hugePage, Limit: 4}, []string{}, Metadata{Total: 5, Page: hugePage, Limit: 4, TotalPages: 2}},
		{"single page", Params{Page: 1, Limit: 20}, items, Metadata{Total: 5, Page: 1, Limit: 20, TotalPages: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.params)
			assert.Equal(t, tt.want, got.Data)
			assert.Equal(t, tt.wantMeta, got.Pagination)
		})
	}

	empty := Paginate([]string(nil), Params{Page: 1, Limit: 20})
	assert.NotNil(t, empty.Data)
	assert.Empty(t, empty.Data)
	assert.Equal(t, 1, empty.Pagination.TotalPages)
	assert.False(t, empty.Pagination.HasNext())
}

func TestPaginateDoesNotAliasTail(t *testing.T) {
	items := []int{1, 2, 3, 4}
	page := Paginate(items, Params{Page: 1, Limit: 2})
	page.Data = append(page.Data, 99)
	assert.Equal(t, []int{1, 2, 3, 4}, items)
}
