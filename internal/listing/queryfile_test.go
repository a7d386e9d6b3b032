// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")

	src := newReadyEngine(t, sampleNews())
	require.NoError(t, src.SetCategoryFilter("news"))
	require.NoError(t, src.SetDateWindow(Window365Days))
	require.NoError(t, src.SetSearchTerm("court"))
	require.NoError(t, src.SetSortKey(SortTitleAsc))
	require.NoError(t, WriteQueryFile(path, src, 2, 10))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, QueryParams{Category: "news", Window: "last-365-days", Search: "court", Sort: "title-asc"}, qf.Query)
	assert.Equal(t, 2, qf.Page)
	assert.Equal(t, 10, qf.Limit)
	assert.Equal(t, 1, qf.Summary.Total)
	assert.False(t, qf.Summary.Timestamp.IsZero())

	dst := newReadyEngine(t, sampleNews())
	require.NoError(t, qf.Query.Apply(dst))
	assert.Equal(t, viewIDs(t, src), viewIDs(t, dst))
}

func TestQueryParamsApplyDefaults(t *testing.T) {
	e := newReadyEngine(t, sampleNews())
	require.NoError(t, e.SetSortKey(SortTitleAsc))

	require.NoError(t, QueryParams{}.Apply(e))

	state, key, err := e.State()
	require.NoError(t, err)
	assert.Equal(t, DefaultFilterState(), state)
	assert.Equal(t, SortDateDesc, key)
}

func TestQueryParamsApplyNormalizesCategory(t *testing.T) {
	e := newReadyEngine(t, sampleNews())

	for _, category := range []string{"Press Release", "PRESS-RELEASE", "  press   release "} {
		require.NoError(t, QueryParams{Category: category}.Apply(e))
		assert.Equal(t, []string{"n2", "n5"}, viewIDs(t, e), "category %q", category)
	}

	require.NoError(t, QueryParams{Category: "All"}.Apply(e))
	state, _, err := e.State()
	require.NoError(t, err)
	assert.Equal(t, CategoryAll, state.Category)
}

func TestNormalizeCategory(t *testing.T) {
	tests := map[string]string{
		"Criminal Justice": "criminal-justice",
		"criminal-justice": "criminal-justice",
		" Legal  Aid ":     "legal-aid",
		"":                 "",
		"ALL":              "all",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeCategory(in), "NormalizeCategory(%q)", in)
	}
}

func TestQueryParamsApplyRejectsBadValues(t *testing.T) {
	e := newReadyEngine(t, sampleNews())

	tests := []QueryParams{
		{Window: "fortnight"},
		{Sort: "newest"},
	}
	for _, p := range tests {
		err := p.Apply(e)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	state, _, err := e.State()
	require.NoError(t, err)
	assert.Equal(t, DefaultFilterState(), state)
}

func TestReadQueryFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadQueryFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "reading query file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("query: [unterminated"), 0o644))
	_, err = ReadQueryFile(bad)
	assert.ErrorContains(t, err, "parsing query file")
}

func TestParseEnums(t *testing.T) {
	w, err := ParseDateWindow(" Last-30-Days ")
	require.NoError(t, err)
	assert.Equal(t, Window30Days, w)

	w, err = ParseDateWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowAll, w)

	k, err := ParseSortKey("POPULARITY-DESC")
	require.NoError(t, err)
	assert.Equal(t, SortPopularityDesc, k)

	k, err = ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortDateDesc, k)

	_, err = ParseSortKey("oldest")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
