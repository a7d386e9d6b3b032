// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/praxis-listings/internal/listing"
	"github.com/pdiddy/praxis-listings/internal/pagination"
	"github.com/pdiddy/praxis-listings/pkg/types"
)

func sampleView() listing.ResultView {
	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	items := []*types.ContentItem{
		{ID: "p1", Title: "Justice Legal Aid", Category: "legal-aid", PublishedAt: day, Popularity: 90},
		{ID: "p2", Title: "Home First Housing Collaborative of the Greater Metro Region", Category: "housing", PublishedAt: day, Popularity: 40},
		{ID: "p3", Title: "法律援助センター", Category: "legal-aid", PublishedAt: day, Popularity: 10},
	}
	return listing.ResultView{Items: items, Count: len(items)}
}

func TestNewPage(t *testing.T) {
	p := NewPage(types.KindPartner, sampleView(), pagination.Params{Page: 2, Limit: 2})
	assert.Equal(t, "3 partners found", p.Label)
	require.Len(t, p.Data, 1)
	assert.Equal(t, "p3", p.Data[0].ID)
	assert.Equal(t, pagination.Metadata{Total: 3, Page: 2, Limit: 2, TotalPages: 2}, p.Pagination)
}

func TestTable(t *testing.T) {
	p := NewPage(types.KindPartner, sampleView(), pagination.Params{Page: 1, Limit: 2})

	var buf bytes.Buffer
	Table(&buf, p)
	out := buf.String()

	assert.Contains(t, out, "Justice Legal Aid")
	assert.Contains(t, out, "...", "long titles are truncated")
	assert.NotContains(t, out, "Greater Metro Region")
	assert.Contains(t, out, "3 partners found (page 1 of 2)")

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[2], "1 "))
	assert.True(t, strings.HasPrefix(lines[3], "2 "))
}

func TestTableRankContinuesAcrossPages(t *testing.T) {
	p := NewPage(types.KindPartner, sampleView(), pagination.Params{Page: 2, Limit: 2})

	var buf bytes.Buffer
	Table(&buf, p)
	lines := strings.Split(buf.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[2], "3 "), "got %q", lines[2])
}

func TestTablePageBeyondIntRange(t *testing.T) {
	p := NewPage(types.KindPartner, sampleView(), pagination.Params{Page: 4611686018427387905, Limit: 4})
	assert.Empty(t, p.Data)

	var buf bytes.Buffer
	Table(&buf, p)
	assert.Equal(t, "3 partners found\n", buf.String())
}

func TestTableEmpty(t *testing.T) {
	p := NewPage(types.KindNews, listing.ResultView{}, pagination.Params{Page: 1, Limit: 20})

	var buf bytes.Buffer
	Table(&buf, p)
	assert.Equal(t, "0 articles found\n", buf.String())
}

func TestJSON(t *testing.T) {
	p := NewPage(types.KindPartner, sampleView(), pagination.Params{Page: 1, Limit: 20})

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, p))

	var decoded struct {
		Label      string              `json:"label"`
		Data       []types.ContentItem `json:"data"`
		Pagination pagination.Metadata `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "3 partners found", decoded.Label)
	assert.Len(t, decoded.Data, 3)
	assert.Equal(t, 1, decoded.Pagination.TotalPages)
}

func TestJSONEmptyDataIsArray(t *testing.T) {
	p := NewPage(types.KindNews, listing.ResultView{}, pagination.Params{Page: 1, Limit: 20})

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, p))
	assert.Contains(t, buf.String(), `"data": []`)
}

func TestYAML(t *testing.T) {
	p := NewPage(types.KindPartner, sampleView(), pagination.Params{Page: 1, Limit: 1})

	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, p))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "3 partners found", decoded["label"])
	assert.Len(t, decoded["data"], 1)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "JSON": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("csv")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestFacets(t *testing.T) {
	counts := []listing.CategoryCount{
		{Category: "legal-aid", Count: 2},
		{Category: "housing", Count: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, FacetsJSON(&buf, counts))
	compact := strings.Join(strings.Fields(buf.String()), "")
	assert.Equal(t, `{"all":3,"legal-aid":2,"housing":1}`, compact)

	buf.Reset()
	FacetsTable(&buf, counts)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "all"))
	assert.True(t, strings.HasPrefix(lines[2], "legal-aid"))
}
