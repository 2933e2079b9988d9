package sitegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peerscore/peerscore/core"
	"github.com/peerscore/peerscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []schema.Record {
	return []schema.Record{
		{Symbol: "AAPL", Values: map[schema.Field]float64{
			schema.FieldCurrentRatio:    1.8,
			schema.FieldPriceToEarnings: 20,
		}},
		{Symbol: "MSFT", Values: map[schema.Field]float64{
			schema.FieldCurrentRatio:    1.1,
			schema.FieldPriceToEarnings: 30,
		}},
	}
}

func TestRenderPage(t *testing.T) {
	rs := schema.DefaultRuleset()
	records := testRecords()
	medians := core.ComputeMedians(rs, records)
	card := core.BuildScorecard(rs, records[0], medians)

	outPath := filepath.Join(t.TempDir(), "stocks", "AAPL.html")
	require.NoError(t, RenderPage(card, outPath, "../"))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<title>Stock Details - AAPL</title>")
	assert.Contains(t, html, "current_ratio")
	assert.Contains(t, html, `href="../styles.css"`)
	assert.Contains(t, html, "chip")
}

func TestPrerenderBatch(t *testing.T) {
	rs := schema.DefaultRuleset()
	records := testRecords()
	medians := core.ComputeMedians(rs, records)

	outDir := t.TempDir()
	stale := filepath.Join(outDir, "OLD.html")
	require.NoError(t, os.WriteFile(stale, []byte("<html></html>"), 0o644))

	result, err := PrerenderBatch(rs, records, medians, []string{"AAPL", "TSLA"}, outDir, "../", false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Written)
	assert.Equal(t, 1, result.Skipped) // TSLA has no dataset row
	assert.Equal(t, 1, result.Cleaned)

	assert.FileExists(t, filepath.Join(outDir, "AAPL.html"))
	assert.NoFileExists(t, stale)
}

func TestPrerenderBatchNoClean(t *testing.T) {
	rs := schema.DefaultRuleset()
	records := testRecords()
	medians := core.ComputeMedians(rs, records)

	outDir := t.TempDir()
	stale := filepath.Join(outDir, "OLD.html")
	require.NoError(t, os.WriteFile(stale, []byte("<html></html>"), 0o644))

	result, err := PrerenderBatch(rs, records, medians, []string{"MSFT"}, outDir, "", true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Written)
	assert.Equal(t, 0, result.Cleaned)
	assert.FileExists(t, stale)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "adds trailing slash", input: "https://example.com", expected: "https://example.com/"},
		{name: "keeps trailing slash", input: "https://example.com/", expected: "https://example.com/"},
		{name: "http allowed", input: "http://example.com", expected: "http://example.com/"},
		{name: "empty", input: "  ", wantErr: true},
		{name: "missing scheme", input: "example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildSitemap(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "stocks"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stocks", "A&B.html"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "skip.html"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	xml, err := BuildSitemap(root, "https://example.com", true)
	require.NoError(t, err)

	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "<loc>https://example.com/index.html</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/stocks/A&amp;B.html</loc>")
	assert.Contains(t, xml, "<lastmod>")
	assert.NotContains(t, xml, "node_modules")
	assert.NotContains(t, xml, "notes.txt")

	// Root pages come before deeper ones
	assert.Less(t, strings.Index(xml, "index.html"), strings.Index(xml, "stocks/"))
}

func TestBuildSitemapNoLastmod(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("x"), 0o644))

	xml, err := BuildSitemap(root, "https://example.com", false)
	require.NoError(t, err)
	assert.NotContains(t, xml, "<lastmod>")
}

func TestWriteSitemap(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("x"), 0o644))

	out := filepath.Join(root, "sitemap.xml")
	require.NoError(t, WriteSitemap(root, "https://example.com", out, true))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "index.html")
}

func TestWriteSitemapRejectsBadBaseURL(t *testing.T) {
	root := t.TempDir()
	assert.Error(t, WriteSitemap(root, "example.com", filepath.Join(root, "sitemap.xml"), true))
}
