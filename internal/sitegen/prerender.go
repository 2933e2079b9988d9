// Package sitegen renders static scorecard pages and the sitemap that
// indexes them.
package sitegen

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peerscore/peerscore/core"
	"github.com/peerscore/peerscore/internal/dataset"
	"github.com/peerscore/peerscore/schema"
)

//go:embed page.tmpl
var pageTemplate string

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// pageSection is one scorecard section prepared for the page template.
type pageSection struct {
	ID      string
	Title   string
	Score   schema.SectionScore
	Label   string
	Chip    string
	Metrics []schema.MetricResult
}

// pageData is the full template context for one prerendered page.
type pageData struct {
	Symbol       string
	Card         schema.Scorecard
	Sections     []pageSection
	OverallLabel string
	OverallChip  string
	AssetPrefix  string
	GeneratedAt  string
}

// chipClass maps a grade to its CSS chip class.
func chipClass(g schema.Grade) string {
	switch g {
	case schema.GoodGrade:
		return "chip-good"
	case schema.PoorGrade:
		return "chip-poor"
	default:
		return "chip-mixed"
	}
}

// RenderPage writes one company's scorecard page to outPath. The asset
// prefix points relative links back at the site root.
func RenderPage(card schema.Scorecard, outPath, assetPrefix string) error {
	sections := make([]pageSection, len(card.Sections))
	for i, s := range card.Sections {
		sections[i] = pageSection{
			ID:      s.ID,
			Title:   s.Title,
			Score:   s.Score,
			Label:   schema.GradeLabel(s.Grade),
			Chip:    chipClass(s.Grade),
			Metrics: s.Metrics,
		}
	}

	data := pageData{
		Symbol:       card.Symbol,
		Card:         card,
		Sections:     sections,
		OverallLabel: schema.GradeLabel(card.OverallGrade),
		OverallChip:  chipClass(card.OverallGrade),
		AssetPrefix:  assetPrefix,
		GeneratedAt:  time.Now().UTC().Format("2006-01-02"),
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create page %s: %w", outPath, err)
	}
	defer func() { _ = file.Close() }()

	if err := pageTmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to render page %s: %w", outPath, err)
	}
	return nil
}

// BatchResult summarizes one batch prerender.
type BatchResult struct {
	Written int // Pages rendered
	Skipped int // Symbols with no dataset row
	Cleaned int // Stale pages removed
}

// PrerenderBatch renders one page per symbol into outDir and, unless
// noClean is set, removes stale pages left over from symbols no longer in
// the list. Symbols without a dataset row are skipped, not fatal.
func PrerenderBatch(rs *schema.Ruleset, records []schema.Record, medians schema.MedianTable, symbols []string, outDir, assetPrefix string, noClean bool) (BatchResult, error) {
	var result BatchResult

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return result, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	wanted := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		rec, ok := dataset.FindRecord(records, symbol)
		if !ok {
			result.Skipped++
			continue
		}
		card := core.BuildScorecard(rs, rec, medians)
		card.Symbol = strings.ToUpper(strings.TrimSpace(symbol))

		name := dataset.SanitizeSymbol(symbol) + ".html"
		wanted[name] = struct{}{}
		if err := RenderPage(card, filepath.Join(outDir, name), assetPrefix); err != nil {
			return result, err
		}
		result.Written++
	}

	if !noClean {
		cleaned, err := cleanStalePages(outDir, wanted)
		if err != nil {
			return result, err
		}
		result.Cleaned = cleaned
	}

	return result, nil
}

// cleanStalePages removes *.html files in dir that are not in the wanted set.
func cleanStalePages(dir string, wanted map[string]struct{}) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read output directory %s: %w", dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".html") {
			continue
		}
		if _, keep := wanted[entry.Name()]; keep {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove stale page %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}
