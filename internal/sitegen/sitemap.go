package sitegen

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// sitemapNS is the sitemap protocol namespace.
const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// skippedDirs are directories never scanned for pages.
var skippedDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	"__pycache__":  {},
}

// NormalizeBaseURL validates the site base URL and ensures a trailing slash.
func NormalizeBaseURL(baseURL string) (string, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return "", fmt.Errorf("base URL is required (e.g. https://example.com)")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return "", fmt.Errorf("base URL must start with http:// or https://")
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base, nil
}

// sitemapPage is one page entry with its root-relative path.
type sitemapPage struct {
	rel     string
	modTime time.Time
}

// collectPages finds the HTML pages under siteRoot in stable order: root
// pages first, then deeper ones, lexical within a depth.
func collectPages(siteRoot string) ([]sitemapPage, error) {
	var pages []sitemapPage

	err := filepath.WalkDir(siteRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := skippedDirs[d.Name()]; skip && path != siteRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".html") {
			return nil
		}
		rel, err := filepath.Rel(siteRoot, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		pages = append(pages, sitemapPage{
			rel:     filepath.ToSlash(rel),
			modTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan site root %s: %w", siteRoot, err)
	}

	sort.Slice(pages, func(i, j int) bool {
		di := strings.Count(pages[i].rel, "/")
		dj := strings.Count(pages[j].rel, "/")
		if di != dj {
			return di < dj
		}
		return pages[i].rel < pages[j].rel
	})
	return pages, nil
}

// xmlEscape escapes the five XML special characters.
func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

// BuildSitemap scans siteRoot for HTML pages and returns the sitemap XML.
func BuildSitemap(siteRoot, baseURL string, includeLastmod bool) (string, error) {
	base, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return "", err
	}

	pages, err := collectPages(siteRoot)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, "<urlset xmlns=%q>\n", sitemapNS)
	for _, page := range pages {
		b.WriteString("  <url>\n")
		fmt.Fprintf(&b, "    <loc>%s</loc>\n", xmlEscape(base+page.rel))
		if includeLastmod {
			fmt.Fprintf(&b, "    <lastmod>%s</lastmod>\n", page.modTime.UTC().Format("2006-01-02"))
		}
		b.WriteString("  </url>\n")
	}
	b.WriteString("</urlset>\n")
	return b.String(), nil
}

// WriteSitemap builds the sitemap and writes it to outPath.
func WriteSitemap(siteRoot, baseURL, outPath string, includeLastmod bool) error {
	xml, err := BuildSitemap(siteRoot, baseURL, includeLastmod)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(xml), 0o644); err != nil {
		return fmt.Errorf("failed to write sitemap %s: %w", outPath, err)
	}
	return nil
}
