package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/internal/sitegen"
	"github.com/spf13/cobra"
)

// sitemapCmd generates sitemap.xml for the static site.
var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Generate sitemap.xml for the prerendered site.",
	Long: `Scan the site root for HTML pages and write a sitemap.xml.

Search engines use the sitemap to discover pages reliably, including the
prerendered per-symbol pages that are only linked via JavaScript. Pages
are listed root-first in stable order; node_modules and VCS directories
are skipped.

Examples:
  # Generate with lastmod dates from file mtimes
  peerscore sitemap --site-root public --base-url https://example.com

  # Omit lastmod tags
  peerscore sitemap --site-root public --base-url https://example.com --no-lastmod`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		outPath := cfg.OutputFile
		if outPath == "" {
			outPath = filepath.Join(cfg.SiteRoot, "sitemap.xml")
		}

		if err := sitegen.WriteSitemap(cfg.SiteRoot, cfg.BaseURL, outPath, !cfg.NoLastmod); err != nil {
			contract.LogFatal("Cannot generate sitemap", err)
		}
		fmt.Printf("Wrote: %s\n", outPath)
	},
}
