package main

import (
	"fmt"
	"os"
	"time"

	"scrapewiz/internal/browser"
	"scrapewiz/internal/config"
	"scrapewiz/internal/fetch"
	"scrapewiz/internal/scenario"
	"scrapewiz/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

const fetchTimeout = 30 * time.Second

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:     "scrapewiz",
		Short:   "An interactive wizard for scraping web pages",
		Version: version,
		Long: `scrapewiz is an interactive command-line wizard that fetches a web
page, extracts data via CSS-selector queries, and writes the result to
a file.

It can do two things:
  - scrape text:  extract the text (or markup) of all elements matching
                  a CSS selector
  - scrape table: extract a delimited table from header and row cell
                  selectors under a table root

Behavior is controlled by a key=value config file, created with
defaults on first run:
  FILE_INPUT_DEFAULT  directory pre-filled in the output file prompt
  TABLE_SEPARATOR     string joining table cells (default ";")
  OMIT_TABLE_HEADERS  suppress the header row in table output
  AUTOCLOSE           exit after one scrape instead of showing the menu
  WHOLE_ELEMENTS      extract full matched markup instead of text
  RENDER_JS           fetch pages through a headless browser
  MAX_ATTEMPTS        cap on validation retries per step (0 = unlimited)`,
		Example:      `  scrapewiz`,
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"scrapewiz %s - an interactive web scraping wizard\nwritten by the scrapewiz authors\n", version))
	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (default: the per-user config directory)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := ui.RequireInteraction(); err != nil {
		return err
	}

	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	var fetcher fetch.Fetcher
	if cfg.RenderJS {
		fetcher = fetch.NewRendered(browser.Config{Headless: true}, fetchTimeout)
	} else {
		fetcher = fetch.NewClient(fetchTimeout)
	}

	runner := scenario.New(cfg, fetcher, scenario.TerminalViews())
	return runner.Menu()
}
