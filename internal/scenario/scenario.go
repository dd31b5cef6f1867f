// Package scenario assembles the wizard step lists for the two scrape
// flows, runs them through the engine, and performs the terminal
// extraction+format action on completion. It also owns the outer menu
// loop.
package scenario

import (
	"fmt"

	"scrapewiz/internal/config"
	"scrapewiz/internal/extract"
	"scrapewiz/internal/fetch"
	"scrapewiz/internal/output"
	"scrapewiz/internal/ui"
	"scrapewiz/internal/validate"
	"scrapewiz/internal/wizard"
)

// SelectFunc renders a menu view and returns the chosen option index,
// or ui.ErrCancelled. ui.Select satisfies this.
type SelectFunc func(title string, options []string) (int, error)

// Views bundles the terminal views a Runner prompts through. Tests
// substitute scripted fakes.
type Views struct {
	Input  wizard.InputFunc
	Show   wizard.MessageFunc
	Select SelectFunc
}

// TerminalViews returns the interactive terminal views.
func TerminalViews() Views {
	return Views{
		Input:  ui.Input,
		Show:   ui.Message,
		Select: ui.Select,
	}
}

// Runner drives scenarios against one configuration and fetch service.
type Runner struct {
	cfg     *config.Config
	fetcher fetch.Fetcher
	views   Views
}

// New creates a scenario runner.
func New(cfg *config.Config, fetcher fetch.Fetcher, views Views) *Runner {
	return &Runner{cfg: cfg, fetcher: fetcher, views: views}
}

func (r *Runner) urlStep() wizard.Step {
	return wizard.URLStep{
		Label:       "Page URL",
		Fetch:       r.fetcher.Fetch,
		Input:       r.views.Input,
		Show:        r.views.Show,
		MaxAttempts: r.cfg.MaxAttempts,
	}
}

func (r *Runner) selectorStep(label string) wizard.Step {
	return wizard.PromptStep{
		Label:       label,
		ErrTitle:    "Invalid selector",
		Validate:    validate.Selector,
		Input:       r.views.Input,
		Show:        r.views.Show,
		MaxAttempts: r.cfg.MaxAttempts,
	}
}

func (r *Runner) outputFileStep() wizard.Step {
	return wizard.PromptStep{
		Label:       "Output file",
		Default:     r.cfg.FileInputDefault,
		ErrTitle:    "Invalid output file",
		Validate:    validate.File,
		Input:       r.views.Input,
		Show:        r.views.Show,
		MaxAttempts: r.cfg.MaxAttempts,
	}
}

// ScrapeText walks the user through [URL, selector, output file] and,
// on completion, writes the newline-joined matches to the output file.
// The page fetched during URL validation is reused; nothing is fetched
// twice.
func (r *Runner) ScrapeText() error {
	steps := []wizard.Step{
		r.urlStep(),
		r.selectorStep("CSS selector"),
		r.outputFileStep(),
	}

	answers, completed, err := wizard.Run(steps)
	if err != nil {
		return fmt.Errorf("scrape text: %w", err)
	}
	if !completed {
		return nil
	}

	mode := extract.Text
	if r.cfg.WholeElements {
		mode = extract.WholeElement
	}

	matches, err := extract.Matches(answers[0].Page, answers[1].Value, mode)
	if err != nil {
		return fmt.Errorf("scrape text: %w", err)
	}

	path := answers[2].Value
	content := output.RenderLines(matches)
	if r.cfg.WholeElements && output.IsMarkdownPath(path) {
		content, err = output.RenderMarkdown(matches)
		if err != nil {
			return fmt.Errorf("scrape text: %w", err)
		}
	}

	if err := output.WriteFile(path, content); err != nil {
		return fmt.Errorf("scrape text: %w", err)
	}
	r.views.Show("Scrape complete", fmt.Sprintf("%d match(es) written to %s", len(matches), path))
	return nil
}

// ScrapeTable walks the user through [URL, table root, header cell,
// row cell, output file] and, on completion, writes the delimited
// table to the output file. The column count is the number of matched
// header cells; the flat row-cell sequence wraps to a new row at every
// multiple of it.
func (r *Runner) ScrapeTable() error {
	steps := []wizard.Step{
		r.urlStep(),
		r.selectorStep("Table root selector"),
		r.selectorStep("Header cell selector"),
		r.selectorStep("Row cell selector"),
		r.outputFileStep(),
	}

	answers, completed, err := wizard.Run(steps)
	if err != nil {
		return fmt.Errorf("scrape table: %w", err)
	}
	if !completed {
		return nil
	}

	page := answers[0].Page
	root := answers[1].Value
	headerSel := root + " " + answers[2].Value
	rowSel := root + " " + answers[3].Value
	path := answers[4].Value

	headers, err := extract.Matches(page, headerSel, extract.Text)
	if err != nil {
		return fmt.Errorf("scrape table: %w", err)
	}
	cells, err := extract.Matches(page, rowSel, extract.Text)
	if err != nil {
		return fmt.Errorf("scrape table: %w", err)
	}
	cols, err := extract.Count(page, headerSel)
	if err != nil {
		return fmt.Errorf("scrape table: %w", err)
	}
	if cols == 0 {
		r.views.Show("No table found", "the header selector matched no elements, nothing was written")
		return nil
	}

	content := output.RenderTable(headers, cells, cols, r.cfg.TableSeparator, r.cfg.OmitTableHeaders)
	if err := output.WriteFile(path, content); err != nil {
		return fmt.Errorf("scrape table: %w", err)
	}
	r.views.Show("Scrape complete", fmt.Sprintf("%d row(s) written to %s", len(output.Reshape(cells, cols)), path))
	return nil
}
