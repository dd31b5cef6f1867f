package scenario

import (
	"errors"

	"scrapewiz/internal/ui"
)

// Menu option indices, in display order.
const (
	menuScrapeText = iota
	menuScrapeTable
	menuExit
)

var menuOptions = []string{"Scrape text", "Scrape table", "Exit"}

// Menu runs the top-level loop: show the menu, run the chosen
// scenario, and return to the menu unless AUTOCLOSE is set. A scenario
// abort (retreat past the first step) counts the same as a completion
// here; autoclose does not distinguish them. Cancelling the menu
// itself exits.
func (r *Runner) Menu() error {
	for {
		choice, err := r.views.Select("What do you want to scrape?", menuOptions)
		if errors.Is(err, ui.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case menuScrapeText:
			err = r.ScrapeText()
		case menuScrapeTable:
			err = r.ScrapeTable()
		case menuExit:
			return nil
		}
		if err != nil {
			return err
		}

		if r.cfg.Autoclose {
			return nil
		}
	}
}
