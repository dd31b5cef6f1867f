package wizard

import (
	"context"
	"errors"

	"scrapewiz/internal/ui"
	"scrapewiz/internal/validate"
)

// InputFunc renders an input view pre-filled with a default value and
// returns the entered text, or ui.ErrCancelled when the user backs
// out. ui.Input satisfies this; tests substitute scripted fakes.
type InputFunc func(label, prefill string) (string, error)

// MessageFunc renders a blocking message box with a kind-specific
// title. ui.Message satisfies this.
type MessageFunc func(title, text string)

// PromptStep is the generic step handler: one input view wrapped in a
// validate/re-prompt loop. A failed validation redisplays the same
// view pre-filled with the invalid value the user just entered; only
// cancellation escapes the loop without a valid value.
type PromptStep struct {
	Label    string
	ErrTitle string
	Validate func(string) error
	Input    InputFunc
	Show     MessageFunc

	// Default pre-fills the view on first entry, before any answer has
	// been captured for this slot (e.g. the configured output
	// directory). A prior answer always wins over it.
	Default string

	// MaxAttempts caps the validation retries when positive; reaching
	// the cap behaves like a cancel. Zero preserves the classic
	// unbounded-retry behavior.
	MaxAttempts int
}

func (s PromptStep) Handle(prior Answer) (Result, error) {
	prefill := prior.Value
	if prefill == "" {
		prefill = s.Default
	}
	attempts := 0

	for {
		entered, err := s.Input(s.Label, prefill)
		if errors.Is(err, ui.ErrCancelled) {
			return Retreat(), nil
		}
		if err != nil {
			return Result{}, err
		}

		if verr := s.Validate(entered); verr != nil {
			s.Show(s.ErrTitle, verr.Error())
			prefill = entered
			attempts++
			if s.MaxAttempts > 0 && attempts >= s.MaxAttempts {
				return Retreat(), nil
			}
			continue
		}

		return Advance(Answer{Value: entered}), nil
	}
}

// FetchFunc retrieves page content for a URL. An error or empty
// content both count as an unreachable page.
type FetchFunc func(ctx context.Context, url string) (string, error)

// URLStep collects a URL under a compound validity condition: the
// string must be syntactically valid AND the page must be fetchable.
// The two failure modes re-prompt with distinct messages so the user
// can tell bad input from a bad resource. A successful fetch rides
// along in the Answer for the terminal action to reuse.
type URLStep struct {
	Label string
	Fetch FetchFunc
	Input InputFunc
	Show  MessageFunc

	MaxAttempts int
}

func (s URLStep) Handle(prior Answer) (Result, error) {
	prefill := prior.Value
	attempts := 0

	fail := func(title, text string) bool {
		s.Show(title, text)
		attempts++
		return s.MaxAttempts > 0 && attempts >= s.MaxAttempts
	}

	for {
		entered, err := s.Input(s.Label, prefill)
		if errors.Is(err, ui.ErrCancelled) {
			return Retreat(), nil
		}
		if err != nil {
			return Result{}, err
		}
		prefill = entered

		if verr := validate.URL(entered); verr != nil {
			if fail("Invalid URL", verr.Error()) {
				return Retreat(), nil
			}
			continue
		}

		page, err := s.Fetch(context.Background(), entered)
		if err != nil || page == "" {
			text := "no content received from " + entered
			if err != nil {
				text = err.Error()
			}
			if fail("Unable to fetch URL", text) {
				return Retreat(), nil
			}
			continue
		}

		return Advance(Answer{Value: entered, Page: page}), nil
	}
}
