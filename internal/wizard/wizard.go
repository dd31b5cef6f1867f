// Package wizard implements the step-driven navigation engine: an
// ordered list of input-collection steps walked forward and backward,
// with answers retained across backward navigation.
package wizard

import "fmt"

// Answer holds the captured value for one step. URL steps also retain
// the fetched page so the terminal action does not re-fetch; for every
// other step kind Page stays empty.
type Answer struct {
	Value string
	Page  string
}

// Result is the outcome of one step invocation: either an Advance
// carrying the captured answer, or a Retreat. Validation failures are
// resolved inside the step and never surface here.
type Result struct {
	retreat bool
	answer  Answer
}

// Advance builds a forward result carrying the captured answer.
func Advance(a Answer) Result {
	return Result{answer: a}
}

// Retreat builds a backward result.
func Retreat() Result {
	return Result{retreat: true}
}

// Step is one unit of prompting and validation. Handle receives the
// previously captured answer for its slot (zero value on first entry)
// as a pre-fill default.
type Step interface {
	Handle(prior Answer) (Result, error)
}

// Run drives steps from the first to the last. The cursor moves by
// exactly one in either direction: an Advance stores the answer and
// moves forward, a Retreat moves backward, and a Retreat on the first
// step aborts the whole run. Answers survive backward navigation and
// are only superseded when their step is re-advanced.
//
// On normal completion Run returns one answer per step, in step
// order, with completed=true. An aborted run returns completed=false
// and a nil answer slice.
func Run(steps []Step) (answers []Answer, completed bool, err error) {
	collected := make([]Answer, len(steps))
	cursor := 0

	for cursor < len(steps) {
		result, err := steps[cursor].Handle(collected[cursor])
		if err != nil {
			return nil, false, fmt.Errorf("step %d: %w", cursor+1, err)
		}

		if result.retreat {
			if cursor == 0 {
				return nil, false, nil
			}
			cursor--
			continue
		}

		collected[cursor] = result.answer
		cursor++
	}

	return collected, true, nil
}
