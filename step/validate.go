package step

import "fmt"

// Validate checks the structural contract every trace honors: it is
// non-empty, begins with start, ends with exactly one complete step, and
// uses only known actions.
func Validate(t Trace) error {
	if len(t) == 0 {
		return ErrEmptyTrace
	}
	if t[0].Action != ActionStart {
		return fmt.Errorf("%w: got %q", ErrMissingStart, t[0].Action)
	}
	for i := range t {
		a := t[i].Action
		if !a.Valid() {
			return fmt.Errorf("step %d: %w %q", i, ErrUnknownAction, a)
		}
		if a.Terminal() && i != len(t)-1 {
			return fmt.Errorf("step %d: %w", i, ErrBadTerminal)
		}
	}
	if !t.Last().Action.Terminal() {
		return fmt.Errorf("%w: last action %q", ErrBadTerminal, t.Last().Action)
	}

	return nil
}
