package feature

import (
	"errors"
	"fmt"
)

// ErrEmptyChoice is the sentinel matched by errors.Is for selection requests
// that had no eligible candidate member.
var ErrEmptyChoice = errors.New("no eligible feature member to choose from")

// EmptyChoiceError reports a feature-substitution request whose candidate set
// was empty: the kind's enumeration has no member other than the none sentinel
// and the excluded value. This indicates a registry configuration problem and
// is surfaced rather than silently defaulted.
type EmptyChoiceError struct {
	Kind     Kind
	Excluded string
}

func (e *EmptyChoiceError) Error() string {
	if e.Excluded != "" {
		return fmt.Sprintf("%v: kind %q excluding %q", ErrEmptyChoice, e.Kind, e.Excluded)
	}
	return fmt.Sprintf("%v: kind %q", ErrEmptyChoice, e.Kind)
}

func (e *EmptyChoiceError) Unwrap() error {
	return ErrEmptyChoice
}
