package composer

import (
	"errors"
	"fmt"
)

// ErrMalformedReply is the sentinel matched by errors.Is for model replies
// that failed JSON decoding or were missing mandatory fields.
var ErrMalformedReply = errors.New("malformed model reply")

// MalformedReplyError reports a model reply the composer could not decode.
// The raw reply text is preserved for diagnosis.
type MalformedReplyError struct {
	Raw    string
	Reason string
}

func (e *MalformedReplyError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMalformedReply, e.Reason)
}

func (e *MalformedReplyError) Unwrap() error {
	return ErrMalformedReply
}
