package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrExternalCall is returned when the model client fails (timeout, auth
	// failure, rate limit, quota exhaustion).
	ErrExternalCall = errors.New("language model call failed")

	// ErrInvalidResponse is returned when the model response is empty or malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry.
	ErrTransientFailure = errors.New("transient error during text generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when an empty prompt is submitted.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
