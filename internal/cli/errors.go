package cli

import "errors"

// CLI-specific sentinel errors.
// These are validation/usage errors that don't belong to domain packages.

var (
	// ErrAPIKeyMissing indicates VECTORIZE_API_KEY environment variable is not set.
	ErrAPIKeyMissing = errors.New("VECTORIZE_API_KEY environment variable not set")

	// ErrFileNotFound indicates the specified input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrOutputExists indicates the output file already exists.
	ErrOutputExists = errors.New("output file already exists")

	// ErrEmptyInput indicates no usable text was provided.
	ErrEmptyInput = errors.New("no input text")
)
