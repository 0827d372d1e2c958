package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrDetailsNotFound means the page loaded but required fields were missing.
	ErrDetailsNotFound = errors.New("details not found")

	// ErrUnexpectedShape means the page or its embedded data did not have the
	// structure the extractors rely on (marker script, renderer nesting, JSON).
	ErrUnexpectedShape = errors.New("unexpected upstream shape")
)

// FetchError is a transport-level failure of an outbound page fetch.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
