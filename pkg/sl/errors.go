package sl

import "fmt"

// FetchError covers network failures, timeouts and non-2xx responses.
// ParseError covers payloads that do not decode into the expected shape.
// They stay distinct so a failed poll is never mistaken for an empty board.

type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
