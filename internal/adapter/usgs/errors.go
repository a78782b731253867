package usgs

import "fmt"

// FetchError reports a failed catalog request: either a transport failure
// (Status 0, wrapped cause) or a non-200 response (Status set, Body holding
// an excerpt of the server's reply).
type FetchError struct {
	Status int
	Body   string
	cause  error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("usgs: fetch failed: status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("usgs: fetch failed: %v", e.cause)
}

func (e *FetchError) Unwrap() error { return e.cause }

// ParseError reports a response body that could not be decoded as GeoJSON.
type ParseError struct {
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("usgs: parse response: %v", e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }
