package biketerra

import "fmt"

// StructureError means the payload does not match the expected pointer-array
// schema. It fires when the upstream site changes its internal data format,
// so the message names the offending field or index.
type StructureError struct {
	Msg string
}

func (e *StructureError) Error() string {
	return "route data: " + e.Msg
}

func structErrorf(format string, args ...any) *StructureError {
	return &StructureError{Msg: fmt.Sprintf(format, args...)}
}

// HTTPError is a non-2xx response from the route endpoint.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.StatusCode, e.URL)
}
