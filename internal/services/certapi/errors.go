package certapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const bodySnippetLimit = 512

// StatusError reports a non-success response from a backend endpoint.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s returned %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s returned %d: %s", e.Path, e.StatusCode, body)
}

// StatusCodeOf extracts the HTTP status from err when it carries one.
func StatusCodeOf(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}
	return 0, false
}

func newStatusError(path string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, bodySnippetLimit))
	return &StatusError{
		Path:       path,
		StatusCode: resp.StatusCode,
		Body:       string(snippet),
	}
}
