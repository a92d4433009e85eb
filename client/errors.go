package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/samber/lo"
)

// ErrNotFound matches any *APIError with status 404 through errors.Is.
var ErrNotFound = errors.New("resource not found")

const maxErrorBody = 64 << 10

// APIError is a non-2xx response of the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type errorItem struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorBody struct {
	Message string      `json:"message"`
	Error   string      `json:"error"`
	Errors  []errorItem `json:"errors"`
}

// parseAPIError extracts a human readable message from a failed response.
// JSON bodies may carry "message", "error" or a list of "errors"; anything
// else is used as plain text.
func parseAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	text := strings.TrimSpace(string(raw))

	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		messages := lo.FilterMap(body.Errors, func(e errorItem, _ int) (string, bool) {
			return e.Message, e.Message != ""
		})

		switch {
		case body.Message != "":
			apiErr.Message = body.Message
		case body.Error != "":
			apiErr.Message = body.Error
		case len(messages) > 0:
			apiErr.Message = strings.Join(messages, "; ")
		}
	} else {
		apiErr.Message = text
	}

	if apiErr.Message == "" {
		apiErr.Message = lo.Ternary(text != "" && !strings.HasPrefix(text, "{"), text, http.StatusText(resp.StatusCode))
	}

	return apiErr
}
