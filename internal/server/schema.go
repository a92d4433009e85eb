package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Alp4ka/hotelpager"
	"github.com/Alp4ka/hotelpager/model"
)

var (
	ErrInternal = &Error{
		Type:    "generic.internal",
		Message: "An internal error occurred.",
	}
	ErrNotFound = &Error{
		Type:    "generic.notFound",
		Message: "Resource not found.",
	}
	ErrMethodNotAllowed = &Error{
		Type:    "generic.methodNotAllowed",
		Message: "Method not allowed.",
	}

	errRequestBodyInvalidJSON = func(err error) *Error {
		return &Error{
			Type:    "validation.requestBody.invalidJSON",
			Message: "Request body is not a valid JSON input.",
			Details: map[string]any{"error": err.Error()},
		}
	}
	errPathParameterInvalid = func(name, value string) *Error {
		return &Error{
			Type:    "validation.path.parameter.invalid",
			Message: fmt.Sprintf("The path parameter '%s' ('%s') is not a valid identifier.", name, value),
			Details: map[string]any{"parameter": name, "value": value},
		}
	}
	errSortInvalid = func(err error) *Error {
		details := map[string]any{"parameter": "sort"}

		var aliasErr *hotelpager.UnknownSortAliasError
		if errors.As(err, &aliasErr) {
			details["alias"] = aliasErr.Alias
			if aliasErr.Suggestion != "" {
				details["suggestion"] = aliasErr.Suggestion
			}
		}

		return &Error{
			Type:    "validation.query.parameter.sort",
			Message: err.Error(),
			Details: details,
		}
	}
	errFieldInvalid = func(f model.FieldError) *Error {
		return &Error{
			Type:    "validation.requestBody.parameter.invalid",
			Message: fmt.Sprintf("The request body parameter %s.", f),
			Details: map[string]any{"parameter": f.Field, "rule": f.Rule, "param": f.Param},
		}
	}
)

// ErrorResponse is sent whenever a request could not be served
type ErrorResponse struct {
	Status int      `json:"status"`
	Errors []*Error `json:"errors"`
}

// Error is a single entry of an ErrorResponse
type Error struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// Writer writes unified JSON responses
type Writer struct {
	InternalErrorHook func(err error)
}

// WriteJSONCode writes value as JSON using the given HTTP status code
func (writer *Writer) WriteJSONCode(rw http.ResponseWriter, code int, value any) {
	val, err := json.Marshal(value)
	if err != nil {
		writer.WriteInternalError(rw, fmt.Errorf("cannot encode response: %w", err))
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_, _ = rw.Write(val)
}

// WriteJSON writes value as JSON with 200 OK
func (writer *Writer) WriteJSON(rw http.ResponseWriter, value any) {
	writer.WriteJSONCode(rw, http.StatusOK, value)
}

// WriteErrors sends an error response
func (writer *Writer) WriteErrors(rw http.ResponseWriter, code int, errors ...*Error) {
	response := &ErrorResponse{
		Status: code,
		Errors: make([]*Error, 0, len(errors)),
	}
	for _, err := range errors {
		if err.Details == nil {
			err = &Error{Type: err.Type, Message: err.Message, Details: map[string]any{}}
		}
		response.Errors = append(response.Errors, err)
	}
	writer.WriteJSONCode(rw, code, response)
}

// WriteInternalError reports err through the hook and answers 500
func (writer *Writer) WriteInternalError(rw http.ResponseWriter, err error) {
	if writer.InternalErrorHook != nil {
		writer.InternalErrorHook(err)
	}
	writer.WriteErrors(rw, http.StatusInternalServerError, ErrInternal)
}
