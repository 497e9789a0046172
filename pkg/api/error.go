package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// genericErrorMessage is the fallback when an error body cannot be parsed
const genericErrorMessage = "Request failed"

// Error represents a non-2xx response from the backend. Message is the
// flattened, user-presentable form of the backend's error envelope.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// errorEnvelope mirrors the backend's error body. Detail is either a plain
// string or an array of field-validation errors, so it is decoded lazily.
type errorEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

// fieldError is one entry of an array-valued detail, as emitted by the
// backend's request validation. Loc is a path like ["body", "phone"].
type fieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// field returns the last path segment of Loc, which names the offending
// field. Numeric segments (array indices) are rendered as-is; a missing or
// empty Loc falls back to the literal "field".
func (f fieldError) field() string {
	if len(f.Loc) == 0 {
		return "field"
	}
	switch v := f.Loc[len(f.Loc)-1].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "field"
	}
}

// parseError flattens a non-2xx response body into an *Error.
//
// A string detail is used verbatim. An array detail joins each entry's
// field name and message with commas, preserving array order. Anything
// else falls back to a generic message. Partial data is never returned
// alongside a failure.
func parseError(statusCode int, body []byte) *Error {
	apiErr := &Error{StatusCode: statusCode, Message: genericErrorMessage}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		if detail != "" {
			apiErr.Message = detail
		}
		return apiErr
	}

	var fields []fieldError
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, fmt.Sprintf("%s: %s", f.field(), f.Msg))
		}
		apiErr.Message = strings.Join(parts, ", ")
	}

	return apiErr
}
