// Package extract recovers structured JSON payloads from free-text model
// output. Models routinely wrap the requested JSON in commentary, code
// fences, or apologies; this package strips everything outside the first
// '{' and the last '}' before decoding.
package extract

import (
	"encoding/json"
	"strings"
)

// Span returns the candidate JSON region of raw: everything from the first
// '{' through the last '}'. This is the greedy scan the pipeline has always
// used. It is known to merge independent JSON fragments into one span when
// the model emits more than one object; callers get a decode error in that
// case rather than a silently wrong payload.
func Span(raw string) (string, error) {
	start := strings.Index(raw, "{")
	if start == -1 {
		return "", &NoObjectError{Raw: raw}
	}
	end := strings.LastIndex(raw, "}")
	if end < start {
		return "", &NoObjectError{Raw: raw}
	}
	return raw[start : end+1], nil
}

// escapeBackslashes doubles every backslash in s. Models sometimes emit
// invalid escape sequences (\q, \x) inside string values; doubling turns
// them into literal backslashes the decoder accepts.
func escapeBackslashes(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

// Object locates the JSON span in raw and returns it with backslashes
// escaped, ready for decoding. It does not verify that the span is valid
// JSON; Decode and Array do that and report DecodeError.
func Object(raw string) (json.RawMessage, error) {
	span, err := Span(raw)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(escapeBackslashes(span)), nil
}

// Decode extracts the JSON object from raw and unmarshals it into v.
func Decode(raw string, v any) error {
	obj, err := Object(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(obj, v); err != nil {
		return &DecodeError{Raw: string(obj), Err: err}
	}
	return nil
}

// Array extracts the JSON object from raw and returns the array stored
// under key. A span that decodes but lacks key is a schema violation,
// reported as MissingKeyError, distinct from a syntax error.
func Array(raw, key string) (json.RawMessage, error) {
	obj, err := Object(raw)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(obj, &fields); err != nil {
		return nil, &DecodeError{Raw: string(obj), Err: err}
	}

	arr, ok := fields[key]
	if !ok {
		return nil, &MissingKeyError{Key: key, Raw: string(obj)}
	}
	return arr, nil
}

// Items extracts the array under key and unmarshals it into v, which must
// be a pointer to a slice.
func Items(raw, key string, v any) error {
	arr, err := Array(raw, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(arr, v); err != nil {
		return &DecodeError{Raw: string(arr), Err: err}
	}
	return nil
}
