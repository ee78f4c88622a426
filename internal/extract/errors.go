package extract

import "fmt"

// NoObjectError indicates the raw response contained no '{...}' region at
// all. The full raw text is attached so the caller can show it for
// diagnosis.
type NoObjectError struct {
	Raw string
}

func (e *NoObjectError) Error() string {
	return "no JSON object found in model output"
}

// DecodeError indicates a JSON-like span was found but failed to decode.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode extracted JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MissingKeyError indicates the span decoded but the expected array key
// was absent. This is a schema violation, not a syntax error.
type MissingKeyError struct {
	Key string
	Raw string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("extracted JSON has no %q key", e.Key)
}
