package quizgen

// InputError describes a caller mistake detected before any model call:
// missing content, a count outside the configured bounds, a mode that does
// not produce the requested shape.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }
