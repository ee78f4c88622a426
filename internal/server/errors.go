package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akiohm/quizlab/internal/chat"
	"github.com/akiohm/quizlab/internal/content"
	"github.com/akiohm/quizlab/internal/extract"
	"github.com/akiohm/quizlab/internal/llm"
	"github.com/akiohm/quizlab/internal/quizgen"
	"github.com/akiohm/quizlab/internal/session"
)

// writeError maps domain errors to HTTP statuses. Model-output failures are
// 502 because the upstream service produced something unusable; state
// machine precondition violations are 409.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var (
		unsupported *content.UnsupportedFormatError
		badInput    *quizgen.InputError
		noObject    *extract.NoObjectError
		decodeErr   *extract.DecodeError
		missingKey  *extract.MissingKeyError
		validation  *quizgen.ValidationError
		rateLimit   *llm.ErrRateLimit
		invalid     *llm.ErrInvalidResponse
		unavailable *llm.ErrProviderUnavailable
		maxTokens   *llm.ErrMaxTokensExceeded
	)

	switch {
	case errors.As(err, &unsupported), errors.As(err, &badInput),
		errors.Is(err, chat.ErrEmptyQuestion):
		status = http.StatusBadRequest
	case errors.Is(err, session.ErrNotAnswered),
		errors.Is(err, session.ErrNoActiveItem):
		status = http.StatusConflict
	case errors.Is(err, session.ErrNoItems):
		status = http.StatusBadGateway
	case errors.As(err, &rateLimit):
		status = http.StatusTooManyRequests
	case errors.As(err, &noObject),
		errors.As(err, &decodeErr),
		errors.As(err, &missingKey),
		errors.As(err, &validation),
		errors.As(err, &invalid),
		errors.As(err, &unavailable),
		errors.As(err, &maxTokens):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// errorKind labels a generation failure for the event store.
func errorKind(err error) string {
	var (
		noObject    *extract.NoObjectError
		decodeErr   *extract.DecodeError
		missingKey  *extract.MissingKeyError
		validation  *quizgen.ValidationError
		rateLimit   *llm.ErrRateLimit
		maxTokens   *llm.ErrMaxTokensExceeded
		unavailable *llm.ErrProviderUnavailable
	)

	switch {
	case errors.As(err, &noObject):
		return "no_json"
	case errors.As(err, &decodeErr):
		return "decode"
	case errors.As(err, &missingKey):
		return "missing_key"
	case errors.As(err, &validation):
		return "validation"
	case errors.As(err, &rateLimit):
		return "rate_limit"
	case errors.As(err, &maxTokens):
		return "max_tokens"
	case errors.As(err, &unavailable):
		return "provider"
	default:
		return "other"
	}
}
