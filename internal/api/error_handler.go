package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stackit/community-api/internal/api/envelope"
	"github.com/stackit/community-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and envelope code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the uniform envelope {code, message} on every failure.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg := resolveError(err, log, c)
		_ = c.JSON(status, envelope.Error(code, msg))
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, envelope.Code, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := envelope.CodeUnknownError
		if he.Code == http.StatusBadRequest {
			code = envelope.CodeValidationError
		}
		return he.Code, code, fmt.Sprintf("%v", he.Message)
	}

	// Request schema violations.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, envelope.CodeValidationError, ve.Reason
	}

	// Authentication ladder. The missing-header and missing-token steps
	// report 400; a decoded-but-rejected token reports 401. All carry the
	// auth envelope code, as does an ownership denial.
	switch {
	case errors.Is(err, domain.ErrMissingAuthHeader):
		return http.StatusBadRequest, envelope.CodeAuthError, "authorization header is missing"
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusBadRequest, envelope.CodeAuthError, "token not provided"
	case errors.Is(err, domain.ErrAuthFailed):
		return http.StatusUnauthorized, envelope.CodeAuthError, "authentication failed"
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden, envelope.CodeAuthError, "you are not authorized to modify this resource"
	}

	// Referenced entities that do not exist.
	switch {
	case errors.Is(err, domain.ErrQuestionNotFound):
		return http.StatusNotFound, envelope.CodeInvalidArgs, "question not found"
	case errors.Is(err, domain.ErrAnswerNotFound):
		return http.StatusNotFound, envelope.CodeInvalidArgs, "answer not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, envelope.CodeInvalidArgs, "user not found"
	}

	// Persistence failures: log the cause, return a generic message.
	var de *domain.DatabaseError
	if errors.As(err, &de) {
		log.Error().
			Err(de.Err).
			Str("op", de.Op).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("database error")
		return http.StatusInternalServerError, envelope.CodeDBError, "database error"
	}

	// Anything else is unexpected.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, envelope.CodeUnknownError, "unexpected error"
}
