package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stackit/community-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   float64
	}{
		{"missing header", domain.ErrMissingAuthHeader, http.StatusBadRequest, 2001},
		{"missing token", domain.ErrMissingToken, http.StatusBadRequest, 2001},
		{"auth failed", domain.ErrAuthFailed, http.StatusUnauthorized, 2001},
		{"wrapped auth failed", fmt.Errorf("%w: token expired", domain.ErrAuthFailed), http.StatusUnauthorized, 2001},
		{"not owner", domain.ErrNotOwner, http.StatusForbidden, 2001},
		{"question not found", domain.ErrQuestionNotFound, http.StatusNotFound, 2004},
		{"answer not found", domain.ErrAnswerNotFound, http.StatusNotFound, 2004},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, 2004},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := renderError(t, tc.err)
			if status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, status)
			}
			if body["code"] != tc.wantCode {
				t.Fatalf("expected code %v, got %v", tc.wantCode, body["code"])
			}
			if body["message"] == "" {
				t.Fatalf("expected a message")
			}
			if _, present := body["data"]; present {
				t.Fatalf("failures must not carry data")
			}
		})
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	status, body := renderError(t, domain.NewValidationError("title must be at least 5 characters"))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["code"] != float64(2003) {
		t.Fatalf("expected code 2003, got %v", body["code"])
	}
	if body["message"] != "title must be at least 5 characters" {
		t.Fatalf("validation reason must reach the client, got %v", body["message"])
	}
}

func TestErrorHandler_DatabaseError(t *testing.T) {
	dbErr := &domain.DatabaseError{Op: "questions.list", Err: errors.New("connection refused")}
	status, body := renderError(t, dbErr)
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body["code"] != float64(2002) {
		t.Fatalf("expected code 2002, got %v", body["code"])
	}
	if body["message"] != "database error" {
		t.Fatalf("internal details must not leak, got %v", body["message"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	status, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["code"] != float64(2003) {
		t.Fatalf("expected code 2003, got %v", body["code"])
	}

	status, body = renderError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if body["code"] != float64(3000) {
		t.Fatalf("expected code 3000, got %v", body["code"])
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	status, body := renderError(t, errors.New("boom"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body["code"] != float64(3000) {
		t.Fatalf("expected code 3000, got %v", body["code"])
	}
	if body["message"] != "unexpected error" {
		t.Fatalf("internal details must not leak, got %v", body["message"])
	}
}
