package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

func TestHTTPErrorHandlerMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"engineer not found", domain.ErrEngineerNotFound, http.StatusNotFound, "engineer not found"},
		{"project not found", domain.ErrProjectNotFound, http.StatusNotFound, "project not found"},
		{"wrapped sentinel", errors.Join(errors.New("load roster"), domain.ErrEngineerNotFound), http.StatusNotFound, "engineer not found"},
		{"reversed range", domain.ErrReversedRange, http.StatusUnprocessableEntity, domain.ErrReversedRange.Error()},
		{"echo error passes through", echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters"), http.StatusBadRequest, "invalid query parameters"},
		{"unknown error is opaque", errors.New("mongo: socket closed"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/analytics/team", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			body := rec.Body.String()
			if !containsJSONError(body, tc.wantMsg) {
				t.Errorf("body = %q, want error %q", body, tc.wantMsg)
			}
		})
	}
}

func TestHTTPErrorHandlerSkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = c.NoContent(http.StatusOK)
	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response was overwritten: status = %d", rec.Code)
	}
}

func containsJSONError(body, msg string) bool {
	var got errorResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		return false
	}
	return got.Error == msg
}
