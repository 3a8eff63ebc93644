package http

import (
	"bytes"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"realestate-backend/internal/adapter/repository/gormrepo"
	"realestate-backend/internal/infrastructure/logger"
	"realestate-backend/internal/testutil/testdb"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler(logger.NewNop())
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// newTestServer serves every route against a fresh in-memory database.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	gdb := testdb.Open(t)
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	e := newEchoWithValidator()
	Register(e, NewHandlers(gormrepo.NewRepos(gdb), gormrepo.NewGormUoW(gdb), sqlDB))
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		r = mustJSON(b)
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}
	return out
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d, body: %s", want, rec.Code, rec.Body.String())
	}
}

func houseBody(number int) map[string]any {
	return map[string]any{
		"house_number":  number,
		"block_number":  2,
		"total_area":    250.0,
		"building_area": 180.0,
		"total_price":   900000.0,
		"down_payment":  100000.0,
		"loan_amount":   800000.0,
		"phase":         1,
	}
}

// createHouse posts a house and returns its id.
func createHouse(t *testing.T, e *echo.Echo, number int) uint64 {
	t.Helper()
	rec := doJSON(t, e, stdhttp.MethodPost, "/api/houses", houseBody(number))
	expectStatus(t, rec, stdhttp.StatusCreated)
	return decode[struct {
		ID uint64 `json:"id"`
	}](t, rec).ID
}
