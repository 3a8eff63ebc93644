package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"realestate-backend/internal/infrastructure/logger"
	"realestate-backend/internal/infrastructure/metrics"
)

// helper: new Echo with the middleware and a simple route
func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, ttl, logger.NewNop(), nil))
	e.POST("/api/payments", handler)
	e.DELETE("/api/payments/:id", handler)
	e.GET("/api/payments", handler) // for non-mutating bypass test
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

// countingHandler answers 201 with an incrementing id, so replays are observable.
func countingHandler(calls *int32) echo.HandlerFunc {
	return func(c echo.Context) error {
		n := atomic.AddInt32(calls, 1)
		return c.JSON(http.StatusCreated, map[string]any{"id": n})
	}
}

func Test_BypassOnGET_NoHeadersRequired(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "get ok"})
	})
	rec := doReq(t, e, http.MethodGet, "/api/payments", nil, map[string]string{HeaderIdempotencyKey: "k1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(mr.Keys()) != 0 {
		t.Fatalf("GET must not touch the store, keys=%v", mr.Keys())
	}
}

func Test_NoKey_PassesThroughEveryTime(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, time.Minute, countingHandler(&calls))

	for i := 0; i < 2; i++ {
		rec := doReq(t, e, http.MethodPost, "/api/payments", mkJSONBody(t, map[string]int{"amount": 5}), nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("want 201, got %d", rec.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("handler calls = %d, want 2", calls)
	}
}

func Test_InvalidKey(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, time.Minute, countingHandler(&calls))

	for _, k := range []string{"has space", strings.Repeat("k", maxKeyLen+1), "tab\tkey"} {
		rec := doReq(t, e, http.MethodPost, "/api/payments", mkJSONBody(t, map[string]int{"x": 1}), map[string]string{HeaderIdempotencyKey: k})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("key %q => want 400, got %d", k, rec.Code)
		}
	}
	if calls != 0 {
		t.Fatalf("handler must not run, calls=%d", calls)
	}
}

func Test_HappyPath_Then_Replay(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	m := metrics.New()
	e := echo.New()
	e.Use(Idempotency(rdb, 2*time.Minute, logger.NewNop(), m))
	e.POST("/api/payments", countingHandler(&calls))

	h := map[string]string{HeaderIdempotencyKey: "pay-123"}
	body := map[string]any{"contract_id": 1, "amount": 500}

	rec1 := doReq(t, e, http.MethodPost, "/api/payments", mkJSONBody(t, body), h)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first request => want 201, got %d, body: %s", rec1.Code, rec1.Body.String())
	}

	rec2 := doReq(t, e, http.MethodPost, "/api/payments", mkJSONBody(t, body), h)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("replay => want 201, got %d, body: %s", rec2.Code, rec2.Body.String())
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("replay body mismatch: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
	if rec2.Header().Get(HeaderReplayed) != "true" {
		t.Fatalf("replay header missing")
	}
	if !strings.HasPrefix(rec2.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		t.Fatalf("replay content type = %q", rec2.Header().Get(echo.HeaderContentType))
	}
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1", calls)
	}
}

func Test_SameKey_DifferentPath_IsIndependent(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, time.Minute, countingHandler(&calls))

	h := map[string]string{HeaderIdempotencyKey: "del-1"}
	doReq(t, e, http.MethodDelete, "/api/payments/1", nil, h)
	doReq(t, e, http.MethodDelete, "/api/payments/2", nil, h)
	if calls != 2 {
		t.Fatalf("handler calls = %d, want 2", calls)
	}
}

func Test_ServerError_IsNotStored(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, time.Minute, func(c echo.Context) error {
		atomic.AddInt32(&calls, 1)
		return c.JSON(http.StatusInternalServerError, map[string]string{"detail": "boom"})
	})

	h := map[string]string{HeaderIdempotencyKey: "retry-me"}
	for i := 0; i < 2; i++ {
		rec := doReq(t, e, http.MethodPost, "/api/payments", mkJSONBody(t, map[string]int{"x": 1}), h)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("want 500, got %d", rec.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("5xx must allow retries, calls=%d", calls)
	}
}

func Test_HandlerError_IsRenderedAndStored(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, time.Minute, func(c echo.Context) error {
		atomic.AddInt32(&calls, 1)
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	h := map[string]string{HeaderIdempotencyKey: "nf"}
	rec1 := doReq(t, e, http.MethodPost, "/api/payments", mkJSONBody(t, map[string]int{"x": 1}), h)
	rec2 := doReq(t, e, http.MethodPost, "/api/payments", mkJSONBody(t, map[string]int{"x": 1}), h)
	if rec1.Code != http.StatusNotFound || rec2.Code != http.StatusNotFound {
		t.Fatalf("want 404 twice, got %d and %d", rec1.Code, rec2.Code)
	}
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1", calls)
	}
}

func Test_Conflict_When_InProgress(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls))

	body := []byte(`{"x":1}`)
	key := buildKey(http.MethodPost, "/api/payments", "busy")
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash(body), CreatedAt: time.Now().UTC()}
	if ok, err := provisionalSet(context.Background(), rdb, key, entry); err != nil || !ok {
		t.Fatalf("seed provisional failed, ok=%v err=%v", ok, err)
	}

	rec := doReq(t, e, http.MethodPost, "/api/payments", bytes.NewReader(body), map[string]string{HeaderIdempotencyKey: "busy"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("in-progress => want 409, got %d body=%s", rec.Code, rec.Body.String())
	}
	if calls != 0 {
		t.Fatalf("handler must not run, calls=%d", calls)
	}
}

func Test_Conflict_When_SameKey_DifferentBody(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls))

	h := map[string]string{HeaderIdempotencyKey: "k"}
	doReq(t, e, http.MethodPost, "/api/payments", bytes.NewReader([]byte(`{"x":1}`)), h)
	rec := doReq(t, e, http.MethodPost, "/api/payments", bytes.NewReader([]byte(`{"x":2}`)), h)

	if rec.Code != http.StatusConflict {
		t.Fatalf("different body same key => want 409, got %d", rec.Code)
	}
}

func Test_StoreUnavailable_Returns503(t *testing.T) {
	// closed address → SetNX error
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	var calls int32
	e := setupEcho(rdb, time.Minute, countingHandler(&calls))

	rec := doReq(t, e, http.MethodPost, "/api/payments", bytes.NewReader([]byte(`{}`)), map[string]string{HeaderIdempotencyKey: "k"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("store unavailable => want 503, got %d", rec.Code)
	}
}
