package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func serveWith(handler gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handler)
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	inbound := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, inbound)

	rec := serveWith(RequestID(), req)

	if got := rec.Header().Get(RequestIDHeader); got != inbound {
		t.Errorf("expected inbound id %s to be echoed, got %s", inbound, got)
	}
}

func TestRequestIDReplacesMalformedHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")

	rec := serveWith(RequestID(), req)

	got := rec.Header().Get(RequestIDHeader)
	if got == "not-a-uuid" {
		t.Error("malformed inbound id must not be propagated")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("replacement id %q is not a uuid: %v", got, err)
	}
}

func TestCORSAllowsOnlyConfiguredOrigins(t *testing.T) {
	handler := CORS([]string{"http://app.local"})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://app.local")
	if got := serveWith(handler, req).Header().Get("Access-Control-Allow-Origin"); got != "http://app.local" {
		t.Errorf("configured origin should be reflected, got %q", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://other.local")
	if got := serveWith(handler, req).Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unknown origin must not be reflected, got %q", got)
	}
}

func TestCORSWildcardAdmitsAnyOrigin(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://anywhere.local")

	rec := serveWith(CORS([]string{"*"}), req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://anywhere.local" {
		t.Errorf("wildcard config should reflect the origin, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://app.local")

	rec := serveWith(CORS([]string{"http://app.local"}), req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("preflight response missing allowed methods")
	}
}
