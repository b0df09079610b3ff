package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enquiry/internal"
	"github.com/dmitrymomot/enquiry/middlewares"
)

func runCORS(t *testing.T, req *http.Request, opts ...middlewares.CORSOption) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	rec := httptest.NewRecorder()
	called := false
	err := middlewares.CORS(opts...)(func(c internal.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(newTestContext(rec, req))
	require.NoError(t, err)
	return rec, called
}

func TestCORS(t *testing.T) {
	t.Parallel()

	t.Run("no origin passes through untouched", func(t *testing.T) {
		t.Parallel()

		rec, called := runCORS(t, httptest.NewRequest(http.MethodPost, "/api/enquiry", nil))
		require.True(t, called)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/enquiry", nil)
		req.Header.Set("Origin", "https://example.com")

		rec, called := runCORS(t, req)
		require.True(t, called)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "X-Request-ID", rec.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("listed origin is echoed", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/enquiry", nil)
		req.Header.Set("Origin", "https://ecoexpertservices.co.uk")

		rec, _ := runCORS(t, req, middlewares.WithAllowOrigins(" https://ecoexpertservices.co.uk ", ""))
		require.Equal(t, "https://ecoexpertservices.co.uk", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Values("Vary"), "Origin")
	})

	t.Run("unlisted origin gets no headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/enquiry", nil)
		req.Header.Set("Origin", "https://evil.example")

		rec, called := runCORS(t, req, middlewares.WithAllowOrigins("https://ecoexpertservices.co.uk"))
		require.True(t, called)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("empty origin list keeps wildcard", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/enquiry", nil)
		req.Header.Set("Origin", "https://example.com")

		rec, _ := runCORS(t, req, middlewares.WithAllowOrigins())
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight is answered without calling handler", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/api/enquiry", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec, called := runCORS(t, req, middlewares.WithMaxAge(time.Hour))
		require.False(t, called)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
		require.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("custom methods and headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/api/enquiry", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec, _ := runCORS(t, req,
			middlewares.WithAllowMethods(http.MethodPost),
			middlewares.WithAllowHeaders("Content-Type"),
			middlewares.WithMaxAge(0),
		)
		require.Equal(t, "POST", rec.Header().Get("Access-Control-Allow-Methods"))
		require.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
		require.Empty(t, rec.Header().Get("Access-Control-Max-Age"))
	})
}
