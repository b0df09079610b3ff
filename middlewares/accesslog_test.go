package middlewares_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enquiry/internal"
	"github.com/dmitrymomot/enquiry/middlewares"
	"github.com/dmitrymomot/enquiry/pkg/logger"
)

func TestAccessLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		handler   internal.HandlerFunc
		wantLevel string
		wantCode  float64
		wantErr   bool
	}{
		{
			name:      "success",
			handler:   func(c internal.Context) error { return c.JSON(http.StatusOK, map[string]bool{"ok": true}) },
			wantLevel: "INFO",
			wantCode:  200,
		},
		{
			name:      "client error",
			handler:   func(c internal.Context) error { return c.JSON(http.StatusBadRequest, map[string]bool{"ok": false}) },
			wantLevel: "WARN",
			wantCode:  400,
		},
		{
			name:      "pending error",
			handler:   func(internal.Context) error { return errors.New("boom") },
			wantLevel: "ERROR",
			wantCode:  500,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rec := httptest.NewRecorder()
			c := newTestContext(rec, httptest.NewRequest(http.MethodPost, "/api/enquiry", nil))
			c.logger = logger.NewWithWriter(&buf, slog.LevelInfo)

			err := middlewares.AccessLog()(tt.handler)(c)
			require.Equal(t, tt.wantErr, err != nil)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			require.Equal(t, "http request", entry["msg"])
			require.Equal(t, tt.wantLevel, entry["level"])
			require.Equal(t, "POST", entry["method"])
			require.Equal(t, "/api/enquiry", entry["path"])
			require.Equal(t, tt.wantCode, entry["status"])
			require.Contains(t, entry, "duration")
		})
	}
}
