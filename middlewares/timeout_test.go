package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enquiry/internal"
	"github.com/dmitrymomot/enquiry/middlewares"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("passes through when handler completes in time", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		want := errors.New("handler error")

		err := middlewares.Timeout(time.Second)(func(internal.Context) error {
			return want
		})(c)
		require.ErrorIs(t, err, want)
	})

	t.Run("returns TimeoutError when handler exceeds timeout", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

		err := middlewares.Timeout(10 * time.Millisecond)(func(c internal.Context) error {
			<-middlewares.GetTimeoutContext(c).Done()
			return nil
		})(c)

		te, ok := middlewares.AsTimeoutError(err)
		require.True(t, ok)
		require.Equal(t, 10*time.Millisecond, te.Duration)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.False(t, c.Written())
	})

	t.Run("exposes deadline context to handler", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

		err := middlewares.Timeout(20*time.Millisecond)(func(c internal.Context) error {
			ctx := middlewares.GetTimeoutContext(c)
			_, ok := ctx.Deadline()
			require.True(t, ok)
			<-ctx.Done()
			return ctx.Err()
		})(c)

		require.True(t, middlewares.IsTimeoutError(err))
	})

	t.Run("keeps a response written after the deadline", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		c := newTestContext(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		err := middlewares.Timeout(10*time.Millisecond)(func(c internal.Context) error {
			<-middlewares.GetTimeoutContext(c).Done()
			return c.String(http.StatusServiceUnavailable, "late")
		})(c)

		require.NoError(t, err)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "late", rec.Body.String())
	})

	t.Run("converts a handler panic into PanicError", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

		var err error
		require.NotPanics(t, func() {
			err = middlewares.Timeout(time.Second)(func(internal.Context) error {
				panic("boom")
			})(c)
		})

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "boom", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.False(t, c.Written())
	})

	t.Run("reports a panic after the deadline as PanicError", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

		err := middlewares.Timeout(10*time.Millisecond)(func(c internal.Context) error {
			<-middlewares.GetTimeoutContext(c).Done()
			panic("late boom")
		})(c)

		require.True(t, middlewares.IsPanicError(err))
		require.False(t, middlewares.IsTimeoutError(err))
	})

	t.Run("GetTimeoutContext falls back to request context", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		_, ok := middlewares.GetTimeoutContext(c).Deadline()
		require.False(t, ok)
	})

	t.Run("non-positive duration uses default", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

		err := middlewares.Timeout(0)(func(c internal.Context) error {
			deadline, ok := middlewares.GetTimeoutContext(c).Deadline()
			require.True(t, ok)
			require.WithinDuration(t, time.Now().Add(middlewares.DefaultTimeout), deadline, time.Second)
			return nil
		})(c)
		require.NoError(t, err)
	})
}
