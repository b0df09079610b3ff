package enquiry_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enquiry/internal/enquiry"
	"github.com/dmitrymomot/enquiry/pkg/locale"
)

func TestTimestamper(t *testing.T) {
	t.Parallel()

	t.Run("renders in the configured zone", func(t *testing.T) {
		t.Parallel()

		// 13:05 UTC is 14:05 BST
		clock := locale.FixedClock(time.Date(2026, time.October, 19, 13, 5, 0, 0, time.UTC))
		ts, err := enquiry.NewTimestamper(clock, "Europe/London", "en-GB")
		require.NoError(t, err)

		require.Equal(t, "Monday 19 October 2026 at 14:05", ts.Now())
	})

	t.Run("reads the clock on every call", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
		clock := locale.ClockFunc(func() time.Time {
			now = now.Add(time.Hour)
			return now
		})
		ts, err := enquiry.NewTimestamper(clock, "Europe/London", "en-GB")
		require.NoError(t, err)

		require.NotEqual(t, ts.Now(), ts.Now())
	})

	t.Run("nil clock uses system time", func(t *testing.T) {
		t.Parallel()

		ts, err := enquiry.NewTimestamper(nil, "UTC", "en-GB")
		require.NoError(t, err)
		require.NotEmpty(t, ts.Now())
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Parallel()

		_, err := enquiry.NewTimestamper(nil, "Mars/Olympus_Mons", "en-GB")
		require.Error(t, err)
	})

	t.Run("invalid locale", func(t *testing.T) {
		t.Parallel()

		_, err := enquiry.NewTimestamper(nil, "Europe/London", "not a tag!")
		require.ErrorIs(t, err, locale.ErrInvalidTag)
	})
}
