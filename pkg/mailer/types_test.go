package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleTags_CreatesPresenceOnlyTags(t *testing.T) {
	t.Parallel()

	tags := SimpleTags("enquiry", "transactional")

	require.Len(t, tags, 2)
	require.Equal(t, struct{}{}, tags["enquiry"])
	require.Equal(t, struct{}{}, tags["transactional"])
}

func TestSimpleTags_EmptyList(t *testing.T) {
	t.Parallel()

	tags := SimpleTags()

	require.NotNil(t, tags)
	require.Empty(t, tags)
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		email string
		want  string
	}{
		{"with name", "Eco Expert Services", "notifications@example.com", "Eco Expert Services <notifications@example.com>"},
		{"without name", "", "john@example.com", "john@example.com"},
		// Function doesn't trim, returns format as-is with spaces
		{"blank name", "   ", "john@example.com", "    <john@example.com>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Recipient(tt.input, tt.email))
		})
	}
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	var called bool
	var s Sender = SenderFunc(func(_ context.Context, email *Email) error {
		called = true
		require.Equal(t, "Hi", email.Subject)
		return nil
	})

	require.NoError(t, s.Send(context.Background(), &Email{Subject: "Hi"}))
	require.True(t, called)
}
