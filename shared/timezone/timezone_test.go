package timezone_test

import (
	"haven/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withZone(t *testing.T, name string) {
	t.Helper()

	previous := timezone.GetLocation().String()
	timezone.SetLocation(name)
	t.Cleanup(func() { timezone.SetLocation(previous) })
}

func TestSetLocation(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "resort zone", zone: "Africa/Lagos", want: "Africa/Lagos"},
		{name: "empty falls back", zone: "", want: "UTC"},
		{name: "unknown falls back", zone: "Mars/Olympus", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withZone(t, tt.zone)

			assert.Equal(t, tt.want, timezone.GetLocation().String())
			assert.Equal(t, tt.want, timezone.Now().Location().String())
		})
	}
}

func TestFormatUsesAppZone(t *testing.T) {
	withZone(t, "Africa/Lagos")

	utc := time.Date(2026, 12, 31, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2027-01-01 00:30", timezone.Format(utc, "2006-01-02 15:04"))
}

func TestParseInAppZone(t *testing.T) {
	withZone(t, "Africa/Lagos")

	got, err := timezone.Parse("2006-01-02", "2026-12-24")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 23, 23, 0, 0, 0, time.UTC), got.UTC())
}
