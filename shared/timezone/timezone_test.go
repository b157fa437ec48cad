package timezone_test

import (
	"testing"
	"time"

	"careerday/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestLoadFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.Load(""))
	assert.Equal(t, time.UTC, timezone.Load("Mars/Olympus_Mons"))

	rome := timezone.Load("Europe/Rome")
	assert.Equal(t, "Europe/Rome", rome.String())
}

func TestMidnightKeepsStoredDate(t *testing.T) {
	rome := timezone.Load("Europe/Rome")
	stored := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	day := timezone.Midnight(stored, rome)

	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, rome), day)
	assert.Equal(t, 12, day.Day())
	assert.Equal(t, 0, day.Hour())
}

func TestFormatAndParseRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02 15:04", "2025-03-12 09:30")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2025-03-12 09:30", timezone.Format(parsed, "2006-01-02 15:04"))
}
