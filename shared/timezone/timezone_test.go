package timezone_test

import (
	"carehub/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Setup("") })

	require.NoError(t, timezone.Setup("UTC"))
	assert.Equal(t, "UTC", timezone.Location().String())

	require.Error(t, timezone.Setup("Mars/Olympus_Mons"))
	assert.Equal(t, time.UTC, timezone.Location())

	require.NoError(t, timezone.Setup(""))
	assert.Equal(t, time.UTC, timezone.Location())
}

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.Location().String(), now.Location().String())
}

func TestFormatAndParseRoundTrip(t *testing.T) {
	start := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	formatted := timezone.Format(start, time.RFC3339)
	parsed, err := timezone.Parse(time.RFC3339, formatted)

	require.NoError(t, err)
	assert.True(t, start.Equal(parsed))
}
