package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMonthKey(t *testing.T) {
	k, err := ParseMonthKey("2025-03")
	require.NoError(t, err)
	require.Equal(t, MonthKey{2025, time.March}, k)
	require.Equal(t, "2025-03", k.String())

	_, err = ParseMonthKey("march 2025")
	require.Error(t, err)
	_, err = ParseMonthKey("2025-13")
	require.Error(t, err)
}

func TestMonthKeyArithmetic(t *testing.T) {
	dec := MonthKey{2024, time.December}
	jan := MonthKey{2025, time.January}

	require.Equal(t, jan, dec.Next())
	require.True(t, dec.Before(jan))
	require.False(t, jan.Before(dec))
	require.Equal(t, 1, jan.MonthsSince(dec))
	require.Equal(t, -1, dec.MonthsSince(jan))
	require.Equal(t, 14, MonthKey{2026, time.February}.MonthsSince(dec))

	require.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), jan.Start())
}

func TestMonthOfIgnoresDay(t *testing.T) {
	require.Equal(t,
		MonthOf(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)),
		MonthOf(time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)))
}
