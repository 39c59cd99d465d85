package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMicrosToUnits(t *testing.T) {
	assert.Equal(t, 245.67, MicrosToUnits(245670000))
	assert.Equal(t, 1.0, MicrosToUnits(1_000_000))
	assert.Equal(t, 0.0, MicrosToUnits(0))
	assert.Equal(t, -12.5, MicrosToUnits(-12_500_000))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 538.21, RoundWithTwoDecimalPlace(538.2084))
	assert.Equal(t, 6.38, RoundWithTwoDecimalPlace(6.3827))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -0.4, RoundWithTwoDecimalPlace(-0.401))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *date)

	// Parâmetro ausente não pode virar uma data zero válida
	date, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("15/06/2024")
	assert.Error(t, err)
}

func TestPrettyJson(t *testing.T) {
	out := PrettyJson(map[string]int{"clicks": 10})
	assert.Contains(t, out, "\"clicks\": 10")

	out = PrettyJson([]byte(`{"cost":1.5}`))
	assert.Contains(t, out, "\"cost\"")

	assert.Equal(t, "", PrettyJson(func() {}))
}

func TestDateRange(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 23, 59, 0, 0, time.UTC)

	dates := DateRange(&start, &end)
	require.Len(t, dates, 3)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), dates[2])

	sameDay := DateRange(&start, &start)
	assert.Len(t, sameDay, 1)

	inverted := DateRange(&end, &start)
	assert.Empty(t, inverted)

	assert.Empty(t, DateRange(nil, &end))
}
