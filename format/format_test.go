package format_test

import (
	"strings"
	"testing"

	"github.com/jrsteele09/gastometro/format"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		value    float64
		digits   string
		decimals string
	}{
		{value: 48.5, digits: "48", decimals: "50"},
		{value: 90, digits: "90", decimals: "00"},
		{value: 12500, digits: "500", decimals: "00"},
		{value: 0, digits: "0", decimals: "00"},
	}

	for _, tt := range tests {
		got := format.Currency(tt.value)
		require.True(t, strings.HasPrefix(got, "S/ "), got)
		require.Contains(t, got, tt.digits)
		require.True(t, strings.HasSuffix(got, tt.decimals), got)
	}
}

func TestShortDate(t *testing.T) {
	require.Equal(t, "02 jun", format.ShortDate("2024-06-02"))
	require.Equal(t, "29 may", format.ShortDate("2024-05-29T10:00:00Z"))
	require.Equal(t, "01 sept", format.ShortDate("2024-09-01T08:30:00.000Z"))
	require.Equal(t, "15 dic", format.ShortDate("2024-12-15 18:00:00"))
	require.Equal(t, "ayer", format.ShortDate("ayer"))
}
