package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
	}{
		{"1m", 1},
		{"5m", 5},
		{"15m", 15},
		{"30m", 30},
		{"1h", 60},
		{"4h", 240},
		{"1d", 1440},
		{"1w", 10080},
		{"2w", 21600},
		{" 1D ", 1440}, // case and whitespace tolerant
	}
	for _, tt := range tests {
		iv, err := ParseInterval(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.minutes, iv.Minutes(), "input %q", tt.in)
	}
}

func TestParseIntervalRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "3h", "1y", "weekly"} {
		_, err := ParseInterval(in)
		assert.Error(t, err, "input %q", in)
	}
}
