package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		days float64
		want string
	}{
		{0, "< 1m"},
		{MinutesToDays(15), "15m"},
		{MinutesToDays(59), "59m"},
		{1.0 / 24, "1h"},
		{1.0 / 12, "2h"},
		{1, "1d"},
		{12, "12d"},
		{45, "1.5mo"},
		{365, "1.0y"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInterval(tt.days))
		})
	}
}
