package srs

import (
	"fmt"
	"math"
)

// FormatInterval renders an interval in days as a short label such as
// "15m", "2h", "5d", "2.0mo" or "1.0y".
func FormatInterval(days float64) string {
	if days == 0 {
		return "< 1m"
	}
	if days < 1 {
		minutes := math.Round(DaysToMinutes(days))
		if minutes < 60 {
			return fmt.Sprintf("%dm", int(minutes))
		}
		return fmt.Sprintf("%dh", int(math.Round(minutes/60)))
	}
	switch {
	case days >= 365:
		return fmt.Sprintf("%.1fy", days/365)
	case days >= 30:
		return fmt.Sprintf("%.1fmo", days/30)
	}
	return fmt.Sprintf("%dd", int(math.Round(days)))
}
