package stats

import (
	"strconv"
	"strings"
)

// fraction tokens as they appear on the record site. the two-decimal
// values (not exact thirds) match the numbers carried in every
// downstream file, so they must not be "corrected".
var inningsFraction = map[string]float64{
	"1/3": 0.33,
	"2/3": 0.67,
}

// ParseInnings converts innings-pitched notation like "180 2/3" to a
// float ("180 2/3" -> 180.67). A bare number parses as-is, an unknown
// fraction token contributes 0 and empty or unparseable input yields 0.
func ParseInnings(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	parts := strings.Fields(s)
	if len(parts) >= 2 {
		whole, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0
		}
		return whole + inningsFraction[parts[1]]
	}

	v, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}
	return v
}
