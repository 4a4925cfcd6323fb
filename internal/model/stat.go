package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// Stat is a ratio that may be undefined. A zero denominator yields NA rather
// than 0 so that "never dismissed" stays distinguishable from "averages zero".
type Stat struct {
	Value float64
	Valid bool
}

// Of returns a defined Stat.
func Of(v float64) Stat {
	return Stat{Value: v, Valid: true}
}

// NA returns the not-applicable sentinel.
func NA() Stat {
	return Stat{}
}

// Ratio returns num/den rounded to 2dp, or NA when den is zero.
func Ratio(num, den float64) Stat {
	if den == 0 {
		return NA()
	}
	return Of(Round2(num / den))
}

// Or returns the value, or fallback when the Stat is NA.
func (s Stat) Or(fallback float64) float64 {
	if !s.Valid {
		return fallback
	}
	return s.Value
}

func (s Stat) String() string {
	if !s.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(s.Value, 'f', 2, 64)
}

// MarshalJSON encodes NA as the string "N/A" and defined values as numbers.
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return json.Marshal("N/A")
	}
	return json.Marshal(s.Value)
}

// Round2 rounds v to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MeanStats averages the defined values, NA when none are defined.
func MeanStats(stats []Stat) Stat {
	var sum float64
	n := 0
	for _, s := range stats {
		if !s.Valid {
			continue
		}
		sum += s.Value
		n++
	}
	return Ratio(sum, float64(n))
}

// OversNotation formats a ball count in cricket notation: 22 balls is "3.4".
func OversNotation(balls int) string {
	return strconv.Itoa(balls/6) + "." + strconv.Itoa(balls%6)
}
