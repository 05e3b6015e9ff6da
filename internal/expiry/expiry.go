// Package expiry holds the lifetime rules shared by folders and share tokens.
// All timestamps are whole Unix seconds.
package expiry

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// SecondsPerYear is the length of a lifetime year. Leap days are ignored.
const SecondsPerYear = 365 * 24 * 60 * 60

// MaxYears bounds a lifetime so deadlines stay far inside int64 seconds.
const MaxYears = 1000

var ErrLifetimeTooLong = errors.New("years must not exceed 1000")

// IsExpired reports whether a resource expiring at expiresAt is expired at now.
// The boundary second itself is still valid.
func IsExpired(expiresAt int64, now time.Time) bool {
	return now.Unix() > expiresAt
}

// Deadline returns the expiry timestamp for a lifetime of years starting at now.
func Deadline(now time.Time, years float64) int64 {
	return now.Unix() + int64(years*SecondsPerYear)
}

// Years is a lifetime as submitted by a client. A JSON number or a numeric
// string is accepted; anything else leaves it unset.
type Years struct {
	value float64
	set   bool
}

// YearsOf returns a Years holding v.
func YearsOf(v float64) Years {
	return Years{value: v, set: true}
}

func (y *Years) UnmarshalJSON(data []byte) error {
	*y = Years{}

	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	var s string
	if json.Unmarshal(data, &s) == nil {
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Non-numeric lifetimes fall back to the default rather than failing the request.
		return nil
	}
	*y = YearsOf(v)
	return nil
}

// Or resolves the lifetime, falling back to def when the value is unset,
// negative, or not finite. An explicit zero is kept.
func (y Years) Or(def int) float64 {
	if !y.set || y.value < 0 || math.IsNaN(y.value) || math.IsInf(y.value, 0) {
		return float64(def)
	}
	return y.value
}

// Lifetime resolves the lifetime like Or and rejects anything above MaxYears.
func (y Years) Lifetime(def int) (float64, error) {
	years := y.Or(def)
	if years > MaxYears {
		return 0, ErrLifetimeTooLong
	}
	return years, nil
}
