package timeutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mmrzaf/dataz/internal/tpcc"
)

func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.New("empty duration string")
	}

	if dur, err := time.ParseDuration(s); err == nil {
		return dur, nil
	}

	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	numStr := s[:len(s)-1]
	unit := s[len(s)-1:]

	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration number: %s", numStr)
	}

	switch unit {
	case "d":
		return time.Duration(num) * 24 * time.Hour, nil
	case "w":
		return time.Duration(num) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", unit)
	}
}

func ParseRelativeTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time string")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	if !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "+") {
		return time.Time{}, fmt.Errorf("relative time must start with + or -: %s", s)
	}

	isNegative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")

	dur, err := ParseDuration(s)
	if err != nil {
		return time.Time{}, err
	}

	if isNegative {
		return now.Add(-dur), nil
	}
	return now.Add(dur), nil
}

var epoch1900 = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// ToDateTime converts t to TPC-C days since 1900-01-01 and seconds since
// midnight, both in UTC. Times before the epoch are rejected.
func ToDateTime(t time.Time) (tpcc.DateTime, error) {
	t = t.UTC()
	if t.Before(epoch1900) {
		return tpcc.DateTime{}, fmt.Errorf("time %s is before 1900-01-01", t.Format(time.RFC3339))
	}
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := int64(midnight.Sub(epoch1900) / (24 * time.Hour))
	if days > math.MaxUint32 {
		return tpcc.DateTime{}, fmt.Errorf("time %s is out of range", t.Format(time.RFC3339))
	}
	secs := int64(t.Sub(midnight) / time.Second)
	return tpcc.DateTime{Date: uint32(days), Time: uint32(secs)}, nil
}

// ParseDateTime resolves s with ParseRelativeTime, where "now" means now,
// and converts the result with ToDateTime.
func ParseDateTime(s string, now time.Time) (tpcc.DateTime, error) {
	t := now
	if strings.TrimSpace(s) != "now" {
		var err error
		if t, err = ParseRelativeTime(s, now); err != nil {
			return tpcc.DateTime{}, err
		}
	}
	return ToDateTime(t)
}
