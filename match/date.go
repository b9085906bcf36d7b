package match

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses YYYY, YYYY-MM or YYYY-MM-DD as local time and returns
// unix time of the start of the period
func ParseDate(s string) (float64, error) {
	parts := strings.Split(s, "-")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid date %q", s)
	}

	fields := [3]int{0, 1, 1}
	for i, part := range parts {
		if part == "" || len(part) > 4 || (i > 0 && len(part) > 2) {
			return 0, fmt.Errorf("invalid date %q", s)
		}
		for _, c := range part {
			if c < '0' || c > '9' {
				return 0, fmt.Errorf("invalid date %q", s)
			}
		}
		fields[i], _ = strconv.Atoi(part)
	}

	year, month, day := fields[0], fields[1], fields[2]
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return 0, fmt.Errorf("invalid date %q", s)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Day() != day || int(t.Month()) != month {
		return 0, fmt.Errorf("day out of range in %q", s)
	}

	return float64(t.Unix()), nil
}
