package match

import (
	"fmt"
	"strings"
)

// Unit is kind of the quantity for numbers with unit suffix
type Unit int

// Units
const (
	NoUnit Unit = iota
	Seconds
	Bytes
)

func (u Unit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Bytes:
		return "bytes"
	}
	return ""
}

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
)

var timeUnits = []struct {
	prefix string
	factor float64
}{
	{"second", 1},
	{"minute", minute},
	{"hour", hour},
	{"day", day},
	{"week", 7 * day},
	{"month", 30 * day},
	{"year", 365 * day},
}

var sizeUnits = []struct {
	prefix string
	factor float64
}{
	{"g", 1 << 30},
	{"m", 1 << 20},
	{"k", 1 << 10},
	{"b", 1},
}

// ParseUnit converts value with unit (like "3 minutes" or "5 MB") into
// seconds or bytes, only unit prefix is significant
func ParseUnit(value float64, unit string) (float64, Unit, error) {
	unit = strings.ToLower(strings.TrimSpace(unit))
	if unit == "" {
		return value, NoUnit, nil
	}

	for _, u := range timeUnits {
		if strings.HasPrefix(unit, u.prefix) {
			return value * u.factor, Seconds, nil
		}
	}

	for _, u := range sizeUnits {
		if strings.HasPrefix(unit, u.prefix) {
			return value * u.factor, Bytes, nil
		}
	}

	return 0, NoUnit, &ParseError{Kind: KindNumeric, Message: fmt.Sprintf("No such unit: %q", unit), Pos: -1}
}
