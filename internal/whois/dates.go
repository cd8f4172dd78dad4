package whois

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ParseDates runs each value through the known date formats, in order, and
// returns the dates that could be understood. Two-digit years below 60 are
// taken as 20xx, the rest as 19xx. When the day and month fields produce an
// impossible date they are swapped once; a value that still makes no sense
// is dropped.
func (g *Grammar) ParseDates(values []string) []time.Time {
	var out []time.Time
	for _, value := range values {
		t, ok := g.parseDate(value)
		if !ok {
			logrus.Debugf("unparseable date %q", value)
			continue
		}
		out = append(out, t)
	}
	return out
}

func (g *Grammar) parseDate(value string) (time.Time, bool) {
	for _, rule := range g.dateFormats {
		loc := rule.FindStringSubmatchIndex(value)
		if loc == nil || loc[0] != 0 {
			continue
		}
		m := rule.FindStringSubmatch(value)
		group := func(name string) string {
			if i := rule.SubexpIndex(name); i >= 0 && i < len(m) {
				return m[i]
			}
			return ""
		}

		year, err := strconv.Atoi(group("year"))
		if err != nil {
			continue
		}
		day, err := strconv.Atoi(group("day"))
		if err != nil {
			continue
		}
		if year < 60 {
			year += 2000
		} else if year < 100 {
			year += 1900
		}

		month, err := strconv.Atoi(group("month"))
		if err != nil {
			// Month given by name rather than number.
			month = g.months[strings.ToLower(group("month"))]
		}

		hour := atoiOrZero(group("hour"))
		minute := atoiOrZero(group("minute"))
		second := atoiOrZero(group("second"))

		if validDate(year, month, day) {
			return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), true
		}
		// Some registries put the day first.
		if validDate(year, day, month) {
			return time.Date(year, time.Month(day), month, hour, minute, second, 0, time.UTC), true
		}
		return time.Time{}, false
	}
	return time.Time{}, false
}

func validDate(year, month, day int) bool {
	if year <= 0 || month < 1 || month > 12 || day < 1 {
		return false
	}
	// time.Date silently normalizes out-of-range days, so check explicitly.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= last
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
