package prxz

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// maxDateMillis bounds the representable instants: ±100,000,000 days around
// the Unix epoch.
const maxDateMillis = 8.64e15

type dateStatus int

const (
	dateValid dateStatus = iota
	dateEmpty
	dateInvalid
)

// isoLayouts are tried before the free-form parser. Layouts without a zone
// read the input as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	time.RFC1123,
	time.RFC1123Z,
	"January 2, 2006 15:04:05",
	"January 2, 2006",
}

// Date renders value through the token template format after projecting it
// onto the formatter's fixed offset (+3h by default). The projection is
// applied to every instant, including inputs that carry their own offset.
//
// Empty input (nil, "", false, 0, NaN, the zero time) renders the empty
// marker; anything that does not read as an instant renders the invalid date
// marker.
func (f *Formatter) Date(value any, format string) string {
	if format == "" {
		format = DefaultDateFormat
	}

	t, status := parseDateInput(value)
	switch status {
	case dateEmpty:
		return f.rules.Markers.Empty
	case dateInvalid:
		return f.rules.Markers.InvalidDate
	}

	fields := newDateFields(t.Add(f.offset))
	return renderDateTokens(tokenizeDateFormat(format), fields, f.rules)
}

func parseDateInput(value any) (time.Time, dateStatus) {
	value = indirect(value)
	if value == nil {
		return time.Time{}, dateEmpty
	}

	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, dateEmpty
		}
		return v, dateValid
	case bool:
		if !v {
			return time.Time{}, dateEmpty
		}
		return fromMillis(1)
	case json.Number:
		if ms, err := v.Float64(); err == nil {
			return fromMillis(ms)
		}
		return parseDateString(string(v))
	case string:
		return parseDateString(v)
	case fmt.Stringer:
		return parseDateString(v.String())
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromMillis(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromMillis(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return fromMillis(rv.Float())
	case reflect.String:
		return parseDateString(rv.String())
	}
	return time.Time{}, dateInvalid
}

func fromMillis(ms float64) (time.Time, dateStatus) {
	switch {
	case ms == 0 || math.IsNaN(ms):
		return time.Time{}, dateEmpty
	case math.IsInf(ms, 0) || math.Abs(ms) > maxDateMillis:
		return time.Time{}, dateInvalid
	}
	return time.UnixMilli(int64(math.Trunc(ms))).UTC(), dateValid
}

func parseDateString(s string) (time.Time, dateStatus) {
	if s == "" {
		return time.Time{}, dateEmpty
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, dateInvalid
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return t, dateValid
		}
	}

	// bare digit runs longer than a year are not dates
	if len(trimmed) > 4 && strings.Trim(trimmed, "0123456789") == "" {
		return time.Time{}, dateInvalid
	}

	if t, ok := parseFreeForm(trimmed); ok {
		return t, dateValid
	}
	return time.Time{}, dateInvalid
}

// parseFreeForm covers the long tail of human date formats.
func parseFreeForm(s string) (t time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()

	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
