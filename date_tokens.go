package prxz

import (
	"strconv"
	"strings"
	"time"
)

const (
	tokenLetters  = "dmyHhMSt"
	dateComposite = "{date}"
	timeComposite = "{time}"
	timeSeconds   = "{time:s}"
)

// dateToken is one segment of a date template: literal text or a field.
type dateToken struct {
	literal string
	field   string
}

// tokenizeDateFormat splits format in a single pass. Runs of a token letter
// are cut into the longest tokens the letter supports (dddd, mmmm, yyyy, HH,
// hh, MM, SS, tt); y only forms yy and yyyy. A backslash before a token
// letter makes that letter literal.
func tokenizeDateFormat(format string) []dateToken {
	var (
		tokens  []dateToken
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, dateToken{literal: literal.String()})
			literal.Reset()
		}
	}
	field := func(name string) {
		flush()
		tokens = append(tokens, dateToken{field: name})
	}

	for i := 0; i < len(format); {
		c := format[i]

		if c == '\\' && i+1 < len(format) && strings.IndexByte(tokenLetters, format[i+1]) >= 0 {
			literal.WriteByte(format[i+1])
			i += 2
			continue
		}

		if c == '{' {
			if composite, ok := compositeAt(format[i:]); ok {
				field(composite)
				i += len(composite)
				continue
			}
		}

		if strings.IndexByte(tokenLetters, c) < 0 {
			literal.WriteByte(c)
			i++
			continue
		}

		run := 1
		for i+run < len(format) && format[i+run] == c {
			run++
		}
		for run > 0 {
			size := min(run, maxTokenLength(c))
			token := strings.Repeat(string(c), size)
			if c == 'y' && size != 2 && size != 4 {
				literal.WriteString(token)
			} else {
				field(token)
			}
			run -= size
			i += size
		}
	}
	flush()

	return tokens
}

func compositeAt(s string) (string, bool) {
	for _, composite := range []string{dateComposite, timeSeconds, timeComposite} {
		if strings.HasPrefix(s, composite) {
			return composite, true
		}
	}
	return "", false
}

func maxTokenLength(c byte) int {
	switch c {
	case 'd', 'm', 'y':
		return 4
	default:
		return 2
	}
}

// dateFields are the calendar fields of one instant, read in UTC.
type dateFields struct {
	day, month, year     int
	weekday              time.Weekday
	hour, minute, second int
}

func newDateFields(t time.Time) dateFields {
	t = t.UTC()
	return dateFields{
		day:     t.Day(),
		month:   int(t.Month()),
		year:    t.Year(),
		weekday: t.Weekday(),
		hour:    t.Hour(),
		minute:  t.Minute(),
		second:  t.Second(),
	}
}

func renderDateTokens(tokens []dateToken, fields dateFields, rules FormattingRules) string {
	var b strings.Builder
	for _, token := range tokens {
		if token.field == "" {
			b.WriteString(token.literal)
			continue
		}
		b.WriteString(fields.value(token.field, rules))
	}
	return b.String()
}

func (f dateFields) value(token string, rules FormattingRules) string {
	year := strconv.Itoa(f.year)
	hours12 := f.hour % 12
	if hours12 == 0 {
		hours12 = 12
	}

	switch token {
	case "d":
		return strconv.Itoa(f.day)
	case "dd":
		return pad2(f.day)
	case "ddd":
		return rules.Weekdays.Short[f.weekday]
	case "dddd":
		return rules.Weekdays.Full[f.weekday]
	case "m":
		return strconv.Itoa(f.month)
	case "mm":
		return pad2(f.month)
	case "mmm":
		return rules.Months.Short[f.month-1]
	case "mmmm":
		return rules.Months.Full[f.month-1]
	case "yy":
		if len(year) > 2 {
			return year[len(year)-2:]
		}
		return year
	case "yyyy":
		return year
	case "H":
		return strconv.Itoa(f.hour)
	case "HH":
		return pad2(f.hour)
	case "h":
		return strconv.Itoa(hours12)
	case "hh":
		return pad2(hours12)
	case "M":
		return strconv.Itoa(f.minute)
	case "MM":
		return pad2(f.minute)
	case "S":
		return strconv.Itoa(f.second)
	case "SS":
		return pad2(f.second)
	case "t":
		if f.hour >= 12 {
			return "p"
		}
		return "a"
	case "tt":
		if f.hour >= 12 {
			return rules.AMPM.PM
		}
		return rules.AMPM.AM
	case dateComposite:
		return pad2(f.day) + "." + pad2(f.month) + "." + year
	case timeComposite:
		return pad2(f.hour) + ":" + pad2(f.minute)
	case timeSeconds:
		return pad2(f.hour) + ":" + pad2(f.minute) + ":" + pad2(f.second)
	}
	return token
}

func pad2(v int) string {
	if v >= 0 && v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
