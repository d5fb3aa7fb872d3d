package prxz

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestFdate(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		format string
		want   string
	}{
		{"iso date", "2024-12-25", "", "25.12.2024"},
		{"moscow time", "2024-12-25T14:30:00", "HH:MM", "17:30"},
		{"explicit offset is still projected", "2024-12-25T14:30:00+03:00", "HH:MM", "14:30"},
		{"utc designator", "2024-12-25T11:30:00Z", "HH:MM", "14:30"},
		{"twelve hour clock", "2024-12-25T14:30:00", "hh:MM tt", "05:30 PM"},
		{"midnight is twelve", "2024-12-24T21:15:00", "h:MM tt", "12:15 AM"},
		{"names", "2024-12-25", "dddd, d mmmm yyyy", "среда, 25 декабрь 2024"},
		{"short names", "2024-03-08", "ddd, dd mmm yy", "пт, 08 мар 24"},
		{"rfc1123", "Wed, 25 Dec 2024 14:30:00 GMT", "HH:MM", "17:30"},
		{"long form", "December 25, 2024 14:30:00", "HH:MM", "17:30"},
		{"day rollover", "2024-12-31T23:59:59.999", "dd.mm.yyyy HH:MM:SS", "01.01.2025 02:59:59"},
		{"month only", "2024-12", "", "01.12.2024"},
		{"free form", "12/25/2024", "", "25.12.2024"},
		{"composite date", "2024-12-25", "{date}", "25.12.2024"},
		{"composite time", "2024-12-25T14:30:45", "{time}", "17:30"},
		{"composite seconds", "2024-12-25T14:30:45", "{time:s}", "17:30:45"},
		{"composites in text", "2024-12-25T14:30:00", "Дата: {date} Время: {time}", "Дата: 25.12.2024 Время: 17:30"},
		{"single letters", "2024-01-05T04:07:09", "d.m H:M:S t", "5.1 7:7:9 a"},
		{"escaped letters", "2024-12-25T14:30:00", `\H\H HH`, "HH 17"},
		{"epoch", time.Unix(0, 0), "dd.mm.yyyy HH:MM", "01.01.1970 03:00"},
		{"utc instant", "2024-12-25T14:30:00Z", "dd.mm.yyyy HH:MM", "25.12.2024 17:30"},
		{"milliseconds", time.Date(2024, 12, 25, 14, 30, 0, 0, time.UTC).UnixMilli(), "HH:MM", "17:30"},
		{"json number milliseconds", json.Number("1735137000000"), "HH:MM", "17:30"},
		{"float milliseconds", float64(time.Date(2024, 12, 25, 14, 30, 0, 0, time.UTC).UnixMilli()), "dd.mm", "25.12"},
		{"time value", time.Date(2024, 12, 25, 14, 30, 0, 0, time.FixedZone("X", 3600)), "HH:MM", "16:30"},
		{"true is one millisecond", true, "", "01.01.1970"},
		{"invalid month", "2024-13-45", "", "Неверная дата"},
		{"garbage", "not a date", "", "Неверная дата"},
		{"millisecond string", "1700000000000", "", "Неверная дата"},
		{"compact digits", "20241225", "", "Неверная дата"},
		{"blank", "   ", "", "Неверная дата"},
		{"infinity", math.Inf(1), "", "Неверная дата"},
		{"negative infinity", math.Inf(-1), "", "Неверная дата"},
		{"out of range", 9e15, "", "Неверная дата"},
		{"list", []any{"2024-12-25"}, "", "Неверная дата"},
		{"object", map[string]any{"date": "2024-12-25"}, "", "Неверная дата"},
		{"nil", nil, "", "-"},
		{"empty string", "", "", "-"},
		{"false", false, "", "-"},
		{"zero", 0, "", "-"},
		{"nan", math.NaN(), "", "-"},
		{"zero time", time.Time{}, "", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fdate(tt.value, tt.format); got != tt.want {
				t.Fatalf("Fdate(%#v, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
			}
		})
	}
}

func TestFdateMonthNames(t *testing.T) {
	short := []string{"янв", "фев", "мар", "апр", "май", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"}
	full := []string{
		"январь", "февраль", "март", "апрель", "май", "июнь",
		"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
	}

	for i := range 12 {
		value := time.Date(2024, time.Month(i+1), 15, 0, 0, 0, 0, time.UTC)
		if got := Fdate(value, "mmm"); got != short[i] {
			t.Errorf("month %d short = %q, want %q", i+1, got, short[i])
		}
		if got := Fdate(value, "mmmm"); got != full[i] {
			t.Errorf("month %d full = %q, want %q", i+1, got, full[i])
		}
	}
}

func TestFdateWeekdayNames(t *testing.T) {
	short := []string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"}

	// 2024-01-01 is a Monday
	for i := range 7 {
		value := time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC)
		want := short[(i+1)%7]
		if got := Fdate(value, "ddd"); got != want {
			t.Errorf("day %d = %q, want %q", i, got, want)
		}
	}
}

func TestDateWithOffset(t *testing.T) {
	utc := Default().withOffset(0)
	if got := utc.Date("2024-12-25T14:30:00", "HH:MM"); got != "14:30" {
		t.Fatalf("Date with zero offset = %q", got)
	}

	minutes := -300
	newYork := NewFormatter(FormattingRules{TimeOffsetMinutes: &minutes}, nil)
	if got := newYork.Date("2024-12-25T02:00:00Z", "dd.mm HH:MM"); got != "24.12 21:00" {
		t.Fatalf("Date with negative offset = %q", got)
	}
}
