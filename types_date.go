package traderbook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the canonical storage format for dates: day/month/year.
// The ledger stores dates as text in this exact layout, so month/year
// filters can match on fixed substrings.
const DateFormat = "02/01/2006"

// MonthYearFormat is the layout of the month/year fragment of a stored date.
const MonthYearFormat = "01/2006"

// readDateFormats are the permissive layouts accepted on input.
var readDateFormats = []string{DateFormat, "2/1/2006", "2006-01-02"}

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in the canonical day/month/year layout.
func (d Date) String() string { return d.time().Format(DateFormat) }

// MonthYear returns the month/year fragment of the date, e.g. "07/2025".
func (d Date) MonthYear() string { return d.time().Format(MonthYearFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// ParseDate parses a Date from a string. It is lenient and accepts "7/1/2025"
// as well as the canonical "07/01/2025", plus ISO "2025-01-07" for convenience.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "" || str == "0d" {
		return Today(), nil
	}
	for _, layout := range readDateFormats {
		if on, err := time.Parse(layout, str); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q, want format %q", str, DateFormat)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := ParseDate(str)
	if err != nil {
		return fmt.Errorf("invalid date in data file: %w", err)
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
