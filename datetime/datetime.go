// Package datetime parses and formats the RFC 5322 date-time values carried
// by the creation-date, modification-date, and read-date parameters of the
// Content-disposition header. Parsing is deliberately lenient: mail software
// in the wild writes dates in a remarkable variety of shapes, so this tries
// the strict RFC 5322 parser first and then falls back to progressively more
// forgiving parsers.
package datetime

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/araddon/dateparse"
)

// Layout is the RFC 5322 date-time layout used when formatting.
const Layout = "Mon, 02 Jan 2006 15:04:05 -0700"

// UnixDateWithEarlyYear is a weird one, eh? Built from dates seen in the wild
// that the usual parsers have trouble with.
const UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"

// Parse parses the given bytes as a date-time value. It will attempt to parse
// the date using the format specified by RFC 5322 first and fall back to
// parsing it in many other formats.
//
// It either returns a parsed time or the parse error.
func Parse(body []byte) (time.Time, error) {
	return ParseString(string(body))
}

// ParseString is the same as Parse, but accepts a string.
func ParseString(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// Format renders the given time in RFC 5322 date-time syntax as bytes.
func Format(t time.Time) []byte {
	return []byte(FormatString(t))
}

// FormatString renders the given time in RFC 5322 date-time syntax as a
// string.
func FormatString(t time.Time) string {
	return t.Format(Layout)
}
