package timeparse

import (
	"regexp"
	"strings"
)

var (
	hoursRe = regexp.MustCompile(`\b(\d+)\s*hours?\b`)
	daysRe  = regexp.MustCompile(`\b(\d+)\s*days?\b`)
	weeksRe = regexp.MustCompile(`\b(\d+)\s*weeks?\b`)

	// "next monday 2pm" parses as two advances (the grammar already resolves
	// a bare weekday to its next occurrence), so the leading "next" is
	// stripped before the grammar sees it.
	nextWeekdayClockRe = regexp.MustCompile(`\bnext\s+(\w+day)\s+(\d+)\s*(am|pm)\b`)
	nextWeekdayRe      = regexp.MustCompile(`\bnext\s+(\w+day)\b`)
)

// Normalize canonicalizes a raw temporal expression: trims, lower-cases,
// pluralizes numeral+unit tokens consistently, and rewrites "next <weekday>"
// forms. It never fails; text it does not recognize passes through unchanged
// for the resolver to reject. Normalize is idempotent.
func Normalize(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))

	text = hoursRe.ReplaceAllString(text, "$1 hours")
	text = daysRe.ReplaceAllString(text, "$1 days")
	text = weeksRe.ReplaceAllString(text, "$1 weeks")

	text = nextWeekdayClockRe.ReplaceAllString(text, "$1 $2$3")
	text = nextWeekdayRe.ReplaceAllString(text, "$1")

	return text
}
