package timeparse

import (
	"regexp"
	"strings"
	"time"
)

// Range is an ordered pair of zoned instants with End strictly after Start.
type Range struct {
	Start time.Time
	End   time.Time
}

// dateCueRe matches tokens that pin an expression to a calendar date:
// relative day words, weekday names, month names, ordinals, or a year.
// A range's right half without any of these ("4pm", "1am") denotes a clock
// time on the start's day, not an independently dated instant.
var dateCueRe = regexp.MustCompile(`\b(today|tomorrow|yesterday|monday|tuesday|wednesday|thursday|friday|saturday|sunday|january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec|week|month|year|\d+(st|nd|rd|th)|\d{4}|in \d+)\b`)

// ResolveRange parses a temporal expression into a (start, end) pair.
// Explicit two-sided ranges are detected by the word "to" surrounded by
// spaces, or a bare hyphen, in that priority order; both halves are resolved
// against the same now anchor. A one-sided expression gets the default
// one-hour duration. After assembly, a range whose start landed behind now
// is rolled forward by the past-occurrence rules.
func (r *Resolver) ResolveRange(text string, now time.Time) (Range, error) {
	normalized := Normalize(text)

	left, right, isRange := splitRange(normalized)
	if !isRange {
		start, err := r.resolve(normalized, now)
		if err != nil {
			return Range{}, err
		}
		rng := Range{Start: start, End: start.Add(time.Hour)}
		return r.advanceIfPast(normalized, rng, now), nil
	}

	start, err := r.resolve(left, now)
	if err != nil {
		return Range{}, err
	}
	end, err := r.resolve(right, now)
	if err != nil {
		return Range{}, err
	}

	// A clock-only right half ("2pm-4pm") belongs on the start's date; the
	// grammar would otherwise anchor it to now's date.
	if !dateCueRe.MatchString(right) {
		end = time.Date(start.Year(), start.Month(), start.Day(),
			end.Hour(), end.Minute(), end.Second(), 0, r.loc)
	}

	// Overnight rollback: "10pm-1am" spans past midnight. The shift is one
	// calendar day, not 24 hours, so clock time survives DST transitions.
	if sameDay(start, end) && !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	if !end.After(start) {
		return Range{}, &InvalidRangeError{
			Reason: "end " + end.Format(time.RFC3339) + " is not after start " + start.Format(time.RFC3339),
		}
	}

	return r.advanceIfPast(normalized, Range{Start: start, End: end}, now), nil
}

// splitRange detects an explicit two-sided range. The word form takes
// precedence over the hyphen so hyphenated words are not misread as ranges.
func splitRange(text string) (left, right string, ok bool) {
	if idx := strings.Index(text, " to "); idx >= 0 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+4:]), true
	}
	if idx := strings.Index(text, "-"); idx > 0 && idx < len(text)-1 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+1:]), true
	}
	return "", "", false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
