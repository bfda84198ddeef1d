package timeparse

import (
	"regexp"
	"time"
)

var (
	todayRe    = regexp.MustCompile(`\btoday\b`)
	tomorrowRe = regexp.MustCompile(`\btomorrow\b`)
	weekdayRe  = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun)\b`)
	monthRe    = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\b`)
)

// advanceIfPast rolls a range that resolved behind now forward to the next
// sensible future occurrence. The decision is driven by the textual cues in
// the normalized source expression, checked in priority order, first match
// wins:
//
//  1. "today"/"tomorrow" literal: "today" in the past shifts one day.
//     "tomorrow" resolving to the past has never been observed and is left
//     unshifted.
//  2. Month name without a weekday: the user meant next year's occurrence
//     of that date, so only the year advances.
//  3. Weekday name: shift to the next occurrence of that weekday; the same
//     weekday already past in clock time means a full week ahead.
//
// Without any cue the range is returned unshifted; guessing intent beyond
// explicit cues is the caller's job. All shifts preserve clock time and
// zone. Advancing an already-future range is a no-op, so the function is a
// fixpoint after one application.
func (r *Resolver) advanceIfPast(normalized string, rng Range, now time.Time) Range {
	if rng.Start.After(now) {
		return rng
	}

	switch {
	case todayRe.MatchString(normalized):
		return shift(rng, 0, 0, 1)
	case tomorrowRe.MatchString(normalized):
		return rng
	case monthRe.MatchString(normalized) && !weekdayRe.MatchString(normalized):
		if rng.Start.Year() == now.In(r.loc).Year() {
			return shift(rng, 1, 0, 0)
		}
		return rng
	case weekdayRe.MatchString(normalized):
		daysAhead := (int(rng.Start.Weekday()) - int(now.In(r.loc).Weekday()) + 7) % 7
		if daysAhead == 0 {
			daysAhead = 7
		}
		return shift(rng, 0, 0, daysAhead)
	}

	return rng
}

// shift moves both endpoints by whole calendar units so the original clock
// time survives DST boundaries.
func shift(rng Range, years, months, days int) Range {
	return Range{
		Start: rng.Start.AddDate(years, months, days),
		End:   rng.End.AddDate(years, months, days),
	}
}
