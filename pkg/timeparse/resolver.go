package timeparse

import (
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Resolver converts natural-language temporal expressions into concrete
// zoned instants anchored to a single IANA timezone. A Resolver is immutable
// and safe for concurrent use; each resolution is a pure function of
// (text, now).
type Resolver struct {
	zone string
	loc  *time.Location
}

// NewResolver creates a Resolver for the given IANA timezone string,
// e.g. "Australia/Melbourne". An unrecognized zone fails with
// UnknownTimeZoneError before any parsing is attempted.
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, &UnknownTimeZoneError{Zone: timezone, Err: err}
	}
	return &Resolver{zone: timezone, loc: loc}, nil
}

// Zone returns the IANA zone identifier this resolver is anchored to.
func (r *Resolver) Zone() string { return r.zone }

// Location returns the loaded zone rule table.
func (r *Resolver) Location() *time.Location { return r.loc }

// ResolveInstant parses a single temporal expression into an absolute
// instant in the resolver's zone. The now argument anchors all relative
// expressions ("tomorrow", "in 2 hours") and must be sampled exactly once
// per user interaction; it is threaded through every sub-step so a
// resolution is internally consistent even while wall-clock time advances.
func (r *Resolver) ResolveInstant(text string, now time.Time) (time.Time, error) {
	return r.resolve(Normalize(text), now)
}

// resolve runs the grammar over already-normalized text.
func (r *Resolver) resolve(normalized string, now time.Time) (time.Time, error) {
	if normalized == "" {
		return time.Time{}, &UnparseableExpressionError{Snippet: normalized}
	}

	cfg := &dateparser.Configuration{
		CurrentTime:         now.In(r.loc),
		DefaultTimezone:     r.loc,
		PreferredDateSource: dateparser.Future,
	}

	dt, err := dateparser.Parse(cfg, normalized)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, &UnparseableExpressionError{Snippet: normalized}
	}

	// The grammar's internal default zone is never trusted; the result is
	// always re-anchored to the requested zone.
	return r.sameCycleRebase(normalized, dt.Time.In(r.loc), now), nil
}

// sameCycleRebase undoes the grammar's eager day-skip. The future preference
// advances a bare clock time to the next day and a named weekday to the next
// week even when the named moment is still ahead in the current cycle: at
// Friday 14:00, "10pm" means tonight, and at Friday 09:59, "friday 10am"
// means a minute from now. A clock-only expression is re-anchored onto now's
// date when that keeps it in the future; a weekday expression is pulled back
// one week on the same condition.
func (r *Resolver) sameCycleRebase(normalized string, t, now time.Time) time.Time {
	now = now.In(r.loc)

	if !dateCueRe.MatchString(normalized) {
		anchored := time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, r.loc)
		if anchored.After(now) {
			return anchored
		}
		return t
	}

	if weekdayRe.MatchString(normalized) {
		if back := t.AddDate(0, 0, -7); back.After(now) {
			return back
		}
	}

	return t
}
