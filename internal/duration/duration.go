package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration represents a non-negative elapsed time as an hours/minutes/seconds
// triple. It is a magnitude, not a point in time: minutes and seconds stay
// below 60 after normalization while hours are unbounded.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// Zero is the identity element for Add.
var Zero = Duration{}

// Parse converts an "HH:MM:SS" string into a Duration.
// Parsing is deliberately lenient: each of the (at most) three colon-separated
// components is coerced to a non-negative integer, and any missing or
// non-numeric component defaults to 0. Parse never fails; malformed input
// yields a best-effort Duration and the empty string yields Zero. Overflowing
// components such as "00:00:90" are carry-normalized on the way in.
func Parse(s string) Duration {
	parts := strings.Split(s, ":")

	components := [3]int{}
	for i := 0; i < len(components) && i < len(parts); i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 {
			continue
		}
		components[i] = n
	}

	return Duration{
		Hours:   components[0],
		Minutes: components[1],
		Seconds: components[2],
	}.normalize()
}

// Add returns the component-wise sum of two Durations, normalized by carrying
// seconds >= 60 into minutes and then minutes >= 60 into hours. Add is
// deterministic, associative, and commutative over the normalized
// representation.
func Add(a, b Duration) Duration {
	sum := Duration{
		Hours:   a.Hours + b.Hours,
		Minutes: a.Minutes + b.Minutes,
		Seconds: a.Seconds + b.Seconds,
	}
	return sum.normalize()
}

// normalize carries overflowing seconds into minutes and minutes into hours.
func (d Duration) normalize() Duration {
	if d.Seconds >= 60 {
		carry := d.Seconds / 60
		d.Minutes += carry
		d.Seconds -= 60 * carry
	}
	if d.Minutes >= 60 {
		carry := d.Minutes / 60
		d.Hours += carry
		d.Minutes -= 60 * carry
	}
	return d
}

// Sum adds any number of Durations. An empty argument list yields Zero.
func Sum(durations ...Duration) Duration {
	total := Zero
	for _, d := range durations {
		total = Add(total, d)
	}
	return total
}

// Between derives the Duration elapsed from start to end.
// A negative span collapses to Zero; callers that need the clamp-and-correct
// policy for inverted ranges should reconcile the endpoints first.
func Between(start, end time.Time) Duration {
	return FromElapsed(end.Sub(start))
}

// FromElapsed converts a time.Duration into a Duration, truncating to whole
// seconds. Negative input yields Zero.
func FromElapsed(elapsed time.Duration) Duration {
	if elapsed < 0 {
		return Zero
	}
	total := int(elapsed / time.Second)
	return Duration{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// Elapsed converts the Duration back into a time.Duration.
func (d Duration) Elapsed() time.Duration {
	return time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second
}

// IsZero reports whether the Duration has no elapsed time.
func (d Duration) IsZero() bool {
	return d == Zero
}

// Format renders the Duration as "HH:MM:SS" with each field zero-padded to at
// least two digits. Hours may exceed two digits without truncation.
func Format(d Duration) string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// String implements fmt.Stringer using the canonical Format.
func (d Duration) String() string {
	return Format(d)
}

// HumanString renders the Duration as "HHh MMm SSs" for display surfaces that
// prefer labelled units over the colon form.
func HumanString(d Duration) string {
	return fmt.Sprintf("%02dh %02dm %02ds", d.Hours, d.Minutes, d.Seconds)
}
