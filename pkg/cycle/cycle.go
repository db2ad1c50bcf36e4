// Package cycle computes bed and wake times aligned to whole sleep cycles.
package cycle

import (
	"fmt"
	"sort"
	"time"
)

// DefaultCycleLength is the length of an average sleep cycle.
const DefaultCycleLength = 90 * time.Minute

// roundStep is the granularity suggestions are rounded to, in minutes.
const roundStep = 10

// Counts lists the cycle counts considered for every computation, in output
// order for wake times.
var Counts = []int{1, 2, 3, 4, 5, 6, 7}

// Quality ranks a candidate by the number of cycles it completes.
type Quality int

const (
	// Okay is assigned to short or overly long nights.
	Okay Quality = iota
	// Good is assigned to four cycles.
	Good
	// Best is assigned to five or six cycles.
	Best
)

// String returns the label shown next to a candidate.
func (q Quality) String() string {
	switch q {
	case Best:
		return "Best"
	case Good:
		return "Good"
	default:
		return "Okay"
	}
}

// MarshalText renders the quality label for JSON output.
func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// QualityFor derives the quality label from a cycle count.
func QualityFor(cycles int) Quality {
	switch cycles {
	case 5, 6:
		return Best
	case 4:
		return Good
	default:
		return Okay
	}
}

// Candidate is a single suggested bed or wake moment.
type Candidate struct {
	Cycles  int           `json:"cycles"`
	Time    time.Time     `json:"time"`
	Clock   string        `json:"clock"`
	Quality Quality       `json:"quality"`
	Sleep   time.Duration `json:"-"`
}

// Span renders the time spent asleep for the candidate as HH:MM.
func (c Candidate) Span() string {
	return FormatSpan(c.Sleep)
}

func newCandidate(cycles int, at time.Time, length time.Duration) Candidate {
	return Candidate{
		Cycles:  cycles,
		Time:    at,
		Clock:   FormatClock(at),
		Quality: QualityFor(cycles),
		Sleep:   time.Duration(cycles) * length,
	}
}

// WakeTimes returns the wake-up candidates for someone starting to sleep at
// sleep. Each candidate is rounded up to the next ten minutes, so a forecast is
// never earlier than computed. The result is ordered by cycle count, which is
// also chronological.
func WakeTimes(sleep time.Time, latency, length time.Duration) []Candidate {
	base := sleep.Add(latency)
	out := make([]Candidate, 0, len(Counts))
	for _, n := range Counts {
		raw := base.Add(time.Duration(n) * length)
		out = append(out, newCandidate(n, roundMinutes(raw, true), length))
	}
	return out
}

// BedTimes returns the bedtime candidates for someone who wants to wake at
// wake. Latency is subtracted before rounding, and each candidate is rounded
// down to the previous ten minutes. The result is sorted earliest first.
func BedTimes(wake time.Time, latency, length time.Duration) []Candidate {
	out := make([]Candidate, 0, len(Counts))
	for _, n := range Counts {
		raw := wake.Add(-time.Duration(n)*length - latency)
		out = append(out, newCandidate(n, roundMinutes(raw, false), length))
	}
	// Larger counts subtract more, so the raw order is latest first.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})
	return out
}

// roundMinutes rounds the minute component of t to a multiple of roundStep and
// drops seconds. A ceiling of 60 rolls into the next hour.
func roundMinutes(t time.Time, up bool) time.Time {
	m := t.Minute()
	if up {
		m = (m + roundStep - 1) / roundStep * roundStep
	} else {
		m = m / roundStep * roundStep
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), m, 0, 0, t.Location())
}

// FormatClock renders t as a zero-padded 24-hour HH:MM in its own location.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatSpan renders a duration as zero-padded HH:MM. Hours are not wrapped at
// 24.
func FormatSpan(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	total := int(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Split partitions candidates into the suggested (Best) ones and the rest,
// keeping the input order in both.
func Split(cands []Candidate) (suggested, others []Candidate) {
	for _, c := range cands {
		if c.Quality == Best {
			suggested = append(suggested, c)
		} else {
			others = append(others, c)
		}
	}
	return suggested, others
}
