package ledger

import (
	"fmt"
	"time"

	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

// Preset names a relative date range computed from the invoking moment's
// local calendar date.
type Preset string

// Supported range presets.
const (
	PresetToday     Preset = "today"
	PresetYesterday Preset = "yesterday"
	PresetLast7     Preset = "last7"
	PresetThisMonth Preset = "thisMonth"
	PresetLastMonth Preset = "lastMonth"
	PresetThisYear  Preset = "thisYear"
	PresetAll       Preset = "all"
	PresetCustom    Preset = "custom"
)

// ParsePreset validates a preset name from user input.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case PresetToday, PresetYesterday, PresetLast7, PresetThisMonth,
		PresetLastMonth, PresetThisYear, PresetAll, PresetCustom:
		return p, nil
	}
	return "", fmt.Errorf("unknown date range preset: %q", s)
}

// Range is an inclusive [Start, End] pair of YYYY-MM-DD strings. An empty
// bound is unbounded on that side. Comparison is lexicographic, which is
// exact for the fixed-width zero-padded date format.
type Range struct {
	Start string
	End   string
}

// CustomRange wraps caller-supplied bounds without touching them.
func CustomRange(start, end string) Range {
	return Range{Start: start, End: end}
}

// ResolvePreset maps a preset to concrete inclusive bounds relative to now.
// PresetCustom resolves to an empty range; use CustomRange for explicit
// bounds.
func ResolvePreset(p Preset, now time.Time) Range {
	today := now.Format(model.DateLayout)

	switch p {
	case PresetToday:
		return Range{Start: today, End: today}
	case PresetYesterday:
		y := now.AddDate(0, 0, -1).Format(model.DateLayout)
		return Range{Start: y, End: y}
	case PresetLast7:
		// Inclusive 8-day window by construction.
		return Range{Start: now.AddDate(0, 0, -7).Format(model.DateLayout), End: today}
	case PresetThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{Start: first.Format(model.DateLayout), End: today}
	case PresetLastMonth:
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		lastOfPrev := firstOfThis.AddDate(0, 0, -1)
		firstOfPrev := time.Date(lastOfPrev.Year(), lastOfPrev.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{Start: firstOfPrev.Format(model.DateLayout), End: lastOfPrev.Format(model.DateLayout)}
	case PresetThisYear:
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Range{Start: first.Format(model.DateLayout), End: today}
	case PresetAll:
		return Range{Start: "", End: today}
	default:
		return Range{}
	}
}

// Contains reports whether a date falls within the range. Empty bounds
// match everything on their side.
func (r Range) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}

// Label renders the range for report headers and filenames.
func (r Range) Label() string {
	start := r.Start
	if start == "" {
		start = "beginning"
	}
	end := r.End
	if end == "" {
		end = "present"
	}
	return start + " to " + end
}
