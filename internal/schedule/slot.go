// Package schedule derives the bookable interview slots of a day and decides
// whether a candidate slot collides with slots an attendee already holds.
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	slotLayout     = "15:04"
	rangeSeparator = "-"
	day            = 24 * time.Hour
)

var (
	ErrInvalidSlot  = errors.New("invalid slot")
	ErrInvalidRange = errors.New("invalid time range")
	ErrInvalidStep  = errors.New("invalid step")
)

// Range is a half-open interval of the day, [Start, End), as offsets from midnight.
type Range struct {
	Start time.Duration
	End   time.Duration
}

func (r Range) String() string {
	return FormatSlot(r.Start) + rangeSeparator + FormatSlot(r.End)
}

// ParseRange reads "HH:MM-HH:MM".
func ParseRange(raw string) (Range, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(raw), rangeSeparator)
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, raw)
	}

	from, err := ParseSlot(strings.TrimSpace(start))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, raw)
	}

	to, err := ParseSlot(strings.TrimSpace(end))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, raw)
	}

	if to <= from {
		return Range{}, fmt.Errorf("%w: %q ends before it starts", ErrInvalidRange, raw)
	}

	return Range{Start: from, End: to}, nil
}

// ParseSlot reads a strict "HH:MM" value and returns its offset from midnight.
func ParseSlot(slot string) (time.Duration, error) {
	if len(slot) != len(slotLayout) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}

	parsed, err := time.Parse(slotLayout, slot)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}

	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
}

// FormatSlot renders an offset from midnight as "HH:MM", wrapping past midnight.
func FormatSlot(offset time.Duration) string {
	offset %= day
	if offset < 0 {
		offset += day
	}

	return fmt.Sprintf("%02d:%02d", int(offset/time.Hour), int(offset%time.Hour/time.Minute))
}

// ShiftSlot moves slot by delta using time arithmetic, so 12:45 + 15m is 13:00.
func ShiftSlot(slot string, delta time.Duration) (string, error) {
	offset, err := ParseSlot(slot)
	if err != nil {
		return "", err
	}

	return FormatSlot(offset + delta), nil
}

// GenerateSlots steps through each range in order, excluding every range's end.
func GenerateSlots(step time.Duration, ranges ...Range) []string {
	if step <= 0 {
		return nil
	}

	slots := []string{}

	for _, r := range ranges {
		for cursor := r.Start; cursor < r.End; cursor += step {
			slots = append(slots, FormatSlot(cursor))
		}
	}

	return slots
}

// FindConflict returns the first existing slot that equals candidate or sits one step away from it.
// A malformed candidate is rejected with ErrInvalidSlot; malformed existing entries are skipped.
func FindConflict(candidate string, existing []string, step time.Duration) (string, bool, error) {
	target, err := ParseSlot(candidate)
	if err != nil {
		return "", false, err
	}

	for _, held := range existing {
		offset, err := ParseSlot(held)
		if err != nil {
			continue
		}

		diff := target - offset
		if diff == 0 || diff == step || diff == -step {
			return held, true, nil
		}
	}

	return "", false, nil
}

func IsSlotBlocked(candidate string, existing []string, step time.Duration) (bool, error) {
	_, blocked, err := FindConflict(candidate, existing, step)

	return blocked, err
}
