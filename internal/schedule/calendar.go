package schedule

import (
	"fmt"
	"slices"
	"time"

	"careerday/config"
	"careerday/shared/timezone"
)

// Calendar is the fixed set of slots of one event day. It is immutable once built.
type Calendar struct {
	step   time.Duration
	ranges []Range
	slots  []string
}

func New(step time.Duration, ranges ...Range) (*Calendar, error) {
	if step <= 0 || step%time.Minute != 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStep, step)
	}

	if len(ranges) == 0 {
		return nil, fmt.Errorf("%w: no ranges configured", ErrInvalidRange)
	}

	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		return int(a.Start - b.Start)
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return nil, fmt.Errorf("%w: %s overlaps %s", ErrInvalidRange, sorted[i], sorted[i-1])
		}
	}

	return &Calendar{
		step:   step,
		ranges: sorted,
		slots:  GenerateSlots(step, sorted...),
	}, nil
}

func NewFromConfig(cfg *config.Config) (*Calendar, error) {
	ranges := make([]Range, 0, len(cfg.Schedule.Ranges))

	for _, raw := range cfg.Schedule.Ranges {
		r, err := ParseRange(raw)
		if err != nil {
			return nil, err
		}

		ranges = append(ranges, r)
	}

	return New(time.Duration(cfg.Schedule.StepMinutes)*time.Minute, ranges...)
}

// Slots returns a copy of the ordered slot list.
func (c *Calendar) Slots() []string {
	return slices.Clone(c.slots)
}

func (c *Calendar) Step() time.Duration {
	return c.step
}

func (c *Calendar) Ranges() []Range {
	return slices.Clone(c.ranges)
}

func (c *Calendar) Contains(slot string) bool {
	_, found := slices.BinarySearch(c.slots, slot)

	return found
}

// Validate rejects anything that is not one of the calendar's slots.
func (c *Calendar) Validate(slot string) error {
	if _, err := ParseSlot(slot); err != nil {
		return err
	}

	if !c.Contains(slot) {
		return fmt.Errorf("%w: %s is not a bookable slot", ErrInvalidSlot, slot)
	}

	return nil
}

// Next is the slot that starts when slot ends. It may fall outside the calendar.
func (c *Calendar) Next(slot string) (string, error) {
	return ShiftSlot(slot, c.step)
}

// Start anchors slot on the calendar day of date, in date's location.
func (c *Calendar) Start(date time.Time, slot string) (time.Time, error) {
	offset, err := ParseSlot(slot)
	if err != nil {
		return time.Time{}, err
	}

	return timezone.Midnight(date, date.Location()).Add(offset), nil
}

// End is Start plus one step.
func (c *Calendar) End(date time.Time, slot string) (time.Time, error) {
	start, err := c.Start(date, slot)
	if err != nil {
		return time.Time{}, err
	}

	return start.Add(c.step), nil
}

func (c *Calendar) IsBlocked(candidate string, existing []string) (string, bool, error) {
	return FindConflict(candidate, existing, c.step)
}
