package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hirewire/models"
)

var timeLabelPattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*([AaPp][Mm])\s*$`)

// ParseTimeLabel converts a 12-hour label such as "2:00 PM" into a 24-hour
// hour. Offered labels are on the hour, so non-zero minutes are rejected.
func ParseTimeLabel(label string) (int, error) {
	m := timeLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, fmt.Errorf("%w: unrecognized time %q", ErrInvalidSlot, label)
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour out of range in %q", ErrInvalidSlot, label)
	}
	if m[2] != "00" {
		return 0, fmt.Errorf("%w: time %q is not on the hour", ErrInvalidSlot, label)
	}

	pm := strings.EqualFold(m[3], "pm")
	switch {
	case hour == 12 && pm:
		return 12, nil
	case hour == 12:
		return 0, nil
	case pm:
		return hour + 12, nil
	}
	return hour, nil
}

// FormatTimeLabel renders a 24-hour hour as a canonical label, e.g. 14 -> "2:00 PM".
func FormatTimeLabel(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:00 %s", h, suffix)
}

// DefaultTimeOptions lists the hourly times offered to proposers.
func DefaultTimeOptions() []string {
	opts := make([]string, 0, 9)
	for h := 9; h <= 17; h++ {
		opts = append(opts, FormatTimeLabel(h))
	}
	return opts
}

// BuildCandidate resolves a picked day of the displayed month and a time
// label into a candidate. A timestamp that is not strictly after now is
// moved to the same day and hour of the following year. If that still is
// not in the future, or the day does not exist in the following year
// (Feb 29), the pick is rejected.
func BuildCandidate(month models.CalendarMonth, dayNumber int, timeLabel string, now time.Time) (models.SlotCandidate, error) {
	day, ok := month.Day(dayNumber)
	if !ok {
		return models.SlotCandidate{}, fmt.Errorf("%w: day %d is not in %s %d", ErrInvalidSlot, dayNumber, month.Month, month.Year)
	}
	hour, err := ParseTimeLabel(timeLabel)
	if err != nil {
		return models.SlotCandidate{}, err
	}

	loc := now.Location()
	ts := time.Date(month.Year, month.Month, day.DayNumber, hour, 0, 0, 0, loc)
	if !ts.After(now) {
		ts = time.Date(month.Year+1, month.Month, day.DayNumber, hour, 0, 0, 0, loc)
		if ts.Day() != day.DayNumber {
			return models.SlotCandidate{}, fmt.Errorf("%w: %s does not exist in %d", ErrInvalidSlot, day.DateLabel, month.Year+1)
		}
		if !ts.After(now) {
			return models.SlotCandidate{}, fmt.Errorf("%w: %s %s is in the past", ErrInvalidSlot, day.DateLabel, FormatTimeLabel(hour))
		}
	}

	return models.SlotCandidate{
		DateLabel: day.DateLabel,
		TimeLabel: FormatTimeLabel(hour),
		Timestamp: ts,
	}, nil
}

// BuildCandidateFromLabel is BuildCandidate for callers that only kept the
// formatted day label. The label must match exactly one day of the month.
func BuildCandidateFromLabel(month models.CalendarMonth, dateLabel, timeLabel string, now time.Time) (models.SlotCandidate, error) {
	dayNumber := 0
	for _, d := range month.Days {
		if d.IsPadding() || d.DateLabel != dateLabel {
			continue
		}
		if dayNumber != 0 {
			return models.SlotCandidate{}, fmt.Errorf("%w: %q matches more than one day", ErrInvalidSlot, dateLabel)
		}
		dayNumber = d.DayNumber
	}
	if dayNumber == 0 {
		return models.SlotCandidate{}, fmt.Errorf("%w: %q is not in %s %d", ErrInvalidSlot, dateLabel, month.Month, month.Year)
	}
	return BuildCandidate(month, dayNumber, timeLabel, now)
}
