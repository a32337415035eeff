package models

import (
	"encoding/json"
	"time"
)

// CalendarDay is one cell of a month grid. Padding cells before the 1st and
// after the last day of the month have DayNumber 0 and are always disabled.
type CalendarDay struct {
	DayNumber  int       `json:"dayNumber"`
	Date       time.Time `json:"date"`
	DateLabel  string    `json:"dateLabel,omitempty"` // e.g., "Mon, Jan 20"
	IsPast     bool      `json:"isPast"`
	IsWeekend  bool      `json:"isWeekend"`
	IsHoliday  bool      `json:"isHoliday,omitempty"`
	IsDisabled bool      `json:"isDisabled"`
}

// IsPadding reports whether the cell is grid filler rather than a real day.
func (d CalendarDay) IsPadding() bool {
	return d.DayNumber == 0
}

// MarshalJSON renders padding cells with a null dayNumber and date.
func (d CalendarDay) MarshalJSON() ([]byte, error) {
	type wire struct {
		DayNumber  *int       `json:"dayNumber"`
		Date       *time.Time `json:"date"`
		DateLabel  string     `json:"dateLabel,omitempty"`
		IsPast     bool       `json:"isPast"`
		IsWeekend  bool       `json:"isWeekend"`
		IsHoliday  bool       `json:"isHoliday,omitempty"`
		IsDisabled bool       `json:"isDisabled"`
	}
	w := wire{
		DateLabel:  d.DateLabel,
		IsPast:     d.IsPast,
		IsWeekend:  d.IsWeekend,
		IsHoliday:  d.IsHoliday,
		IsDisabled: d.IsDisabled,
	}
	if !d.IsPadding() {
		day, date := d.DayNumber, d.Date
		w.DayNumber = &day
		w.Date = &date
	}
	return json.Marshal(w)
}

// CalendarMonth is the grid rendered for one displayed month.
type CalendarMonth struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// Day returns the real (non-padding) cell for dayNumber.
func (m CalendarMonth) Day(dayNumber int) (CalendarDay, bool) {
	if dayNumber <= 0 {
		return CalendarDay{}, false
	}
	for _, d := range m.Days {
		if d.DayNumber == dayNumber {
			return d, true
		}
	}
	return CalendarDay{}, false
}

// CalendarResponse is returned by the calendar endpoint.
type CalendarResponse struct {
	CalendarMonth
	TimeOptions []string `json:"timeOptions"`
}
