package scheduling

import (
	"fmt"
	"strings"
	"time"

	"hirewire/models"
)

const (
	// DateLabelLayout renders the human-facing label of a day, e.g. "Mon, Jan 20".
	DateLabelLayout = "Mon, Jan 2"
	dayLayout       = "2006-01-02"
)

// BusinessCalendar decides which days can host an interview. Weekends are
// never business days; holidays are optional extra closures.
type BusinessCalendar struct {
	holidays map[string]struct{}
}

// NewBusinessCalendar builds a calendar from YYYY-MM-DD holiday dates.
func NewBusinessCalendar(holidays []string) (BusinessCalendar, error) {
	bc := BusinessCalendar{holidays: make(map[string]struct{}, len(holidays))}
	for _, h := range holidays {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		d, err := time.Parse(dayLayout, h)
		if err != nil {
			return BusinessCalendar{}, fmt.Errorf("invalid holiday %q: %w", h, err)
		}
		bc.holidays[d.Format(dayLayout)] = struct{}{}
	}
	return bc, nil
}

// IsHoliday reports whether t falls on a configured holiday.
func (bc BusinessCalendar) IsHoliday(t time.Time) bool {
	if len(bc.holidays) == 0 {
		return false
	}
	_, ok := bc.holidays[t.Format(dayLayout)]
	return ok
}

// IsBusinessDay reports whether t is neither a weekend nor a holiday.
func (bc BusinessCalendar) IsBusinessDay(t time.Time) bool {
	return !isWeekend(t) && !bc.IsHoliday(t)
}

// GenerateMonth renders the grid for year/month with no holidays.
func GenerateMonth(year int, month time.Month, today time.Time) models.CalendarMonth {
	return BusinessCalendar{}.GenerateMonth(year, month, today)
}

// GenerateMonth renders a Sunday-first grid for year/month. The front is
// padded so the 1st sits under its weekday column and the back is padded to
// complete the last week. Dates are built in today's location and compared
// date-only, so today itself is never past.
func (bc BusinessCalendar) GenerateMonth(year int, month time.Month, today time.Time) models.CalendarMonth {
	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	year, month = first.Year(), first.Month()

	todayDate := startOfDay(today)
	offset := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	cells := (offset + daysInMonth + 6) / 7 * 7

	days := make([]models.CalendarDay, 0, cells)
	for i := 0; i < offset; i++ {
		days = append(days, models.CalendarDay{IsDisabled: true})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		weekend := isWeekend(date)
		past := date.Before(todayDate)
		holiday := bc.IsHoliday(date)
		days = append(days, models.CalendarDay{
			DayNumber:  d,
			Date:       date,
			DateLabel:  date.Format(DateLabelLayout),
			IsPast:     past,
			IsWeekend:  weekend,
			IsHoliday:  holiday,
			IsDisabled: past || weekend || holiday,
		})
	}
	for len(days) < cells {
		days = append(days, models.CalendarDay{IsDisabled: true})
	}

	return models.CalendarMonth{Year: year, Month: month, Days: days}
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
