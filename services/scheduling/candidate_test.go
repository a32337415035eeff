package scheduling_test

import (
	"errors"
	"testing"
	"time"

	"hirewire/services/scheduling"
)

func TestParseTimeLabel(t *testing.T) {
	tests := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{"12:00 PM", 12, false},
		{"12:00 AM", 0, false},
		{"9:00 AM", 9, false},
		{"2:00 PM", 14, false},
		{"11:00 pm", 23, false},
		{" 5:00PM ", 17, false},
		{"2:30 PM", 0, true},
		{"13:00 PM", 0, true},
		{"0:00 AM", 0, true},
		{"14:00", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := scheduling.ParseTimeLabel(tt.label)
		if tt.wantErr {
			if !errors.Is(err, scheduling.ErrInvalidSlot) {
				t.Errorf("ParseTimeLabel(%q) error = %v, want ErrInvalidSlot", tt.label, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeLabel(%q) unexpected error: %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeLabel(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestFormatTimeLabel(t *testing.T) {
	cases := map[int]string{0: "12:00 AM", 9: "9:00 AM", 12: "12:00 PM", 17: "5:00 PM"}
	for hour, want := range cases {
		if got := scheduling.FormatTimeLabel(hour); got != want {
			t.Errorf("FormatTimeLabel(%d) = %q, want %q", hour, got, want)
		}
	}
	if opts := scheduling.DefaultTimeOptions(); len(opts) != 9 || opts[0] != "9:00 AM" || opts[8] != "5:00 PM" {
		t.Errorf("unexpected default time options: %v", opts)
	}
}

func TestBuildCandidate_RollsOverToNextYear(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	january := scheduling.GenerateMonth(2025, time.January, now)

	c, err := scheduling.BuildCandidateFromLabel(january, "Mon, Jan 20", "9:00 AM", now)
	if err != nil {
		t.Fatalf("BuildCandidateFromLabel: %v", err)
	}
	want := time.Date(2026, time.January, 20, 9, 0, 0, 0, time.UTC)
	if !c.Timestamp.Equal(want) {
		t.Errorf("timestamp = %s, want %s", c.Timestamp, want)
	}
	if c.DateLabel != "Mon, Jan 20" || c.TimeLabel != "9:00 AM" {
		t.Errorf("labels = %q/%q", c.DateLabel, c.TimeLabel)
	}
}

func TestBuildCandidate_FutureSlotKeepsYear(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	june := scheduling.GenerateMonth(2025, time.June, now)

	c, err := scheduling.BuildCandidate(june, 17, "2:00 PM", now)
	if err != nil {
		t.Fatalf("BuildCandidate: %v", err)
	}
	want := time.Date(2025, time.June, 17, 14, 0, 0, 0, time.UTC)
	if !c.Timestamp.Equal(want) {
		t.Errorf("timestamp = %s, want %s", c.Timestamp, want)
	}
}

func TestBuildCandidate_SameInstantRollsOver(t *testing.T) {
	now := time.Date(2025, time.June, 16, 9, 0, 0, 0, time.UTC)
	june := scheduling.GenerateMonth(2025, time.June, now)

	c, err := scheduling.BuildCandidate(june, 16, "9:00 AM", now)
	if err != nil {
		t.Fatalf("BuildCandidate: %v", err)
	}
	if c.Timestamp.Year() != 2026 {
		t.Errorf("a timestamp equal to now must roll over, got %s", c.Timestamp)
	}
	if !c.Timestamp.After(now) {
		t.Errorf("timestamp %s is not after now", c.Timestamp)
	}
}

func TestBuildCandidate_InvalidDay(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	june := scheduling.GenerateMonth(2025, time.June, now)

	for _, day := range []int{0, -1, 31} {
		if _, err := scheduling.BuildCandidate(june, day, "9:00 AM", now); !errors.Is(err, scheduling.ErrInvalidSlot) {
			t.Errorf("day %d: error = %v, want ErrInvalidSlot", day, err)
		}
	}
	if _, err := scheduling.BuildCandidateFromLabel(june, "Mon, Jan 20", "9:00 AM", now); !errors.Is(err, scheduling.ErrInvalidSlot) {
		t.Errorf("label from another month: error = %v, want ErrInvalidSlot", err)
	}
	if _, err := scheduling.BuildCandidate(june, 17, "9:15 AM", now); !errors.Is(err, scheduling.ErrInvalidSlot) {
		t.Errorf("off-hour time: error = %v, want ErrInvalidSlot", err)
	}
}

func TestBuildCandidate_RolloverStillPastIsRejected(t *testing.T) {
	now := time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)
	march := scheduling.GenerateMonth(2023, time.March, now)

	c, err := scheduling.BuildCandidate(march, 15, "9:00 AM", now)
	if !errors.Is(err, scheduling.ErrInvalidSlot) {
		t.Fatalf("error = %v (timestamp %s), want ErrInvalidSlot", err, c.Timestamp)
	}
}

func TestBuildCandidate_LeapDayDoesNotRollIntoMarch(t *testing.T) {
	now := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)
	february := scheduling.GenerateMonth(2024, time.February, now)

	c, err := scheduling.BuildCandidate(february, 29, "9:00 AM", now)
	if !errors.Is(err, scheduling.ErrInvalidSlot) {
		t.Fatalf("error = %v (label %q, timestamp %s), want ErrInvalidSlot", err, c.DateLabel, c.Timestamp)
	}

	// Feb 28 still rolls over normally.
	c, err = scheduling.BuildCandidate(february, 28, "9:00 AM", now)
	if err != nil {
		t.Fatalf("BuildCandidate(28): %v", err)
	}
	want := time.Date(2025, time.February, 28, 9, 0, 0, 0, time.UTC)
	if !c.Timestamp.Equal(want) {
		t.Errorf("timestamp = %s, want %s", c.Timestamp, want)
	}
}
