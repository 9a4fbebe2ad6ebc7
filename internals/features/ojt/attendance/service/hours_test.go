package service_test

import (
	"testing"
	"time"

	"ojtms_backend/internals/features/ojt/attendance/service"
	"ojtms_backend/internals/features/ojt/schedule"
)

func at(hour, minute int) time.Time {
	// 2026-03-02 is a Monday.
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestCalculateValidHoursFixedWindow(t *testing.T) {
	tests := []struct {
		name    string
		timeIn  time.Time
		timeOut time.Time
		want    string
	}{
		{"full day", at(7, 0), at(17, 0), "9"},
		{"early in late out clamps to window", at(6, 0), at(18, 30), "9"},
		{"morning only", at(7, 0), at(12, 0), "5"},
		{"afternoon only", at(13, 0), at(17, 0), "4"},
		{"spanning lunch excludes the break", at(8, 0), at(17, 0), "8"},
		{"inside lunch only", at(12, 10), at(12, 50), "0"},
		{"out before window", at(5, 0), at(6, 30), "0"},
		{"in after window", at(17, 30), at(19, 0), "0"},
		{"same instant", at(9, 15), at(9, 15), "0"},
		{"partial morning", at(9, 30), at(11, 0), "1.5"},
		{"out inside lunch clamps to noon", at(8, 0), at(12, 30), "4"},
		{"in inside lunch clamps to one", at(12, 30), at(15, 0), "2"},
	}
	for _, tt := range tests {
		got := service.CalculateValidHours(tt.timeIn, tt.timeOut)
		if got.String() != tt.want {
			t.Errorf("%s: CalculateValidHours(%s, %s) = %s, want %s",
				tt.name, tt.timeIn.Format("15:04"), tt.timeOut.Format("15:04"), got, tt.want)
		}
	}
}

func TestCalculateScheduleHoursEmployerWindow(t *testing.T) {
	day := schedule.DaySchedule{
		Start: schedule.NewClockTime(8, 0),
		End:   schedule.NewClockTime(17, 0),
		Breaks: []schedule.BreakInterval{
			{Start: schedule.NewClockTime(12, 0), End: schedule.NewClockTime(13, 0)},
		},
	}

	// The reference scenario: in 07:45, out 17:30 → clamped to 08:00-17:00
	// minus the 1h break = 8.00.
	got := service.CalculateScheduleHours(at(7, 45), at(17, 30), day)
	if got.String() != "8" {
		t.Errorf("reference scenario = %s, want 8", got)
	}
}

func TestCalculateScheduleHoursBounds(t *testing.T) {
	day := schedule.DaySchedule{
		Start: schedule.NewClockTime(9, 0),
		End:   schedule.NewClockTime(18, 0),
		Breaks: []schedule.BreakInterval{
			{Start: schedule.NewClockTime(12, 30), End: schedule.NewClockTime(13, 30)},
		},
	}
	windowHours := 8.0 // 9h window minus 1h break

	// Exhaustive quarter-hour sweep: result stays in [0, window] and never
	// goes negative, even for inverted pairs.
	for inQ := 0; inQ < 24*4; inQ++ {
		for outQ := 0; outQ < 24*4; outQ++ {
			timeIn := at(inQ/4, (inQ%4)*15)
			timeOut := at(outQ/4, (outQ%4)*15)
			got, _ := service.CalculateScheduleHours(timeIn, timeOut, day).Float64()
			if got < 0 {
				t.Fatalf("negative hours for %s-%s: %v", timeIn.Format("15:04"), timeOut.Format("15:04"), got)
			}
			if got > windowHours {
				t.Fatalf("hours above window for %s-%s: %v", timeIn.Format("15:04"), timeOut.Format("15:04"), got)
			}
		}
	}
}

func TestClampingIdempotence(t *testing.T) {
	day := service.DefaultDaySchedule

	boundary := service.CalculateScheduleHours(at(7, 0), at(17, 0), day)
	extended := service.CalculateScheduleHours(at(4, 0), at(23, 45), day)
	if !boundary.Equal(extended) {
		t.Errorf("extending beyond the window changed hours: %s vs %s", boundary, extended)
	}

	partial := service.CalculateScheduleHours(at(7, 0), at(10, 30), day)
	earlier := service.CalculateScheduleHours(at(5, 15), at(10, 30), day)
	if !partial.Equal(earlier) {
		t.Errorf("earlier time-in before window start changed hours: %s vs %s", partial, earlier)
	}
}

func TestRoundingToTwoDecimals(t *testing.T) {
	// 100 seconds worked = 0.02777... hours → 0.03
	timeIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	timeOut := time.Date(2026, 3, 2, 9, 1, 40, 0, time.UTC)
	got := service.CalculateValidHours(timeIn, timeOut)
	if got.String() != "0.03" {
		t.Errorf("100s = %s, want 0.03", got)
	}
}
