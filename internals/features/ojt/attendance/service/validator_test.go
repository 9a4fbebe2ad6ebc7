package service_test

import (
	"testing"
	"time"

	"ojtms_backend/internals/features/ojt/attendance/model"
	"ojtms_backend/internals/features/ojt/attendance/service"
	"ojtms_backend/internals/features/ojt/schedule"
)

func mondayOnlySchedule() schedule.WorkSchedule {
	return schedule.WorkSchedule{
		"Monday": {
			Start: schedule.NewClockTime(8, 0),
			End:   schedule.NewClockTime(17, 0),
			Breaks: []schedule.BreakInterval{
				{Start: schedule.NewClockTime(12, 0), End: schedule.NewClockTime(13, 0)},
			},
		},
	}
}

func logAt(timeIn, timeOut time.Time) model.TimeLogModel {
	return model.TimeLogModel{
		TimelogDate:    service.DateOnly(timeIn),
		TimelogTimeIn:  &timeIn,
		TimelogTimeOut: &timeOut,
		TimelogStatus:  model.StatusComplete,
	}
}

func TestClassifyLog(t *testing.T) {
	ws := mondayOnlySchedule()
	monday := func(h, m int) time.Time { return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC) }
	tuesday := func(h, m int) time.Time { return time.Date(2026, 3, 3, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name string
		log  model.TimeLogModel
		want string
	}{
		{"clean log", logAt(monday(8, 0), monday(17, 0)), ""},
		{"non-working day", logAt(tuesday(8, 0), tuesday(17, 0)), "Tuesday is not a working day"},
		{"time-out before work hours", logAt(monday(5, 0), monday(6, 30)), "Time-out before work hours (starts at 08:00)"},
		{"time-in after work hours", logAt(monday(18, 0), monday(19, 0)), "Time-in after work hours (ends at 17:00)"},
		{"identical in and out", logAt(monday(9, 0), monday(9, 0)), "Time-in and time-out are the same"},
	}
	for _, tt := range tests {
		if got := service.ClassifyLog(tt.log, ws); got != tt.want {
			t.Errorf("%s: ClassifyLog = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestClassifyLogNoSchedule(t *testing.T) {
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	log := logAt(monday, monday) // identical, but with no schedule nothing is checked
	if got := service.ClassifyLog(log, nil); got != "" {
		t.Errorf("ClassifyLog without schedule = %q, want no warning", got)
	}
}

func TestClassifyLogOpenLog(t *testing.T) {
	// still clocked in: only the working-day check can apply
	tuesday := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	log := model.TimeLogModel{TimelogTimeIn: &tuesday}
	if got := service.ClassifyLog(log, mondayOnlySchedule()); got != "Tuesday is not a working day" {
		t.Errorf("ClassifyLog open log = %q", got)
	}

	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	log = model.TimeLogModel{TimelogTimeIn: &monday}
	if got := service.ClassifyLog(log, mondayOnlySchedule()); got != "" {
		t.Errorf("ClassifyLog open working-day log = %q, want none", got)
	}
}
