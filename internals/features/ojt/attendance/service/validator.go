package service

import (
	"fmt"
	"time"

	"ojtms_backend/internals/features/ojt/attendance/model"
	"ojtms_backend/internals/features/ojt/schedule"
)

// ClassifyLog checks a stored log against the employer's schedule and
// returns a human-readable warning, or "" when the log is clean. It never
// blocks persistence; flagged logs are excluded from aggregate totals.
func ClassifyLog(log model.TimeLogModel, ws schedule.WorkSchedule) string {
	if len(ws) == 0 || log.TimelogTimeIn == nil {
		return ""
	}

	timeIn := *log.TimelogTimeIn
	day, ok := ws.DayFor(timeIn)
	if !ok {
		return fmt.Sprintf("%s is not a working day", timeIn.Weekday())
	}

	if log.TimelogTimeOut == nil {
		return ""
	}
	timeOut := *log.TimelogTimeOut

	inClock := schedule.ClockTimeOf(timeIn)
	outClock := schedule.ClockTimeOf(timeOut)

	switch {
	case outClock < day.Start:
		return fmt.Sprintf("Time-out before work hours (starts at %s)", day.Start)
	case inClock > day.End:
		return fmt.Sprintf("Time-in after work hours (ends at %s)", day.End)
	case sameInstant(timeIn, timeOut):
		return "Time-in and time-out are the same"
	}
	return ""
}

func sameInstant(a, b time.Time) bool {
	return schedule.SecondsOfDay(a) == schedule.SecondsOfDay(b)
}
