package service

import (
	"time"

	"github.com/shopspring/decimal"

	"ojtms_backend/internals/features/ojt/schedule"
)

// DefaultDaySchedule is the fixed valid window used when the employer has
// no configured schedule: 07:00-12:00 and 13:00-17:00 (lunch excluded).
var DefaultDaySchedule = schedule.DaySchedule{
	Start: schedule.NewClockTime(7, 0),
	End:   schedule.NewClockTime(17, 0),
	Breaks: []schedule.BreakInterval{
		{Start: schedule.NewClockTime(12, 0), End: schedule.NewClockTime(13, 0)},
	},
}

var secondsPerHour = decimal.NewFromInt(3600)

// CalculateValidHours computes worked hours between timeIn and timeOut
// inside the fixed default window.
func CalculateValidHours(timeIn, timeOut time.Time) decimal.Decimal {
	return CalculateScheduleHours(timeIn, timeOut, DefaultDaySchedule)
}

// CalculateScheduleHours computes worked hours inside one day's working
// window, excluding breaks and any time outside [start, end]. Pure: clamps
// timeIn up to the window start and timeOut down to the window end, sums
// the overlap with each sub-session, and rounds to 2 decimals.
func CalculateScheduleHours(timeIn, timeOut time.Time, day schedule.DaySchedule) decimal.Decimal {
	inSec := schedule.SecondsOfDay(timeIn)
	outSec := schedule.SecondsOfDay(timeOut)

	if startSec := day.Start.Seconds(); inSec < startSec {
		inSec = startSec
	}
	if endSec := day.End.Seconds(); outSec > endSec {
		outSec = endSec
	}

	totalSeconds := 0
	for _, sess := range day.Sessions() {
		lo := max(inSec, sess.Start.Seconds())
		hi := min(outSec, sess.End.Seconds())
		if hi > lo {
			totalSeconds += hi - lo
		}
	}

	return decimal.NewFromInt(int64(totalSeconds)).Div(secondsPerHour).Round(2)
}
