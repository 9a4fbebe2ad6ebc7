package service

import (
	"github.com/shopspring/decimal"

	"ojtms_backend/internals/features/ojt/attendance/model"
	"ojtms_backend/internals/features/ojt/schedule"
)

// OJT lifecycle statuses derived from aggregated hours.
const (
	OJTNotStarted = "Not Started"
	OJTOngoing    = "Ongoing"
	OJTCompleted  = "Completed"
)

// DefaultRequiredHours is the program-wide target when a student row has no
// override.
const DefaultRequiredHours = 486

// LogSummary is the aggregate over a student's completed logs. Each day's
// hours are already rounded to 2 decimals when stored, so TotalHours needs
// no re-rounding and matches any per-day recomputation.
type LogSummary struct {
	TotalHours  decimal.Decimal
	ValidDays   int
	InvalidLogs int
}

// Summarize sums valid hours across status-complete logs. Logs the
// validator flags are excluded from both the total and the valid-day
// count, the same policy the per-log endpoints apply.
func Summarize(logs []model.TimeLogModel, ws schedule.WorkSchedule) LogSummary {
	sum := LogSummary{TotalHours: decimal.Zero}
	for _, l := range logs {
		if l.TimelogStatus != model.StatusComplete {
			continue
		}
		if warning := ClassifyLog(l, ws); warning != "" {
			sum.InvalidLogs++
			continue
		}
		sum.TotalHours = sum.TotalHours.Add(l.HoursOrZero())
		sum.ValidDays++
	}
	return sum
}

// DeriveOJTStatus maps aggregated hours onto the lifecycle. started is
// whether an accepted application with a reached start date exists.
func DeriveOJTStatus(started bool, total decimal.Decimal, requiredHours int) string {
	if !started {
		return OJTNotStarted
	}
	if requiredHours <= 0 {
		requiredHours = DefaultRequiredHours
	}
	if total.GreaterThanOrEqual(decimal.NewFromInt(int64(requiredHours))) {
		return OJTCompleted
	}
	return OJTOngoing
}
