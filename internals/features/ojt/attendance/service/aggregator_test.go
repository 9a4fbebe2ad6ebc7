package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ojtms_backend/internals/features/ojt/attendance/model"
	"ojtms_backend/internals/features/ojt/attendance/service"
)

func completeLog(timeIn, timeOut time.Time, hours string) model.TimeLogModel {
	l := logAt(timeIn, timeOut)
	l.TimelogTotalHours = decimal.NullDecimal{Decimal: decimal.RequireFromString(hours), Valid: true}
	return l
}

func TestSummarizeExcludesFlaggedLogs(t *testing.T) {
	ws := mondayOnlySchedule()
	monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)

	logs := []model.TimeLogModel{
		completeLog(monday, monday.Add(9*time.Hour), "8.00"),
		// non-working day: flagged, contributes nothing
		completeLog(tuesday, tuesday.Add(9*time.Hour), "8.00"),
	}

	sum := service.Summarize(logs, ws)
	assert.Equal(t, "8", sum.TotalHours.String())
	assert.Equal(t, 1, sum.ValidDays)
	assert.Equal(t, 1, sum.InvalidLogs)
}

func TestSummarizeSkipsIncompleteLogs(t *testing.T) {
	monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	open := model.TimeLogModel{
		TimelogTimeIn: &monday,
		TimelogStatus: model.StatusIncomplete,
	}

	sum := service.Summarize([]model.TimeLogModel{open}, mondayOnlySchedule())
	assert.True(t, sum.TotalHours.IsZero())
	assert.Equal(t, 0, sum.ValidDays)
	assert.Equal(t, 0, sum.InvalidLogs)
}

func TestSummarizePerDayRounding(t *testing.T) {
	// Each day stores its own 2-dp value; the aggregate is their exact sum.
	ws := mondayOnlySchedule()
	monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	nextMonday := monday.AddDate(0, 0, 7)
	third := monday.AddDate(0, 0, 14)

	logs := []model.TimeLogModel{
		completeLog(monday, monday.Add(time.Hour), "0.03"),
		completeLog(nextMonday, nextMonday.Add(time.Hour), "0.03"),
		completeLog(third, third.Add(time.Hour), "0.03"),
	}

	sum := service.Summarize(logs, ws)
	require.Equal(t, "0.09", sum.TotalHours.String())
	assert.Equal(t, 3, sum.ValidDays)
}

func TestSummarizeWithoutScheduleCountsEverything(t *testing.T) {
	monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	logs := []model.TimeLogModel{
		completeLog(monday, monday.Add(9*time.Hour), "8.00"),
		completeLog(sunday, sunday.Add(9*time.Hour), "8.00"),
	}

	// no schedule → no constraint, both logs count
	sum := service.Summarize(logs, nil)
	assert.Equal(t, "16", sum.TotalHours.String())
	assert.Equal(t, 2, sum.ValidDays)
	assert.Equal(t, 0, sum.InvalidLogs)
}

func TestDeriveOJTStatus(t *testing.T) {
	tests := []struct {
		name     string
		started  bool
		total    string
		required int
		want     string
	}{
		{"not started", false, "0", 486, service.OJTNotStarted},
		{"not started even with hours", false, "100", 486, service.OJTNotStarted},
		{"ongoing at zero", true, "0", 486, service.OJTOngoing},
		{"ongoing just below target", true, "485.99", 486, service.OJTOngoing},
		{"completed at target", true, "486", 486, service.OJTCompleted},
		{"completed above target", true, "500.25", 486, service.OJTCompleted},
		{"zero required falls back to default", true, "486", 0, service.OJTCompleted},
		{"custom required", true, "240", 240, service.OJTCompleted},
	}
	for _, tt := range tests {
		got := service.DeriveOJTStatus(tt.started, decimal.RequireFromString(tt.total), tt.required)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
