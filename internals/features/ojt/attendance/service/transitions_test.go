package service_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ojtms_backend/internals/features/ojt/attendance/model"
	"ojtms_backend/internals/features/ojt/attendance/service"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T", err)
	return fe.Code
}

func TestEnsureOJTStarted(t *testing.T) {
	today := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	err := service.EnsureOJTStarted(nil, today)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	future := today.AddDate(0, 0, 3)
	err = service.EnsureOJTStarted(&future, today)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not started")

	// start date today counts as started, regardless of clock time
	sameDayLater := time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)
	assert.NoError(t, service.EnsureOJTStarted(&sameDayLater, today))

	past := today.AddDate(0, -1, 0)
	assert.NoError(t, service.EnsureOJTStarted(&past, today))
}

// The start date is stored in a date column and scans back at UTC
// midnight, while now carries the server's location. The first day must
// still count as started even though local midnight precedes UTC midnight.
func TestEnsureOJTStartedAcrossLocations(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	morning := time.Date(2026, 3, 2, 10, 0, 0, 0, manila)
	assert.NoError(t, service.EnsureOJTStarted(&start, morning))

	// local midnight on the start date, the earliest possible clock-in
	midnight := time.Date(2026, 3, 2, 0, 0, 0, 0, manila)
	assert.NoError(t, service.EnsureOJTStarted(&start, midnight))

	// the local day before still has to be rejected
	dayBefore := time.Date(2026, 3, 1, 23, 59, 0, 0, manila)
	err := service.EnsureOJTStarted(&start, dayBefore)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not started")
}

func TestCalendarDate(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)

	utcMidnight := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	localEvening := time.Date(2026, 3, 2, 23, 0, 0, 0, manila)

	assert.Equal(t, "2026-03-02", service.CalendarDate(utcMidnight))
	assert.Equal(t, service.CalendarDate(utcMidnight), service.CalendarDate(localEvening))
}

func TestEnsureWorkingDay(t *testing.T) {
	ws := mondayOnlySchedule()
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)

	assert.NoError(t, service.EnsureWorkingDay(ws, monday))

	err := service.EnsureWorkingDay(ws, tuesday)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tuesday")
	assert.Contains(t, err.Error(), "not a working day")

	// no schedule → no constraint
	assert.NoError(t, service.EnsureWorkingDay(nil, tuesday))
}

func TestCanTimeIn(t *testing.T) {
	assert.NoError(t, service.CanTimeIn(nil))

	now := time.Now()
	withTimeIn := &model.TimeLogModel{TimelogTimeIn: &now}
	err := service.CanTimeIn(withTimeIn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Already timed in")

	// row exists but time-in was cleared by a supervisor edit
	empty := &model.TimeLogModel{}
	assert.NoError(t, service.CanTimeIn(empty))
}

func TestCanTimeOut(t *testing.T) {
	now := time.Now()

	err := service.CanTimeOut(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No time in record")

	err = service.CanTimeOut(&model.TimeLogModel{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time in first")

	err = service.CanTimeOut(&model.TimeLogModel{TimelogTimeIn: &now, TimelogTimeOut: &now})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Already timed out")

	assert.NoError(t, service.CanTimeOut(&model.TimeLogModel{TimelogTimeIn: &now}))
}

func TestCanSubmit(t *testing.T) {
	now := time.Now()
	full := &model.TimeLogModel{TimelogTimeIn: &now, TimelogTimeOut: &now, TimelogWorkflowStatus: model.WorkflowDraft}

	assert.NoError(t, service.CanSubmit(full, "built the report", "report done"))

	err := service.CanSubmit(full, "  ", "report done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task and accomplishment")

	err = service.CanSubmit(&model.TimeLogModel{TimelogTimeIn: &now}, "t", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time-in and time-out")

	submitted := &model.TimeLogModel{TimelogTimeIn: &now, TimelogTimeOut: &now, TimelogWorkflowStatus: model.WorkflowSubmitted}
	err = service.CanSubmit(submitted, "t", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already been submitted")
}
