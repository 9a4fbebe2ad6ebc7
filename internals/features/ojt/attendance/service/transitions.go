package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ojtms_backend/internals/features/ojt/attendance/model"
	"ojtms_backend/internals/features/ojt/schedule"
)

// Transition guards for the daily attendance cycle. Each returns a
// *fiber.Error carrying the status code the handler should surface.

// EnsureOJTStarted gates time-in on an accepted application whose start
// date has been reached. Compares calendar dates: the start date scans
// back from a date column at UTC midnight while now is server-local, so
// instant comparison would reject the whole first day.
func EnsureOJTStarted(ojtStartDate *time.Time, today time.Time) error {
	if ojtStartDate == nil {
		return fiber.NewError(fiber.StatusBadRequest, "OJT start date not set")
	}
	if CalendarDate(today) < CalendarDate(*ojtStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "OJT has not started yet")
	}
	return nil
}

// EnsureWorkingDay enforces the write-time schedule policy: when the
// employer has a schedule and today has no entry, time-in is rejected.
func EnsureWorkingDay(ws schedule.WorkSchedule, now time.Time) error {
	if len(ws) == 0 {
		return nil
	}
	if _, ok := ws.DayFor(now); !ok {
		return fiber.NewError(fiber.StatusBadRequest,
			"Today ("+now.Weekday().String()+") is not a working day for this company")
	}
	return nil
}

// CanTimeIn rejects a second time-in on the same date.
func CanTimeIn(existing *model.TimeLogModel) error {
	if existing != nil && existing.TimelogTimeIn != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Already timed in today")
	}
	return nil
}

// CanTimeOut requires a prior time-in and no prior time-out.
func CanTimeOut(log *model.TimeLogModel) error {
	if log == nil {
		return fiber.NewError(fiber.StatusBadRequest, "No time in record found for today")
	}
	if log.TimelogTimeIn == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please time in first")
	}
	if log.TimelogTimeOut != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Already timed out today")
	}
	return nil
}

// CanSubmit requires a full clock cycle plus non-empty narrative text.
func CanSubmit(log *model.TimeLogModel, tasks, accomplishments string) error {
	if log == nil {
		return fiber.NewError(fiber.StatusBadRequest, "No record found for today")
	}
	if log.TimelogTimeIn == nil || log.TimelogTimeOut == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please complete time-in and time-out before submitting")
	}
	if strings.TrimSpace(tasks) == "" || strings.TrimSpace(accomplishments) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please fill in both task and accomplishment before submitting")
	}
	if log.TimelogWorkflowStatus == model.WorkflowSubmitted {
		return fiber.NewError(fiber.StatusBadRequest, "Today's record has already been submitted")
	}
	return nil
}

// DateOnly truncates a timestamp to its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalendarDate renders the wall-clock date of t in its own location.
// ISO dates compare correctly as strings, which sidesteps the location
// mismatch between date columns and server-local clocks.
func CalendarDate(t time.Time) string {
	return t.Format("2006-01-02")
}
