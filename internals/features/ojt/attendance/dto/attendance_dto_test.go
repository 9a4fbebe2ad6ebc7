package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ojtms_backend/internals/features/ojt/attendance/model"
)

func TestToTimeLogResponse(t *testing.T) {
	in := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)
	tasks := "Built the report module"
	notes := "Finished the export endpoint"

	log := model.TimeLogModel{
		TimelogID:             uuid.New(),
		TimelogStudentID:      uuid.New(),
		TimelogDate:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TimelogTimeIn:         &in,
		TimelogTimeOut:        &out,
		TimelogTotalHours:     decimal.NewNullDecimal(decimal.NewFromFloat(8)),
		TimelogStatus:         model.StatusComplete,
		TimelogWorkflowStatus: model.WorkflowSubmitted,
	}
	acc := model.DailyAccomplishmentModel{
		AccomplishmentLogID: log.TimelogID,
		AccomplishmentTasks: &tasks,
		AccomplishmentNotes: &notes,
	}

	resp := ToTimeLogResponse(&log, &acc, "Monday is not a working day")

	assert.Equal(t, "2026-03-02", resp.Date)
	if assert.NotNil(t, resp.TotalHours) {
		assert.Equal(t, "8.00", *resp.TotalHours)
	}
	assert.Equal(t, &tasks, resp.Tasks)
	assert.Equal(t, &notes, resp.Accomplishments)
	assert.Equal(t, "Monday is not a working day", resp.Warning)
}

func TestToTimeLogResponseOpenLog(t *testing.T) {
	log := model.TimeLogModel{
		TimelogID:        uuid.New(),
		TimelogStudentID: uuid.New(),
		TimelogDate:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TimelogStatus:    model.StatusIncomplete,
	}

	resp := ToTimeLogResponse(&log, nil, "")

	assert.Nil(t, resp.TimeIn)
	assert.Nil(t, resp.TotalHours)
	assert.Nil(t, resp.Tasks)
	assert.Empty(t, resp.Warning)
}
