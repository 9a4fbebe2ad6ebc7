package schedule_test

import (
	"testing"
	"time"

	"ojtms_backend/internals/features/ojt/schedule"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    schedule.ClockTime
		wantErr bool
	}{
		{"08:00", schedule.NewClockTime(8, 0), false},
		{"17:30", schedule.NewClockTime(17, 30), false},
		{"07:00:00", schedule.NewClockTime(7, 0), false},
		{" 09:15 ", schedule.NewClockTime(9, 15), false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := schedule.ParseClockTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClockTime(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClockTime(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClockTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSessionsSplitsAroundBreaks(t *testing.T) {
	day := schedule.DaySchedule{
		Start: schedule.NewClockTime(8, 0),
		End:   schedule.NewClockTime(17, 0),
		Breaks: []schedule.BreakInterval{
			{Start: schedule.NewClockTime(12, 0), End: schedule.NewClockTime(13, 0)},
		},
	}

	sessions := day.Sessions()
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Start != schedule.NewClockTime(8, 0) || sessions[0].End != schedule.NewClockTime(12, 0) {
		t.Errorf("morning session = %s-%s", sessions[0].Start, sessions[0].End)
	}
	if sessions[1].Start != schedule.NewClockTime(13, 0) || sessions[1].End != schedule.NewClockTime(17, 0) {
		t.Errorf("afternoon session = %s-%s", sessions[1].Start, sessions[1].End)
	}
	if day.Duration() != 8*time.Hour {
		t.Errorf("Duration = %v, want 8h", day.Duration())
	}
}

func TestSessionsWithoutBreaks(t *testing.T) {
	day := schedule.DaySchedule{
		Start: schedule.NewClockTime(9, 0),
		End:   schedule.NewClockTime(18, 0),
	}
	sessions := day.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if day.Duration() != 9*time.Hour {
		t.Errorf("Duration = %v, want 9h", day.Duration())
	}
}

func TestValidateInvariants(t *testing.T) {
	tests := []struct {
		name    string
		ws      schedule.WorkSchedule
		wantErr bool
	}{
		{
			"valid week",
			schedule.WorkSchedule{
				"Monday": {
					Start: schedule.NewClockTime(8, 0),
					End:   schedule.NewClockTime(17, 0),
					Breaks: []schedule.BreakInterval{
						{Start: schedule.NewClockTime(12, 0), End: schedule.NewClockTime(13, 0)},
					},
				},
			},
			false,
		},
		{
			"start after end",
			schedule.WorkSchedule{
				"Monday": {Start: schedule.NewClockTime(17, 0), End: schedule.NewClockTime(8, 0)},
			},
			true,
		},
		{
			"break outside window",
			schedule.WorkSchedule{
				"Monday": {
					Start: schedule.NewClockTime(8, 0),
					End:   schedule.NewClockTime(12, 0),
					Breaks: []schedule.BreakInterval{
						{Start: schedule.NewClockTime(13, 0), End: schedule.NewClockTime(14, 0)},
					},
				},
			},
			true,
		},
		{
			"overlapping breaks",
			schedule.WorkSchedule{
				"Monday": {
					Start: schedule.NewClockTime(8, 0),
					End:   schedule.NewClockTime(17, 0),
					Breaks: []schedule.BreakInterval{
						{Start: schedule.NewClockTime(10, 0), End: schedule.NewClockTime(11, 0)},
						{Start: schedule.NewClockTime(10, 30), End: schedule.NewClockTime(12, 0)},
					},
				},
			},
			true,
		},
		{
			"unknown weekday key",
			schedule.WorkSchedule{
				"Funday": {Start: schedule.NewClockTime(8, 0), End: schedule.NewClockTime(17, 0)},
			},
			true,
		},
	}
	for _, tt := range tests {
		err := tt.ws.Validate()
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	raw := []byte(`{"Monday": {"start": "08:00", "end": "17:00", "breaks": [{"start": "12:00", "end": "13:00"}]}}`)
	ws, err := schedule.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	day, ok := ws["Monday"]
	if !ok {
		t.Fatal("Monday missing")
	}
	if day.Start.String() != "08:00" || day.End.String() != "17:00" {
		t.Errorf("window = %s-%s", day.Start, day.End)
	}
	if len(day.Breaks) != 1 || day.Breaks[0].Start.String() != "12:00" {
		t.Errorf("breaks = %v", day.Breaks)
	}

	// absent weekday is a non-working day
	tuesday := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC) // a Tuesday
	if _, ok := ws.DayFor(tuesday); ok {
		t.Error("Tuesday should not be a working day")
	}
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if _, ok := ws.DayFor(monday); !ok {
		t.Error("Monday should be a working day")
	}
}

func TestParseLenientMalformed(t *testing.T) {
	if ws := schedule.ParseLenient([]byte(`{not json`)); ws != nil {
		t.Errorf("malformed JSON should yield nil schedule, got %v", ws)
	}
	if ws := schedule.ParseLenient(nil); ws != nil {
		t.Errorf("empty blob should yield nil schedule, got %v", ws)
	}
	// invalid invariants are also soft-failed on read
	if ws := schedule.ParseLenient([]byte(`{"Monday": {"start": "17:00", "end": "08:00"}}`)); ws != nil {
		t.Errorf("invariant-violating schedule should yield nil, got %v", ws)
	}
}
