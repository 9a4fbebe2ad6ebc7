package schedule

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a time of day in minutes since midnight. It marshals as
// "HH:MM", the format the employer profile stores.
type ClockTime int

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// ParseClockTime parses "HH:MM" (also tolerates "HH:MM:SS").
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return NewClockTime(hh, mm), nil
}

func (t ClockTime) Hour() int    { return int(t) / 60 }
func (t ClockTime) Minute() int  { return int(t) % 60 }
func (t ClockTime) Seconds() int { return int(t) * 60 }

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ClockTimeOf projects a timestamp onto its time of day, truncated to the
// minute like the stored schedule boundaries.
func ClockTimeOf(t time.Time) ClockTime {
	return NewClockTime(t.Hour(), t.Minute())
}

// SecondsOfDay keeps full second precision for hour computation.
func SecondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// BreakInterval is a pause inside a working day, e.g. lunch.
type BreakInterval struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

// DaySchedule is one weekday's working window plus its breaks.
type DaySchedule struct {
	Start  ClockTime       `json:"start"`
	End    ClockTime       `json:"end"`
	Breaks []BreakInterval `json:"breaks,omitempty"`
}

// Sessions splits the working window into the sub-sessions left after
// removing breaks, in order.
func (d DaySchedule) Sessions() []BreakInterval {
	sessions := make([]BreakInterval, 0, len(d.Breaks)+1)
	cursor := d.Start
	for _, br := range d.Breaks {
		if br.Start > cursor {
			sessions = append(sessions, BreakInterval{Start: cursor, End: br.Start})
		}
		if br.End > cursor {
			cursor = br.End
		}
	}
	if d.End > cursor {
		sessions = append(sessions, BreakInterval{Start: cursor, End: d.End})
	}
	return sessions
}

// Duration is the working time of the day net of breaks.
func (d DaySchedule) Duration() time.Duration {
	total := 0
	for _, s := range d.Sessions() {
		total += int(s.End - s.Start)
	}
	return time.Duration(total) * time.Minute
}

func (d DaySchedule) validate(day string) error {
	if d.Start >= d.End {
		return fmt.Errorf("%s: start %s must be before end %s", day, d.Start, d.End)
	}
	prevEnd := d.Start
	for i, br := range d.Breaks {
		if br.Start >= br.End {
			return fmt.Errorf("%s: break %d start %s must be before end %s", day, i+1, br.Start, br.End)
		}
		if br.Start < d.Start || br.End > d.End {
			return fmt.Errorf("%s: break %d (%s-%s) outside working window", day, i+1, br.Start, br.End)
		}
		if br.Start < prevEnd {
			return fmt.Errorf("%s: break %d overlaps the previous break", day, i+1)
		}
		prevEnd = br.End
	}
	return nil
}

// WorkSchedule maps weekday name ("Monday", ...) to that day's window.
// A weekday absent from the map is a non-working day.
type WorkSchedule map[string]DaySchedule

var weekdayNames = map[string]struct{}{
	"Monday": {}, "Tuesday": {}, "Wednesday": {}, "Thursday": {},
	"Friday": {}, "Saturday": {}, "Sunday": {},
}

// Validate enforces the schedule invariants: known weekday keys,
// start < end, breaks inside the window and non-overlapping.
func (ws WorkSchedule) Validate() error {
	for day, d := range ws {
		if _, ok := weekdayNames[day]; !ok {
			return fmt.Errorf("unknown weekday %q", day)
		}
		if err := d.validate(day); err != nil {
			return err
		}
	}
	return nil
}

// DayFor looks up the entry for the weekday of t.
func (ws WorkSchedule) DayFor(t time.Time) (DaySchedule, bool) {
	d, ok := ws[t.Weekday().String()]
	return d, ok
}

// Parse decodes and validates a stored schedule blob. Used at the employer
// profile boundary where malformed input must be rejected.
func Parse(raw []byte) (WorkSchedule, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ws WorkSchedule
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, fmt.Errorf("parse work schedule: %w", err)
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}
	return ws, nil
}

// ParseLenient decodes a stored blob, treating malformed JSON as "no
// schedule constraint". Old rows may predate boundary validation; they are
// logged and skipped, never surfaced to callers.
func ParseLenient(raw []byte) WorkSchedule {
	if len(raw) == 0 {
		return nil
	}
	ws, err := Parse(raw)
	if err != nil {
		log.Printf("[WARNING] ignoring malformed work_schedule: %v", err)
		return nil
	}
	return ws
}
