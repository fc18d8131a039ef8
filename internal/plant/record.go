package plant

import (
	"encoding/json"
	"fmt"
	"time"
)

// RecordKey is the storage key the plant record is persisted under.
const RecordKey = "plantData"

// DateLayout formats calendar days; only the date part of a time matters.
const DateLayout = "2006-01-02"

// Record is the persisted shape of the plant. Field names are part of the
// on-disk format.
type Record struct {
	Hydration           float64 `json:"hydration"`
	HydrationTimestamp  int64   `json:"hydrationTimestamp"` // epoch milliseconds
	TasksCompletedToday int     `json:"tasksCompletedToday"`
	DailyGoalMet        bool    `json:"dailyGoalMet"`
	Streak              int     `json:"streak"`
	LastSaveDate        string  `json:"lastSaveDate"`
	LastCompletionDate  string  `json:"lastCompletionDate,omitempty"`
}

// DateKey returns the calendar day of t in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DecodeRecord parses persisted bytes. Empty input is a zero Record with no
// error. On malformed input the zero Record is returned together with the
// parse error so callers can log it; the Record is always usable.
func DecodeRecord(data []byte) (Record, error) {
	if len(data) == 0 {
		return Record{}, nil
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode plant record: %w", err)
	}
	return rec, nil
}

func (r Record) Encode() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode plant record: %w", err)
	}
	return data, nil
}

// Snapshot builds the record to persist for st at now. The previous
// record's completion date is carried over unless this save is the one that
// completes the goal.
func Snapshot(st State, now time.Time, prev Record, goalJustCompleted bool) Record {
	today := DateKey(now)
	rec := Record{
		Hydration:           clampHydration(st.Hydration),
		HydrationTimestamp:  now.UnixMilli(),
		TasksCompletedToday: clampTasks(st.TasksCompletedToday),
		DailyGoalMet:        st.DailyGoalMet,
		Streak:              max(0, st.Streak),
		LastSaveDate:        today,
		LastCompletionDate:  prev.LastCompletionDate,
	}
	if goalJustCompleted {
		rec.LastCompletionDate = today
	}
	return rec
}
