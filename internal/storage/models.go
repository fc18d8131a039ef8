package storage

import "time"

type Record struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

type TaskCompletion struct {
	ID          string
	SessionID   string
	Label       string
	CompletedAt time.Time
	GoalMet     bool
}
