package storage

import "time"

// PlayerState is the serialized player blob for one player key.
type PlayerState struct {
	Key       string
	Data      []byte
	UpdatedAt time.Time
}

// CheckInLogEntry is one row of the append-only audit trail of processed check-ins.
type CheckInLogEntry struct {
	ID int64
	// SubmissionID identifies one processed submission across exports.
	SubmissionID string
	PlayerKey    string
	Date         string
	Score        int
	Grade        string
	XPAwarded    int
	Level        int
	RecordedAt   time.Time
}
