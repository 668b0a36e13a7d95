package domain

import (
	"time"

	"github.com/google/uuid"
)

type Vote struct {
	ID         uuid.UUID `json:"id"`
	VoterID    string    `json:"voter_id"`
	EditionID  string    `json:"edition_id"`
	CategoryID string    `json:"category_id"`
	NomineeID  string    `json:"nominee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// InsertOutcome is the result of a conditional vote insert.
type InsertOutcome int

const (
	InsertAccepted InsertOutcome = iota
	InsertConflict
	InsertFailed
)

func (o InsertOutcome) String() string {
	switch o {
	case InsertAccepted:
		return "accepted"
	case InsertConflict:
		return "conflict"
	default:
		return "failed"
	}
}
