package dto

import (
	"time"

	"github.com/google/uuid"
)

// AuditMessage is the payload carried on the in-process audit topic. One
// message per file-lifecycle or generation action.
type AuditMessage struct {
	Action     string    `json:"action"`
	FileId     uuid.UUID `json:"file_id"`
	Filename   string    `json:"filename,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
