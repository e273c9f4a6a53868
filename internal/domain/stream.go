package domain

import "github.com/google/uuid"

// Stream names (must match the publishers).
const (
	StreamFlagRefresh = "stream:flag:refresh"
	StreamFlagDone    = "stream:flag:done"
)

// FlagRefreshEvent asks the worker to update an entity's flag from a URL.
// The lock rule still applies on the consumer side: a locked flag gets a
// fresh row instead of an overwrite.
type FlagRefreshEvent struct {
	JobID     uuid.UUID `json:"job_id"`
	EntityID  int64     `json:"entity_id"`
	SourceURL string    `json:"source_url"`
}

// FlagDoneEvent reports the outcome of a refresh job.
type FlagDoneEvent struct {
	JobID    uuid.UUID `json:"job_id"`
	EntityID int64     `json:"entity_id"`
	FlagID   int64     `json:"flag_id,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// StreamMessage is a raw message read from a stream consumer group.
type StreamMessage struct {
	ID   string
	Data []byte
}
