// internal/model/change_event.go
package model

import "time"

type ChangeAction string

const (
	ActionCreate ChangeAction = "create"
	ActionUpdate ChangeAction = "update"
	ActionDelete ChangeAction = "delete"
	ActionReset  ChangeAction = "reset"
)

// ChangeEvent is published after every successful mutation.
type ChangeEvent struct {
	EventID    string       `json:"event_id"`
	Entity     Entity       `json:"entity,omitempty"`
	RecordID   int64        `json:"record_id,omitempty"`
	Action     ChangeAction `json:"action"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// Activity is a recorded change event.
type Activity struct {
	ID         int64        `json:"id"`
	EventID    string       `json:"event_id"`
	Entity     Entity       `json:"entity"`
	RecordID   int64        `json:"record_id"`
	Action     ChangeAction `json:"action"`
	Summary    string       `json:"summary"`
	OccurredAt time.Time    `json:"occurred_at"`
}
