package models

import "time"

// OperationType is the discriminator of a queued write intent. The set of
// variants is closed; the sync engine dispatches replay through an explicit
// table keyed by this type.
type OperationType string

const (
	OpCreateCase  OperationType = "create_case"
	OpUpdateCase  OperationType = "update_case"
	OpDeleteCase  OperationType = "delete_case"
	OpToggleField OperationType = "toggle_field"
	OpAddTodo     OperationType = "add_todo"
	OpToggleTodo  OperationType = "toggle_todo"
	OpDeleteTodo  OperationType = "delete_todo"
)

// OperationStatus is the lifecycle state of a queued operation.
type OperationStatus string

const (
	// StatusPending marks an operation waiting for its first replay.
	StatusPending OperationStatus = "pending"

	// StatusFailed marks an operation whose replay failed; it stays in
	// the queue for manual retry or the next drain pass.
	StatusFailed OperationStatus = "failed"

	// StatusSucceeded marks a replayed operation. Succeeded operations
	// are removed from the queue immediately; the status exists so the
	// transition is observable between the mark and the removal.
	StatusSucceeded OperationStatus = "succeeded"
)

// OperationPayload carries the type-specific arguments of a queued
// operation. Only the fields relevant to the variant are set.
type OperationPayload struct {
	// TempID is the temporary client-side case id assigned to an
	// optimistic create (negative). Set for create_case only.
	TempID int64 `json:"temp_id,omitempty"`

	// CaseID targets an existing case. Set for every variant except
	// create_case. May be negative when the target is a not-yet-synced
	// optimistic create.
	CaseID int64 `json:"case_id,omitempty"`

	// Case is the full record payload for create_case and the merged
	// fields for update_case.
	Case *SurgeryCase `json:"case,omitempty"`

	// Field selects the checklist flag for toggle_field.
	Field CaseField `json:"field,omitempty"`

	// TodoID targets a to-do item for toggle_todo and delete_todo.
	TodoID int64 `json:"todo_id,omitempty"`

	// TodoText is the new item's text for add_todo.
	TodoText string `json:"todo_text,omitempty"`
}

// QueuedOperation is one pending write intent in the durable queue.
type QueuedOperation struct {
	// ID is assigned by the queue store at enqueue time and is unique
	// within the store. Zero until persisted.
	ID int64 `json:"id"`

	// Principal is the owning identity. Always set; every queue query is
	// scoped by it.
	Principal string `json:"principal"`

	Type      OperationType    `json:"type"`
	Status    OperationStatus  `json:"status"`
	LastError string           `json:"last_error,omitempty"`
	Payload   OperationPayload `json:"payload"`
	CreatedAt time.Time        `json:"created_at"`
}

// SyncReport aggregates the outcome of one drain pass.
type SyncReport struct {
	// Synced counts operations replayed successfully and removed.
	Synced int `json:"synced"`

	// Failed counts operations that failed replay and remain queued.
	Failed int `json:"failed"`
}
