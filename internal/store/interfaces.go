// Package store implements the client's durable offline state on SQLite:
// the ordered queue of pending write intents and the principal-scoped read
// cache of remote case records.
package store

import (
	"context"

	"github.com/vetward/vetward/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OperationQueueRepository is the durable, ordered log of pending write
// intents. Operation ids are assigned by the store at enqueue time and are
// unique within it; every query is scoped by principal.
//
// Storage-layer errors propagate to the caller unchanged; the queue never
// retries its own persistence.
type OperationQueueRepository interface {
	// Enqueue persists op (ignoring op.ID) and returns the assigned id.
	Enqueue(ctx context.Context, op models.QueuedOperation) (int64, error)

	// GetOperation loads a single operation by id. Returns
	// ErrOperationNotFound if it does not exist.
	GetOperation(ctx context.Context, id int64) (models.QueuedOperation, error)

	// GetPendingOperations returns all pending and failed operations for
	// the principal in insertion order. Succeeded operations are never
	// returned; they are expected to have been removed already, the filter
	// is defensive.
	GetPendingOperations(ctx context.Context, principal string) ([]models.QueuedOperation, error)

	// UpdateStatus sets the operation's status and error message. A no-op
	// (not an error) if the operation no longer exists.
	UpdateStatus(ctx context.Context, id int64, status models.OperationStatus, lastError string) error

	// Remove deletes the operation. Idempotent if already absent.
	Remove(ctx context.Context, id int64) error

	// ClearAll removes every pending and failed operation for the
	// principal. Discards unsynced work irrecoverably; callers confirm
	// with the user first.
	ClearAll(ctx context.Context, principal string) error
}

// CaseCacheRepository is the best-effort local mirror of remote reads,
// scoped by principal. It is advisory only: a successful remote read always
// supersedes it, and it is consulted only when a remote read fails for
// network reasons.
type CaseCacheRepository interface {
	// SaveList overwrites the cached case list for the principal.
	SaveList(ctx context.Context, principal string, cases []models.SurgeryCase) error

	// GetList returns the cached case list. Returns ErrCacheMiss if the
	// principal has no cached list.
	GetList(ctx context.Context, principal string) ([]models.SurgeryCase, error)

	// HasList reports whether a non-empty cached list exists. Used to
	// distinguish "genuinely no data" from "never loaded while online".
	HasList(ctx context.Context, principal string) (bool, error)

	// SaveDetail overwrites the cached detail record for (principal, case).
	SaveDetail(ctx context.Context, principal string, caseID int64, c models.SurgeryCase) error

	// GetDetail returns the cached detail record. Returns ErrCacheMiss if
	// absent.
	GetDetail(ctx context.Context, principal string, caseID int64) (models.SurgeryCase, error)

	// InvalidateList drops the cached list so the next read re-fetches
	// authoritative data.
	InvalidateList(ctx context.Context, principal string) error

	// InvalidateDetail drops one cached detail record.
	InvalidateDetail(ctx context.Context, principal string, caseID int64) error

	// ClearForPrincipal removes every cache entry owned by the principal.
	// Called at logout to prevent cross-identity data leakage.
	ClearForPrincipal(ctx context.Context, principal string) error

	// ClearAll removes every cache entry for every principal.
	ClearAll(ctx context.Context) error
}
