package service

import (
	"context"
	"time"

	"github.com/vetward/vetward/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientCaseService is the application-facing surface for reading and
// mutating surgery cases. Every write attempts the remote call first; when
// the call fails for connectivity reasons the write intent is queued for
// replay and the cached read state is mutated optimistically, so the
// operation appears to succeed. Non-network rejections propagate unchanged
// and are never queued.
type ClientCaseService interface {
	// Login authenticates against the remote service and scopes all
	// subsequent queue/cache access to the returned principal.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Logout clears the principal's cached data and drops the session.
	// Queued operations are kept so unsynced work survives a re-login.
	Logout(ctx context.Context) error

	// ListCases returns all cases, writing through to the cache on
	// success and falling back to the cached list when the remote read
	// fails for network reasons.
	ListCases(ctx context.Context) ([]models.SurgeryCase, error)

	// GetCase returns a single case with the same write-through/fallback
	// contract as ListCases, against the detail cache.
	GetCase(ctx context.Context, id int64) (models.SurgeryCase, error)

	// CreateCase creates a case. Offline, it returns an optimistic copy
	// carrying a negative temporary id.
	CreateCase(ctx context.Context, c models.SurgeryCase) (models.SurgeryCase, error)

	// UpdateCase merges the submitted demographic fields into the case.
	UpdateCase(ctx context.Context, c models.SurgeryCase) (models.SurgeryCase, error)

	// DeleteCase removes a case.
	DeleteCase(ctx context.Context, id int64) error

	// ToggleCaseField flips one checklist flag on the case.
	ToggleCaseField(ctx context.Context, id int64, field models.CaseField) error

	// AddTodo appends a to-do item to the case. Offline, the returned
	// item carries a negative temporary id.
	AddTodo(ctx context.Context, caseID int64, text string) (models.TodoItem, error)

	// ToggleTodo flips the done flag of one to-do item.
	ToggleTodo(ctx context.Context, caseID, todoID int64) error

	// DeleteTodo removes a to-do item from the case.
	DeleteTodo(ctx context.Context, caseID, todoID int64) error

	// ExportCases downloads all cases in the given format ("csv"/"json").
	// Online-only: network failures surface instead of queueing.
	ExportCases(ctx context.Context, format string) ([]byte, error)

	// ImportCases uploads a bulk payload. Online-only, like ExportCases.
	ImportCases(ctx context.Context, format string, data []byte) (int, error)
}

// SyncEngine is the replay surface over the durable operation queue,
// consumed by the sync UI and the background job.
type SyncEngine interface {
	// SyncAll drains the queue: it replays every pending and failed
	// operation for the current principal sequentially in enqueue order,
	// removes operations that replayed successfully, marks the rest
	// failed, refreshes the pending snapshot, and invalidates touched
	// cache entries. A no-op returning a zero report when offline, when a
	// drain is already running, or when the queue is empty.
	SyncAll(ctx context.Context) (models.SyncReport, error)

	// RetryOperation replays exactly one operation by id, with the same
	// success/failure handling as a drain pass.
	RetryOperation(ctx context.Context, id int64) error

	// RemoveOperation discards one queued operation without replaying it.
	RemoveOperation(ctx context.Context, id int64) error

	// ClearAll discards every pending and failed operation for the
	// current principal. Irreversible; the caller confirms with the user.
	ClearAll(ctx context.Context) error

	// LoadPendingOperations refreshes the in-memory pending snapshot from
	// the durable queue.
	LoadPendingOperations(ctx context.Context) error

	// PendingOperations returns the last loaded pending snapshot.
	PendingOperations() []models.QueuedOperation

	// PendingCount returns the size of the last loaded pending snapshot.
	PendingCount() int

	// IsSyncing reports whether a drain pass is currently running.
	IsSyncing() bool
}

// SyncJob is a background worker that drains the queue automatically when
// connectivity returns, with a slow fallback tick for queues left non-empty
// by partial replay failures.
type SyncJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped first. interval is the fallback tick; zero or negative
	// defaults to 5 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated. Safe to call when the job is not running.
	Stop()
}
