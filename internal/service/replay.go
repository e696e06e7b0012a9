package service

import (
	"context"
	"fmt"

	"github.com/vetward/vetward/internal/netstate"
	"github.com/vetward/vetward/models"
)

// replayFunc re-issues one queued operation against the remote store. The
// remap table links temporary client-side ids to the authoritative ids
// assigned earlier in the same drain pass, so that a create followed by
// mutations of the same not-yet-real record replays correctly in FIFO
// order.
type replayFunc func(e *clientSyncEngine, ctx context.Context, op models.QueuedOperation, remap map[int64]int64) error

// replayHandlers is the closed variant-to-handler table. An operation type
// missing here is a programming error surfaced by replayOperation.
var replayHandlers = map[models.OperationType]replayFunc{
	models.OpCreateCase:  replayCreateCase,
	models.OpUpdateCase:  replayUpdateCase,
	models.OpDeleteCase:  replayDeleteCase,
	models.OpToggleField: replayToggleField,
	models.OpAddTodo:     replayAddTodo,
	models.OpToggleTodo:  replayToggleTodo,
	models.OpDeleteTodo:  replayDeleteTodo,
}

func replayCreateCase(e *clientSyncEngine, ctx context.Context, op models.QueuedOperation, remap map[int64]int64) error {
	if op.Payload.Case == nil {
		return fmt.Errorf("%w: create without case payload", ErrMalformedOperation)
	}

	payload := *op.Payload.Case
	payload.ID = 0 // the server assigns the authoritative id

	created, err := e.adapter.CreateCase(ctx, payload)
	if err != nil {
		return err
	}

	if op.Payload.TempID != 0 {
		remap[op.Payload.TempID] = created.ID
	}
	return nil
}

func replayUpdateCase(e *clientSyncEngine, ctx context.Context, op models.QueuedOperation, _ map[int64]int64) error {
	if op.Payload.Case == nil {
		return fmt.Errorf("%w: update without case payload", ErrMalformedOperation)
	}

	payload := *op.Payload.Case
	payload.ID = op.Payload.CaseID

	_, err := e.adapter.UpdateCase(ctx, payload)
	return err
}

func replayDeleteCase(e *clientSyncEngine, ctx context.Context, op models.QueuedOperation, _ map[int64]int64) error {
	return e.adapter.DeleteCase(ctx, op.Payload.CaseID)
}

func replayToggleField(e *clientSyncEngine, ctx context.Context, op models.QueuedOperation, _ map[int64]int64) error {
	_, err := e.adapter.ToggleCaseField(ctx, op.Payload.CaseID, op.Payload.Field)
	return err
}

func replayAddTodo(e *clientSyncEngine, ctx context.Context, op models.QueuedOperation, remap map[int64]int64) error {
	created, err := e.adapter.AddTodo(ctx, op.Payload.CaseID, op.Payload.TodoText)
	if err != nil {
		return err
	}

	if op.Payload.TodoID != 0 {
		remap[op.Payload.TodoID] = created.ID
	}
	return nil
}

func replayToggleTodo(e *clientSyncEngine, ctx context.Context, op models.QueuedOperation, _ map[int64]int64) error {
	_, err := e.adapter.ToggleTodo(ctx, op.Payload.CaseID, op.Payload.TodoID)
	return err
}

func replayDeleteTodo(e *clientSyncEngine, ctx context.Context, op models.QueuedOperation, _ map[int64]int64) error {
	return e.adapter.DeleteTodo(ctx, op.Payload.CaseID, op.Payload.TodoID)
}

// replayOperation rewrites any temporary ids resolved earlier in the pass,
// then dispatches through the handler table.
func (e *clientSyncEngine) replayOperation(ctx context.Context, op models.QueuedOperation, remap map[int64]int64) error {
	if op.Payload.CaseID < 0 {
		if real, ok := remap[op.Payload.CaseID]; ok {
			op.Payload.CaseID = real
		}
	}
	if op.Payload.TodoID < 0 {
		if real, ok := remap[op.Payload.TodoID]; ok {
			op.Payload.TodoID = real
		}
	}

	handler, ok := replayHandlers[op.Type]
	if !ok {
		return fmt.Errorf("%w: no handler for type %q", ErrMalformedOperation, op.Type)
	}

	return handler(e, ctx, op, remap)
}

// SyncAll drains the queue for the current principal. See the SyncEngine
// interface for the full contract.
func (e *clientSyncEngine) SyncAll(ctx context.Context) (models.SyncReport, error) {
	principal := e.Principal()
	if principal == "" {
		return models.SyncReport{}, ErrNotAuthenticated
	}

	if !e.monitor.Online() {
		return models.SyncReport{}, nil
	}
	if !e.syncing.CompareAndSwap(false, true) {
		return models.SyncReport{}, nil
	}
	defer e.syncing.Store(false)

	ops, err := e.queue.GetPendingOperations(ctx, principal)
	if err != nil {
		return models.SyncReport{}, err
	}
	if len(ops) == 0 {
		return models.SyncReport{}, nil
	}

	e.logger.Info().
		Str("principal", principal).
		Int("operations", len(ops)).
		Msg("starting drain pass")

	var report models.SyncReport
	remap := make(map[int64]int64)
	touched := make(map[int64]struct{})

	// Strictly sequential, in enqueue order: later operations may depend
	// on earlier ones (update-after-create on the same record).
	for _, op := range ops {
		if op.Payload.CaseID != 0 {
			touched[op.Payload.CaseID] = struct{}{}
		}
		if op.Payload.TempID != 0 {
			touched[op.Payload.TempID] = struct{}{}
		}

		replayErr := e.replayOperation(ctx, op, remap)
		if replayErr != nil {
			if netstate.IsNetworkError(replayErr) {
				e.monitor.SetOnline(false)
			}
			if err = e.queue.UpdateStatus(ctx, op.ID, models.StatusFailed, replayErr.Error()); err != nil {
				return report, err
			}
			report.Failed++

			e.logger.Warn().
				Int64("operation_id", op.ID).
				Str("type", string(op.Type)).
				Err(replayErr).
				Msg("replay failed; operation kept for retry")
			continue
		}

		if err = e.queue.UpdateStatus(ctx, op.ID, models.StatusSucceeded, ""); err != nil {
			return report, err
		}
		if err = e.queue.Remove(ctx, op.ID); err != nil {
			return report, err
		}
		report.Synced++
	}

	if err = e.LoadPendingOperations(ctx); err != nil {
		return report, err
	}

	// The next read must fetch authoritative state; in particular the
	// optimistic temporary ids must not survive a successful drain.
	if err = e.cache.InvalidateList(ctx, principal); err != nil {
		return report, err
	}
	for id := range touched {
		if err = e.cache.InvalidateDetail(ctx, principal, id); err != nil {
			return report, err
		}
	}

	e.logger.Info().
		Str("principal", principal).
		Int("synced", report.Synced).
		Int("failed", report.Failed).
		Msg("drain pass finished")

	return report, nil
}

// RetryOperation replays a single operation by id, outside of a drain pass.
func (e *clientSyncEngine) RetryOperation(ctx context.Context, id int64) error {
	principal := e.Principal()
	if principal == "" {
		return ErrNotAuthenticated
	}

	op, err := e.queue.GetOperation(ctx, id)
	if err != nil {
		return err
	}

	replayErr := e.replayOperation(ctx, op, make(map[int64]int64))
	if replayErr != nil {
		if netstate.IsNetworkError(replayErr) {
			e.monitor.SetOnline(false)
		}
		if err = e.queue.UpdateStatus(ctx, op.ID, models.StatusFailed, replayErr.Error()); err != nil {
			return err
		}
		if err = e.LoadPendingOperations(ctx); err != nil {
			return err
		}
		return replayErr
	}

	if err = e.queue.UpdateStatus(ctx, op.ID, models.StatusSucceeded, ""); err != nil {
		return err
	}
	if err = e.queue.Remove(ctx, op.ID); err != nil {
		return err
	}

	if err = e.cache.InvalidateList(ctx, principal); err != nil {
		return err
	}
	if op.Payload.CaseID != 0 {
		if err = e.cache.InvalidateDetail(ctx, principal, op.Payload.CaseID); err != nil {
			return err
		}
	}

	return e.LoadPendingOperations(ctx)
}
