package service

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/vetward/vetward/internal/adapter"
	"github.com/vetward/vetward/internal/logger"
	"github.com/vetward/vetward/internal/netstate"
	"github.com/vetward/vetward/internal/store"
	"github.com/vetward/vetward/models"
)

// clientSyncEngine implements both ClientCaseService and SyncEngine. Every
// remote write funnels through attemptWrite so the queue-on-network-failure
// behavior is identical across variants; replay goes through the handler
// table in replay.go.
type clientSyncEngine struct {
	queue   store.OperationQueueRepository
	cache   store.CaseCacheRepository
	adapter adapter.ServerAdapter
	monitor *netstate.Monitor
	logger  *logger.Logger

	mu        sync.RWMutex
	principal string
	pending   []models.QueuedOperation

	syncing atomic.Bool
}

func NewClientSyncEngine(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	monitor *netstate.Monitor,
	log *logger.Logger,
) *clientSyncEngine {
	return &clientSyncEngine{
		queue:   storages.OperationQueue,
		cache:   storages.CaseCache,
		adapter: serverAdapter,
		monitor: monitor,
		logger:  log,
	}
}

// Principal returns the identity that scopes all queue and cache access, or
// an empty string before login.
func (e *clientSyncEngine) Principal() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.principal
}

func (e *clientSyncEngine) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	session, err := e.adapter.Login(ctx, creds)
	if err != nil {
		if netstate.IsNetworkError(err) {
			e.monitor.SetOnline(false)
		}
		return models.Session{}, err
	}
	e.monitor.SetOnline(true)

	e.mu.Lock()
	e.principal = session.Principal
	e.pending = nil
	e.mu.Unlock()

	if err := e.LoadPendingOperations(ctx); err != nil {
		e.logger.Err(err).
			Str("principal", session.Principal).
			Msg("failed to load pending operations after login")
	}

	return session, nil
}

func (e *clientSyncEngine) Logout(ctx context.Context) error {
	principal := e.Principal()
	if principal == "" {
		return nil
	}

	if err := e.cache.ClearForPrincipal(ctx, principal); err != nil {
		return err
	}

	e.adapter.SetToken("")
	e.mu.Lock()
	e.principal = ""
	e.pending = nil
	e.mu.Unlock()

	return nil
}

// ── Read path ────────────────────────────────────────────────────────────

func (e *clientSyncEngine) ListCases(ctx context.Context) ([]models.SurgeryCase, error) {
	principal := e.Principal()
	if principal == "" {
		return nil, ErrNotAuthenticated
	}

	cases, err := e.adapter.ListCases(ctx)
	if err == nil {
		e.monitor.SetOnline(true)
		if saveErr := e.cache.SaveList(ctx, principal, cases); saveErr != nil {
			e.logger.Err(saveErr).Str("principal", principal).Msg("failed to write through case list cache")
		}
		return cases, nil
	}

	if !netstate.IsNetworkError(err) {
		return nil, err
	}
	e.monitor.SetOnline(false)

	cached, cacheErr := e.cache.GetList(ctx, principal)
	if cacheErr != nil {
		if errors.Is(cacheErr, store.ErrCacheMiss) {
			// Never loaded while online; surface the original failure.
			return nil, err
		}
		return nil, cacheErr
	}

	return cached, nil
}

func (e *clientSyncEngine) GetCase(ctx context.Context, id int64) (models.SurgeryCase, error) {
	principal := e.Principal()
	if principal == "" {
		return models.SurgeryCase{}, ErrNotAuthenticated
	}

	c, err := e.adapter.GetCase(ctx, id)
	if err == nil {
		e.monitor.SetOnline(true)
		if saveErr := e.cache.SaveDetail(ctx, principal, c.ID, c); saveErr != nil {
			e.logger.Err(saveErr).Int64("case_id", c.ID).Msg("failed to write through case detail cache")
		}
		return c, nil
	}

	if !netstate.IsNetworkError(err) {
		return models.SurgeryCase{}, err
	}
	e.monitor.SetOnline(false)

	cached, cacheErr := e.cache.GetDetail(ctx, principal, id)
	if cacheErr != nil {
		if errors.Is(cacheErr, store.ErrCacheMiss) {
			return models.SurgeryCase{}, err
		}
		return models.SurgeryCase{}, cacheErr
	}

	return cached, nil
}

// ── Write path ───────────────────────────────────────────────────────────

func (e *clientSyncEngine) CreateCase(ctx context.Context, c models.SurgeryCase) (models.SurgeryCase, error) {
	principal := e.Principal()
	if principal == "" {
		return models.SurgeryCase{}, ErrNotAuthenticated
	}

	created, err := e.adapter.CreateCase(ctx, c)
	if err == nil {
		e.afterRemoteWrite(ctx, principal, created.ID)
		return created, nil
	}
	if !netstate.IsNetworkError(err) {
		return models.SurgeryCase{}, err
	}

	optimistic := c
	optimistic.ID = nextTempID()
	op := models.QueuedOperation{
		Principal: principal,
		Type:      models.OpCreateCase,
		Payload: models.OperationPayload{
			TempID: optimistic.ID,
			Case:   &optimistic,
		},
	}
	if qerr := e.enqueueAndApply(ctx, op); qerr != nil {
		return models.SurgeryCase{}, qerr
	}

	return optimistic, nil
}

func (e *clientSyncEngine) UpdateCase(ctx context.Context, c models.SurgeryCase) (models.SurgeryCase, error) {
	principal := e.Principal()
	if principal == "" {
		return models.SurgeryCase{}, ErrNotAuthenticated
	}

	updated, err := e.adapter.UpdateCase(ctx, c)
	if err == nil {
		e.afterRemoteWrite(ctx, principal, updated.ID)
		return updated, nil
	}
	if !netstate.IsNetworkError(err) {
		return models.SurgeryCase{}, err
	}

	payload := c
	op := models.QueuedOperation{
		Principal: principal,
		Type:      models.OpUpdateCase,
		Payload: models.OperationPayload{
			CaseID: c.ID,
			Case:   &payload,
		},
	}
	if qerr := e.enqueueAndApply(ctx, op); qerr != nil {
		return models.SurgeryCase{}, qerr
	}

	return c, nil
}

func (e *clientSyncEngine) DeleteCase(ctx context.Context, id int64) error {
	principal := e.Principal()
	if principal == "" {
		return ErrNotAuthenticated
	}

	err := e.adapter.DeleteCase(ctx, id)
	if err == nil {
		e.afterRemoteWrite(ctx, principal, id)
		return nil
	}
	if !netstate.IsNetworkError(err) {
		return err
	}

	op := models.QueuedOperation{
		Principal: principal,
		Type:      models.OpDeleteCase,
		Payload:   models.OperationPayload{CaseID: id},
	}
	return e.enqueueAndApply(ctx, op)
}

func (e *clientSyncEngine) ToggleCaseField(ctx context.Context, id int64, field models.CaseField) error {
	principal := e.Principal()
	if principal == "" {
		return ErrNotAuthenticated
	}
	if !field.Valid() {
		return ErrUnknownCaseField
	}

	_, err := e.adapter.ToggleCaseField(ctx, id, field)
	if err == nil {
		e.afterRemoteWrite(ctx, principal, id)
		return nil
	}
	if !netstate.IsNetworkError(err) {
		return err
	}

	op := models.QueuedOperation{
		Principal: principal,
		Type:      models.OpToggleField,
		Payload:   models.OperationPayload{CaseID: id, Field: field},
	}
	return e.enqueueAndApply(ctx, op)
}

func (e *clientSyncEngine) AddTodo(ctx context.Context, caseID int64, text string) (models.TodoItem, error) {
	principal := e.Principal()
	if principal == "" {
		return models.TodoItem{}, ErrNotAuthenticated
	}

	created, err := e.adapter.AddTodo(ctx, caseID, text)
	if err == nil {
		e.afterRemoteWrite(ctx, principal, caseID)
		return created, nil
	}
	if !netstate.IsNetworkError(err) {
		return models.TodoItem{}, err
	}

	todo := models.TodoItem{ID: nextTempID(), Text: text}
	op := models.QueuedOperation{
		Principal: principal,
		Type:      models.OpAddTodo,
		Payload: models.OperationPayload{
			CaseID:   caseID,
			TodoID:   todo.ID,
			TodoText: text,
		},
	}
	if qerr := e.enqueueAndApply(ctx, op); qerr != nil {
		return models.TodoItem{}, qerr
	}

	return todo, nil
}

func (e *clientSyncEngine) ToggleTodo(ctx context.Context, caseID, todoID int64) error {
	principal := e.Principal()
	if principal == "" {
		return ErrNotAuthenticated
	}

	_, err := e.adapter.ToggleTodo(ctx, caseID, todoID)
	if err == nil {
		e.afterRemoteWrite(ctx, principal, caseID)
		return nil
	}
	if !netstate.IsNetworkError(err) {
		return err
	}

	op := models.QueuedOperation{
		Principal: principal,
		Type:      models.OpToggleTodo,
		Payload:   models.OperationPayload{CaseID: caseID, TodoID: todoID},
	}
	return e.enqueueAndApply(ctx, op)
}

func (e *clientSyncEngine) DeleteTodo(ctx context.Context, caseID, todoID int64) error {
	principal := e.Principal()
	if principal == "" {
		return ErrNotAuthenticated
	}

	err := e.adapter.DeleteTodo(ctx, caseID, todoID)
	if err == nil {
		e.afterRemoteWrite(ctx, principal, caseID)
		return nil
	}
	if !netstate.IsNetworkError(err) {
		return err
	}

	op := models.QueuedOperation{
		Principal: principal,
		Type:      models.OpDeleteTodo,
		Payload:   models.OperationPayload{CaseID: caseID, TodoID: todoID},
	}
	return e.enqueueAndApply(ctx, op)
}

// ── Export / import (online only) ────────────────────────────────────────

func (e *clientSyncEngine) ExportCases(ctx context.Context, format string) ([]byte, error) {
	if e.Principal() == "" {
		return nil, ErrNotAuthenticated
	}
	return e.adapter.ExportCases(ctx, format)
}

func (e *clientSyncEngine) ImportCases(ctx context.Context, format string, data []byte) (int, error) {
	principal := e.Principal()
	if principal == "" {
		return 0, ErrNotAuthenticated
	}

	imported, err := e.adapter.ImportCases(ctx, format, data)
	if err != nil {
		return 0, err
	}

	// Bulk import changes an unknown set of records.
	if invErr := e.cache.InvalidateList(ctx, principal); invErr != nil {
		e.logger.Err(invErr).Str("principal", principal).Msg("failed to invalidate list cache after import")
	}

	return imported, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────

// afterRemoteWrite invalidates the cached reads touched by a successful
// remote write so the next read re-fetches authoritative data.
func (e *clientSyncEngine) afterRemoteWrite(ctx context.Context, principal string, caseID int64) {
	e.monitor.SetOnline(true)

	if err := e.cache.InvalidateList(ctx, principal); err != nil {
		e.logger.Err(err).Str("principal", principal).Msg("failed to invalidate list cache after write")
	}
	if caseID != 0 {
		if err := e.cache.InvalidateDetail(ctx, principal, caseID); err != nil {
			e.logger.Err(err).Int64("case_id", caseID).Msg("failed to invalidate detail cache after write")
		}
	}
}

// enqueueAndApply persists the write intent and mutates the cached read
// state optimistically. Queue storage failures propagate to the caller; the
// cache mutation is advisory and only logged on failure.
func (e *clientSyncEngine) enqueueAndApply(ctx context.Context, op models.QueuedOperation) error {
	e.monitor.SetOnline(false)

	op.Status = models.StatusPending
	op.CreatedAt = time.Now().UTC()

	id, err := e.queue.Enqueue(ctx, op)
	if err != nil {
		return err
	}
	op.ID = id

	e.applyOptimistic(ctx, op)

	if loadErr := e.LoadPendingOperations(ctx); loadErr != nil {
		e.logger.Err(loadErr).Str("principal", op.Principal).Msg("failed to refresh pending snapshot after enqueue")
	}

	e.logger.Info().
		Int64("operation_id", id).
		Str("type", string(op.Type)).
		Str("principal", op.Principal).
		Msg("queued offline operation")

	return nil
}

// applyOptimistic mirrors the queued write on the cached list and detail
// entries so the UI reflects the pending change immediately. The cache is
// advisory; failures are logged, never surfaced.
func (e *clientSyncEngine) applyOptimistic(ctx context.Context, op models.QueuedOperation) {
	log := e.logger

	cases, err := e.cache.GetList(ctx, op.Principal)
	if err == nil {
		if saveErr := e.cache.SaveList(ctx, op.Principal, applyOptimisticToList(cases, op)); saveErr != nil {
			log.Err(saveErr).Int64("operation_id", op.ID).Msg("failed to apply optimistic list mutation")
		}
	} else if !errors.Is(err, store.ErrCacheMiss) {
		log.Err(err).Int64("operation_id", op.ID).Msg("failed to load list cache for optimistic mutation")
	}

	switch op.Type {
	case models.OpCreateCase:
		if op.Payload.Case != nil {
			created := *op.Payload.Case
			created.ID = op.Payload.TempID
			if saveErr := e.cache.SaveDetail(ctx, op.Principal, created.ID, created); saveErr != nil {
				log.Err(saveErr).Int64("operation_id", op.ID).Msg("failed to cache optimistic create")
			}
		}

	case models.OpDeleteCase:
		if invErr := e.cache.InvalidateDetail(ctx, op.Principal, op.Payload.CaseID); invErr != nil {
			log.Err(invErr).Int64("operation_id", op.ID).Msg("failed to drop detail cache for optimistic delete")
		}

	default:
		detail, getErr := e.cache.GetDetail(ctx, op.Principal, op.Payload.CaseID)
		if getErr != nil {
			if !errors.Is(getErr, store.ErrCacheMiss) {
				log.Err(getErr).Int64("operation_id", op.ID).Msg("failed to load detail cache for optimistic mutation")
			}
			return
		}
		mutated := applyOptimisticToCase(detail, op)
		if saveErr := e.cache.SaveDetail(ctx, op.Principal, op.Payload.CaseID, mutated); saveErr != nil {
			log.Err(saveErr).Int64("operation_id", op.ID).Msg("failed to apply optimistic detail mutation")
		}
	}
}

// ── Pending snapshot ─────────────────────────────────────────────────────

func (e *clientSyncEngine) LoadPendingOperations(ctx context.Context) error {
	principal := e.Principal()
	if principal == "" {
		return ErrNotAuthenticated
	}

	ops, err := e.queue.GetPendingOperations(ctx, principal)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.pending = ops
	e.mu.Unlock()

	return nil
}

func (e *clientSyncEngine) PendingOperations() []models.QueuedOperation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.QueuedOperation, len(e.pending))
	copy(out, e.pending)
	return out
}

func (e *clientSyncEngine) PendingCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.pending)
}

func (e *clientSyncEngine) IsSyncing() bool {
	return e.syncing.Load()
}

func (e *clientSyncEngine) RemoveOperation(ctx context.Context, id int64) error {
	if e.Principal() == "" {
		return ErrNotAuthenticated
	}

	if err := e.queue.Remove(ctx, id); err != nil {
		return err
	}
	return e.LoadPendingOperations(ctx)
}

func (e *clientSyncEngine) ClearAll(ctx context.Context) error {
	principal := e.Principal()
	if principal == "" {
		return ErrNotAuthenticated
	}

	if err := e.queue.ClearAll(ctx, principal); err != nil {
		return err
	}
	return e.LoadPendingOperations(ctx)
}

// nextTempID derives a negative temporary identifier from the timestamp
// bits of a v7 UUID. Negative ids are unmistakably client-side and are
// replaced by authoritative ids once the queued create has been replayed.
func nextTempID() int64 {
	id, err := uuid.NewV7()
	if err != nil {
		return -time.Now().UnixNano()
	}

	v := int64(binary.BigEndian.Uint64(id[:8]) & (1<<62 - 1))
	if v == 0 {
		v = time.Now().UnixNano()
	}
	return -v
}
