package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vetward/vetward/models"
)

func TestSyncAll_RequiresLogin(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.SyncAll(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSyncAll_OfflineIsNoop(t *testing.T) {
	engine, _ := newAuthedEngine(t)
	engine.monitor.SetOnline(false)

	report, err := engine.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Zero(t, report)
}

func TestSyncAll_SkipsWhenDrainAlreadyRunning(t *testing.T) {
	engine, _ := newAuthedEngine(t)
	engine.syncing.Store(true)

	report, err := engine.SyncAll(context.Background())

	require.NoError(t, err)
	assert.Zero(t, report)
	assert.True(t, engine.IsSyncing(), "foreign drain flag stays untouched")
}

func TestSyncAll_EmptyQueue(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return(nil, nil)

	report, err := engine.SyncAll(ctx)

	require.NoError(t, err)
	assert.Zero(t, report)
	assert.False(t, engine.IsSyncing())
}

// A create queued offline carries a negative temporary id; a later
// operation on the same record must be replayed against the authoritative
// id assigned when the create was replayed.
func TestSyncAll_RemapsTemporaryIDsAcrossThePass(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	newCase := models.SurgeryCase{ID: -5, PatientName: "Boris", Species: "canine", Procedure: "TPLO"}
	ops := []models.QueuedOperation{
		{
			ID:        1,
			Principal: "alice",
			Type:      models.OpCreateCase,
			Payload:   models.OperationPayload{TempID: -5, Case: &newCase},
		},
		{
			ID:        2,
			Principal: "alice",
			Type:      models.OpToggleField,
			Payload:   models.OperationPayload{CaseID: -5, Field: models.FieldConsentSigned},
		},
	}

	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return(ops, nil)

	created := newCase
	created.ID = 101
	gomock.InOrder(
		m.srv.EXPECT().CreateCase(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.SurgeryCase) (models.SurgeryCase, error) {
				assert.Zero(t, c.ID, "temporary id must not reach the server")
				return created, nil
			}),
		m.queue.EXPECT().UpdateStatus(ctx, int64(1), models.StatusSucceeded, "").Return(nil),
		m.queue.EXPECT().Remove(ctx, int64(1)).Return(nil),
		m.srv.EXPECT().ToggleCaseField(ctx, int64(101), models.FieldConsentSigned).
			Return(models.SurgeryCase{}, nil),
		m.queue.EXPECT().UpdateStatus(ctx, int64(2), models.StatusSucceeded, "").Return(nil),
		m.queue.EXPECT().Remove(ctx, int64(2)).Return(nil),
	)

	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return(nil, nil)
	m.cache.EXPECT().InvalidateList(ctx, "alice").Return(nil)
	m.cache.EXPECT().InvalidateDetail(ctx, "alice", int64(-5)).Return(nil)

	report, err := engine.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Synced: 2}, report)
	assert.Zero(t, engine.PendingCount())
}

func TestSyncAll_RemapsTemporaryTodoIDs(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	ops := []models.QueuedOperation{
		{
			ID:        1,
			Principal: "alice",
			Type:      models.OpAddTodo,
			Payload:   models.OperationPayload{CaseID: 3, TodoID: -9, TodoText: "call owner"},
		},
		{
			ID:        2,
			Principal: "alice",
			Type:      models.OpToggleTodo,
			Payload:   models.OperationPayload{CaseID: 3, TodoID: -9},
		},
	}

	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return(ops, nil)

	gomock.InOrder(
		m.srv.EXPECT().AddTodo(ctx, int64(3), "call owner").
			Return(models.TodoItem{ID: 55, Text: "call owner"}, nil),
		m.queue.EXPECT().UpdateStatus(ctx, int64(1), models.StatusSucceeded, "").Return(nil),
		m.queue.EXPECT().Remove(ctx, int64(1)).Return(nil),
		m.srv.EXPECT().ToggleTodo(ctx, int64(3), int64(55)).Return(models.TodoItem{}, nil),
		m.queue.EXPECT().UpdateStatus(ctx, int64(2), models.StatusSucceeded, "").Return(nil),
		m.queue.EXPECT().Remove(ctx, int64(2)).Return(nil),
	)

	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return(nil, nil)
	m.cache.EXPECT().InvalidateList(ctx, "alice").Return(nil)
	m.cache.EXPECT().InvalidateDetail(ctx, "alice", int64(3)).Return(nil)

	report, err := engine.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Synced: 2}, report)
}

func TestSyncAll_FailedReplayKeepsOperationActionable(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	op := models.QueuedOperation{
		ID:        4,
		Principal: "alice",
		Type:      models.OpDeleteCase,
		Payload:   models.OperationPayload{CaseID: 12},
	}
	rejected := errors.New("conflict: case was modified")

	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{op}, nil)
	m.srv.EXPECT().DeleteCase(ctx, int64(12)).Return(rejected)
	m.queue.EXPECT().UpdateStatus(ctx, int64(4), models.StatusFailed, rejected.Error()).Return(nil)

	failed := op
	failed.Status = models.StatusFailed
	failed.LastError = rejected.Error()
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{failed}, nil)
	m.cache.EXPECT().InvalidateList(ctx, "alice").Return(nil)
	m.cache.EXPECT().InvalidateDetail(ctx, "alice", int64(12)).Return(nil)

	report, err := engine.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Failed: 1}, report)
	assert.Equal(t, 1, engine.PendingCount())
	assert.True(t, engine.monitor.Online(), "a server rejection is not a connectivity loss")
}

func TestSyncAll_NetworkFailureMarksOffline(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	op := models.QueuedOperation{
		ID:        4,
		Principal: "alice",
		Type:      models.OpDeleteCase,
		Payload:   models.OperationPayload{CaseID: 12},
	}

	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{op}, nil)
	m.srv.EXPECT().DeleteCase(ctx, int64(12)).Return(errConnRefused)
	m.queue.EXPECT().UpdateStatus(ctx, int64(4), models.StatusFailed, errConnRefused.Error()).Return(nil)
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{op}, nil)
	m.cache.EXPECT().InvalidateList(ctx, "alice").Return(nil)
	m.cache.EXPECT().InvalidateDetail(ctx, "alice", int64(12)).Return(nil)

	report, err := engine.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Failed: 1}, report)
	assert.False(t, engine.monitor.Online())
}

func TestSyncAll_MalformedOperationFailsWithoutServerCall(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	op := models.QueuedOperation{
		ID:        9,
		Principal: "alice",
		Type:      models.OpCreateCase,
		Payload:   models.OperationPayload{TempID: -1}, // missing case payload
	}

	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{op}, nil)
	m.queue.EXPECT().UpdateStatus(ctx, int64(9), models.StatusFailed, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ models.OperationStatus, lastError string) error {
			assert.Contains(t, lastError, "malformed")
			return nil
		})
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{op}, nil)
	m.cache.EXPECT().InvalidateList(ctx, "alice").Return(nil)
	m.cache.EXPECT().InvalidateDetail(ctx, "alice", int64(-1)).Return(nil)

	report, err := engine.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Failed: 1}, report)
}

// ── RetryOperation ───────────────────────────────────────────────────────

func TestRetryOperation_Success(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	op := models.QueuedOperation{
		ID:        4,
		Principal: "alice",
		Type:      models.OpToggleField,
		Status:    models.StatusFailed,
		Payload:   models.OperationPayload{CaseID: 12, Field: models.FieldFastingVerified},
	}

	m.queue.EXPECT().GetOperation(ctx, int64(4)).Return(op, nil)
	m.srv.EXPECT().ToggleCaseField(ctx, int64(12), models.FieldFastingVerified).
		Return(models.SurgeryCase{}, nil)
	m.queue.EXPECT().UpdateStatus(ctx, int64(4), models.StatusSucceeded, "").Return(nil)
	m.queue.EXPECT().Remove(ctx, int64(4)).Return(nil)
	m.cache.EXPECT().InvalidateList(ctx, "alice").Return(nil)
	m.cache.EXPECT().InvalidateDetail(ctx, "alice", int64(12)).Return(nil)
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return(nil, nil)

	require.NoError(t, engine.RetryOperation(ctx, 4))
	assert.Zero(t, engine.PendingCount())
}

func TestRetryOperation_FailureSurfacesReplayError(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	op := models.QueuedOperation{
		ID:        4,
		Principal: "alice",
		Type:      models.OpDeleteCase,
		Status:    models.StatusFailed,
		Payload:   models.OperationPayload{CaseID: 12},
	}
	rejected := errors.New("not found")

	m.queue.EXPECT().GetOperation(ctx, int64(4)).Return(op, nil)
	m.srv.EXPECT().DeleteCase(ctx, int64(12)).Return(rejected)
	m.queue.EXPECT().UpdateStatus(ctx, int64(4), models.StatusFailed, rejected.Error()).Return(nil)
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{op}, nil)

	err := engine.RetryOperation(ctx, 4)

	require.ErrorIs(t, err, rejected)
	assert.Equal(t, 1, engine.PendingCount())
}

func TestRetryOperation_UnknownID(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	notFound := errors.New("operation not found")
	m.queue.EXPECT().GetOperation(ctx, int64(99)).Return(models.QueuedOperation{}, notFound)

	err := engine.RetryOperation(ctx, 99)
	require.ErrorIs(t, err, notFound)
}
