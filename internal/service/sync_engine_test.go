package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vetward/vetward/internal/logger"
	"github.com/vetward/vetward/internal/mock"
	"github.com/vetward/vetward/internal/netstate"
	"github.com/vetward/vetward/internal/store"
	"github.com/vetward/vetward/models"
)

// errConnRefused looks like a failed dial, which the classifier treats as
// a connectivity problem rather than a server rejection.
var errConnRefused = errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")

type engineMocks struct {
	queue *mock.MockOperationQueueRepository
	cache *mock.MockCaseCacheRepository
	srv   *mock.MockServerAdapter
}

func newTestEngine(t *testing.T) (*clientSyncEngine, engineMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := engineMocks{
		queue: mock.NewMockOperationQueueRepository(ctrl),
		cache: mock.NewMockCaseCacheRepository(ctrl),
		srv:   mock.NewMockServerAdapter(ctrl),
	}

	storages := &store.ClientStorages{
		OperationQueue: m.queue,
		CaseCache:      m.cache,
	}
	engine := NewClientSyncEngine(storages, m.srv, netstate.NewMonitor(), logger.Nop())

	return engine, m
}

// newAuthedEngine returns an engine already scoped to "alice", skipping the
// login round-trip.
func newAuthedEngine(t *testing.T) (*clientSyncEngine, engineMocks) {
	t.Helper()

	engine, m := newTestEngine(t)
	engine.principal = "alice"
	return engine, m
}

// ── Login / logout ───────────────────────────────────────────────────────

func TestLogin_SetsPrincipalAndLoadsPending(t *testing.T) {
	engine, m := newTestEngine(t)
	ctx := context.Background()

	creds := models.Credentials{Login: "alice", Password: "secret"}
	m.srv.EXPECT().Login(ctx, creds).Return(models.Session{Token: "tok", Principal: "alice"}, nil)
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{
		{ID: 1, Principal: "alice", Type: models.OpDeleteCase, Payload: models.OperationPayload{CaseID: 9}},
	}, nil)

	session, err := engine.Login(ctx, creds)

	require.NoError(t, err)
	assert.Equal(t, "alice", session.Principal)
	assert.Equal(t, "alice", engine.Principal())
	assert.Equal(t, 1, engine.PendingCount())
	assert.True(t, engine.monitor.Online())
}

func TestLogin_NetworkFailureMarksOffline(t *testing.T) {
	engine, m := newTestEngine(t)
	ctx := context.Background()

	m.srv.EXPECT().Login(ctx, gomock.Any()).Return(models.Session{}, errConnRefused)

	_, err := engine.Login(ctx, models.Credentials{Login: "alice", Password: "secret"})

	require.ErrorIs(t, err, errConnRefused)
	assert.Empty(t, engine.Principal())
	assert.False(t, engine.monitor.Online())
}

func TestLogin_RejectionDoesNotTouchConnectivity(t *testing.T) {
	engine, m := newTestEngine(t)
	ctx := context.Background()

	rejected := errors.New("invalid credentials")
	m.srv.EXPECT().Login(ctx, gomock.Any()).Return(models.Session{}, rejected)

	_, err := engine.Login(ctx, models.Credentials{Login: "alice", Password: "wrong"})

	require.ErrorIs(t, err, rejected)
	assert.True(t, engine.monitor.Online())
}

func TestLogout_ClearsCacheAndSession(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	m.cache.EXPECT().ClearForPrincipal(ctx, "alice").Return(nil)
	m.srv.EXPECT().SetToken("")

	require.NoError(t, engine.Logout(ctx))
	assert.Empty(t, engine.Principal())
}

func TestLogout_WithoutSessionIsNoop(t *testing.T) {
	engine, _ := newTestEngine(t)
	require.NoError(t, engine.Logout(context.Background()))
}

// ── Read path ────────────────────────────────────────────────────────────

func TestListCases_OnlineWritesThrough(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	remote := []models.SurgeryCase{{ID: 1, PatientName: "Rex", Species: "canine", Procedure: "castration"}}
	m.srv.EXPECT().ListCases(ctx).Return(remote, nil)
	m.cache.EXPECT().SaveList(ctx, "alice", remote).Return(nil)

	cases, err := engine.ListCases(ctx)

	require.NoError(t, err)
	assert.Equal(t, remote, cases)
	assert.True(t, engine.monitor.Online())
}

func TestListCases_NetworkFailureFallsBackToCache(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	cached := []models.SurgeryCase{{ID: 1, PatientName: "Rex", Species: "canine", Procedure: "castration"}}
	m.srv.EXPECT().ListCases(ctx).Return(nil, errConnRefused)
	m.cache.EXPECT().GetList(ctx, "alice").Return(cached, nil)

	cases, err := engine.ListCases(ctx)

	require.NoError(t, err)
	assert.Equal(t, cached, cases)
	assert.False(t, engine.monitor.Online())
}

func TestListCases_CacheMissSurfacesOriginalError(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	m.srv.EXPECT().ListCases(ctx).Return(nil, errConnRefused)
	m.cache.EXPECT().GetList(ctx, "alice").Return(nil, store.ErrCacheMiss)

	_, err := engine.ListCases(ctx)
	require.ErrorIs(t, err, errConnRefused)
}

func TestListCases_RejectionNeverReadsCache(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	rejected := errors.New("token expired")
	m.srv.EXPECT().ListCases(ctx).Return(nil, rejected)

	_, err := engine.ListCases(ctx)
	require.ErrorIs(t, err, rejected)
}

func TestListCases_RequiresLogin(t *testing.T) {
	engine, _ := newTestEngine(t)
	_, err := engine.ListCases(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestGetCase_NetworkFailureFallsBackToDetailCache(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	cached := models.SurgeryCase{ID: 7, PatientName: "Murka", Species: "feline", Procedure: "dental cleaning"}
	m.srv.EXPECT().GetCase(ctx, int64(7)).Return(models.SurgeryCase{}, errConnRefused)
	m.cache.EXPECT().GetDetail(ctx, "alice", int64(7)).Return(cached, nil)

	c, err := engine.GetCase(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, cached, c)
}

// ── Write path ───────────────────────────────────────────────────────────

func TestCreateCase_OnlineInvalidatesCaches(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	submitted := models.SurgeryCase{PatientName: "Rex", Species: "canine", Procedure: "castration"}
	created := submitted
	created.ID = 42

	m.srv.EXPECT().CreateCase(ctx, submitted).Return(created, nil)
	m.cache.EXPECT().InvalidateList(ctx, "alice").Return(nil)
	m.cache.EXPECT().InvalidateDetail(ctx, "alice", int64(42)).Return(nil)

	got, err := engine.CreateCase(ctx, submitted)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
}

func TestCreateCase_OfflineQueuesWithTempID(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	submitted := models.SurgeryCase{PatientName: "Rex", Species: "canine", Procedure: "castration"}

	var queued models.QueuedOperation
	m.srv.EXPECT().CreateCase(ctx, submitted).Return(models.SurgeryCase{}, errConnRefused)
	m.queue.EXPECT().Enqueue(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, op models.QueuedOperation) (int64, error) {
			queued = op
			return 5, nil
		})
	m.cache.EXPECT().GetList(ctx, "alice").Return(nil, store.ErrCacheMiss)
	m.cache.EXPECT().SaveDetail(ctx, "alice", gomock.Any(), gomock.Any()).Return(nil)
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{{ID: 5}}, nil)

	got, err := engine.CreateCase(ctx, submitted)

	require.NoError(t, err)
	assert.Negative(t, got.ID, "optimistic create carries a temporary id")
	assert.Equal(t, "Rex", got.PatientName)

	assert.Equal(t, models.OpCreateCase, queued.Type)
	assert.Equal(t, "alice", queued.Principal)
	assert.Equal(t, models.StatusPending, queued.Status)
	assert.Equal(t, got.ID, queued.Payload.TempID)
	require.NotNil(t, queued.Payload.Case)
	assert.Equal(t, got.ID, queued.Payload.Case.ID)

	assert.Equal(t, 1, engine.PendingCount())
	assert.False(t, engine.monitor.Online())
}

func TestCreateCase_RejectionIsNeverQueued(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	rejected := errors.New("validation failed: procedure is required")
	m.srv.EXPECT().CreateCase(ctx, gomock.Any()).Return(models.SurgeryCase{}, rejected)

	_, err := engine.CreateCase(ctx, models.SurgeryCase{PatientName: "Rex"})
	require.ErrorIs(t, err, rejected)
}

func TestToggleCaseField_RejectsUnknownField(t *testing.T) {
	engine, _ := newAuthedEngine(t)

	err := engine.ToggleCaseField(context.Background(), 1, models.CaseField("anesthesia_cleared"))
	require.ErrorIs(t, err, ErrUnknownCaseField)
}

func TestToggleCaseField_OfflineMutatesDetailOptimistically(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	cached := models.SurgeryCase{ID: 3, PatientName: "Rex", ConsentSigned: false}

	m.srv.EXPECT().ToggleCaseField(ctx, int64(3), models.FieldConsentSigned).
		Return(models.SurgeryCase{}, errConnRefused)
	m.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(int64(6), nil)
	m.cache.EXPECT().GetList(ctx, "alice").Return(nil, store.ErrCacheMiss)
	m.cache.EXPECT().GetDetail(ctx, "alice", int64(3)).Return(cached, nil)
	m.cache.EXPECT().SaveDetail(ctx, "alice", int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int64, c models.SurgeryCase) error {
			assert.True(t, c.ConsentSigned, "flag flipped in the cached detail")
			return nil
		})
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{{ID: 6}}, nil)

	require.NoError(t, engine.ToggleCaseField(ctx, 3, models.FieldConsentSigned))
}

func TestAddTodo_OfflineReturnsTempID(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	m.srv.EXPECT().AddTodo(ctx, int64(3), "call owner").Return(models.TodoItem{}, errConnRefused)
	m.queue.EXPECT().Enqueue(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, op models.QueuedOperation) (int64, error) {
			assert.Equal(t, models.OpAddTodo, op.Type)
			assert.Equal(t, int64(3), op.Payload.CaseID)
			assert.Negative(t, op.Payload.TodoID)
			assert.Equal(t, "call owner", op.Payload.TodoText)
			return 7, nil
		})
	m.cache.EXPECT().GetList(ctx, "alice").Return(nil, store.ErrCacheMiss)
	m.cache.EXPECT().GetDetail(ctx, "alice", int64(3)).Return(models.SurgeryCase{}, store.ErrCacheMiss)
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{{ID: 7}}, nil)

	todo, err := engine.AddTodo(ctx, 3, "call owner")

	require.NoError(t, err)
	assert.Negative(t, todo.ID)
	assert.Equal(t, "call owner", todo.Text)
}

func TestDeleteCase_OfflineDropsCachedEntries(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	listed := []models.SurgeryCase{{ID: 3, PatientName: "Rex"}, {ID: 4, PatientName: "Murka"}}

	m.srv.EXPECT().DeleteCase(ctx, int64(3)).Return(errConnRefused)
	m.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(int64(8), nil)
	m.cache.EXPECT().GetList(ctx, "alice").Return(listed, nil)
	m.cache.EXPECT().SaveList(ctx, "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cases []models.SurgeryCase) error {
			require.Len(t, cases, 1)
			assert.Equal(t, int64(4), cases[0].ID)
			return nil
		})
	m.cache.EXPECT().InvalidateDetail(ctx, "alice", int64(3)).Return(nil)
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return([]models.QueuedOperation{{ID: 8}}, nil)

	require.NoError(t, engine.DeleteCase(ctx, 3))
}

func TestEnqueueFailurePropagates(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	diskErr := errors.New("disk I/O error")
	m.srv.EXPECT().DeleteCase(ctx, int64(3)).Return(errConnRefused)
	m.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(int64(0), diskErr)

	err := engine.DeleteCase(ctx, 3)
	require.ErrorIs(t, err, diskErr)
}

// ── Export / import ──────────────────────────────────────────────────────

func TestImportCases_InvalidatesListCache(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	m.srv.EXPECT().ImportCases(ctx, "csv", []byte("data")).Return(3, nil)
	m.cache.EXPECT().InvalidateList(ctx, "alice").Return(nil)

	n, err := engine.ImportCases(ctx, "csv", []byte("data"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// ── Queue management ─────────────────────────────────────────────────────

func TestRemoveOperation_RefreshesSnapshot(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	m.queue.EXPECT().Remove(ctx, int64(5)).Return(nil)
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return(nil, nil)

	require.NoError(t, engine.RemoveOperation(ctx, 5))
	assert.Zero(t, engine.PendingCount())
}

func TestClearAll_RefreshesSnapshot(t *testing.T) {
	engine, m := newAuthedEngine(t)
	ctx := context.Background()

	m.queue.EXPECT().ClearAll(ctx, "alice").Return(nil)
	m.queue.EXPECT().GetPendingOperations(ctx, "alice").Return(nil, nil)

	require.NoError(t, engine.ClearAll(ctx))
}

func TestPendingOperations_ReturnsCopy(t *testing.T) {
	engine, _ := newAuthedEngine(t)
	engine.pending = []models.QueuedOperation{{ID: 1}, {ID: 2}}

	got := engine.PendingOperations()
	require.Len(t, got, 2)

	got[0].ID = 99
	assert.Equal(t, int64(1), engine.pending[0].ID)
}

func TestNextTempID_IsAlwaysNegative(t *testing.T) {
	seen := make(map[int64]struct{})
	for i := 0; i < 100; i++ {
		id := nextTempID()
		assert.Negative(t, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100, "temporary ids do not collide")
}
