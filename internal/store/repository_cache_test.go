package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetward/vetward/internal/logger"
	"github.com/vetward/vetward/models"
)

func newTestCache(t *testing.T) CaseCacheRepository {
	t.Helper()
	return NewCaseCacheRepository(newTestStore(t), logger.Nop())
}

func testCases() []models.SurgeryCase {
	return []models.SurgeryCase{
		{ID: 1, PatientName: "Rex", Species: "canine", Procedure: "castration", ConsentSigned: true},
		{ID: 2, PatientName: "Murka", Species: "feline", Procedure: "dental cleaning",
			Todos: []models.TodoItem{{ID: 10, Text: "fasting reminder call"}}},
	}
}

func TestCaseCache_ListRoundTrip(t *testing.T) {
	repo := newTestCache(t)
	ctx := context.Background()

	_, err := repo.GetList(ctx, "alice")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, repo.SaveList(ctx, "alice", testCases()))

	got, err := repo.GetList(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Rex", got[0].PatientName)
	assert.True(t, got[0].ConsentSigned)
	require.Len(t, got[1].Todos, 1)
	assert.Equal(t, "fasting reminder call", got[1].Todos[0].Text)
}

func TestCaseCache_SaveListOverwrites(t *testing.T) {
	repo := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveList(ctx, "alice", testCases()))
	require.NoError(t, repo.SaveList(ctx, "alice", testCases()[:1]))

	got, err := repo.GetList(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestCaseCache_HasList(t *testing.T) {
	repo := newTestCache(t)
	ctx := context.Background()

	has, err := repo.HasList(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.SaveList(ctx, "alice", testCases()))

	has, err = repo.HasList(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, has)

	// an empty cached list does not count as usable data
	require.NoError(t, repo.SaveList(ctx, "alice", nil))

	has, err = repo.HasList(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCaseCache_DetailRoundTrip(t *testing.T) {
	repo := newTestCache(t)
	ctx := context.Background()

	_, err := repo.GetDetail(ctx, "alice", 1)
	require.ErrorIs(t, err, ErrCacheMiss)

	c := testCases()[0]
	require.NoError(t, repo.SaveDetail(ctx, "alice", c.ID, c))

	got, err := repo.GetDetail(ctx, "alice", c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.PatientName, got.PatientName)
	assert.Equal(t, c.Procedure, got.Procedure)
}

func TestCaseCache_DetailScopedByPrincipal(t *testing.T) {
	repo := newTestCache(t)
	ctx := context.Background()

	c := testCases()[0]
	require.NoError(t, repo.SaveDetail(ctx, "alice", c.ID, c))

	_, err := repo.GetDetail(ctx, "bob", c.ID)
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestCaseCache_Invalidate(t *testing.T) {
	repo := newTestCache(t)
	ctx := context.Background()

	c := testCases()[0]
	require.NoError(t, repo.SaveList(ctx, "alice", testCases()))
	require.NoError(t, repo.SaveDetail(ctx, "alice", c.ID, c))

	require.NoError(t, repo.InvalidateList(ctx, "alice"))
	_, err := repo.GetList(ctx, "alice")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, repo.InvalidateDetail(ctx, "alice", c.ID))
	_, err = repo.GetDetail(ctx, "alice", c.ID)
	require.ErrorIs(t, err, ErrCacheMiss)

	// invalidating missing entries is fine
	require.NoError(t, repo.InvalidateList(ctx, "alice"))
	require.NoError(t, repo.InvalidateDetail(ctx, "alice", 999))
}

func TestCaseCache_ClearForPrincipal(t *testing.T) {
	repo := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveList(ctx, "alice", testCases()))
	require.NoError(t, repo.SaveDetail(ctx, "alice", 1, testCases()[0]))
	require.NoError(t, repo.SaveList(ctx, "bob", testCases()[:1]))

	require.NoError(t, repo.ClearForPrincipal(ctx, "alice"))

	_, err := repo.GetList(ctx, "alice")
	require.ErrorIs(t, err, ErrCacheMiss)
	_, err = repo.GetDetail(ctx, "alice", 1)
	require.ErrorIs(t, err, ErrCacheMiss)

	got, err := repo.GetList(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestCaseCache_ClearAll(t *testing.T) {
	repo := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveList(ctx, "alice", testCases()))
	require.NoError(t, repo.SaveList(ctx, "bob", testCases()))

	require.NoError(t, repo.ClearAll(ctx))

	_, err := repo.GetList(ctx, "alice")
	require.ErrorIs(t, err, ErrCacheMiss)
	_, err = repo.GetList(ctx, "bob")
	require.ErrorIs(t, err, ErrCacheMiss)
}
