package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

func testRun(id string, completed time.Time) *domain.RunRecord {
	responses := domain.NewResponseSet()
	responses.Ratings["q1"] = 4
	responses.Open["qo4_genres"] = domain.OpenAnswer{Items: []string{"rock"}}
	return &domain.RunRecord{ID: id, CompletedAt: completed, Responses: responses}
}

func TestRunStore_SaveAndGet(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testRun("a", time.Now())))

	run, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 4, run.Responses.Ratings["q1"])
}

func TestRunStore_Get_NotFound(t *testing.T) {
	_, err := NewRunStore().Get(context.Background(), "missing")

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRunStore_IsolatedFromCaller(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()
	run := testRun("a", time.Now())
	require.NoError(t, store.Save(ctx, run))

	run.Responses.Open["qo4_genres"].Items[0] = "jazz"
	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	got.Responses.Ratings["q1"] = 1

	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "rock", again.Responses.Open["qo4_genres"].Items[0])
	assert.Equal(t, 4, again.Responses.Ratings["q1"])
}

func TestRunStore_List(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()
	base := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, store.Save(ctx, testRun(id, base.Add(time.Duration(i)*time.Minute))))
	}

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	ids := make([]string, len(all))
	for i, r := range all {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"third", "second", "first"}, ids)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRunStore_Delete(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testRun("a", time.Now())))

	require.NoError(t, store.Delete(ctx, "a"))
	assert.True(t, errors.Is(store.Delete(ctx, "a"), domain.ErrNotFound))
}
