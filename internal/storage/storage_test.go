package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SnapshotRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSnapshotRepo(db)
}

func TestSnapshotRepoMissingKey(t *testing.T) {
	repo := newTestRepo(t)

	data, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSnapshotRepoPutGetDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", []byte(`{"name":"Ana"}`)))
	require.NoError(t, repo.Put(ctx, "k", []byte(`{"name":"Bia"}`)))

	snap, err := repo.GetSnapshot(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, `{"name":"Bia"}`, string(snap.Data))
	assert.EqualValues(t, 2, snap.Revision)
	assert.False(t, snap.UpdatedAt.IsZero())

	require.NoError(t, repo.Delete(ctx, "k"))
	data, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)

	// Deleting again is fine.
	require.NoError(t, repo.Delete(ctx, "k"))
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "twice.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestResolveDBPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := ResolveDBPath("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)

	def, err := ResolveDBPath("")
	require.NoError(t, err)
	assert.Equal(t, ".levelingking.db", filepath.Base(def))
}

func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("LK_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LK_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	cfg := DefaultRedisConfig()
	cfg.Addr = addr
	cfg.Prefix = "lk-test:"
	store, err := OpenRedis(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Delete(ctx, "k")
		_ = store.Close()
	})

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.Put(ctx, "k", []byte("v1")))
	data, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))

	require.NoError(t, store.Delete(ctx, "k"))
	data, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)
}
