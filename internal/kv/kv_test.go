package kv_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/saadjs/fitmentor/internal/db"
	"github.com/saadjs/fitmentor/internal/kv"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

func newSQLite(t *testing.T, quota int64) *kv.SQLite {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "fitmentor.db"))
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations(sqldb))
	store := kv.NewSQLite(sqldb, quota)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func exerciseStore(t *testing.T, store kv.Store) {
	t.Helper()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("fitness_mentor_version", "1.0.0"))
	v, ok, err := store.Get("fitness_mentor_version")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1.0.0", v)

	require.NoError(t, store.Set("fitness_mentor_version", "1.0.1"))
	v, _, err = store.Get("fitness_mentor_version")
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", v)

	require.NoError(t, store.Remove("fitness_mentor_version"))
	require.NoError(t, store.Remove("fitness_mentor_version"))
	_, ok, err = store.Get("fitness_mentor_version")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, kv.NewMemory(0))
}

func TestSQLiteStore(t *testing.T) {
	exerciseStore(t, newSQLite(t, 0))
}

func TestMemoryQuota(t *testing.T) {
	store := kv.NewMemory(20)

	require.NoError(t, store.Set("a", "0123456789"))
	assert.EqualValues(t, 11, store.Used())

	err := store.Set("b", "0123456789")
	require.Error(t, err)
	assert.True(t, errors.Is(err, kv.ErrQuotaExceeded))

	// replacing a value only counts the difference
	require.NoError(t, store.Set("a", "01234567890123456789"[:19]))
	assert.EqualValues(t, 20, store.Used())

	require.NoError(t, store.Remove("a"))
	assert.EqualValues(t, 0, store.Used())
	require.NoError(t, store.Set("b", "0123456789"))
}

func TestSQLiteQuota(t *testing.T) {
	store := newSQLite(t, 20)

	require.NoError(t, store.Set("a", "0123456789"))
	err := store.Set("b", "0123456789")
	assert.ErrorIs(t, err, kv.ErrQuotaExceeded)

	_, ok, err := store.Get("b")
	require.NoError(t, err)
	assert.False(t, ok, "rejected write must not be stored")

	require.NoError(t, store.Set("a", "012345678901234567"))
}

func TestRedisStore(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := kv.NewRedis(client, 0)
	defer store.Close()

	mock.ExpectGet("fitness_mentor_profile").RedisNil()
	_, ok, err := store.Get("fitness_mentor_profile")
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectSet("fitness_mentor_profile", `{"name":"Ana"}`, 0).SetVal("OK")
	require.NoError(t, store.Set("fitness_mentor_profile", `{"name":"Ana"}`))

	mock.ExpectGet("fitness_mentor_profile").SetVal(`{"name":"Ana"}`)
	v, ok, err := store.Get("fitness_mentor_profile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"name":"Ana"}`, v)

	mock.ExpectDel("fitness_mentor_profile").SetVal(1)
	require.NoError(t, store.Remove("fitness_mentor_profile"))

	mock.ExpectSet("fitness_mentor_meals", "{}", 0).SetErr(errors.New("OOM command not allowed"))
	err = store.Set("fitness_mentor_meals", "{}")
	require.ErrorIs(t, err, kv.ErrQuotaExceeded)
	assert.Contains(t, err.Error(), "OOM")

	assert.NoError(t, mock.ExpectationsWereMet())
}
