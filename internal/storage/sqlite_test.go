package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luoyh/lovestory/internal/logging"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db))
	return db
}

func TestSQLiteKV_SetAndGet(t *testing.T) {
	r := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte(`{"a":1}`)))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"a":1}`), v)
}

func TestSQLiteKV_Get_Absent_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteKV(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteKV_Set_UpsertOverwrites(t *testing.T) {
	r := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestSQLiteKV_Delete(t *testing.T) {
	r := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("v")))
	require.NoError(t, r.Delete(ctx, "k"))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)

	// Deleting an absent key is not an error.
	require.NoError(t, r.Delete(ctx, "k"))
}

func TestSQLiteKV_List(t *testing.T) {
	r := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Set(ctx, "b", []byte("2")))

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, all)
}

func TestGateway_OverSQLite_EndToEnd(t *testing.T) {
	kv := NewSQLiteKV(setupDB(t))
	ctx := context.Background()

	g := NewGateway(ctx, kv, logging.NewDiscard())
	require.True(t, g.Available())

	require.True(t, g.Set(ctx, "k", []string{"x", "y"}))
	assert.Equal(t, []string{"x", "y"}, Get(ctx, g, "k", []string(nil)))
}
