package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:kvrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

// Both implementations must behave identically; run the same assertions
// against each.
func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	return map[string]Repository{
		"sqlite":   NewSQLiteRepository(setupDB(t)),
		"inmemory": NewInMemoryRepository(),
	}
}

func TestGet_AbsentKeyReturnsNil(t *testing.T) {
	ctx := context.Background()
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			v, err := repo.Get(ctx, "missing")
			require.NoError(t, err)
			require.Nil(t, v)
		})
	}
}

func TestSetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Set(ctx, "cart", []byte("v1")))

			v, err := repo.Get(ctx, "cart")
			require.NoError(t, err)
			require.Equal(t, []byte("v1"), v)

			require.NoError(t, repo.Set(ctx, "cart", []byte("v2")))
			v, err = repo.Get(ctx, "cart")
			require.NoError(t, err)
			require.Equal(t, []byte("v2"), v)
		})
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Set(ctx, "session", []byte("x")))
			require.NoError(t, repo.Delete(ctx, "session"))

			v, err := repo.Get(ctx, "session")
			require.NoError(t, err)
			require.Nil(t, v)

			// Deleting an absent key is not an error.
			require.NoError(t, repo.Delete(ctx, "session"))
		})
	}
}

func TestClear_RemovesEveryKey(t *testing.T) {
	ctx := context.Background()
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Set(ctx, "cart", []byte("a")))
			require.NoError(t, repo.Set(ctx, "session", []byte("b")))
			require.NoError(t, repo.Clear(ctx))

			for _, key := range []string{"cart", "session"} {
				v, err := repo.Get(ctx, key)
				require.NoError(t, err)
				require.Nil(t, v)
			}
		})
	}
}

func TestKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Set(ctx, "cart", []byte("cart-data")))
			require.NoError(t, repo.Set(ctx, "session", []byte("session-data")))
			require.NoError(t, repo.Delete(ctx, "cart"))

			v, err := repo.Get(ctx, "session")
			require.NoError(t, err)
			require.Equal(t, []byte("session-data"), v)
		})
	}
}
