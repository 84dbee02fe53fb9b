package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"ucs/core/storage"
	"ucs/feature/objects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv points the commands at a fake S3 endpoint and an in-memory ledger.
func setupEnv(t *testing.T, endpoint string) string {
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("STORAGE_ENDPOINT", endpoint)
	t.Setenv("STORAGE_PATH_STYLE", "true")
	t.Setenv("STORAGE_ACCESS_KEY", "key")
	t.Setenv("STORAGE_SECRET_KEY", "secret")
	t.Setenv("STORAGE_REGION", "us-east-1")
	t.Setenv("STORAGE_BUCKET", "bucket")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_NAME", ":memory:")
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func run(args ...string) error {
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func TestBootstrap(t *testing.T) {
	t.Run("MissingBucket", func(t *testing.T) {
		configDir = setupEnv(t, "")
		t.Setenv("STORAGE_BUCKET", "")

		_, err := bootstrap()
		assert.ErrorIs(t, err, storage.ErrMissingBucket)
	})

	t.Run("WithoutDatabase", func(t *testing.T) {
		configDir = setupEnv(t, "")
		t.Setenv("DATABASE_DRIVER", "")
		t.Setenv("DATABASE_HOST", "db.invalid")

		rt, err := bootstrap()
		require.NoError(t, err)
		assert.Nil(t, rt.db)

		_, err = rt.service().Activity(context.Background(), 10)
		assert.ErrorIs(t, err, objects.ErrLedgerDisabled)
	})

	t.Run("WithLedger", func(t *testing.T) {
		configDir = setupEnv(t, "")

		rt, err := bootstrap()
		require.NoError(t, err)
		require.NotNil(t, rt.db)
		assert.Equal(t, "bucket", rt.client.Bucket())

		entries, err := rt.service().Activity(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestUploadCmd(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		dir := setupEnv(t, "")

		err := run("upload", "--config-dir", dir, filepath.Join(dir, "nope.bin"), "k")
		assert.ErrorContains(t, err, "failed to read")
	})

	t.Run("Uploads", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/bucket/docs/a.txt", r.URL.Path)
			assert.Equal(t, "public-read", r.Header.Get("x-amz-acl"))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		dir := setupEnv(t, srv.URL)
		file := filepath.Join(dir, "a.txt")
		require.NoError(t, os.WriteFile(file, []byte("hello"), 0o600))

		require.NoError(t, run("upload", "--config-dir", dir, file, "docs/a.txt"))
		assert.Equal(t, int32(1), hits.Load())
	})
}

func TestDeleteCmd(t *testing.T) {
	t.Run("Deletes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		dir := setupEnv(t, srv.URL)
		assert.NoError(t, run("delete", "--config-dir", dir, "k"))
	})

	t.Run("UnexpectedStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		dir := setupEnv(t, srv.URL)
		err := run("delete", "--config-dir", dir, "k")

		var derr *storage.DeleteError
		require.ErrorAs(t, err, &derr)
		assert.EqualError(t, err, storage.DeleteErrorMessage)
		assert.Equal(t, http.StatusOK, derr.StatusCode)
	})
}
