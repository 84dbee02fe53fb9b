package objects

import (
	"context"
	"errors"
	"testing"

	"ucs/core/storage"
	"ucs/feature/objects/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestService_Upload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := new(mockStore)
		ledger := setupLedger(t)
		svc := NewService(store, ledger, zap.NewNop())
		payload := []byte("hello")

		store.On("Upload", mock.Anything, payload, "dir/file.txt").Return(nil)

		err := svc.Upload(context.Background(), payload, "dir/file.txt", "ray-1")
		require.NoError(t, err)

		entries, err := svc.Activity(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.OperationUpload, entries[0].Operation)
		assert.Equal(t, testBucket, entries[0].Bucket)
		assert.Equal(t, "dir/file.txt", entries[0].Key)
		assert.Equal(t, len(payload), entries[0].Size)
		assert.Equal(t, models.OutcomeSuccess, entries[0].Outcome)
		assert.Equal(t, "ray-1", entries[0].RayID)
		assert.Empty(t, entries[0].Kind)
		store.AssertExpectations(t)
	})

	t.Run("StatusFailure", func(t *testing.T) {
		store := new(mockStore)
		ledger := setupLedger(t)
		svc := NewService(store, ledger, zap.NewNop())
		want := &storage.UploadError{Failure: storage.Failure{Kind: storage.StatusFailure, StatusCode: 500}}

		store.On("Upload", mock.Anything, mock.Anything, "k").Return(want)

		err := svc.Upload(context.Background(), []byte("x"), "k", "")
		assert.Same(t, want, err)
		assert.EqualError(t, err, storage.UploadErrorMessage)

		entries, err := svc.Activity(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.OutcomeFailure, entries[0].Outcome)
		assert.Equal(t, "status", entries[0].Kind)
		assert.Equal(t, 500, entries[0].StatusCode)
	})

	t.Run("NoLedger", func(t *testing.T) {
		store := new(mockStore)
		svc := NewService(store, nil, zap.NewNop())

		store.On("Upload", mock.Anything, mock.Anything, "k").Return(nil)

		require.NoError(t, svc.Upload(context.Background(), nil, "k", ""))
		_, err := svc.Activity(context.Background(), 10)
		assert.ErrorIs(t, err, ErrLedgerDisabled)
	})

	t.Run("LedgerFailureDoesNotChangeResult", func(t *testing.T) {
		store := new(mockStore)
		db, sqlMock := setupMockDB(t)
		core, logs := observer.New(zap.WarnLevel)
		svc := NewService(store, NewLedger(db), zap.New(core))

		store.On("Upload", mock.Anything, mock.Anything, "k").Return(nil)
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("INSERT INTO `object_activity`").WillReturnError(errors.New("db down"))
		sqlMock.ExpectRollback()

		err := svc.Upload(context.Background(), []byte("x"), "k", "")
		assert.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("Failed to record object activity").Len())
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := new(mockStore)
		ledger := setupLedger(t)
		svc := NewService(store, ledger, zap.NewNop())

		store.On("Delete", mock.Anything, "k").Return(nil)

		require.NoError(t, svc.Delete(context.Background(), "k", "ray-2"))

		entries, err := svc.Activity(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.OperationDelete, entries[0].Operation)
		assert.Equal(t, models.OutcomeSuccess, entries[0].Outcome)
		assert.Zero(t, entries[0].Size)
	})

	t.Run("TransportFailure", func(t *testing.T) {
		store := new(mockStore)
		ledger := setupLedger(t)
		svc := NewService(store, ledger, zap.NewNop())
		cause := errors.New("connection refused")
		want := &storage.DeleteError{Failure: storage.Failure{Kind: storage.TransportFailure, Cause: cause}}

		store.On("Delete", mock.Anything, "k").Return(want)

		err := svc.Delete(context.Background(), "k", "")
		assert.EqualError(t, err, storage.DeleteErrorMessage)
		assert.ErrorIs(t, err, cause)

		entries, err := svc.Activity(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.OutcomeFailure, entries[0].Outcome)
		assert.Equal(t, "transport", entries[0].Kind)
		assert.Zero(t, entries[0].StatusCode)
	})

	t.Run("UntypedError", func(t *testing.T) {
		store := new(mockStore)
		ledger := setupLedger(t)
		svc := NewService(store, ledger, zap.NewNop())

		store.On("Delete", mock.Anything, "k").Return(errors.New("boom"))

		assert.EqualError(t, svc.Delete(context.Background(), "k", ""), "boom")

		entries, err := svc.Activity(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.OutcomeFailure, entries[0].Outcome)
		assert.Empty(t, entries[0].Kind)
	})
}
