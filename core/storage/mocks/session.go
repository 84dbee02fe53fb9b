package mocks

import (
	"context"

	"ucs/core/storage"

	"github.com/stretchr/testify/mock"
)

// Session is a mock implementation of storage.Session
type Session struct {
	mock.Mock
}

func (m *Session) CreateClient(ctx context.Context, service string, params storage.ClientParams) (storage.ObjectAPI, error) {
	args := m.Called(ctx, service, params)
	if api, ok := args.Get(0).(storage.ObjectAPI); ok {
		return api, args.Error(1)
	}
	return nil, args.Error(1)
}

// ObjectAPI is a mock implementation of storage.ObjectAPI
type ObjectAPI struct {
	mock.Mock
}

func (m *ObjectAPI) PutObject(ctx context.Context, req *storage.PutObjectRequest) (storage.ResponseMetadata, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(storage.ResponseMetadata), args.Error(1)
}

func (m *ObjectAPI) DeleteObject(ctx context.Context, req *storage.DeleteObjectRequest) (storage.ResponseMetadata, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(storage.ResponseMetadata), args.Error(1)
}

func (m *ObjectAPI) Close() error {
	args := m.Called()
	return args.Error(0)
}
