package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioSession creates minio-go clients for S3-compatible services.
type minioSession struct {
	endpoint string
	useSSL   bool
	timeout  time.Duration
}

// NewMinioSession returns a session backed by minio-go.
// The endpoint may carry an http:// or https:// scheme; it is stripped.
func NewMinioSession(endpoint string, useSSL bool, timeout time.Duration) Session {
	// Minio expects endpoint without scheme
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &minioSession{
		endpoint: endpoint,
		useSSL:   useSSL,
		timeout:  timeout,
	}
}

func (s *minioSession) CreateClient(ctx context.Context, service string, params ClientParams) (ObjectAPI, error) {
	if service != ServiceName {
		return nil, fmt.Errorf("unsupported service %q", service)
	}

	transport := newTransport(s.timeout)

	client, err := minio.New(s.endpoint, &minio.Options{
		Creds:      credentials.NewStaticV4(params.AccessKeyID, params.SecretAccessKey, ""),
		Secure:     s.useSSL,
		Region:     params.Region,
		Transport:  transport,
		MaxRetries: 1,
	})
	if err != nil {
		transport.CloseIdleConnections()
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioObjectAPI{client: client, transport: transport}, nil
}

// minioObjectAPI adapts *minio.Client to ObjectAPI.
//
// minio-go only reports success for the exact status it expects (200 for a
// put, 204 for a remove), so success maps to those codes.
type minioObjectAPI struct {
	client    *minio.Client
	transport *http.Transport
}

func (a *minioObjectAPI) PutObject(ctx context.Context, req *PutObjectRequest) (ResponseMetadata, error) {
	opts := minio.PutObjectOptions{}
	if req.ACL != "" {
		// x-amz-* keys are sent as headers, not as user metadata.
		opts.UserMetadata = map[string]string{"x-amz-acl": req.ACL}
	}

	_, err := a.client.PutObject(ctx, req.Bucket, req.Key, bytes.NewReader(req.Body), int64(len(req.Body)), opts)
	if err != nil {
		return minioErrorMetadata(err)
	}
	return ResponseMetadata{HTTPStatusCode: http.StatusOK}, nil
}

func (a *minioObjectAPI) DeleteObject(ctx context.Context, req *DeleteObjectRequest) (ResponseMetadata, error) {
	err := a.client.RemoveObject(ctx, req.Bucket, req.Key, minio.RemoveObjectOptions{})
	if err != nil {
		return minioErrorMetadata(err)
	}
	return ResponseMetadata{HTTPStatusCode: http.StatusNoContent}, nil
}

func (a *minioObjectAPI) Close() error {
	a.transport.CloseIdleConnections()
	return nil
}

// minioErrorMetadata turns a minio error response into metadata.
func minioErrorMetadata(err error) (ResponseMetadata, error) {
	var errResp minio.ErrorResponse
	if errors.As(err, &errResp) && errResp.StatusCode != 0 {
		return ResponseMetadata{
			HTTPStatusCode: errResp.StatusCode,
			RequestID:      errResp.RequestID,
		}, nil
	}
	return ResponseMetadata{}, err
}
