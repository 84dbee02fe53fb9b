package storage

import (
	"context"
	"net"
	"net/http"
	"time"
)

// ServiceName is the service identifier passed to Session.CreateClient.
const ServiceName = "s3"

// ACLPublicRead is the canned ACL applied to every uploaded object.
const ACLPublicRead = "public-read"

// ClientParams are the connection parameters handed to the session factory
// on every call.
type ClientParams struct {
	// Region is the region of the bucket (e.g., us-east-1).
	Region string
	// SecretAccessKey is the secret part of the credentials.
	SecretAccessKey string
	// AccessKeyID is the access key ID of the credentials.
	AccessKeyID string
}

// PutObjectRequest describes a single "put object" call.
type PutObjectRequest struct {
	Bucket string
	Key    string
	Body   []byte
	ACL    string
}

// DeleteObjectRequest describes a single "delete object" call.
type DeleteObjectRequest struct {
	Bucket string
	Key    string
}

// ResponseMetadata is the status envelope of a service response.
type ResponseMetadata struct {
	// HTTPStatusCode is the status code returned by the service.
	// Zero means the response carried no status metadata.
	HTTPStatusCode int
	// RequestID is the service request id, when the service returned one.
	RequestID string
}

// ObjectAPI is a low-level client scoped to a single operation.
//
// Any response produced by the service, error responses included, is
// reported through ResponseMetadata with a nil error. A non-nil error means
// the request never produced a response.
type ObjectAPI interface {
	// PutObject stores the request body under the given key.
	PutObject(ctx context.Context, req *PutObjectRequest) (ResponseMetadata, error)
	// DeleteObject removes the given key.
	DeleteObject(ctx context.Context, req *DeleteObjectRequest) (ResponseMetadata, error)
	// Close releases the resources held by the client.
	Close() error
}

// Session creates low-level clients for a storage service.
type Session interface {
	// CreateClient returns a fresh client configured with params.
	// The caller must Close it when the operation ends.
	CreateClient(ctx context.Context, service string, params ClientParams) (ObjectAPI, error)
}

// newTransport builds the private HTTP transport of a per-call client.
func newTransport(timeout time.Duration) *http.Transport {
	tr := &http.Transport{}
	tuneTransport(tr, timeout)
	return tr
}

// tuneTransport applies the connection settings of a per-call client.
// TLS settings are left alone so SDK options such as a custom CA bundle
// still apply.
func tuneTransport(tr *http.Transport, timeout time.Duration) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	tr.Proxy = http.ProxyFromEnvironment
	tr.DialContext = (&net.Dialer{
		Timeout:   timeout, // Connection setup timeout
		KeepAlive: 30 * time.Second,
	}).DialContext
	tr.ForceAttemptHTTP2 = true
	tr.MaxIdleConns = 100
	tr.IdleConnTimeout = 90 * time.Second
	tr.TLSHandshakeTimeout = timeout
	tr.ExpectContinueTimeout = 1 * time.Second
	tr.ResponseHeaderTimeout = timeout // Wait for first response byte timeout
}
