package storage

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Client uploads and deletes objects of a single bucket.
//
// A Client holds configuration only. Every operation acquires its own
// low-level client from the Session and releases it before returning, so a
// Client is safe for concurrent use.
type Client struct {
	bucket  string
	params  ClientParams
	session Session
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithSession sets the session used to create per-call clients.
func WithSession(session Session) Option {
	return func(c *Client) {
		if session != nil {
			c.session = session
		}
	}
}

// WithLogger sets the logger used to report failed operations.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client for bucket. No network activity happens here.
func New(accessKey, secretKey, region, bucket string, opts ...Option) *Client {
	c := &Client{
		bucket: bucket,
		params: ClientParams{
			Region:          region,
			SecretAccessKey: secretKey,
			AccessKeyID:     accessKey,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.session == nil {
		c.session = NewS3Session()
	}
	return c
}

// Bucket returns the target bucket.
func (c *Client) Bucket() string {
	return c.bucket
}

// Params returns the parameters handed to the session on every call.
func (c *Client) Params() ClientParams {
	return c.params
}

// Upload stores payload under key with a public-read ACL.
// Any outcome other than status 200 is reported as *UploadError.
func (c *Client) Upload(ctx context.Context, payload []byte, key string) error {
	meta, err := c.roundTrip(ctx, func(api ObjectAPI) (ResponseMetadata, error) {
		return api.PutObject(ctx, &PutObjectRequest{
			Bucket: c.bucket,
			Key:    key,
			Body:   payload,
			ACL:    ACLPublicRead,
		})
	})

	if f := classify(meta, err, http.StatusOK); f != nil {
		c.logFailure("upload", key, f)
		return &UploadError{Failure: *f}
	}

	c.logger.Debug("Object uploaded", zap.String("bucket", c.bucket), zap.String("key", key), zap.Int("size", len(payload)))
	return nil
}

// Delete removes key from the bucket.
// Any outcome other than status 204 is reported as *DeleteError.
func (c *Client) Delete(ctx context.Context, key string) error {
	meta, err := c.roundTrip(ctx, func(api ObjectAPI) (ResponseMetadata, error) {
		return api.DeleteObject(ctx, &DeleteObjectRequest{
			Bucket: c.bucket,
			Key:    key,
		})
	})

	if f := classify(meta, err, http.StatusNoContent); f != nil {
		c.logFailure("delete", key, f)
		return &DeleteError{Failure: *f}
	}

	c.logger.Debug("Object deleted", zap.String("bucket", c.bucket), zap.String("key", key))
	return nil
}

// roundTrip runs fn against a client that lives for this call only.
func (c *Client) roundTrip(ctx context.Context, fn func(ObjectAPI) (ResponseMetadata, error)) (ResponseMetadata, error) {
	api, err := c.session.CreateClient(ctx, ServiceName, c.params)
	if err != nil {
		return ResponseMetadata{}, err
	}
	defer func() {
		if cerr := api.Close(); cerr != nil {
			c.logger.Debug("Failed to release storage client", zap.Error(cerr))
		}
	}()

	return fn(api)
}

func (c *Client) logFailure(op, key string, f *Failure) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("bucket", c.bucket),
		zap.String("key", key),
		zap.Stringer("kind", f.Kind),
	}
	if f.Kind == StatusFailure {
		fields = append(fields, zap.Int("status_code", f.StatusCode), zap.String("request_id", f.RequestID))
	} else {
		fields = append(fields, zap.Error(f.Cause))
	}
	c.logger.Warn("Storage operation failed", fields...)
}
