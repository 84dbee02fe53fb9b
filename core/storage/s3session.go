package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// S3Option configures the AWS session.
type S3Option func(*s3Session)

// WithS3Endpoint sets a custom endpoint URL for S3-compatible services
// (MinIO, LocalStack, R2). Empty keeps the AWS endpoint.
func WithS3Endpoint(endpoint string) S3Option {
	return func(s *s3Session) {
		s.endpoint = endpoint
	}
}

// WithPathStyle enables path-style addressing.
func WithPathStyle(enabled bool) S3Option {
	return func(s *s3Session) {
		s.pathStyle = enabled
	}
}

// WithS3Timeout sets the dial, TLS handshake and response header timeouts
// of the per-call transport.
func WithS3Timeout(timeout time.Duration) S3Option {
	return func(s *s3Session) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// s3Session creates AWS SDK v2 clients.
type s3Session struct {
	endpoint  string
	pathStyle bool
	timeout   time.Duration
}

// NewS3Session returns the AWS SDK v2 session.
//
// Clients are built with SDK retries disabled, so every call performs at
// most one attempt. With both keys set, the client is built from the call
// parameters only. When the access key or secret is empty, configuration
// and credentials come from the SDK default chain (environment, shared
// files, IMDS).
func NewS3Session(opts ...S3Option) Session {
	s := &s3Session{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *s3Session) CreateClient(ctx context.Context, service string, params ClientParams) (ObjectAPI, error) {
	if service != ServiceName {
		return nil, fmt.Errorf("unsupported service %q", service)
	}

	if params.AccessKeyID != "" && params.SecretAccessKey != "" {
		return s.staticClient(params), nil
	}
	return s.defaultChainClient(ctx, params)
}

// staticClient builds the client from params alone; the process
// environment and shared config files are not read.
func (s *s3Session) staticClient(params ClientParams) ObjectAPI {
	transport := newTransport(s.timeout)

	opts := s3.Options{
		Region:       params.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(params.AccessKeyID, params.SecretAccessKey, ""),
		HTTPClient:   &http.Client{Transport: transport},
		Retryer:      aws.NopRetryer{},
		UsePathStyle: s.pathStyle,
	}
	if s.endpoint != "" {
		opts.BaseEndpoint = aws.String(s.endpoint)
	}

	transports := &transportSet{}
	transports.add(transport)
	return &s3ObjectAPI{client: s3.New(opts), transports: transports}
}

// defaultChainClient resolves credentials through the SDK default chain.
// The HTTP client must stay buildable so shared settings like AWS_CA_BUNDLE
// can extend its transport.
func (s *s3Session) defaultChainClient(ctx context.Context, params ClientParams) (ObjectAPI, error) {
	transports := &transportSet{}
	httpClient := awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
		tuneTransport(tr, s.timeout)
		transports.add(tr)
	})

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(params.Region),
		config.WithHTTPClient(httpClient),
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s.endpoint != "" {
			o.BaseEndpoint = aws.String(s.endpoint)
		}
		o.UsePathStyle = s.pathStyle
	})

	return &s3ObjectAPI{client: client, transports: transports}, nil
}

// transportSet tracks the transports built for one client.
type transportSet struct {
	mu   sync.Mutex
	list []*http.Transport
}

func (t *transportSet) add(tr *http.Transport) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.list = append(t.list, tr)
}

func (t *transportSet) CloseIdleConnections() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tr := range t.list {
		tr.CloseIdleConnections()
	}
}

// s3ObjectAPI adapts *s3.Client to ObjectAPI.
type s3ObjectAPI struct {
	client     *s3.Client
	transports *transportSet
}

func (a *s3ObjectAPI) PutObject(ctx context.Context, req *PutObjectRequest) (ResponseMetadata, error) {
	out, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(req.Bucket),
		Key:    aws.String(req.Key),
		Body:   bytes.NewReader(req.Body),
		ACL:    types.ObjectCannedACL(req.ACL),
	})
	if err != nil {
		return responseErrorMetadata(err)
	}
	return resultMetadata(out.ResultMetadata), nil
}

func (a *s3ObjectAPI) DeleteObject(ctx context.Context, req *DeleteObjectRequest) (ResponseMetadata, error) {
	out, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(req.Bucket),
		Key:    aws.String(req.Key),
	})
	if err != nil {
		return responseErrorMetadata(err)
	}
	return resultMetadata(out.ResultMetadata), nil
}

func (a *s3ObjectAPI) Close() error {
	a.transports.CloseIdleConnections()
	return nil
}

// resultMetadata reads the status of a successful SDK call.
func resultMetadata(md middleware.Metadata) ResponseMetadata {
	var meta ResponseMetadata
	if raw, ok := awsmiddleware.GetRawResponse(md).(*smithyhttp.Response); ok && raw != nil {
		meta.HTTPStatusCode = raw.StatusCode
	}
	if id, ok := awsmiddleware.GetRequestIDMetadata(md); ok {
		meta.RequestID = id
	}
	return meta
}

// responseErrorMetadata turns a service error response into metadata.
// Errors without a response, and failures to decode a 2xx response, are
// returned unchanged.
func responseErrorMetadata(err error) (ResponseMetadata, error) {
	// S3 wraps *awshttp.ResponseError in its own type, so match on behavior.
	var respErr interface{ HTTPStatusCode() int }
	if !errors.As(err, &respErr) || respErr.HTTPStatusCode() < http.StatusMultipleChoices {
		return ResponseMetadata{}, err
	}

	meta := ResponseMetadata{HTTPStatusCode: respErr.HTTPStatusCode()}
	var idErr interface{ ServiceRequestID() string }
	if errors.As(err, &idErr) {
		meta.RequestID = idErr.ServiceRequestID()
	}
	return meta, nil
}
