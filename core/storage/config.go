package storage

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	// DriverS3 selects the AWS SDK v2 session.
	DriverS3 = "s3"
	// DriverMinio selects the minio-go session.
	DriverMinio = "minio"

	defaultTimeout = 30 * time.Second
)

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the transport (s3, minio).
	Driver string `mapstructure:"driver" default:"s3"`
	// Endpoint is the URL of an S3-compatible service. Empty uses AWS.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:"us-east-1"`
	// Bucket is the name of the bucket objects are stored in.
	Bucket string `mapstructure:"bucket" default:""`
	// UseSSL indicates whether the minio driver uses TLS.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// PathStyle enables path-style addressing for the s3 driver.
	PathStyle bool `mapstructure:"path_style" default:"false"`
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// ErrMissingBucket is returned by NewFromConfig when no bucket is configured.
var ErrMissingBucket = errors.New("storage bucket is not configured")

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverS3, DriverMinio:
		return true
	default:
		return false
	}
}

// Timeout returns the transport timeout, defaulting to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// NewFromConfig creates a Client whose session matches cfg.Driver.
func NewFromConfig(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}

	var session Session
	switch cfg.Driver {
	case DriverS3:
		session = NewS3Session(
			WithS3Endpoint(cfg.Endpoint),
			WithPathStyle(cfg.PathStyle),
			WithS3Timeout(cfg.Timeout()),
		)
	case DriverMinio:
		if cfg.Endpoint == "" {
			return nil, errors.New("minio driver requires an endpoint")
		}
		session = NewMinioSession(cfg.Endpoint, cfg.UseSSL, cfg.Timeout())
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}

	return New(cfg.AccessKey, cfg.SecretKey, cfg.Region, cfg.Bucket,
		WithSession(session),
		WithLogger(logger),
	), nil
}
