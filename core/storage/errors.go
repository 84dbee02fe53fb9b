package storage

const (
	// UploadErrorMessage is the message of every UploadError.
	UploadErrorMessage = "It was not possible to upload the file on S3"
	// DeleteErrorMessage is the message of every DeleteError.
	DeleteErrorMessage = "It was not possible to delete the file on S3"
)

// FailureKind tells why an operation did not succeed.
type FailureKind int

const (
	// StatusFailure means the service answered with an unexpected status code.
	StatusFailure FailureKind = iota + 1
	// TransportFailure means the request failed before a response was received.
	TransportFailure
)

// String returns the log representation of the kind.
func (k FailureKind) String() string {
	switch k {
	case StatusFailure:
		return "status"
	case TransportFailure:
		return "transport"
	default:
		return "unknown"
	}
}

// Failure carries the diagnostic context of a failed operation.
// It never changes the message of the error it is attached to.
type Failure struct {
	// Kind is the failure cause.
	Kind FailureKind
	// StatusCode is the unexpected status code (StatusFailure only).
	StatusCode int
	// RequestID is the service request id, if any.
	RequestID string
	// Cause is the transport error (TransportFailure only).
	Cause error
}

// UploadError is returned when an upload does not conclusively succeed.
type UploadError struct {
	Failure
}

func (e *UploadError) Error() string {
	return UploadErrorMessage
}

// Unwrap returns the transport error, if any.
func (e *UploadError) Unwrap() error {
	return e.Cause
}

// DeleteError is returned when a delete does not conclusively succeed.
type DeleteError struct {
	Failure
}

func (e *DeleteError) Error() string {
	return DeleteErrorMessage
}

// Unwrap returns the transport error, if any.
func (e *DeleteError) Unwrap() error {
	return e.Cause
}

// classify maps a round trip outcome to a Failure, or nil on success.
func classify(meta ResponseMetadata, err error, want int) *Failure {
	switch {
	case err != nil:
		return &Failure{Kind: TransportFailure, Cause: err}
	case meta.HTTPStatusCode != want:
		return &Failure{Kind: StatusFailure, StatusCode: meta.HTTPStatusCode, RequestID: meta.RequestID}
	default:
		return nil
	}
}
