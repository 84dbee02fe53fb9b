// Package storage provides the object storage client used by UCS.
//
// The Client uploads and deletes objects of a single bucket and reduces every
// outcome to success or one of two typed errors. It holds configuration only:
// each call obtains a fresh low-level client from a Session, issues exactly one
// request and releases the client before returning.
//
// # Sessions
//
// A Session is the factory for low-level clients. Two are provided:
//
//   - NewS3Session: AWS SDK v2, usable against AWS or any S3-compatible endpoint.
//   - NewMinioSession: minio-go, for self-hosted MinIO instances.
//
// Tests substitute the session with the mocks in core/storage/mocks.
//
// # Errors
//
// Upload succeeds only on status 200 and Delete only on status 204. Everything
// else becomes *UploadError or *DeleteError, whose message never changes:
//
//	It was not possible to upload the file on S3
//	It was not possible to delete the file on S3
//
// The embedded Failure tells an unexpected status code (StatusFailure) apart
// from a request that never got a response (TransportFailure).
//
// # Usage
//
//	client := storage.New(accessKey, secretKey, "eu-west-1", "assets")
//	if err := client.Upload(ctx, data, "images/logo.png"); err != nil {
//	    var uerr *storage.UploadError
//	    if errors.As(err, &uerr) && uerr.Kind == storage.StatusFailure {
//	        log.Printf("status %d", uerr.StatusCode)
//	    }
//	}
package storage
