// Package objects exposes the storage client over HTTP.
//
// Every request performs exactly one storage call. Failures surface as 502
// with the fixed storage message; the underlying cause is logged with the
// request's ray id, never returned.
//
// # Activity Ledger
//
// When a database is available, each upload and delete attempt is recorded
// (operation, key, size, outcome, failure kind, status code, ray id). Ledger
// errors are logged and never change the response.
//
// # Components
//
//   - Service: Calls the store and records activity.
//   - Handler: Exposes the HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - PUT /objects/*key : Upload the request body (public-read).
//   - DELETE /objects/*key : Delete the object.
//   - GET /objects/activity?limit=N : Recent activity, newest first.
package objects
