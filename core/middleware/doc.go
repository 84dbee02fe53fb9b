// Package middleware groups the Fiber middleware shared by every route.
//
// # Components
//
//   - rayid: Tags each request with an X-Ray-ID (taken from the client or
//     generated) so the storage failure logs of one request can be found.
//   - auth: Rejects requests without the configured X-API-Key. An empty key
//     turns the check off.
//
// The start command registers rayid first, then request logging, then auth.
package middleware
