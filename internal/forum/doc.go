// Package forum provides a typed HTTP client for the forum REST API.
//
// # Overview
//
// The package defines the wire schemas for users, posts, and comments and a
// Client exposing one method per remote resource. Responses are decoded at
// the boundary into these schemas; a shape mismatch surfaces as a decode
// error rather than passing through unchecked.
//
// # Endpoints
//
//   - GET    /users                 list users
//   - GET    /posts                 list posts
//   - POST   /posts                 create post (server assigns id)
//   - GET    /posts/{id}/comments   list comments for a post
//   - POST   /comments              create comment
//   - DELETE /posts/{id}            delete post
//   - PUT    /users/{id}            update user
//
// # Error Handling
//
// The client distinguishes three failure kinds:
//
//   - *RequestError: the transport succeeded but the server answered with a
//     non-2xx status. Carries the status code and the requested path.
//   - Transport errors: the request could not be completed at all
//     (connection refused, timeout, DNS). Wrapped with context.
//   - Decode errors: the response body did not match the expected schema.
//
// Callers can pick out server rejections with errors.As on *RequestError.
//
// # Admin Derivation
//
// FetchUsers attaches the derived IsAdmin flag before returning: it is true
// for exactly one user, the one holding the smallest id in the fetched set.
// The flag is a data-shaping concern of how users are surfaced and is never
// sent to or stored on the server.
//
// # Design Rationale
//
// The client is intentionally minimal: no retries, no caching, no
// per-request timeout knobs (the http.Client carries a single timeout).
// Refresh cadence and caching are store-level concerns.
package forum
