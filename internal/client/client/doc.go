// Package client is the remote boundary of the ArtLog client.
//
// # Overview
//
//  1. A transport-agnostic contract per entity kind (Gateway, Lister) and
//     the login boundary (AuthClient).
//  2. An HTTP+JSON implementation (HTTPClient, Collection) talking to
//     /{kind}/ and /{kind}/{id}, plus POST /login.
//  3. Local journal bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx replies are returned as
// *StatusError, whose Detail carries the service's `detail` message when
// present; DetailOf extracts it. Undecodable success bodies wrap
// ErrMalformedResponse.
//
// Concurrency & Contexts
//
// HTTPClient and Collection are safe for concurrent use. Every call takes a
// context.Context and honors its cancellation and deadline.
package client
