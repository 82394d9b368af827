// Package client contains the CLI's boundary to the outside world.
//
// # Overview
//
// The package provides:
//  1. The ArrivalStore contract used by the guest service to read and write
//     remote arrival flags, with an HTTP implementation (HTTPClient) for the
//     guestkeeper server and an in-process one (MemoryStore).
//  2. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite file and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable; non-2xx answers surface as
// *HTTPError, whose status StatusCode extracts from a wrapped chain.
package client
