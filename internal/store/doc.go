// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, so handlers depend on behavior (and the
// typed error taxonomy) rather than on a specific database technology.
package store
