// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/studentrisk/schema"

// StudentStore defines the operations of the durable roster store.
// This allows the CLI and MCP layers to be tested with a mock store.
type StudentStore interface {
	// Upsert inserts or replaces a single student row keyed by student ID.
	Upsert(rec schema.StudentRecord) error

	// BulkUpsert inserts or replaces a batch of student rows in one transaction.
	BulkUpsert(rows []schema.StudentRecord) error

	// List returns all student rows ordered by student ID.
	List() ([]schema.StudentRecord, error)

	// Count returns the number of student rows.
	Count() (int, error)

	// Clear removes all student rows.
	Clear() error

	// GetStatus returns status information about the store.
	GetStatus() (schema.RosterStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for accessing the roster store.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetRosterStore() StudentStore
}
