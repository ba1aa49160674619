package roster

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/schema"
)

// RosterStoreManager manages the roster StudentStore instance.
type RosterStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	roster       contract.StudentStore
}

var _ contract.StoreManager = &RosterStoreManager{} // Compile-time check

// GetRosterStore returns the roster StudentStore.
func (mgr *RosterStoreManager) GetRosterStore() contract.StudentStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.roster
}

// Global Manager instance for main logic.
var (
	Manager   = &RosterStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitRoster initializes the global roster manager.
// backend can be empty to skip roster initialization entirely.
func InitRoster(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		if backend == "" {
			return
		}
		store, err := NewStudentStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize roster store: %w", err)
			return
		}
		Manager.roster = store
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseRoster should be called on application shutdown.
func CloseRoster() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.roster != nil {
			_ = Manager.roster.Close()
		}
	})
}

// ClearRoster clears the roster for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearRoster(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, studentsTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, studentsTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported roster backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
