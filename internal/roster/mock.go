package roster

import (
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRosterStore implements the StoreManager interface.
func (m *MockStoreManager) GetRosterStore() contract.StudentStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.StudentStore)
	return store
}

// MockStudentStore is a mock implementation of StudentStore for testing.
type MockStudentStore struct {
	mock.Mock
}

var _ contract.StudentStore = &MockStudentStore{} // Compile-time check

// Upsert implements the StudentStore interface.
func (m *MockStudentStore) Upsert(rec schema.StudentRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

// BulkUpsert implements the StudentStore interface.
func (m *MockStudentStore) BulkUpsert(rows []schema.StudentRecord) error {
	args := m.Called(rows)
	return args.Error(0)
}

// List implements the StudentStore interface.
func (m *MockStudentStore) List() ([]schema.StudentRecord, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]schema.StudentRecord)
	return rows, args.Error(1)
}

// Count implements the StudentStore interface.
func (m *MockStudentStore) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// Clear implements the StudentStore interface.
func (m *MockStudentStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the StudentStore interface.
func (m *MockStudentStore) GetStatus() (schema.RosterStatus, error) {
	args := m.Called()
	status, _ := args.Get(0).(schema.RosterStatus)
	return status, args.Error(1)
}

// Close implements the StudentStore interface.
func (m *MockStudentStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
