package testutil

import (
	"errors"

	"github.com/AntonioJCosta/stocker/internal/core/domain/drug"
	"github.com/AntonioJCosta/stocker/internal/core/ports"
)

// MockDrugStorage is a mock implementation of ports.DrugStorage. Without
// overrides it keeps file contents in memory.
type MockDrugStorage struct {
	WriteFileFunc  func(path, content string) error
	AppendFileFunc func(path, content string) error
	LoadFunc       func(path string) ([]drug.Drug, error)

	// Files holds what the default behavior wrote, keyed by path.
	Files map[string]string
}

// NewMockDrugStorage creates a MockDrugStorage with an empty in-memory file set.
func NewMockDrugStorage() *MockDrugStorage {
	return &MockDrugStorage{Files: make(map[string]string)}
}

func (m *MockDrugStorage) WriteFile(path, content string) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, content)
	}
	if m.Files == nil {
		m.Files = make(map[string]string)
	}
	m.Files[path] = content
	return nil
}

func (m *MockDrugStorage) AppendFile(path, content string) error {
	if m.AppendFileFunc != nil {
		return m.AppendFileFunc(path, content)
	}
	if m.Files == nil {
		m.Files = make(map[string]string)
	}
	m.Files[path] += content + "\n"
	return nil
}

func (m *MockDrugStorage) Load(path string) ([]drug.Drug, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return nil, errors.New("MockDrugStorage: LoadFunc not implemented")
}

var _ ports.DrugStorage = (*MockDrugStorage)(nil)
