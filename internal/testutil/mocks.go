// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockBlobStore is an in-memory test double for domain.BlobStore.
// Fields are ordered to minimize memory padding.
type MockBlobStore struct {
	Blobs   map[string][]byte
	LoadErr error
	SaveErr error
	Saves   int
}

// NewMockBlobStore creates a MockBlobStore with an initialized map.
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{
		Blobs: make(map[string][]byte),
	}
}

// Load returns the blob stored under key.
func (m *MockBlobStore) Load(key string) ([]byte, bool, error) {
	if m.LoadErr != nil {
		return nil, false, m.LoadErr
	}
	blob, ok := m.Blobs[key]
	return blob, ok, nil
}

// Save stores the blob under key and counts the write.
func (m *MockBlobStore) Save(key string, blob []byte) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Blobs[key] = blob
	m.Saves++
	return nil
}

// MockConfirmer is a test double for domain.Confirmer. It records every
// question and returns the configured answer.
type MockConfirmer struct {
	Asked  []string
	Answer bool
}

// Confirm records the message and returns the configured answer.
func (m *MockConfirmer) Confirm(message string) bool {
	m.Asked = append(m.Asked, message)
	return m.Answer
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string, string) {}

// Info discards the message.
func (NopLogger) Info(string, string) {}

// Warn discards the message.
func (NopLogger) Warn(string, string) {}

// Error discards the message.
func (NopLogger) Error(string, string) {}
