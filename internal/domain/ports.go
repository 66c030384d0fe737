package domain

import "time"

// BlobStore persists the serialized task collection under a fixed key.
// The key is a compatibility contract: changing it orphans existing data.
type BlobStore interface {
	// Load returns the blob stored under key.
	// ok is false when nothing has been stored yet.
	Load(key string) (blob []byte, ok bool, err error)

	// Save writes the blob under key, replacing any previous value.
	Save(key string, blob []byte) error
}

// Confirmer asks the user a yes/no question before a destructive
// operation. It blocks until an answer is available.
type Confirmer interface {
	Confirm(message string) bool
}

// Logger records application events.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
