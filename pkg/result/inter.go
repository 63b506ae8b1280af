package result

import "time"

// Reader is a read-only view of a Result for consumers that only inspect
// outcomes.
type Reader[T, E any] interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// GetOrNil returns the success value, nil on failure
	GetOrNil() *T
	// ErrOrNil returns the failure value, nil on success
	ErrOrNil() *E
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
