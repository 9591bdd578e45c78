package medical

import "context"

// RecordRepository looks up medical records by user ID.
type RecordRepository interface {
	// Available reports whether the backing store was configured.
	Available() bool
	FindByUID(ctx context.Context, uid string) (*Record, error)
}
