package port

import "context"

// Notifier dispatches the third-party notification. Its failures are retried
// by the task substrate and never surface to the upload flow.
type Notifier interface {
	Notify(ctx context.Context, storageURL string) error
}
