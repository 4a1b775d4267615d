// Package delivery defines the inbound transport abstractions of the application.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server, worker, ...).
// Serve blocks until the adapter stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
