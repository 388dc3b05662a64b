// Package delivery defines the transport-agnostic entry point contract.
package delivery

import "context"

// Delivery is a serving surface started by the application container.
type Delivery interface {
	// Serve blocks until the underlying server stops or fails.
	Serve(ctx context.Context) error
}
