// Package delivery holds the inbound transports started by main.
package delivery

import (
	"context"
)

// Delivery is a long-running inbound transport.
type Delivery interface {
	// Serve blocks until the transport stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
