// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running server (HTTP API, background worker) started by
// the application container. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
