// Package delivery defines the common contract of the process's serving
// surfaces.
package delivery

import "context"

// Delivery is a long-running serving surface (an HTTP server, a consumer
// loop). Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
