// Package delivery defines the contract every transport (HTTP, workers)
// implements so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport serving requests until its
// context is cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
