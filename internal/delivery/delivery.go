// Package delivery defines the contract every transport frontend satisfies.
package delivery

import "context"

// Delivery is a transport server (HTTP today) that the application starts
// after wiring and stops through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
