// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Health ports are implemented by the platform health engine and by outbound
// probe adapters.
package ports
