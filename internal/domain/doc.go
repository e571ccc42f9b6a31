// Package domain contains the health domain types shared across layers:
// the aggregate Verdict computed by the health engine, the wire-level Status
// reported on actuator endpoints, and the sentinel errors mapped to HTTP
// problem responses.
package domain
