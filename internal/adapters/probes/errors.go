package probes

import "errors"

// ErrNotConfigured is reported by a probe built around a nil client.
var ErrNotConfigured = errors.New("probes: client not configured")
