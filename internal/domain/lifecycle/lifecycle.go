// Package lifecycle holds shared constants for startup and shutdown
// sequencing.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup probes.
const DefaultTimeout = 10 * time.Second
