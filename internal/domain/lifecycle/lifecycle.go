// Package lifecycle holds the shared bounds for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single lifecycle hook such as a startup ping or a graceful shutdown.
const DefaultTimeout = 15 * time.Second
