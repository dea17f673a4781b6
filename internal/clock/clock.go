// Package clock provides the time source used to stamp allocation runs.
package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now returns the current UTC time.
func Now() time.Time { return NowFunc().UTC() }
