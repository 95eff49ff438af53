package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests). A nil f restores time.Now.
func SetNowFunc(f func() time.Time) {
	if f == nil {
		f = time.Now
	}
	nowFunc = f
}

// Now returns the current time from the configured provider.
func Now() time.Time { return nowFunc() }
