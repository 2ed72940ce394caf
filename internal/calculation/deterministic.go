package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// CurrentReferenceYear is the default reference year for period windows.
func CurrentReferenceYear() int { return nowFunc().Year() }
