package config

import "time"

// nowYear returns the current calendar year (override in tests).
var nowYear = func() int { return time.Now().Year() }

// SetNowYear overrides the year provider (use only in tests).
func SetNowYear(f func() int) { nowYear = f }
