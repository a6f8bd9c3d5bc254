package calculation

import "time"

// nowFunc is the report clock.
var nowFunc = time.Now

// SetNowFunc replaces the clock behind report timestamps, goal progress and
// year-to-date dividend stats. Pass time.Now to restore it.
func SetNowFunc(f func() time.Time) { nowFunc = f }

// reportTime reads the clock in UTC at whole-second precision.
func reportTime() time.Time { return nowFunc().UTC().Truncate(time.Second) }
