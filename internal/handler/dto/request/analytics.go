package request

import "time"

// StatsWindowQuery binds ?from=&to= as RFC3339 timestamps.
type StatsWindowQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
