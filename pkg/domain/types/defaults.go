package types

import "time"

const (
	DefaultTitle       = "Latest Issues"
	DefaultLabel       = "good first issue"
	DefaultWindow      = 14 * 24 * time.Hour
	DefaultBountyRepo  = "Expensify/App"
	DefaultBountyLabel = "Help Wanted"
	DefaultSchedule    = "0 */3 * * *"
	DefaultTimezone    = "Asia/Kolkata"
	DefaultPerPage     = 30
)
