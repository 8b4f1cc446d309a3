package valueobject

import "time"

const executionDateLayout = "2006-01-02"

// ExecutionDateFor returns the calendar date of now in now's location as YYYY-MM-DD.
func ExecutionDateFor(now time.Time) string {
	return now.Format(executionDateLayout)
}
