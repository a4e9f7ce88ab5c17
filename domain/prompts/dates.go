// Package prompts holds the prompt templates the server publishes. They
// are pure text generators: each one turns its arguments plus the current
// date into tool-call instructions for the client model.
package prompts

import (
	"fmt"
	"time"
)

// now is swapped out in tests to pin date arithmetic.
var now = time.Now

// dateStamp renders a date as the backend's 8-digit YYYYMMDD form.
func dateStamp(t time.Time) string {
	return t.Format("20060102")
}

func daysAgo(n int) string {
	return dateStamp(now().AddDate(0, 0, -n))
}

// readableDate expands an 8-digit stamp into YYYY-MM-DD for report
// headings. Anything that is not 8 digits passes through untouched.
func readableDate(stamp string) string {
	if len(stamp) != 8 {
		return stamp
	}
	return fmt.Sprintf("%s-%s-%s", stamp[:4], stamp[4:6], stamp[6:8])
}
