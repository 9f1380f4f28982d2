package fitness

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateString formats t in its own location as YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

func FriendlyDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

func TimeString(t time.Time) string {
	return t.Format("15:04")
}

// ParseDate accepts YYYY-MM-DD in the local zone.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}
