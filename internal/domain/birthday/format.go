package birthday

import (
	"fmt"
	"time"
)

func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// Ordinal renders 1 as "1st", 22 as "22nd", 13 as "13th".
func Ordinal(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

func daysIn(month int) int {
	if month == 2 {
		return 29
	}
	// day 0 of the following month is the last day of this one
	return time.Date(2001, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func ValidDate(month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= daysIn(month)
}
