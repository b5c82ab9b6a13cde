package stats

import "fmt"

// FormatDuration renders seconds as "Xh Ym Zs".
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dh %dm %ds", seconds/3600, seconds%3600/60, seconds%60)
}

// FormatLongDuration renders seconds as "Xd Yh Zm Ws".
func FormatLongDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dd %dh %dm %ds", seconds/86400, seconds%86400/3600, seconds%3600/60, seconds%60)
}
