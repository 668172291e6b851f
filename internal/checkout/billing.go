package checkout

import (
	"time"
)

// DaysStayed bills every started day: the elapsed time between intake and
// checkout is rounded up to whole days, with a floor of one so a same-day
// release still pays for the day.
func DaysStayed(inDate, now time.Time) int {
	elapsed := now.Sub(inDate)
	if elapsed <= 0 {
		return 1
	}
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}
