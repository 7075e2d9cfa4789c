package aggregate

import (
	"sort"
	"time"

	"github.com/packstat/packstat/pkg/domain/model"
)

const dateLayout = "2006-01-02"

// longestStreak finds the longest run of consecutive calendar dates in the
// set. A day delta of exactly 1 extends the current run; any other delta
// resets it. Ties keep the first maximal run encountered by the
// left-to-right scan.
func longestStreak(dates []string) model.Streak {
	if len(dates) == 0 {
		return model.Streak{}
	}

	sort.Strings(dates)

	longest, current := 1, 1
	start, tempStart, end := dates[0], dates[0], dates[0]

	for i := 1; i < len(dates); i++ {
		prev, errPrev := time.Parse(dateLayout, dates[i-1])
		curr, errCurr := time.Parse(dateLayout, dates[i])
		delta := -1
		if errPrev == nil && errCurr == nil {
			delta = int(curr.Sub(prev).Hours() / 24)
		}

		if delta == 1 {
			current++
			if current > longest {
				longest = current
				start = tempStart
				end = dates[i]
			}
		} else {
			current = 1
			tempStart = dates[i]
		}
	}

	return model.Streak{Length: longest, Start: start, End: end}
}
