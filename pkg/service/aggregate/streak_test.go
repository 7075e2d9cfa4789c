package aggregate_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/packstat/packstat/pkg/service/aggregate"
)

func TestLongestStreak(t *testing.T) {
	t.Run("empty input yields a zero streak", func(t *testing.T) {
		streak := aggregate.LongestStreak(nil)
		gt.Number(t, streak.Length).Equal(0)
		gt.Value(t, streak.Start).Equal("")
	})

	t.Run("single date is a one-day streak", func(t *testing.T) {
		streak := aggregate.LongestStreak([]string{"2024-03-05"})
		gt.Number(t, streak.Length).Equal(1)
		gt.Value(t, streak.Start).Equal("2024-03-05")
		gt.Value(t, streak.End).Equal("2024-03-05")
	})

	t.Run("consecutive run with a break", func(t *testing.T) {
		streak := aggregate.LongestStreak([]string{
			"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-05",
		})
		gt.Number(t, streak.Length).Equal(3)
		gt.Value(t, streak.Start).Equal("2024-03-01")
		gt.Value(t, streak.End).Equal("2024-03-03")
	})

	t.Run("input order does not matter", func(t *testing.T) {
		streak := aggregate.LongestStreak([]string{
			"2024-03-05", "2024-03-02", "2024-03-03", "2024-03-01",
		})
		gt.Number(t, streak.Length).Equal(3)
		gt.Value(t, streak.End).Equal("2024-03-03")
	})

	t.Run("equal-length runs keep the first one", func(t *testing.T) {
		streak := aggregate.LongestStreak([]string{
			"2024-03-01", "2024-03-02",
			"2024-03-10", "2024-03-11",
		})
		gt.Number(t, streak.Length).Equal(2)
		gt.Value(t, streak.Start).Equal("2024-03-01")
		gt.Value(t, streak.End).Equal("2024-03-02")
	})

	t.Run("duplicate dates reset the run", func(t *testing.T) {
		// Callers pass distinct dates; a duplicate must not inflate the count
		streak := aggregate.LongestStreak([]string{
			"2024-03-01", "2024-03-01", "2024-03-02",
		})
		gt.Number(t, streak.Length).Equal(2)
	})

	t.Run("month boundary is still consecutive", func(t *testing.T) {
		streak := aggregate.LongestStreak([]string{"2024-02-29", "2024-03-01"})
		gt.Number(t, streak.Length).Equal(2)
	})
}
