package streak_test

import (
	"testing"
	"time"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/internal/domain/streak"
	. "github.com/smartystreets/goconvey/convey"
)

func onDay(year int, month time.Month, day, hour int) model.MoodEntry {
	return model.MoodEntry{
		ID:        model.NewID(),
		Timestamp: time.Date(year, month, day, hour, 0, 0, 0, time.UTC),
	}
}

func TestCalculate(t *testing.T) {
	Convey("Given a streak calculation", t, func() {
		now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

		Convey("When there are no entries", func() {
			result := streak.Calculate(nil, now)

			Convey("Then everything should be zero", func() {
				So(result.CurrentStreak, ShouldEqual, 0)
				So(result.LongestStreak, ShouldEqual, 0)
				So(result.StreakStart, ShouldBeNil)
				So(result.LastEntry, ShouldBeNil)
				So(result.IsActive, ShouldBeFalse)
			})
		})

		Convey("When every day up to today is logged", func() {
			entries := []model.MoodEntry{
				onDay(2026, 3, 8, 9),
				onDay(2026, 3, 9, 20),
				onDay(2026, 3, 10, 7),
			}
			result := streak.Calculate(entries, now)

			Convey("Then the streak should be three days and active", func() {
				So(result.CurrentStreak, ShouldEqual, 3)
				So(result.LongestStreak, ShouldEqual, 3)
				So(result.IsActive, ShouldBeTrue)
				So(result.StreakStart.Day(), ShouldEqual, 8)
				So(result.LastEntry.Day(), ShouldEqual, 10)
			})
		})

		Convey("When multiple entries land on the same day", func() {
			entries := []model.MoodEntry{
				onDay(2026, 3, 9, 8),
				onDay(2026, 3, 9, 13),
				onDay(2026, 3, 9, 22),
				onDay(2026, 3, 10, 9),
			}
			result := streak.Calculate(entries, now)

			Convey("Then the day should count once", func() {
				So(result.CurrentStreak, ShouldEqual, 2)
				So(result.LongestStreak, ShouldEqual, 2)
			})
		})

		Convey("When there is a gap in the history", func() {
			entries := []model.MoodEntry{
				onDay(2026, 3, 1, 9),
				onDay(2026, 3, 2, 9),
				onDay(2026, 3, 3, 9),
				onDay(2026, 3, 4, 9),
				// gap
				onDay(2026, 3, 9, 9),
				onDay(2026, 3, 10, 9),
			}
			result := streak.Calculate(entries, now)

			Convey("Then the current streak restarts after the gap", func() {
				So(result.CurrentStreak, ShouldEqual, 2)
			})

			Convey("And the longest streak remembers the earlier run", func() {
				So(result.LongestStreak, ShouldEqual, 4)
			})
		})

		Convey("When the last logged day was yesterday", func() {
			entries := []model.MoodEntry{
				onDay(2026, 3, 8, 9),
				onDay(2026, 3, 9, 9),
			}
			result := streak.Calculate(entries, now)

			Convey("Then the streak should still be active", func() {
				So(result.CurrentStreak, ShouldEqual, 2)
				So(result.IsActive, ShouldBeTrue)
			})
		})

		Convey("When the last logged day is further in the past", func() {
			entries := []model.MoodEntry{
				onDay(2026, 3, 5, 9),
				onDay(2026, 3, 6, 9),
				onDay(2026, 3, 7, 9),
			}
			result := streak.Calculate(entries, now)

			Convey("Then the run is still reported but no longer active", func() {
				So(result.CurrentStreak, ShouldEqual, 3)
				So(result.IsActive, ShouldBeFalse)
			})
		})

		Convey("When entries arrive out of order", func() {
			entries := []model.MoodEntry{
				onDay(2026, 3, 10, 9),
				onDay(2026, 3, 8, 9),
				onDay(2026, 3, 9, 9),
			}
			result := streak.Calculate(entries, now)

			Convey("Then ordering should not matter", func() {
				So(result.CurrentStreak, ShouldEqual, 3)
			})
		})

		Convey("When only one day is logged", func() {
			result := streak.Calculate([]model.MoodEntry{onDay(2026, 3, 10, 9)}, now)

			Convey("Then the streak should be one", func() {
				So(result.CurrentStreak, ShouldEqual, 1)
				So(result.LongestStreak, ShouldEqual, 1)
				So(result.IsActive, ShouldBeTrue)
			})
		})
	})
}
