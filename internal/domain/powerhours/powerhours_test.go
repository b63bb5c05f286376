package powerhours_test

import (
	"math"
	"testing"
	"time"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/internal/domain/powerhours"
	"github.com/getinward/inward/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func at(ts time.Time, valence, energy, focus, stress float64) model.MoodEntry {
	return model.MoodEntry{
		ID:        model.NewID(),
		Timestamp: ts,
		Valence:   valence,
		Energy:    energy,
		Focus:     focus,
		Stress:    stress,
	}
}

func TestGenerate(t *testing.T) {
	Convey("Given a power-hours generator", t, func() {
		gen := powerhours.NewGenerator(scoring.NewEngine())
		now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

		Convey("When generating from no entries", func() {
			result := gen.Generate(nil, now)

			Convey("Then the matrix should be all zeros, never NaN", func() {
				for wd := 0; wd < powerhours.Weekdays; wd++ {
					for h := 0; h < powerhours.HoursPerDay; h++ {
						So(result.Matrix[wd][h], ShouldEqual, 0)
						So(math.IsNaN(result.Matrix[wd][h]), ShouldBeFalse)
					}
				}
			})

			Convey("Then there are no peak or low cells", func() {
				So(result.PeakHours, ShouldBeEmpty)
				So(result.LowHours, ShouldBeEmpty)
				So(result.LastUpdated, ShouldResemble, now)
			})
		})

		Convey("When two entries share a cell", func() {
			// 2026-03-02 is a Monday.
			monday9 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
			entries := []model.MoodEntry{
				at(monday9, 5, 5, 5, 0),
				at(monday9.Add(30*time.Minute), 3, 3, 3, 2),
			}
			result := gen.Generate(entries, now)

			Convey("Then the cell should hold the mean composite", func() {
				// (5+5+5+5)/4 = 5 and (3+3+3+3)/4 = 3, mean 4.
				So(result.Matrix[int(time.Monday)][9], ShouldAlmostEqual, 4, 1e-9)
			})

			Convey("Then the single occupied cell is both peak and low", func() {
				So(result.PeakHours, ShouldHaveLength, 1)
				So(result.LowHours, ShouldHaveLength, 1)
				So(result.PeakHours[0].Weekday, ShouldEqual, int(time.Monday))
				So(result.PeakHours[0].Hour, ShouldEqual, 9)
			})
		})

		Convey("When cells span distinct scores", func() {
			base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) // Sunday
			entries := []model.MoodEntry{
				at(base.Add(8*time.Hour), 5, 5, 5, 0),  // best
				at(base.Add(14*time.Hour), 3, 3, 3, 2), // middle
				at(base.Add(22*time.Hour), 1, 1, 1, 5), // worst
			}
			result := gen.Generate(entries, now)

			Convey("Then peaks should be ordered best-first and lows worst-first", func() {
				So(result.PeakHours[0].Hour, ShouldEqual, 8)
				So(result.LowHours[0].Hour, ShouldEqual, 22)
			})
		})

		Convey("When topN is configured below the occupied cell count", func() {
			small := powerhours.NewGenerator(scoring.NewEngine(), powerhours.WithTopN(2))
			base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
			entries := []model.MoodEntry{
				at(base.Add(6*time.Hour), 5, 5, 5, 0),
				at(base.Add(10*time.Hour), 4, 4, 4, 1),
				at(base.Add(15*time.Hour), 3, 3, 3, 2),
				at(base.Add(20*time.Hour), 2, 2, 2, 3),
			}
			result := small.Generate(entries, now)

			Convey("Then only topN cells are reported", func() {
				So(result.PeakHours, ShouldHaveLength, 2)
				So(result.LowHours, ShouldHaveLength, 2)
			})
		})
	})
}
