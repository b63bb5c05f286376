package scoring_test

import (
	"math"
	"testing"
	"time"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func entryAt(ts time.Time, valence, energy, focus, stress float64) model.MoodEntry {
	return model.MoodEntry{
		ID:        model.NewID(),
		Timestamp: ts,
		Bucket:    model.BucketFor(ts),
		Valence:   valence,
		Energy:    energy,
		Focus:     focus,
		Stress:    stress,
	}
}

func TestMoodComposite(t *testing.T) {
	Convey("Given a scoring engine with the default configuration", t, func() {
		engine := scoring.NewEngine()
		base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

		Convey("When scoring against an empty history", func() {
			result := engine.MC(entryAt(base, 4, 3, 3, 2), nil)

			Convey("Then the result should be invalid with a descriptive message", func() {
				So(result.Valid, ShouldBeFalse)
				So(result.Err, ShouldContainSubstring, "insufficient historical data")
				So(result.Value, ShouldEqual, 0)
				So(result.Components, ShouldBeEmpty)
			})
		})

		Convey("When the baseline has zero variance", func() {
			history := []model.MoodEntry{
				entryAt(base.AddDate(0, 0, -3), 3, 3, 3, 3),
				entryAt(base.AddDate(0, 0, -2), 3, 3, 3, 3),
				entryAt(base.AddDate(0, 0, -1), 3, 3, 3, 3),
			}
			result := engine.MC(entryAt(base, 4, 3, 3, 3), history)

			Convey("Then the sigma floor should be substituted and the value stays finite", func() {
				So(result.Valid, ShouldBeTrue)
				So(math.IsInf(result.Value, 0), ShouldBeFalse)
				So(math.IsNaN(result.Value), ShouldBeFalse)

				floor := engine.Config().SigmaFloor
				for _, c := range result.Components {
					So(c.Sigma, ShouldEqual, floor)
				}
			})

			Convey("Then a one-point valence deviation scores weight/floor", func() {
				cfg := engine.Config()
				want := cfg.MC.Valence * (1.0 / cfg.SigmaFloor)
				So(result.Components["valence"].Contribution, ShouldAlmostEqual, want, 1e-9)
				So(result.Value, ShouldAlmostEqual, want, 1e-9)
			})
		})

		Convey("When an entry matches its baseline mean exactly", func() {
			history := []model.MoodEntry{
				entryAt(base.AddDate(0, 0, -2), 2, 2, 2, 2),
				entryAt(base.AddDate(0, 0, -1), 4, 4, 4, 4),
			}
			result := engine.MC(entryAt(base, 3, 3, 3, 3), history)

			Convey("Then the composite should be zero", func() {
				So(result.Valid, ShouldBeTrue)
				So(result.Value, ShouldAlmostEqual, 0, 1e-9)
			})

			Convey("Then every component should carry the baseline mean", func() {
				for _, c := range result.Components {
					So(c.Mean, ShouldAlmostEqual, 3, 1e-9)
					So(c.Normalized, ShouldAlmostEqual, 0, 1e-9)
				}
			})
		})

		Convey("When the baseline is restricted to one bucket", func() {
			morning := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
			night := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
			history := []model.MoodEntry{
				entryAt(morning, 4, 4, 4, 1),
				entryAt(morning.AddDate(0, 0, 1), 4, 4, 4, 1),
				entryAt(night, 1, 1, 1, 4),
			}
			entry := entryAt(base, 4, 4, 4, 1)

			withAll := engine.MC(entry, history)
			withMorning := engine.MC(entry, history, scoring.WithBucket(model.BucketMorning))

			Convey("Then the filtered baseline should change the score", func() {
				So(withAll.Valid, ShouldBeTrue)
				So(withMorning.Valid, ShouldBeTrue)
				So(withMorning.Value, ShouldNotAlmostEqual, withAll.Value, 1e-9)
			})

			Convey("And filtering to a bucket with no history should be invalid", func() {
				result := engine.MC(entry, history, scoring.WithBucket(model.BucketMidday))
				So(result.Valid, ShouldBeFalse)
				So(result.Err, ShouldContainSubstring, "insufficient")
			})
		})

		Convey("When scoring the same inputs twice", func() {
			history := []model.MoodEntry{
				entryAt(base.AddDate(0, 0, -2), 2, 3, 4, 1),
				entryAt(base.AddDate(0, 0, -1), 3, 2, 3, 2),
			}
			entry := entryAt(base, 4, 3, 3, 2)

			first := engine.MC(entry, history)
			second := engine.MC(entry, history)

			Convey("Then the results should be identical", func() {
				So(first.Value, ShouldEqual, second.Value)
				So(first.Components, ShouldResemble, second.Components)
			})
		})

		Convey("When ratings are out of range", func() {
			history := []model.MoodEntry{
				entryAt(base.AddDate(0, 0, -2), 3, 3, 3, 3),
				entryAt(base.AddDate(0, 0, -1), 2, 2, 2, 2),
			}
			result := engine.MC(entryAt(base, 99, -7, math.NaN(), 5), history)

			Convey("Then they should be clamped before scoring", func() {
				So(result.Valid, ShouldBeTrue)
				So(result.Components["valence"].Raw, ShouldEqual, 5)
				So(result.Components["energy"].Raw, ShouldEqual, 0)
				So(result.Components["focus"].Raw, ShouldEqual, 0)
			})
		})
	})
}
