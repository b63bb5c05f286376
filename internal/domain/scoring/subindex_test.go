package scoring_test

import (
	"testing"
	"time"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSubIndices(t *testing.T) {
	Convey("Given a scoring engine with the default configuration", t, func() {
		engine := scoring.NewEngine()
		cfg := engine.Config()
		ts := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

		Convey("When computing the indices for a populated entry", func() {
			entry := model.MoodEntry{
				ID:                model.NewID(),
				Timestamp:         ts,
				Valence:           4,
				Focus:             3,
				Stress:            2,
				Tags:              []string{"social", "friends", "work"},
				DeepworkMinutes:   model.Float(90),
				TasksCompleted:    model.Float(5),
				SleepHours:        model.Float(7),
				SocialTouchpoints: model.Float(2),
				RecoveryAction:    true,
			}
			si := engine.SubIndices(entry)

			Convey("Then LM should blend focus, deepwork and tasks", func() {
				want := cfg.LM.Focus*(3.0/5.0) +
					cfg.LM.Deepwork*(90/cfg.Caps.DeepworkMinutes) +
					cfg.LM.Tasks*(5/cfg.Caps.Tasks)
				So(si.LM, ShouldAlmostEqual, want, 1e-9)
			})

			Convey("Then RI should blend sleep, recovery and inverted stress", func() {
				want := cfg.RI.Sleep*(7/cfg.Caps.SleepHours) +
					cfg.RI.Recovery*1.0 +
					cfg.RI.Stress*((5.0-2.0)/5.0)
				So(si.RI, ShouldAlmostEqual, want, 1e-9)
			})

			Convey("Then CN should count the two social tags", func() {
				want := cfg.CN.Valence*(4.0/5.0) +
					cfg.CN.Social*(2/cfg.Caps.SocialTouchpoints) +
					cfg.CN.Tags*(2/cfg.Caps.SocialTags)
				So(si.CN, ShouldAlmostEqual, want, 1e-9)
			})

			Convey("Then every index should be in [0,1]", func() {
				So(si.LM, ShouldBeBetweenOrEqual, 0, 1)
				So(si.RI, ShouldBeBetweenOrEqual, 0, 1)
				So(si.CN, ShouldBeBetweenOrEqual, 0, 1)
			})
		})

		Convey("When the entry is entirely empty", func() {
			si := engine.SubIndices(model.MoodEntry{ID: model.NewID(), Timestamp: ts})

			Convey("Then only the inverted-stress term should remain", func() {
				So(si.LM, ShouldEqual, 0)
				So(si.RI, ShouldAlmostEqual, cfg.RI.Stress*1.0, 1e-9)
				So(si.CN, ShouldEqual, 0)
			})
		})
	})
}

func TestPeriodAverages(t *testing.T) {
	Convey("Given a scoring engine", t, func() {
		engine := scoring.NewEngine()
		ts := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

		Convey("When averaging over no entries", func() {
			avg := engine.PeriodAverages(nil)

			Convey("Then all indices should be zero", func() {
				So(avg, ShouldResemble, scoring.SubIndices{})
			})
		})

		Convey("When averaging over two entries", func() {
			a := model.MoodEntry{ID: model.NewID(), Timestamp: ts, Focus: 5}
			b := model.MoodEntry{ID: model.NewID(), Timestamp: ts.Add(time.Hour), Focus: 1}
			avg := engine.PeriodAverages([]model.MoodEntry{a, b})

			Convey("Then each index should be the mean of the per-entry indices", func() {
				sa := engine.SubIndices(a)
				sb := engine.SubIndices(b)
				So(avg.LM, ShouldAlmostEqual, (sa.LM+sb.LM)/2, 1e-9)
				So(avg.RI, ShouldAlmostEqual, (sa.RI+sb.RI)/2, 1e-9)
				So(avg.CN, ShouldAlmostEqual, (sa.CN+sb.CN)/2, 1e-9)
			})
		})
	})
}
