package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/getinward/inward/internal/adapters/repository"
	"github.com/getinward/inward/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func entry(ts time.Time) model.MoodEntry {
	return model.MoodEntry{ID: model.NewID(), Timestamp: ts}
}

func TestMemoryJournal(t *testing.T) {
	Convey("Given an in-memory journal", t, func() {
		ctx := context.Background()
		base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

		Convey("When the journal is empty", func() {
			j := repository.NewMemoryJournal()

			Convey("Then it should report no entries", func() {
				So(j.Count(ctx), ShouldEqual, 0)
				So(j.List(ctx), ShouldBeEmpty)

				_, err := j.Latest(ctx)
				So(err, ShouldWrap, repository.ErrEmpty)
			})
		})

		Convey("When entries arrive in timestamp order", func() {
			j := repository.NewMemoryJournal()
			first := entry(base)
			second := entry(base.Add(time.Hour))
			So(j.Append(ctx, first), ShouldBeNil)
			So(j.Append(ctx, second), ShouldBeNil)

			Convey("Then List should return them in order", func() {
				got := j.List(ctx)
				So(got, ShouldHaveLength, 2)
				So(got[0].ID, ShouldEqual, first.ID)
				So(got[1].ID, ShouldEqual, second.ID)
			})

			Convey("Then Latest should return the newest entry", func() {
				latest, err := j.Latest(ctx)
				So(err, ShouldBeNil)
				So(latest.ID, ShouldEqual, second.ID)
			})
		})

		Convey("When an entry arrives out of order", func() {
			j := repository.NewMemoryJournal()
			So(j.Append(ctx, entry(base)), ShouldBeNil)
			So(j.Append(ctx, entry(base.Add(2*time.Hour))), ShouldBeNil)
			late := entry(base.Add(time.Hour))
			So(j.Append(ctx, late), ShouldBeNil)

			Convey("Then it should be placed by timestamp", func() {
				got := j.List(ctx)
				So(got, ShouldHaveLength, 3)
				So(got[1].ID, ShouldEqual, late.ID)
				So(got[0].Timestamp.Before(got[1].Timestamp), ShouldBeTrue)
				So(got[1].Timestamp.Before(got[2].Timestamp), ShouldBeTrue)
			})
		})

		Convey("When mutating a returned snapshot", func() {
			j := repository.NewMemoryJournal()
			So(j.Append(ctx, entry(base)), ShouldBeNil)

			got := j.List(ctx)
			got[0].ID = "mutated"

			Convey("Then the journal should be unaffected", func() {
				fresh := j.List(ctx)
				So(fresh[0].ID, ShouldNotEqual, "mutated")
			})
		})

		Convey("When the journal is closed", func() {
			j := repository.NewMemoryJournal()
			So(j.Close(), ShouldBeNil)

			Convey("Then appends should fail with ErrClosed", func() {
				So(j.Append(ctx, entry(base)), ShouldWrap, repository.ErrClosed)
			})
		})

		Convey("When writers and readers run concurrently", func() {
			j := repository.NewMemoryJournal()

			var wg sync.WaitGroup
			for g := 0; g < 4; g++ {
				wg.Add(2)
				go func(g int) {
					defer wg.Done()
					for i := 0; i < 50; i++ {
						_ = j.Append(ctx, entry(base.Add(time.Duration(g*50+i)*time.Minute)))
					}
				}(g)
				go func() {
					defer wg.Done()
					for i := 0; i < 50; i++ {
						_ = j.List(ctx)
						_ = j.Count(ctx)
					}
				}()
			}
			wg.Wait()

			Convey("Then every append should be stored in order", func() {
				got := j.List(ctx)
				So(got, ShouldHaveLength, 200)
				for i := 1; i < len(got); i++ {
					So(got[i-1].Timestamp.After(got[i].Timestamp), ShouldBeFalse)
				}
			})
		})
	})
}
