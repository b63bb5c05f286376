package worker_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/getinward/inward/internal/adapters/mq/queue"
	"github.com/getinward/inward/internal/adapters/mq/worker"
	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// recordingPersister captures appended entries for assertions.
type recordingPersister struct {
	mu      sync.Mutex
	entries []model.MoodEntry
	err     error
}

func (p *recordingPersister) Append(_ context.Context, entry model.MoodEntry) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.entries = append(p.entries, entry)
	return nil
}

func (p *recordingPersister) ids() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.ID
	}
	return out
}

func waitFor(cond func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestWorkerPool(t *testing.T) {
	Convey("Given a worker pool draining a queue", t, func() {
		ctx := context.Background()

		Convey("When entries are enqueued", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(16))
			p := &recordingPersister{}
			pool := worker.NewPool(2, q, p)
			pool.Start(ctx)

			So(q.Enqueue(ctx, model.MoodEntry{ID: "a"}), ShouldBeTrue)
			So(q.Enqueue(ctx, model.MoodEntry{ID: "b"}), ShouldBeTrue)
			So(q.Enqueue(ctx, model.MoodEntry{ID: "c"}), ShouldBeTrue)

			Convey("Then every entry should be persisted", func() {
				ok := waitFor(func() bool { return len(p.ids()) == 3 }, 2*time.Second)
				So(ok, ShouldBeTrue)
				So(p.ids(), ShouldContain, "a")
				So(p.ids(), ShouldContain, "b")
				So(p.ids(), ShouldContain, "c")

				_ = q.Close()
				pool.Stop()
			})
		})

		Convey("When the queue closes after a burst", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(64))
			p := &recordingPersister{}
			pool := worker.NewPool(4, q, p)
			pool.Start(ctx)

			for i := 0; i < 50; i++ {
				So(q.Enqueue(ctx, model.MoodEntry{ID: model.NewID()}), ShouldBeTrue)
			}
			_ = q.Close()
			pool.Stop()

			Convey("Then the pool should drain everything before stopping", func() {
				So(len(p.ids()), ShouldEqual, 50)
			})
		})

		Convey("When the persister fails", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(4))
			p := &recordingPersister{err: errors.New("journal closed")}
			pool := worker.NewPool(1, q, p)
			pool.Start(ctx)

			So(q.Enqueue(ctx, model.MoodEntry{ID: "a"}), ShouldBeTrue)
			_ = q.Close()
			pool.Stop()

			Convey("Then the pool should survive and persist nothing", func() {
				So(p.ids(), ShouldBeEmpty)
			})
		})

		Convey("When the pool is created with a non-positive worker count", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(4))
			p := &recordingPersister{}
			pool := worker.NewPool(0, q, p)
			pool.Start(ctx)

			So(q.Enqueue(ctx, model.MoodEntry{ID: "a"}), ShouldBeTrue)
			_ = q.Close()
			pool.Stop()

			Convey("Then it should still run with one worker", func() {
				So(p.ids(), ShouldResemble, []string{"a"})
			})
		})
	})
}
