package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	repository "github.com/mkarimi/roadboard/internal/adapters/repository"
	"github.com/mkarimi/roadboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore_UpsertAddPoints(t *testing.T) {
	Convey("Given an empty in-memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(ctx)
		ts := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

		Convey("When awarding points to an unseen name", func() {
			err := store.UpsertAddPoints(ctx, "Alice", 10, ts)

			Convey("Then a new entry is created at the delta", func() {
				So(err, ShouldBeNil)
				all, err := store.GetAll(ctx)
				So(err, ShouldBeNil)
				So(all, ShouldHaveLength, 1)
				So(all[0].DisplayName, ShouldEqual, "Alice")
				So(all[0].UserPoints, ShouldEqual, 10)
				So(all[0].UpdatedAtUTC, ShouldEqual, ts)
				So(all[0].UserID, ShouldNotBeEmpty)
			})
		})

		Convey("When awarding twice to the same name", func() {
			So(store.UpsertAddPoints(ctx, "Alice", 10, ts), ShouldBeNil)
			later := ts.Add(time.Minute)
			So(store.UpsertAddPoints(ctx, "Alice", 5, later), ShouldBeNil)

			Convey("Then the totals accumulate and the timestamp advances", func() {
				all, _ := store.GetAll(ctx)
				So(all, ShouldHaveLength, 1)
				So(all[0].UserPoints, ShouldEqual, 15)
				So(all[0].UpdatedAtUTC, ShouldEqual, later)
			})
		})

		Convey("When the delta is not positive", func() {
			err := store.UpsertAddPoints(ctx, "Alice", 0, ts)

			Convey("Then the store rejects it", func() {
				So(err, ShouldNotBeNil)
				So(store.Count(ctx), ShouldEqual, 0)
			})
		})

		Convey("When many goroutines award the same name", func() {
			const workers = 32
			var wg sync.WaitGroup
			wg.Add(workers)
			for i := 0; i < workers; i++ {
				go func() {
					defer wg.Done()
					_ = store.UpsertAddPoints(ctx, "Alice", 1, ts)
				}()
			}
			wg.Wait()

			Convey("Then no award is lost", func() {
				all, _ := store.GetAll(ctx)
				So(all, ShouldHaveLength, 1)
				So(all[0].UserPoints, ShouldEqual, workers)
			})
		})
	})
}

func TestMemStore_SeedIfEmpty(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(ctx)
		seed := []model.LeaderboardEntry{
			{DisplayName: "Alice", UserPoints: 100, UpdatedAtUTC: time.Now().UTC()},
			{DisplayName: "Bob", UserPoints: 90, UpdatedAtUTC: time.Now().UTC()},
		}

		Convey("When seeding an empty store", func() {
			err := store.SeedIfEmpty(ctx, seed)

			Convey("Then all seed entries land with assigned ids", func() {
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 2)
				all, _ := store.GetAll(ctx)
				for _, e := range all {
					So(e.UserID, ShouldNotBeEmpty)
				}
			})
		})

		Convey("When seeding a store that already has entries", func() {
			So(store.UpsertAddPoints(ctx, "Carol", 1, time.Now().UTC()), ShouldBeNil)
			err := store.SeedIfEmpty(ctx, seed)

			Convey("Then the seed is a no-op", func() {
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 1)
			})
		})
	})
}

func TestMemStore_GetAllSnapshot(t *testing.T) {
	Convey("Given a store with one entry", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(ctx)
		So(store.UpsertAddPoints(ctx, "Alice", 10, time.Now().UTC()), ShouldBeNil)

		Convey("When mutating the returned slice", func() {
			all, _ := store.GetAll(ctx)
			all[0].UserPoints = 9999

			Convey("Then the store is unaffected", func() {
				again, _ := store.GetAll(ctx)
				So(again[0].UserPoints, ShouldEqual, 10)
			})
		})
	})
}
