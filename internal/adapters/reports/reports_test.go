package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkarimi/roadboard/internal/adapters/reports"
	"github.com/mkarimi/roadboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore_Add(t *testing.T) {
	Convey("Given an empty report store", t, func() {
		ctx := context.Background()
		now := time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC)
		store := reports.NewMemStore(ctx, reports.WithClock(func() time.Time { return now }))

		Convey("When adding a report", func() {
			r, err := store.Add(ctx, "  pothole on 5th ave  ")

			Convey("Then it is created open with a trimmed description", func() {
				So(err, ShouldBeNil)
				So(r.ID, ShouldNotBeEmpty)
				So(r.Description, ShouldEqual, "pothole on 5th ave")
				So(r.Status, ShouldEqual, model.ReportStatusOpen)
				So(r.CreatedAt, ShouldEqual, now)
			})

			Convey("Then it can be fetched back by id", func() {
				got, err := store.GetByID(ctx, r.ID)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, r)
			})
		})

		Convey("When the description is blank", func() {
			_, err := store.Add(ctx, "   ")

			Convey("Then the store rejects it", func() {
				So(errors.Is(err, reports.ErrEmptyDescription), ShouldBeTrue)
			})
		})

		Convey("When looking up an unknown id", func() {
			_, err := store.GetByID(ctx, "missing")

			Convey("Then it reports not found", func() {
				So(errors.Is(err, reports.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestMemStore_Latest(t *testing.T) {
	Convey("Given reports created at different times", t, func() {
		ctx := context.Background()
		now := time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC)
		store := reports.NewMemStore(ctx, reports.WithClock(func() time.Time { return now }))

		_, _ = store.Add(ctx, "first")
		now = now.Add(time.Minute)
		_, _ = store.Add(ctx, "second")
		now = now.Add(time.Minute)
		_, _ = store.Add(ctx, "third")

		Convey("When listing the latest", func() {
			got, err := store.Latest(ctx)

			Convey("Then the newest report comes first", func() {
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 3)
				So(got[0].Description, ShouldEqual, "third")
				So(got[1].Description, ShouldEqual, "second")
				So(got[2].Description, ShouldEqual, "first")
			})
		})

		Convey("When counting open reports", func() {
			Convey("Then every submitted report counts", func() {
				So(store.CountOpen(ctx), ShouldEqual, 3)
			})
		})
	})
}
