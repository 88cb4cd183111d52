package service_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/mkarimi/roadboard/internal/app"
	"github.com/mkarimi/roadboard/internal/domain/ranking"
	"github.com/mkarimi/roadboard/pkg/logger"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithStoreBackend("memory"),
			service.WithCameraCacheTTL(time.Minute),
			service.WithCameraHTTPTimeout(2*time.Second),
			service.WithSeedDemoData(true),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_StartStop(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		Convey("When starting the service", func() {
			err := svc.Start(ctx)

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
			})

			Convey("And starting twice should be a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})
		})

		Convey("When stopping a started service", func() {
			So(svc.Start(ctx), ShouldBeNil)
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Awards(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithStoreBackend("memory"))
		defer svc.Stop()
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When points are awarded to players", func() {
			So(svc.AddPoints(ctx, "ada", 30), ShouldBeNil)
			So(svc.AddPoints(ctx, "bob", 10), ShouldBeNil)
			So(svc.AddPoints(ctx, "bob", 15), ShouldBeNil)

			Convey("Then the leaderboard accumulates and ranks them", func() {
				top, err := svc.Top(ctx, 10)
				So(err, ShouldBeNil)
				So(len(top), ShouldEqual, 2)
				So(top[0].DisplayName, ShouldEqual, "ada")
				So(top[0].UserPoints, ShouldEqual, 30)
				So(top[1].DisplayName, ShouldEqual, "bob")
				So(top[1].UserPoints, ShouldEqual, 25)
			})

			Convey("And an award event reaches live subscribers", func() {
				id, ch := svc.Hub().Subscribe(4)
				defer svc.Hub().Unsubscribe(id)

				So(svc.AddPoints(ctx, "cal", 5), ShouldBeNil)

				select {
				case ev := <-ch:
					So(ev.DisplayName, ShouldEqual, "cal")
					So(ev.Points, ShouldEqual, 5)
				case <-time.After(time.Second):
					t.Fatal("expected an award event")
				}
			})
		})

		Convey("When an invalid award is submitted", func() {
			err := svc.AddPoints(ctx, "   ", 10)

			Convey("Then the validation error passes through untouched", func() {
				So(err, ShouldNotBeNil)
				ve := ranking.AsValidation(err)
				So(ve, ShouldNotBeNil)
				So(ve.Kind, ShouldEqual, ranking.KindEmptyName)
			})

			Convey("And nothing reaches live subscribers", func() {
				id, ch := svc.Hub().Subscribe(4)
				defer svc.Hub().Unsubscribe(id)

				_ = svc.AddPoints(ctx, "ada", 0)

				select {
				case <-ch:
					t.Fatal("rejected award must not be broadcast")
				case <-time.After(100 * time.Millisecond):
				}
			})
		})
	})
}

func TestService_Reports(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New()
		defer svc.Stop()
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When reports are submitted", func() {
			first, err := svc.SubmitReport(ctx, "pothole on exit 12")
			So(err, ShouldBeNil)
			_, err = svc.SubmitReport(ctx, "ice on bridge")
			So(err, ShouldBeNil)

			Convey("Then the latest list is newest first and bounded", func() {
				list, err := svc.LatestReports(ctx, 1)
				So(err, ShouldBeNil)
				So(len(list), ShouldEqual, 1)
				So(list[0].Description, ShouldEqual, "ice on bridge")
				So(first.ID, ShouldNotBeEmpty)
			})
		})
	})
}

func TestService_SeedDemoData(t *testing.T) {
	Convey("Given a service with demo seeding enabled", t, func() {
		svc := service.New(service.WithSeedDemoData(true))
		defer svc.Stop()
		ctx := context.Background()

		Convey("When the service starts", func() {
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then the leaderboard is not empty", func() {
				top, err := svc.Top(ctx, 10)
				So(err, ShouldBeNil)
				So(len(top), ShouldBeGreaterThan, 0)
			})
		})
	})
}
