package cache_test

import (
	"testing"
	"time"

	"github.com/mkarimi/roadboard/pkg/cache"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCache_GetSet(t *testing.T) {
	Convey("Given a cache with a controllable clock", t, func() {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		c := cache.New[string, int](cache.WithClock[string, int](func() time.Time { return now }))

		Convey("When nothing was stored", func() {
			_, ok := c.Get("missing")

			Convey("Then Get reports a miss", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When a value is stored with a 5 minute TTL", func() {
			c.Set("k", 42, 5*time.Minute)

			Convey("Then it is served before expiry", func() {
				now = now.Add(4 * time.Minute)
				v, ok := c.Get("k")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 42)
			})

			Convey("Then a read at the deadline behaves as a miss", func() {
				now = now.Add(5 * time.Minute)
				_, ok := c.Get("k")
				So(ok, ShouldBeFalse)
			})

			Convey("Then an expired entry is evicted lazily", func() {
				now = now.Add(6 * time.Minute)
				_, _ = c.Get("k")
				So(c.Len(), ShouldEqual, 0)
			})
		})

		Convey("When a key is overwritten", func() {
			c.Set("k", 1, time.Minute)
			c.Set("k", 2, 10*time.Minute)

			Convey("Then the new value and expiry win", func() {
				now = now.Add(5 * time.Minute)
				v, ok := c.Get("k")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 2)
			})
		})
	})
}

func TestCache_DefaultClock(t *testing.T) {
	Convey("Given a cache using the wall clock", t, func() {
		c := cache.New[string, string]()
		c.Set("k", "v", time.Hour)

		Convey("Then a fresh entry is a hit", func() {
			v, ok := c.Get("k")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "v")
		})
	})
}
