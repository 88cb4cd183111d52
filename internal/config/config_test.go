package config

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	convey.Convey("Given a fresh default configuration", t, func() {
		convey.Convey("When New is called", func() {
			cfg := New()

			convey.Convey("Then all defaults should be populated", func() {
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.StoreBackend, convey.ShouldEqual, StoreBackendMemory)
				convey.So(cfg.RedisAddr, convey.ShouldEqual, "localhost:6379")
				convey.So(cfg.CameraAPIBase, convey.ShouldEqual, "https://tripcheck.com")
				convey.So(cfg.CameraCacheTTLMinutes, convey.ShouldEqual, 5)
				convey.So(cfg.CameraHTTPTimeoutSeconds, convey.ShouldEqual, 10)
				convey.So(cfg.MaxTopLimit, convey.ShouldEqual, 100)
				convey.So(cfg.SeedDemoData, convey.ShouldBeFalse)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	convey.Convey("Given configuration validation", t, func() {
		convey.Convey("When the defaults are validated", func() {
			err := New().validate()

			convey.Convey("Then no error should be returned", func() {
				convey.So(err, convey.ShouldBeNil)
			})
		})

		convey.Convey("When addr is empty", func() {
			cfg := New()
			cfg.Addr = ""
			err := cfg.validate()

			convey.Convey("Then an invalid config error should be returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr")
			})
		})

		convey.Convey("When the store backend is unknown", func() {
			cfg := New()
			cfg.StoreBackend = "postgres"
			err := cfg.validate()

			convey.Convey("Then an invalid config error should be returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "store_backend")
			})
		})

		convey.Convey("When the camera cache TTL is zero", func() {
			cfg := New()
			cfg.CameraCacheTTLMinutes = 0
			err := cfg.validate()

			convey.Convey("Then an invalid config error should be returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "camera_cache_ttl_minutes")
			})
		})

		convey.Convey("When the top limit is negative", func() {
			cfg := New()
			cfg.MaxTopLimit = -1
			err := cfg.validate()

			convey.Convey("Then an invalid config error should be returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "max_top_limit")
			})
		})
	})
}
