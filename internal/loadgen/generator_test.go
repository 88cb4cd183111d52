package loadgen

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mkarimi/roadboard/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestGenerateAwards(t *testing.T) {
	Convey("Given a load test configuration", t, func() {
		config := &Config{NumAwards: 500, NumPlayers: 20}
		stats := &Stats{}

		Convey("When awards are generated", func() {
			awards, expected, err := generateAwards(context.Background(), config, stats)

			Convey("Then the requested number of awards exists", func() {
				So(err, ShouldBeNil)
				So(len(awards), ShouldEqual, 500)
				So(stats.AwardsGenerated, ShouldEqual, 500)
			})

			Convey("And every award is positive and bookkept", func() {
				totals := make(map[string]int)
				for _, a := range awards {
					So(a.Points, ShouldBeGreaterThan, 0)
					So(a.DisplayName, ShouldNotBeEmpty)
					totals[a.DisplayName] += a.Points
				}
				So(totals, ShouldResemble, expected)
			})

			Convey("And the player pool is bounded", func() {
				So(len(expected), ShouldBeLessThanOrEqualTo, 20)
			})
		})
	})
}
