package caddyhawk

import (
	"testing"
	"time"

	"github.com/mholt/caddy"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseCaddyfile(t *testing.T) {
	Convey("parseCaddyfile", t, func() {
		Convey("a minimal block with credentials parses", func() {
			c := caddy.NewTestController("http", `hawk / {
				credentials dh37fgj492je=Z2VoZWlt
			}`)
			conf, err := parseCaddyfile(c)
			So(err, ShouldBeNil)
			So(conf.PathScopes, ShouldResemble, []string{"/"})

			scope := conf.Scope["/"]
			So(scope.TimestampTolerance, ShouldEqual, time.Minute)
			So(scope.Store.Len(), ShouldEqual, 1)
			_, ok := scope.Store.Lookup("dh37fgj492je")
			So(ok, ShouldBeTrue)
		})

		Convey("timestamp_tolerance overrides the default", func() {
			c := caddy.NewTestController("http", `hawk / {
				credentials dh37fgj492je=Z2VoZWlt
				timestamp_tolerance 90
			}`)
			conf, err := parseCaddyfile(c)
			So(err, ShouldBeNil)
			So(conf.Scope["/"].TimestampTolerance, ShouldEqual, 90*time.Second)
		})

		Convey("a block without credentials is rejected", func() {
			c := caddy.NewTestController("http", `hawk /`)
			_, err := parseCaddyfile(c)
			So(err, ShouldNotBeNil)
		})

		Convey("an unknown directive is rejected", func() {
			c := caddy.NewTestController("http", `hawk / {
				bogus_directive
			}`)
			_, err := parseCaddyfile(c)
			So(err, ShouldNotBeNil)
		})
	})
}
