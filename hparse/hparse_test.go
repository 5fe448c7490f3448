package hparse

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("extracts the scheme and every key=value pair in order", func() {
			var scheme string
			var keys, vals []string
			err := Parse(
				`Hawk id="dh37fgj492je", ts="1353832234", nonce="j4h3g2", ext="some-app-ext-data", mac="6R4rV5iE+NPoym+WwjeHzjAGXUtLNIxmo1vpMofpLAE="`,
				func(s string) error { scheme = s; return nil },
				func(k, v string) error { keys = append(keys, k); vals = append(vals, v); return nil },
			)
			So(err, ShouldBeNil)
			So(scheme, ShouldEqual, "Hawk")
			So(keys, ShouldResemble, []string{"id", "ts", "nonce", "ext", "mac"})
			So(vals[0], ShouldEqual, "dh37fgj492je")
			So(vals[1], ShouldEqual, "1353832234")
		})

		Convey("tolerates whitespace around '=' and ','", func() {
			var keys []string
			err := Parse(`Hawk id = "a" ,  ts="1"`, nil, func(k, v string) error {
				keys = append(keys, k)
				return nil
			})
			So(err, ShouldBeNil)
			So(keys, ShouldResemble, []string{"id", "ts"})
		})

		Convey("preserves backslash escapes in quoted values", func() {
			var val string
			err := Parse(`Hawk id="a\"b"`, nil, func(k, v string) error {
				val = v
				return nil
			})
			So(err, ShouldBeNil)
			So(val, ShouldEqual, `a\"b`)
			So(Unescape(val), ShouldEqual, `a"b`)
		})

		Convey("accepts an unquoted token value", func() {
			var val string
			err := Parse(`Hawk id=abc123`, nil, func(k, v string) error {
				val = v
				return nil
			})
			So(err, ShouldBeNil)
			So(val, ShouldEqual, "abc123")
		})

		Convey("rejects a trailing comma", func() {
			err := Parse(`Hawk id="a",`, nil, func(k, v string) error { return nil })
			So(err, ShouldNotBeNil)
		})

		Convey("rejects a missing '='", func() {
			err := Parse(`Hawk id "a"`, nil, func(k, v string) error { return nil })
			So(err, ShouldNotBeNil)
		})

		Convey("rejects an unclosed quote", func() {
			err := Parse(`Hawk id="a`, nil, func(k, v string) error { return nil })
			So(err, ShouldNotBeNil)
		})

		Convey("surfaces a handler's own error unwrapped", func() {
			sentinel := errBadSchemeForTest
			err := Parse(`Basic dXNlcg==`, func(s string) error { return sentinel }, nil)
			So(err, ShouldEqual, sentinel)
		})

		Convey("scheme alone with no parameters yields no error", func() {
			var scheme string
			err := Parse(`Hawk`, func(s string) error { scheme = s; return nil }, nil)
			So(err, ShouldBeNil)
			So(scheme, ShouldEqual, "Hawk")
		})
	})
}

var errBadSchemeForTest = &testSentinel{"bad scheme"}

type testSentinel struct{ s string }

func (e *testSentinel) Error() string { return e.s }
