package hawk

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAlgorithmByName(t *testing.T) {
	Convey("AlgorithmByName", t, func() {
		Convey("finds sha256 and sha1 by exact, case-sensitive name", func() {
			a, err := AlgorithmByName("sha256")
			So(err, ShouldBeNil)
			So(a.Size, ShouldEqual, 32)

			a, err = AlgorithmByName("sha1")
			So(err, ShouldBeNil)
			So(a.Size, ShouldEqual, 20)
		})

		Convey("rejects an unknown or mis-cased name", func() {
			_, err := AlgorithmByName("SHA256")
			So(err, ShouldNotBeNil)

			_, err = AlgorithmByName("md5")
			So(err, ShouldNotBeNil)
		})
	})
}
