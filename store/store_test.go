package store

import (
	"testing"

	"github.com/jprausch/hawkc"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCredentialStore(t *testing.T) {
	Convey("CredentialStore", t, func() {
		s := NewCredentialStore()
		So(s.Len(), ShouldEqual, 0)

		Convey("Set/Lookup/Delete round-trip", func() {
			s.Set("dh37fgj492je", Credentials{Key: []byte("secret"), Algorithm: hawk.SHA256})
			c, ok := s.Lookup("dh37fgj492je")
			So(ok, ShouldBeTrue)
			So(c.Key, ShouldResemble, []byte("secret"))
			So(c.ID, ShouldEqual, "dh37fgj492je")

			s.Delete("dh37fgj492je")
			_, ok = s.Lookup("dh37fgj492je")
			So(ok, ShouldBeFalse)
		})

		Convey("Insert decodes id=base64(key) tuples", func() {
			err := s.Insert(hawk.SHA256, []string{"yui=Z2VoZWlt"}) // yui=geheim
			So(err, ShouldBeNil)
			c, ok := s.Lookup("yui")
			So(ok, ShouldBeTrue)
			So(string(c.Key), ShouldEqual, "geheim")
		})

		Convey("Insert rejects a malformed tuple", func() {
			err := s.Insert(hawk.SHA256, []string{"noequalssign"})
			So(err, ShouldNotBeNil)

			err = s.Insert(hawk.SHA256, []string{"id=not-base64!!!"})
			So(err, ShouldNotBeNil)
		})

		Convey("Lookup on an empty store misses", func() {
			_, ok := s.Lookup("nobody")
			So(ok, ShouldBeFalse)
		})
	})
}
