package hawkhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jprausch/hawkc"
	"github.com/jprausch/hawkc/store"
	. "github.com/smartystreets/goconvey/convey"
)

func fixedStore() *store.CredentialStore {
	s := store.NewCredentialStore()
	s.Set("dh37fgj492je", store.Credentials{Key: []byte("werxhqb98rpaxn39848xrunpaw3489ruxnpa98w4rxn"), Algorithm: hawk.SHA256})
	return s
}

func TestHandler(t *testing.T) {
	Convey("Handler", t, func() {
		s := fixedStore()
		protected := NewHandler(s.Lookup, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		Convey("rejects a request with no Authorization header", func() {
			req := httptest.NewRequest("GET", "http://example.com/resource", nil)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
			So(rec.Header().Get("WWW-Authenticate"), ShouldEqual, "Hawk")
		})

		Convey("rejects an unknown id with a bare challenge", func() {
			req := httptest.NewRequest("GET", "http://example.com/resource", nil)
			req.Header.Set("Authorization", `Hawk id="nobody", ts="1", nonce="aaa", mac="bbb"`)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusForbidden)
			So(rec.Header().Get("WWW-Authenticate"), ShouldEqual, "Hawk")
		})

		Convey("accepts a freshly signed request and forwards it", func() {
			req := httptest.NewRequest("GET", "http://example.com/resource?a=1", nil)
			creds, _ := s.Lookup("dh37fgj492je")
			So(Sign(req, creds, "some-app-ext-data"), ShouldBeNil)

			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusOK)
		})

		Convey("rejects a stale timestamp with a signed challenge", func() {
			req := httptest.NewRequest("GET", "http://example.com/resource", nil)
			creds, _ := s.Lookup("dh37fgj492je")
			So(Sign(req, creds, ""), ShouldBeNil)

			realNow := Now
			Now = func() time.Time { return realNow().Add(2 * time.Hour) }
			defer func() { Now = realNow }()

			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
			So(rec.Header().Get("WWW-Authenticate"), ShouldStartWith, "Hawk ts=")
		})

		Convey("rejects a tampered mac", func() {
			req := httptest.NewRequest("GET", "http://example.com/resource", nil)
			creds, _ := s.Lookup("dh37fgj492je")
			So(Sign(req, creds, ""), ShouldBeNil)
			req.URL.Path = "/tampered"

			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusForbidden)
		})
	})
}
