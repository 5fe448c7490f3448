package hawkhttp

import (
	"net/http"

	"github.com/jprausch/hawkc"
	"github.com/jprausch/hawkc/store"
)

// Sign computes and sets req's "Authorization" header for the given
// credentials, filling in ts/nonce/mac from req's own Method, URL and
// Host. ext, if non-empty, is carried as the "ext" parameter.
func Sign(req *http.Request, creds store.Credentials, ext string) error {
	host, port := extractHostPort(req)
	path := req.URL.Path
	if req.URL.RawQuery != "" {
		path += "?" + req.URL.RawQuery
	}
	s := hawk.NewSigner(creds.Algorithm, creds.Key, req.Method, path, host, port)
	header, err := s.Authorization(hawk.AuthParams{ID: creds.ID, App: creds.App, Ext: ext})
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", header)
	return nil
}
