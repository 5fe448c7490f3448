// Package caddyhawk registers "hawk" as a Caddy v1 HTTP middleware
// directive: it protects the paths named in a Caddyfile block with
// Hawk request authentication, backed by package store and package
// hawkhttp.
//
// Grounded in the teacher's setup_caddyserver.go (caddy.RegisterPlugin,
// Setup, HandlerConfiguration/scope-matching Handler.ServeHTTP), with
// ScopeConfiguration's upload-specific fields replaced by Hawk
// credentials and a timestamp tolerance.
package caddyhawk

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mholt/caddy"
	"github.com/mholt/caddy/caddyhttp/httpserver"

	"github.com/jprausch/hawkc"
	"github.com/jprausch/hawkc/hawkhttp"
	"github.com/jprausch/hawkc/store"
)

func init() {
	caddy.RegisterPlugin("hawk", caddy.Plugin{
		ServerType: "http",
		Action:     Setup,
	})
}

// Setup configures a hawk middleware instance from a Caddyfile.
//
// This is invoked by Caddy as a consequence of caddy.RegisterPlugin
// being called from init.
func Setup(c *caddy.Controller) error {
	config, err := parseCaddyfile(c)
	if err != nil {
		return err
	}

	site := httpserver.GetConfig(c)
	site.AddMiddleware(func(next httpserver.Handler) httpserver.Handler {
		return &Handler{Next: next, Config: config}
	})

	return nil
}

// ScopeConfiguration holds one Caddyfile block's settings: the
// credential store to authenticate against and how much clock skew
// to tolerate.
type ScopeConfiguration struct {
	Store              *store.CredentialStore
	TimestampTolerance time.Duration
}

// HandlerConfiguration maps path scopes to their own ScopeConfiguration,
// mirroring the teacher's multi-scope directive (a Caddyfile can
// protect several path prefixes with different credentials each).
type HandlerConfiguration struct {
	PathScopes []string
	Scope      map[string]*ScopeConfiguration
}

// Handler adapts hawkhttp.Handler to Caddy's httpserver.Handler
// interface (ServeHTTP returning (int, error) instead of writing an
// error response itself).
type Handler struct {
	Next   httpserver.Handler
	Config *HandlerConfiguration
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) (int, error) {
	for _, scope := range h.Config.PathScopes {
		if !httpserver.Path(r.URL.Path).Matches(scope) {
			continue
		}
		cfg := h.Config.Scope[scope]

		code, err := hawkhttp.Authenticate(r, cfg.Store.Lookup, cfg.TimestampTolerance)
		if err != nil {
			if code == http.StatusUnauthorized || code == http.StatusForbidden {
				w.Header().Set("WWW-Authenticate", hawkhttp.Challenge(r, cfg.Store.Lookup))
			}
			return code, err
		}
		return h.Next.ServeHTTP(w, r)
	}
	return h.Next.ServeHTTP(w, r)
}

func parseCaddyfile(c *caddy.Controller) (*HandlerConfiguration, error) {
	siteConfig := &HandlerConfiguration{
		PathScopes: make([]string, 0, 1),
		Scope:      make(map[string]*ScopeConfiguration),
	}

	for c.Next() {
		scope := &ScopeConfiguration{
			Store:              store.NewCredentialStore(),
			TimestampTolerance: time.Minute,
		}

		scopes := c.RemainingArgs()
		if len(scopes) == 0 {
			return siteConfig, c.ArgErr()
		}
		siteConfig.PathScopes = append(siteConfig.PathScopes, scopes...)

		alg := hawk.SHA256
		for c.NextBlock() {
			key := c.Val()
			switch key {
			case "algorithm":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				a, err := hawk.AlgorithmByName(c.Val())
				if err != nil {
					return siteConfig, c.Err(err.Error())
				}
				alg = a
			case "credentials":
				pairs := c.RemainingArgs()
				if len(pairs) == 0 {
					return siteConfig, c.ArgErr()
				}
				if err := scope.Store.Insert(alg, pairs); err != nil {
					return siteConfig, c.Err(err.Error())
				}
			case "timestamp_tolerance":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				seconds, err := strconv.ParseUint(c.Val(), 10, 32)
				if err != nil {
					return siteConfig, c.Err(err.Error())
				}
				scope.TimestampTolerance = time.Duration(seconds) * time.Second
			default:
				return siteConfig, c.ArgErr()
			}
		}

		if scope.Store.Len() == 0 {
			return siteConfig, c.Errf("hawk: no credentials configured")
		}

		for _, p := range scopes {
			siteConfig.Scope[p] = scope
		}
	}

	return siteConfig, nil
}
