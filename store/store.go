// Package store holds Hawk credentials — the mapping from an "id" to
// the shared key used to sign and verify requests from that id.
//
// Grounded in the teacher's ScopeConfiguration.IncomingHmacSecrets /
// IncomingHmacSecretsLock (caddy.upload's signature.auth sibling
// HmacSecrets map), generalized from a single hardcoded algorithm to
// one Credentials entry per id carrying its own hawk.Algorithm, and
// guarded the same way: a sync.RWMutex around a plain map, because
// credentials are read on every request but only written rarely (at
// startup, or on a config reload).
package store

import (
	"strings"
	"sync"

	"github.com/jprausch/hawkc"
	"github.com/jprausch/hawkc/b64"
	"github.com/pkg/errors"
)

// Credentials is everything a Hawk party needs to be identified by and
// signed against: the shared key, the algorithm it was issued under,
// and the optional "app" identifier used for delegated credentials.
type Credentials struct {
	ID        string
	Key       []byte
	Algorithm hawk.Algorithm
	App       string
}

// LookupFunc resolves a Hawk id to its Credentials, as required by
// hawkhttp.NewHandler.
type LookupFunc func(id string) (Credentials, bool)

// ErrMalformedPair is returned by Insert for any tuple that isn't
// "id=base64(key)".
var ErrMalformedPair = errors.New("store: malformed id=key pair")

// CredentialStore maps Hawk ids to Credentials. The zero value is an
// empty store ready to use. Safe for concurrent use.
type CredentialStore struct {
	mu   sync.RWMutex
	byID map[string]Credentials
}

// NewCredentialStore returns an empty, ready-to-use store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{byID: make(map[string]Credentials)}
}

// Lookup implements LookupFunc.
func (s *CredentialStore) Lookup(id string) (Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	return c, ok
}

// Set adds or replaces the credentials for id.
func (s *CredentialStore) Set(id string, c Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byID == nil {
		s.byID = make(map[string]Credentials)
	}
	c.ID = id
	s.byID[id] = c
}

// Delete removes id from the store, if present.
func (s *CredentialStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// Len reports the number of credentials currently held.
func (s *CredentialStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Insert decodes "id=base64(key)" tuples under algorithm alg and adds
// or updates them in the store. The first tuple missing its '=' is
// reported as ErrMalformedPair; the first tuple whose key isn't valid
// base64 is reported as hawk.ErrBase64. Tuples before the bad one are
// still applied, matching the teacher's HmacSecrets.Insert behavior of
// processing tuples in order and stopping at the first bad one.
func (s *CredentialStore) Insert(alg hawk.Algorithm, pairs []string) error {
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return errors.Wrap(ErrMalformedPair, pair)
		}
		key, err := b64.Standard.DecodeString(parts[1])
		if err != nil {
			return errors.Wrap(hawk.ErrBase64, pair)
		}
		s.Set(parts[0], Credentials{Key: key, Algorithm: alg})
	}
	return nil
}
