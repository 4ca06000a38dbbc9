package session

import (
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// StorageKey is where the durable player identity lives in the
// browser's local storage.
const StorageKey = "budallas_userId"

// KV is the minimal persistence surface the identity store needs:
// localStorage in the browser, a plain map in tests.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Identity hands out the stable per-browser player id. The id is
// created once, persisted forever, and attached to every join request
// so the server can give a returning browser its previous seat back.
type Identity struct {
	kv KV
	id string
}

func NewIdentity(kv KV) *Identity {
	return &Identity{kv: kv}
}

// GetOrCreateID returns the durable identity, creating and persisting
// a fresh UUID on first use. When persistence fails the new id is kept
// in memory and still returned: reconnection support is lost for this
// session, nothing else.
func (s *Identity) GetOrCreateID() string {
	if s.id != "" {
		return s.id
	}
	if v, ok := s.kv.Get(StorageKey); ok && v != "" {
		s.id = v
		return s.id
	}
	s.id = uuid.NewString()
	if err := s.kv.Set(StorageKey, s.id); err != nil {
		klog.Warningf("Identity: persisting user id failed, reconnection disabled for this session: %v", err)
	}
	return s.id
}

// MemKV is an in-memory KV, used server-side and in tests.
type MemKV map[string]string

func (m MemKV) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemKV) Set(key, value string) error {
	m[key] = value
	return nil
}
