package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
)

// Storage keys, one namespace per entity. Keeping them separate is what
// isolates the collections from each other; never merge two entities
// under one key.
const (
	keyDataPlans    = "sauki_data_plans"
	keyPromos       = "sauki_promos"
	keyAdmins       = "sauki_admins"
	keyOrders       = "sauki_orders"
	keyAuthToken    = "sauki_auth_token"
	keyCurrentOrder = "sauki_current_order"
	keyTheme        = "sauki_theme"
)

var (
	// ErrLastAdmin is returned when a delete would empty the admin
	// collection. The guard lives here rather than in callers so no new
	// caller can forget it.
	ErrLastAdmin = errors.New("at least one admin account must remain")

	// ErrCorrupt wraps a document that no longer parses as JSON.
	ErrCorrupt = errors.New("stored document is corrupt")
)

// Backend is the key-value surface the store persists through. Values are
// JSON documents, one full collection or slot per key. Get reports
// ok=false when the key has never been written.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Store owns all persisted state. Every mutation is a full
// read-modify-write of its collection; the mutex serializes those
// sequences within this process. Two processes sharing one backend are
// last-write-wins, same as the single-tab assumption this design carries.
type Store struct {
	mu           sync.Mutex
	backend      Backend
	defaultTheme models.Theme
	lastStamp    int64
}

// New wraps a backend. defaultTheme is what GetTheme falls back to when
// the user never chose one.
func New(backend Backend, defaultTheme models.Theme) *Store {
	if defaultTheme != models.ThemeDark {
		defaultTheme = models.ThemeLight
	}
	return &Store{backend: backend, defaultTheme: defaultTheme}
}

// Initialize seeds default data for any collection that has never been
// written. Idempotent; safe to call on every start. Existing data is
// never touched.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeds := []struct {
		key   string
		value any
	}{
		{keyDataPlans, models.DefaultDataPlans},
		{keyAdmins, []models.AdminUser{models.DefaultAdmin}},
		{keyPromos, []models.Promo{}},
		{keyOrders, []models.Order{}},
	}
	for _, seed := range seeds {
		_, ok, err := s.backend.Get(seed.key)
		if err != nil {
			return fmt.Errorf("initialize %s: %w", seed.key, err)
		}
		if ok {
			continue
		}
		if err := s.write(seed.key, seed.value); err != nil {
			return err
		}
	}
	return nil
}

// read unmarshals the document at key into dest. Missing keys leave dest
// untouched and report ok=false.
func (s *Store) read(key string, dest any) (bool, error) {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("load %s: %w: %v", key, ErrCorrupt, err)
	}
	return true, nil
}

func (s *Store) write(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := s.backend.Set(key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// stamp returns a millisecond timestamp that is strictly increasing per
// store, so two records created in the same millisecond still get
// distinct IDs. Callers must hold s.mu.
func (s *Store) stamp() int64 {
	now := time.Now().UnixMilli()
	if now <= s.lastStamp {
		now = s.lastStamp + 1
	}
	s.lastStamp = now
	return now
}
