// Package session owns the current identity and the in-memory working set.
//
// The manager is the single owner of session state: it restores a persisted
// identity at startup, merges the durable and demo caches into the working
// set, decides whether the remote service or local data feeds the session,
// and erases the identity on logout. Other components receive state by
// parameter or through the accessors here, never via ambient globals.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/cache"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/demo"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/gateway"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

// BulkFetcher is the slice of the gateway the manager needs for activation.
type BulkFetcher interface {
	FetchAll(ctx context.Context) (gateway.BulkData, error)
	FetchStore(ctx context.Context, storeCode string) (gateway.BulkData, error)
}

// CredentialResolver produces a session identity for a login attempt.
type CredentialResolver interface {
	Resolve(ctx context.Context, role, credential string, demoRequested bool, codes []types.AccessCode, staff []types.Staff) (types.Identity, error)
}

// Collections is the in-memory working set for the active session. After
// startup it is the single source of truth; the cache namespaces are
// rewritten from it, never read back mid-session.
type Collections struct {
	Items       []types.Item
	Staff       []types.Staff
	AccessCodes []types.AccessCode
	Stores      []types.Store
}

// Manager owns the session lifecycle and the working set.
type Manager struct {
	mu       sync.RWMutex
	store    *cache.Store
	fetcher  BulkFetcher
	resolver CredentialResolver
	log      *logrus.Logger

	// now is the clock for demo seeding; overridable in tests.
	now func() time.Time

	identity *types.Identity
	col      Collections
}

// NewManager creates a manager over the given cache store, gateway, and
// resolver. Call Start before anything else.
func NewManager(store *cache.Store, fetcher BulkFetcher, resolver CredentialResolver, log *logrus.Logger) *Manager {
	return &Manager{
		store:    store,
		fetcher:  fetcher,
		resolver: resolver,
		log:      log,
		now:      time.Now,
	}
}

// Start loads the working set by merging the durable and demo caches per
// entity type, and restores any persisted identity. A corrupt persisted
// session or collection is cleared and replaced with an empty default;
// startup never fails on bad local state.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	items, err := loadMerged[types.Item](m.store, cache.EntityItems)
	if err != nil {
		return err
	}
	staff, err := loadMerged[types.Staff](m.store, cache.EntityStaff)
	if err != nil {
		return err
	}
	codes, err := loadMerged[types.AccessCode](m.store, cache.EntityCodes)
	if err != nil {
		return err
	}

	m.col = Collections{
		Items:       items,
		Staff:       staff,
		AccessCodes: codes,
		Stores:      demo.Stores(),
	}

	identity, ok, err := cache.LoadValue[types.Identity](m.store, cache.KeySession)
	if err != nil {
		return err
	}
	if ok {
		m.identity = &identity
		m.log.WithFields(logrus.Fields{"staffId": identity.StaffID, "demo": identity.IsDemo}).
			Debug("restored persisted session")
	}
	return nil
}

// loadMerged reads one entity type from both namespaces and merges them,
// durable entries winning.
func loadMerged[T interface {
	Validate() error
	Key() string
}](store *cache.Store, entity string) ([]T, error) {
	durable, err := cache.LoadCollection[T](store, cache.DurableKey(entity))
	if err != nil {
		return nil, err
	}
	demoEntries, err := cache.LoadCollection[T](store, cache.DemoKey(entity))
	if err != nil {
		return nil, err
	}
	return cache.Merge(durable, demoEntries, func(t T) string { return t.Key() }), nil
}

// Identity returns the active identity, if any.
func (m *Manager) Identity() (types.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.identity == nil {
		return types.Identity{}, false
	}
	return *m.identity, true
}

// Collections returns a copy of the working set.
func (m *Manager) Collections() Collections {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.col.copy()
}

func (c Collections) copy() Collections {
	return Collections{
		Items:       append([]types.Item(nil), c.Items...),
		Staff:       append([]types.Staff(nil), c.Staff...),
		AccessCodes: append([]types.AccessCode(nil), c.AccessCodes...),
		Stores:      append([]types.Store(nil), c.Stores...),
	}
}

// Login resolves the credential into an identity, persists it, and activates
// the session. An auth rejection during activation forces logout; any other
// activation failure leaves the cached working set in effect.
func (m *Manager) Login(ctx context.Context, role, credential string, demoRequested bool) (types.Identity, error) {
	col := m.Collections()
	identity, err := m.resolver.Resolve(ctx, role, credential, demoRequested, col.AccessCodes, col.Staff)
	if err != nil {
		return types.Identity{}, err
	}

	m.mu.Lock()
	m.identity = &identity
	err = cache.SaveValue(m.store, cache.KeySession, identity)
	m.mu.Unlock()
	if err != nil {
		return types.Identity{}, fmt.Errorf("persist session: %w", err)
	}

	if err := m.activate(ctx); err != nil {
		return types.Identity{}, err
	}
	return identity, nil
}

// Sync re-runs activation for the active session: demo sessions reseed if
// empty, live sessions refetch from the remote.
func (m *Manager) Sync(ctx context.Context) error {
	if _, ok := m.Identity(); !ok {
		return types.ErrNoSession
	}
	return m.activate(ctx)
}

// Logout destroys the active session and erases its persisted form.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.identity = nil
	return m.store.Remove(cache.KeySession)
}

// activate selects the session's data source.
//
// Demo sessions never touch the network: the merged local collections are
// kept when non-empty, otherwise the built-in demonstration data seeds them.
// Live sessions issue one bulk fetch, selected by role, and on success the
// working set is replaced wholesale with the response.
func (m *Manager) activate(ctx context.Context) error {
	identity, ok := m.Identity()
	if !ok {
		return types.ErrNoSession
	}

	if identity.IsDemo {
		m.seedDemoIfEmpty()
		return nil
	}

	var (
		data gateway.BulkData
		err  error
	)
	if identity.Role == types.RoleAdmin {
		data, err = m.fetcher.FetchAll(ctx)
	} else {
		data, err = m.fetcher.FetchStore(ctx, identity.StoreID)
	}

	if err != nil {
		if errors.Is(err, types.ErrAuthRejected) {
			// The credential is no longer trusted.
			m.log.WithField("staffId", identity.StaffID).Warn("bulk fetch rejected credential, logging out")
			if lerr := m.Logout(); lerr != nil {
				return lerr
			}
			return err
		}
		// Stale-but-available: keep whatever the caches gave us.
		m.log.WithError(err).Warn("bulk fetch failed, serving cached data")
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.col.Items = data.Items
	m.col.Staff = data.Staff
	m.col.AccessCodes = data.AccessCodes
	if len(data.Stores) > 0 {
		m.col.Stores = data.Stores
	}
	return m.persistDurableLocked()
}

// seedDemoIfEmpty fills the working set with the demonstration dataset when
// nothing has been recorded locally yet.
func (m *Manager) seedDemoIfEmpty() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.col.Items) > 0 || len(m.col.Staff) > 0 || len(m.col.AccessCodes) > 0 {
		return
	}

	now := m.now()
	m.col.Items = demo.Items(now)
	m.col.Staff = demo.Staff()
	m.col.AccessCodes = demo.AccessCodes(now)

	if err := m.persistDurableLocked(); err != nil {
		m.log.WithError(err).Warn("persist seeded demo data")
	}
}

// SetItems replaces the item collection and rewrites its durable cache from
// the new snapshot.
func (m *Manager) SetItems(items []types.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.col.Items = items
	return cache.SaveCollection(m.store, cache.DurableKey(cache.EntityItems), items)
}

// SetStaffAndCodes replaces the staff and access-code collections and
// rewrites their durable caches from the new snapshots.
func (m *Manager) SetStaffAndCodes(staff []types.Staff, codes []types.AccessCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.col.Staff = staff
	m.col.AccessCodes = codes
	if err := cache.SaveCollection(m.store, cache.DurableKey(cache.EntityStaff), staff); err != nil {
		return err
	}
	return cache.SaveCollection(m.store, cache.DurableKey(cache.EntityCodes), codes)
}

// persistDurableLocked rewrites every durable namespace from the working
// set. Caller holds m.mu.
func (m *Manager) persistDurableLocked() error {
	if err := cache.SaveCollection(m.store, cache.DurableKey(cache.EntityItems), m.col.Items); err != nil {
		return err
	}
	if err := cache.SaveCollection(m.store, cache.DurableKey(cache.EntityStaff), m.col.Staff); err != nil {
		return err
	}
	return cache.SaveCollection(m.store, cache.DurableKey(cache.EntityCodes), m.col.AccessCodes)
}
