package session

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/cache"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/gateway"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

// fakeFetcher scripts bulk fetch results.
type fakeFetcher struct {
	data       gateway.BulkData
	err        error
	allCalls   int
	storeCalls []string
}

func (f *fakeFetcher) FetchAll(context.Context) (gateway.BulkData, error) {
	f.allCalls++
	return f.data, f.err
}

func (f *fakeFetcher) FetchStore(_ context.Context, storeCode string) (gateway.BulkData, error) {
	f.storeCalls = append(f.storeCalls, storeCode)
	return f.data, f.err
}

// fakeResolver returns a scripted identity.
type fakeResolver struct {
	identity types.Identity
	err      error
}

func (f *fakeResolver) Resolve(_ context.Context, role, credential string, demoRequested bool, _ []types.AccessCode, _ []types.Staff) (types.Identity, error) {
	if f.err != nil {
		return types.Identity{}, f.err
	}
	return f.identity, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestManager(t *testing.T, fetcher *fakeFetcher, resolver *fakeResolver) (*Manager, *cache.Store) {
	t.Helper()
	store, err := cache.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewManager(store, fetcher, resolver, testLogger()), store
}

func demoStaffIdentity() types.Identity {
	return types.Identity{
		StaffID:    "DEMO-STAFF",
		Name:       "Staff",
		Role:       types.RoleStaff,
		StoreID:    "C42",
		Credential: "demo",
		IsDemo:     true,
	}
}

func liveAdminIdentity() types.Identity {
	return types.Identity{
		StaffID:    "admin_user",
		Name:       "Admin",
		Role:       types.RoleAdmin,
		Credential: "admin-secret",
	}
}

func TestStartMergesDurableAndDemoCaches(t *testing.T) {
	m, store := newTestManager(t, &fakeFetcher{}, &fakeResolver{})

	durable := []types.Item{{ItemID: "A", Name: "Durable Milk", ExpirationDate: "2026-03-20", Quantity: 1}}
	demoOnly := []types.Item{
		{ItemID: "A", Name: "Demo Milk", ExpirationDate: "2026-03-21", Quantity: 9},
		{ItemID: "B", Name: "Demo Bread", ExpirationDate: "2026-03-22", Quantity: 3},
	}
	require.NoError(t, cache.SaveCollection(store, cache.DurableKey(cache.EntityItems), durable))
	require.NoError(t, cache.SaveCollection(store, cache.DemoKey(cache.EntityItems), demoOnly))

	require.NoError(t, m.Start())

	col := m.Collections()
	require.Len(t, col.Items, 2)
	// Durable wins on conflicting keys; demo-only entries are appended.
	assert.Equal(t, "Durable Milk", col.Items[0].Name)
	assert.Equal(t, "B", col.Items[1].ItemID)
	// Static fallback store list until a fetch supplies one.
	assert.NotEmpty(t, col.Stores)
}

func TestStartRestoresPersistedIdentity(t *testing.T) {
	m, store := newTestManager(t, &fakeFetcher{}, &fakeResolver{})
	require.NoError(t, cache.SaveValue(store, cache.KeySession, demoStaffIdentity()))

	require.NoError(t, m.Start())

	identity, ok := m.Identity()
	require.True(t, ok)
	assert.Equal(t, "DEMO-STAFF", identity.StaffID)
}

func TestStartDiscardsCorruptIdentity(t *testing.T) {
	m, store := newTestManager(t, &fakeFetcher{}, &fakeResolver{})
	require.NoError(t, store.Set(cache.KeySession, []byte(`{"role":`)))

	require.NoError(t, m.Start())

	_, ok := m.Identity()
	assert.False(t, ok)
	_, present, err := store.Get(cache.KeySession)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestLoginDemoSeedsWhenEmpty(t *testing.T) {
	fetcher := &fakeFetcher{}
	m, _ := newTestManager(t, fetcher, &fakeResolver{identity: demoStaffIdentity()})
	require.NoError(t, m.Start())

	_, err := m.Login(context.Background(), types.RoleStaff, "demo", true)
	require.NoError(t, err)

	col := m.Collections()
	assert.NotEmpty(t, col.Items)
	assert.NotEmpty(t, col.AccessCodes)
	assert.Zero(t, fetcher.allCalls)
	assert.Empty(t, fetcher.storeCalls, "demo session must not fetch")
}

func TestLoginDemoKeepsExistingCollections(t *testing.T) {
	m, store := newTestManager(t, &fakeFetcher{}, &fakeResolver{identity: demoStaffIdentity()})
	existing := []types.Item{{ItemID: "mine", Name: "My Item", ExpirationDate: "2026-05-01", Quantity: 1}}
	require.NoError(t, cache.SaveCollection(store, cache.DurableKey(cache.EntityItems), existing))
	require.NoError(t, m.Start())

	_, err := m.Login(context.Background(), types.RoleStaff, "demo", true)
	require.NoError(t, err)

	col := m.Collections()
	require.Len(t, col.Items, 1)
	assert.Equal(t, "mine", col.Items[0].ItemID)
}

func TestLoginLiveAdminReplacesWholesale(t *testing.T) {
	fetched := gateway.BulkData{
		Items:       []types.Item{{ItemID: "srv_1", Name: "Server Milk", ExpirationDate: "2026-03-25", Quantity: 7}},
		Staff:       []types.Staff{{StaffID: "S-1", Name: "One", StoreID: "C42"}},
		AccessCodes: []types.AccessCode{{Code: "K9QRT", StaffID: "S-1", StoreCode: "C42"}},
		Stores:      []types.Store{{Code: "C99", Name: "New Store"}},
	}
	fetcher := &fakeFetcher{data: fetched}
	m, store := newTestManager(t, fetcher, &fakeResolver{identity: liveAdminIdentity()})

	// Pre-existing cached data must be replaced, not merged.
	stale := []types.Item{{ItemID: "stale", Name: "Stale", ExpirationDate: "2026-01-01", Quantity: 1}}
	require.NoError(t, cache.SaveCollection(store, cache.DurableKey(cache.EntityItems), stale))
	require.NoError(t, m.Start())

	_, err := m.Login(context.Background(), types.RoleAdmin, "admin-secret", false)
	require.NoError(t, err)

	col := m.Collections()
	require.Len(t, col.Items, 1)
	assert.Equal(t, "srv_1", col.Items[0].ItemID)
	assert.Equal(t, []types.Store{{Code: "C99", Name: "New Store"}}, col.Stores)
	assert.Equal(t, 1, fetcher.allCalls)

	// Durable cache rewritten from the response.
	persisted, err := cache.LoadCollection[types.Item](store, cache.DurableKey(cache.EntityItems))
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, "srv_1", persisted[0].ItemID)
}

func TestLoginLiveStaffFetchesOwnStore(t *testing.T) {
	fetcher := &fakeFetcher{}
	identity := types.Identity{
		StaffID: "S-1", Role: types.RoleStaff, StoreID: "C16", Credential: "K9QRT",
	}
	m, _ := newTestManager(t, fetcher, &fakeResolver{identity: identity})
	require.NoError(t, m.Start())

	_, err := m.Login(context.Background(), types.RoleStaff, "K9QRT", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"C16"}, fetcher.storeCalls)
	assert.Zero(t, fetcher.allCalls)
}

func TestActivateFailureKeepsCachedData(t *testing.T) {
	fetcher := &fakeFetcher{err: types.ErrNetworkUnreachable}
	m, store := newTestManager(t, fetcher, &fakeResolver{identity: liveAdminIdentity()})

	cached := []types.Item{{ItemID: "cached", Name: "Cached", ExpirationDate: "2026-04-01", Quantity: 2}}
	require.NoError(t, cache.SaveCollection(store, cache.DurableKey(cache.EntityItems), cached))
	require.NoError(t, m.Start())

	// Stale-but-available: the login still succeeds.
	_, err := m.Login(context.Background(), types.RoleAdmin, "admin-secret", false)
	require.NoError(t, err)

	col := m.Collections()
	require.Len(t, col.Items, 1)
	assert.Equal(t, "cached", col.Items[0].ItemID)

	_, ok := m.Identity()
	assert.True(t, ok)
}

func TestActivateAuthRejectionForcesLogout(t *testing.T) {
	fetcher := &fakeFetcher{err: types.ErrAuthRejected}
	m, store := newTestManager(t, fetcher, &fakeResolver{identity: liveAdminIdentity()})
	require.NoError(t, m.Start())

	_, err := m.Login(context.Background(), types.RoleAdmin, "expired-secret", false)
	assert.ErrorIs(t, err, types.ErrAuthRejected)

	_, ok := m.Identity()
	assert.False(t, ok, "rejected credential must not leave an active session")

	_, present, err := store.Get(cache.KeySession)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestLogoutErasesPersistedIdentity(t *testing.T) {
	m, store := newTestManager(t, &fakeFetcher{}, &fakeResolver{identity: demoStaffIdentity()})
	require.NoError(t, m.Start())

	_, err := m.Login(context.Background(), types.RoleStaff, "demo", true)
	require.NoError(t, err)

	require.NoError(t, m.Logout())

	_, ok := m.Identity()
	assert.False(t, ok)
	_, present, err := store.Get(cache.KeySession)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestSyncRequiresSession(t *testing.T) {
	m, _ := newTestManager(t, &fakeFetcher{}, &fakeResolver{})
	require.NoError(t, m.Start())

	assert.ErrorIs(t, m.Sync(context.Background()), types.ErrNoSession)
}

func TestSyncRefetchesForLiveSession(t *testing.T) {
	fetcher := &fakeFetcher{}
	m, _ := newTestManager(t, fetcher, &fakeResolver{identity: liveAdminIdentity()})
	require.NoError(t, m.Start())

	_, err := m.Login(context.Background(), types.RoleAdmin, "admin-secret", false)
	require.NoError(t, err)
	require.NoError(t, m.Sync(context.Background()))

	assert.Equal(t, 2, fetcher.allCalls)
}
