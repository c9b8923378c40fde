package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadCollectionMissingKey(t *testing.T) {
	s := newTestStore(t)

	items, err := LoadCollection[types.Item](s, DurableKey(EntityItems))
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestCollectionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := []types.Item{
		{ItemID: "i2", Name: "Bread", ExpirationDate: "2026-04-01", Quantity: 4},
		{ItemID: "i1", Name: "Milk", ExpirationDate: "2026-03-20", Quantity: 15},
	}
	require.NoError(t, SaveCollection(s, DurableKey(EntityItems), want))

	got, err := LoadCollection[types.Item](s, DurableKey(EntityItems))
	require.NoError(t, err)
	// Order is preserved through the round trip.
	assert.Equal(t, want, got)
}

func TestLoadCollectionCorruptJSONClearsKey(t *testing.T) {
	s := newTestStore(t)
	key := DurableKey(EntityCodes)
	require.NoError(t, s.Set(key, []byte(`{not json`)))

	codes, err := LoadCollection[types.AccessCode](s, key)
	require.NoError(t, err)
	assert.Nil(t, codes)

	// The offending key was cleared.
	_, ok, err := s.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadCollectionInvalidShapeClearsKey(t *testing.T) {
	s := newTestStore(t)
	key := DurableKey(EntityCodes)
	// Valid JSON, but an access code without its code field.
	require.NoError(t, s.Set(key, []byte(`[{"staffId":"S-1"}]`)))

	codes, err := LoadCollection[types.AccessCode](s, key)
	require.NoError(t, err)
	assert.Nil(t, codes)

	_, ok, err := s.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadValueSessionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := types.Identity{
		StaffID:    "S-1",
		Name:       "Sample",
		Role:       types.RoleStaff,
		StoreID:    "C42",
		Credential: "QWXTY",
		IsDemo:     true,
	}
	require.NoError(t, SaveValue(s, KeySession, want))

	got, ok, err := LoadValue[types.Identity](s, KeySession)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestLoadValueCorruptSessionDiscarded(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "malformed json", raw: []byte(`{"staffId":`)},
		{name: "missing role", raw: []byte(`{"staffId":"S-1","credential":"x"}`)},
		{name: "missing credential", raw: []byte(`{"staffId":"S-1","role":"staff"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.Set(KeySession, tt.raw))

			_, ok, err := LoadValue[types.Identity](s, KeySession)
			require.NoError(t, err)
			assert.False(t, ok)

			_, present, err := s.Get(KeySession)
			require.NoError(t, err)
			assert.False(t, present, "corrupt session key should be cleared")
		})
	}
}
