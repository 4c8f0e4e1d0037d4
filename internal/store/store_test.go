package store

import (
	"testing"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(NewMemoryBackend(), models.ThemeLight)
	require.NoError(t, s.Initialize())
	return s
}

func TestInitializeSeedsDefaults(t *testing.T) {
	s := newTestStore(t)

	plans, err := s.GetDataPlans()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDataPlans, plans)

	admins, err := s.GetAdmins()
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, models.DefaultAdmin, admins[0])

	promos, err := s.GetPromos()
	require.NoError(t, err)
	assert.Empty(t, promos)

	orders, err := s.GetOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestInitializeIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	// Mutate, then re-initialize repeatedly; changes must survive.
	_, err := s.DeleteDataPlan("mtn-1gb")
	require.NoError(t, err)
	_, err = s.AddAdmin(models.AdminUser{Username: "second", Password: "pw"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Initialize())
	}

	plans, err := s.GetDataPlans()
	require.NoError(t, err)
	assert.Len(t, plans, len(models.DefaultDataPlans)-1)

	admins, err := s.GetAdmins()
	require.NoError(t, err)
	assert.Len(t, admins, 2)
}

func TestCorruptDocumentSurfacesError(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(keyDataPlans, "{not json"))
	s := New(backend, models.ThemeLight)

	_, err := s.GetDataPlans()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestStampIsStrictlyIncreasing(t *testing.T) {
	s := newTestStore(t)

	seen := make(map[int64]bool)
	s.mu.Lock()
	for i := 0; i < 100; i++ {
		v := s.stamp()
		assert.False(t, seen[v], "stamp repeated: %d", v)
		seen[v] = true
	}
	s.mu.Unlock()
}

func TestAuthTokenLifecycle(t *testing.T) {
	s := newTestStore(t)

	ok, err := s.IsAuthenticated()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetAuthToken("admin-1"))

	token, err := s.GetAuthToken()
	require.NoError(t, err)
	assert.Equal(t, "admin-1", token)

	ok, err = s.IsAuthenticated()
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.ClearAuthToken())
	ok, err = s.IsAuthenticated()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestThemeDefaultsAndPersists(t *testing.T) {
	s := New(NewMemoryBackend(), models.ThemeDark)
	require.NoError(t, s.Initialize())

	theme, err := s.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, theme)

	require.NoError(t, s.SetTheme(models.ThemeLight))
	theme, err = s.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)
}
