package store

import (
	"testing"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveCount(t *testing.T, s *Store) int {
	t.Helper()
	promos, err := s.GetPromos()
	require.NoError(t, err)
	n := 0
	for _, p := range promos {
		if p.IsLive {
			n++
		}
	}
	return n
}

func TestAddPromoAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)

	promos, err := s.AddPromo(models.Promo{Title: "Flash Sale", Description: "50% off"})
	require.NoError(t, err)
	require.Len(t, promos, 1)

	added := promos[0]
	assert.Contains(t, added.ID, "promo-")
	assert.NotEmpty(t, added.CreatedAt)
	assert.False(t, added.IsLive)
}

func TestSetPromoLiveDemotesOthers(t *testing.T) {
	s := newTestStore(t)

	promos, err := s.AddPromo(models.Promo{Title: "First"})
	require.NoError(t, err)
	firstID := promos[0].ID

	live := true
	_, err = s.UpdatePromo(firstID, PromoUpdate{IsLive: &live})
	require.NoError(t, err)

	got, err := s.GetLivePromo()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Title)

	promos, err = s.AddPromo(models.Promo{Title: "Second"})
	require.NoError(t, err)
	secondID := promos[len(promos)-1].ID

	_, err = s.UpdatePromo(secondID, PromoUpdate{IsLive: &live})
	require.NoError(t, err)

	got, err = s.GetLivePromo()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Second", got.Title)

	promos, err = s.GetPromos()
	require.NoError(t, err)
	for _, p := range promos {
		if p.ID == firstID {
			assert.False(t, p.IsLive)
		}
	}
	assert.Equal(t, 1, liveCount(t, s))
}

func TestAddPromoLiveDemotesExisting(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddPromo(models.Promo{Title: "Old", IsLive: true})
	require.NoError(t, err)
	_, err = s.AddPromo(models.Promo{Title: "New", IsLive: true})
	require.NoError(t, err)

	assert.Equal(t, 1, liveCount(t, s))
	got, err := s.GetLivePromo()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New", got.Title)
}

func TestPromoLiveToggleSequence(t *testing.T) {
	s := newTestStore(t)

	promos, err := s.AddPromo(models.Promo{Title: "Flash Sale", Description: "50% off"})
	require.NoError(t, err)
	flashID := promos[0].ID

	live := true
	_, err = s.UpdatePromo(flashID, PromoUpdate{IsLive: &live})
	require.NoError(t, err)

	got, err := s.GetLivePromo()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, flashID, got.ID)

	// Hide it again; no promo is live.
	hidden := false
	_, err = s.UpdatePromo(flashID, PromoUpdate{IsLive: &hidden})
	require.NoError(t, err)

	got, err = s.GetLivePromo()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdatePromoMergesFields(t *testing.T) {
	s := newTestStore(t)

	promos, err := s.AddPromo(models.Promo{Title: "Sale", Description: "old"})
	require.NoError(t, err)
	id := promos[0].ID

	desc := "new description"
	img := "/static/uploads/banner.jpg"
	promos, err = s.UpdatePromo(id, PromoUpdate{Description: &desc, ImageURL: &img})
	require.NoError(t, err)

	assert.Equal(t, "Sale", promos[0].Title)
	assert.Equal(t, "new description", promos[0].Description)
	assert.Equal(t, "/static/uploads/banner.jpg", promos[0].ImageURL)
}

func TestDeletePromo(t *testing.T) {
	s := newTestStore(t)

	promos, err := s.AddPromo(models.Promo{Title: "Gone soon"})
	require.NoError(t, err)
	id := promos[0].ID

	promos, err = s.DeletePromo(id)
	require.NoError(t, err)
	assert.Empty(t, promos)
}
