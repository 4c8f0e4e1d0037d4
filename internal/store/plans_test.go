package store

import (
	"strings"
	"testing"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDataPlansByNetworkFiltersDisabled(t *testing.T) {
	s := newTestStore(t)

	enabled := false
	_, err := s.UpdateDataPlan("mtn-1gb", DataPlanUpdate{Enabled: &enabled})
	require.NoError(t, err)

	plans, err := s.GetDataPlansByNetwork(models.NetworkMTN)
	require.NoError(t, err)
	require.NotEmpty(t, plans)
	for _, p := range plans {
		assert.Equal(t, models.NetworkMTN, p.Network)
		assert.True(t, p.Enabled)
		assert.NotEqual(t, "mtn-1gb", p.ID)
	}
	// Default catalog has 4 MTN plans; one is now disabled.
	assert.Len(t, plans, 3)
}

func TestAddDataPlanAssignsNetworkPrefixedID(t *testing.T) {
	s := newTestStore(t)

	plans, err := s.AddDataPlan(models.DataPlan{
		Network:    models.NetworkGlo,
		DataAmount: "20GB",
		Duration:   "30 days",
		Price:      7000,
		Enabled:    true,
	})
	require.NoError(t, err)
	require.Len(t, plans, len(models.DefaultDataPlans)+1)

	added := plans[len(plans)-1]
	assert.True(t, strings.HasPrefix(added.ID, "glo-"))
	assert.Equal(t, "20GB", added.DataAmount)

	// Two adds in quick succession still get distinct IDs.
	plans, err = s.AddDataPlan(models.DataPlan{Network: models.NetworkGlo, DataAmount: "40GB", Duration: "30 days", Price: 13000, Enabled: true})
	require.NoError(t, err)
	assert.NotEqual(t, added.ID, plans[len(plans)-1].ID)
}

func TestUpdateDataPlanMergesPartialFields(t *testing.T) {
	s := newTestStore(t)

	price := 600
	plans, err := s.UpdateDataPlan("mtn-1gb", DataPlanUpdate{Price: &price})
	require.NoError(t, err)

	var updated models.DataPlan
	for _, p := range plans {
		if p.ID == "mtn-1gb" {
			updated = p
		}
	}
	assert.Equal(t, 600, updated.Price)
	// Untouched fields keep their values.
	assert.Equal(t, "1GB", updated.DataAmount)
	assert.Equal(t, "30 days", updated.Duration)
	assert.True(t, updated.Enabled)
}

func TestUpdateDataPlanUnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)

	price := 999
	plans, err := s.UpdateDataPlan("nope", DataPlanUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDataPlans, plans)
}

func TestDeleteDataPlan(t *testing.T) {
	s := newTestStore(t)

	plans, err := s.DeleteDataPlan("airtel-10gb")
	require.NoError(t, err)
	assert.Len(t, plans, len(models.DefaultDataPlans)-1)
	for _, p := range plans {
		assert.NotEqual(t, "airtel-10gb", p.ID)
	}

	// Deleting again is a no-op.
	plans, err = s.DeleteDataPlan("airtel-10gb")
	require.NoError(t, err)
	assert.Len(t, plans, len(models.DefaultDataPlans)-1)
}

func TestReturnedCollectionsAreCopies(t *testing.T) {
	s := newTestStore(t)

	plans, err := s.GetDataPlans()
	require.NoError(t, err)
	plans[0].Price = -1

	again, err := s.GetDataPlans()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDataPlans[0].Price, again[0].Price)
}
