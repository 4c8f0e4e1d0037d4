package store

import (
	"testing"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrderAssignsMetadata(t *testing.T) {
	s := newTestStore(t)

	order, err := s.AddOrder(models.Order{
		SenderName:  "Abdul Usman",
		PhoneNumber: "08012345678",
		ProductName: "MTN 5GB (30 days)",
		Price:       2000,
		Network:     models.NetworkMTN,
	})
	require.NoError(t, err)

	assert.Contains(t, order.ID, "order-")
	assert.NotEmpty(t, order.CreatedAt)
	assert.Equal(t, models.StatusPending, order.Status)

	orders, err := s.GetOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, *order, orders[0])
}

func TestOrdersAppendInCreationOrder(t *testing.T) {
	s := newTestStore(t)

	first, err := s.AddOrder(models.Order{SenderName: "A", PhoneNumber: "08012345678", ProductName: "MTN 1GB (30 days)", Price: 500, Network: models.NetworkMTN})
	require.NoError(t, err)
	second, err := s.AddOrder(models.Order{SenderName: "B", PhoneNumber: "09023456789", ProductName: "Glo 5GB (30 days)", Price: 2500, Network: models.NetworkGlo})
	require.NoError(t, err)

	orders, err := s.GetOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCurrentOrderRoundTrip(t *testing.T) {
	s := newTestStore(t)

	draft, err := s.GetCurrentOrder()
	require.NoError(t, err)
	assert.Nil(t, draft)

	want := models.CurrentOrder{
		Network:    models.NetworkAirtel,
		DataAmount: "10GB",
		Price:      4000,
		Duration:   "30 days",
	}
	require.NoError(t, s.SetCurrentOrder(want))

	draft, err = s.GetCurrentOrder()
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, want, *draft)

	// A new selection overwrites the whole slot.
	replacement := models.CurrentOrder{Network: models.NetworkGlo, DataAmount: "1GB", Price: 500, Duration: "30 days"}
	require.NoError(t, s.SetCurrentOrder(replacement))
	draft, err = s.GetCurrentOrder()
	require.NoError(t, err)
	assert.Equal(t, replacement, *draft)

	require.NoError(t, s.ClearCurrentOrder())
	draft, err = s.GetCurrentOrder()
	require.NoError(t, err)
	assert.Nil(t, draft)
}
