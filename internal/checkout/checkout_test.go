package checkout

import (
	"testing"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/nnrsauki/SaukiDataPro/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlow(t *testing.T) *Flow {
	t.Helper()
	s := store.New(store.NewMemoryBackend(), models.ThemeLight)
	require.NoError(t, s.Initialize())
	return NewFlow(s)
}

func TestFlowStartsEmpty(t *testing.T) {
	f := newTestFlow(t)

	state, draft, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, state)
	assert.Nil(t, draft)
}

func TestSelectPlanStartsDraft(t *testing.T) {
	f := newTestFlow(t)

	draft, err := f.SelectPlan("mtn-5gb")
	require.NoError(t, err)
	assert.Equal(t, models.NetworkMTN, draft.Network)
	assert.Equal(t, "5GB", draft.DataAmount)
	assert.Equal(t, 2000, draft.Price)
	assert.Equal(t, "30 days", draft.Duration)

	state, _, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, StatePlanSelected, state)
}

func TestSelectPlanRejectsUnknownAndDisabled(t *testing.T) {
	f := newTestFlow(t)

	_, err := f.SelectPlan("nope")
	assert.ErrorIs(t, err, ErrPlanUnavailable)

	enabled := false
	_, err = f.Store.UpdateDataPlan("mtn-5gb", store.DataPlanUpdate{Enabled: &enabled})
	require.NoError(t, err)

	_, err = f.SelectPlan("mtn-5gb")
	assert.ErrorIs(t, err, ErrPlanUnavailable)

	state, _, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, state)
}

func TestSelectPlanOverwritesPriorDraft(t *testing.T) {
	f := newTestFlow(t)

	_, err := f.SelectPlan("mtn-5gb")
	require.NoError(t, err)
	_, err = f.EnterDetails("Abdul Usman", "08012345678")
	require.NoError(t, err)

	// Restarting with another plan drops the entered details.
	draft, err := f.SelectPlan("glo-1gb")
	require.NoError(t, err)
	assert.Equal(t, models.NetworkGlo, draft.Network)
	assert.Empty(t, draft.SenderName)
	assert.Empty(t, draft.PhoneNumber)

	state, _, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, StatePlanSelected, state)
}

func TestEnterDetailsRequiresPlan(t *testing.T) {
	f := newTestFlow(t)

	_, err := f.EnterDetails("Abdul Usman", "08012345678")
	assert.ErrorIs(t, err, ErrNoPlan)
}

func TestEnterDetailsValidatesPhone(t *testing.T) {
	f := newTestFlow(t)

	_, err := f.SelectPlan("mtn-5gb")
	require.NoError(t, err)

	_, err = f.EnterDetails("Abdul Usman", "12345678901")
	assert.ErrorIs(t, err, models.ErrInvalidPhone)

	// Plan fields stay untouched after a failed details step.
	state, draft, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, StatePlanSelected, state)
	assert.Equal(t, "5GB", draft.DataAmount)
}

func TestEnterDetailsMergesIntoDraft(t *testing.T) {
	f := newTestFlow(t)

	_, err := f.SelectPlan("airtel-10gb")
	require.NoError(t, err)

	draft, err := f.EnterDetails("  Abdul Usman  ", "09023456789")
	require.NoError(t, err)
	assert.Equal(t, "Abdul Usman", draft.SenderName)
	assert.Equal(t, "09023456789", draft.PhoneNumber)
	assert.Equal(t, models.NetworkAirtel, draft.Network)
	assert.Equal(t, 4000, draft.Price)

	state, _, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, StateDetailsEntered, state)
}

func TestCompleteRecordsOrderAndClearsDraft(t *testing.T) {
	f := newTestFlow(t)

	_, err := f.SelectPlan("mtn-5gb")
	require.NoError(t, err)
	_, err = f.EnterDetails("Abdul Usman", "08012345678")
	require.NoError(t, err)

	link, order, err := f.Complete()
	require.NoError(t, err)

	assert.Contains(t, link, "https://wa.me/"+models.Contact.WhatsApp)
	assert.Contains(t, link, "text=")

	assert.Equal(t, "MTN 5GB (30 days)", order.ProductName)
	assert.Equal(t, "Abdul Usman", order.SenderName)
	assert.Equal(t, "08012345678", order.PhoneNumber)
	assert.Equal(t, 2000, order.Price)
	assert.Equal(t, models.StatusPending, order.Status)

	orders, err := f.Store.GetOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)

	state, _, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, state)
}

func TestCompleteRequiresDetails(t *testing.T) {
	f := newTestFlow(t)

	_, _, err := f.Complete()
	assert.ErrorIs(t, err, ErrNoPlan)

	_, err = f.SelectPlan("mtn-5gb")
	require.NoError(t, err)

	_, _, err = f.Complete()
	assert.ErrorIs(t, err, ErrNoDetails)

	// Nothing was recorded by the failed attempts.
	orders, err := f.Store.GetOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestAbandonClearsAnyState(t *testing.T) {
	f := newTestFlow(t)

	require.NoError(t, f.Abandon()) // already empty

	_, err := f.SelectPlan("glo-10gb")
	require.NoError(t, err)
	require.NoError(t, f.Abandon())

	state, _, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, state)
}
