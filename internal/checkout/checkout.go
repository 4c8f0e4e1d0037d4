// Package checkout drives the multi-step purchase flow as an explicit
// state machine over the store's current-order draft:
//
//	Empty -> PlanSelected -> DetailsEntered -> completed (back to Empty)
//
// Each transition validates its precondition, so pages only have to ask
// for the state and redirect when it is too early for them.
package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/nnrsauki/SaukiDataPro/internal/store"
	"github.com/nnrsauki/SaukiDataPro/internal/whatsapp"
)

type State string

const (
	StateEmpty          State = "empty"
	StatePlanSelected   State = "plan_selected"
	StateDetailsEntered State = "details_entered"
)

var (
	// ErrNoPlan means a step ran before a plan was picked.
	ErrNoPlan = errors.New("no plan selected")

	// ErrNoDetails means completion ran before the contact step.
	ErrNoDetails = errors.New("order details not entered")

	// ErrPlanUnavailable means the chosen plan is disabled or gone.
	ErrPlanUnavailable = errors.New("plan is not available")
)

// Flow executes checkout transitions against the store.
type Flow struct {
	Store *store.Store
}

func NewFlow(s *store.Store) *Flow {
	return &Flow{Store: s}
}

// State reads the draft and derives where the customer is in the flow.
// The draft is returned alongside so callers don't re-fetch.
func (f *Flow) State() (State, *models.CurrentOrder, error) {
	draft, err := f.Store.GetCurrentOrder()
	if err != nil {
		return StateEmpty, nil, err
	}
	switch {
	case draft.HasDetails():
		return StateDetailsEntered, draft, nil
	case draft.HasPlan():
		return StatePlanSelected, draft, nil
	default:
		return StateEmpty, nil, nil
	}
}

// SelectPlan starts (or restarts) a checkout with the given plan. Any
// prior draft is overwritten, including one that already had details.
func (f *Flow) SelectPlan(planID string) (*models.CurrentOrder, error) {
	plans, err := f.Store.GetDataPlans()
	if err != nil {
		return nil, err
	}
	for _, p := range plans {
		if p.ID != planID {
			continue
		}
		if !p.Enabled {
			return nil, ErrPlanUnavailable
		}
		draft := models.CurrentOrder{
			Network:    p.Network,
			DataAmount: p.DataAmount,
			Price:      p.Price,
			Duration:   p.Duration,
		}
		if err := f.Store.SetCurrentOrder(draft); err != nil {
			return nil, err
		}
		return &draft, nil
	}
	return nil, ErrPlanUnavailable
}

// EnterDetails merges the contact step into the draft. The phone number
// must pass Nigerian mobile validation; plan fields are untouched.
func (f *Flow) EnterDetails(senderName, phoneNumber string) (*models.CurrentOrder, error) {
	draft, err := f.Store.GetCurrentOrder()
	if err != nil {
		return nil, err
	}
	if !draft.HasPlan() {
		return nil, ErrNoPlan
	}
	if len(strings.TrimSpace(senderName)) < 2 {
		return nil, fmt.Errorf("enter details: name must be at least 2 characters")
	}
	if err := models.ValidatePhone(phoneNumber); err != nil {
		return nil, fmt.Errorf("enter details: %w", err)
	}
	draft.SenderName = strings.TrimSpace(senderName)
	draft.PhoneNumber = phoneNumber
	if err := f.Store.SetCurrentOrder(*draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Complete finishes the checkout: records a pending order, builds the
// WhatsApp handoff link, and clears the draft. The link is the only
// confirmation channel; nothing reports delivery back.
func (f *Flow) Complete() (string, *models.Order, error) {
	draft, err := f.Store.GetCurrentOrder()
	if err != nil {
		return "", nil, err
	}
	if !draft.HasPlan() {
		return "", nil, ErrNoPlan
	}
	if !draft.HasDetails() {
		return "", nil, ErrNoDetails
	}

	order, err := f.Store.AddOrder(models.Order{
		SenderName:  draft.SenderName,
		PhoneNumber: draft.PhoneNumber,
		ProductName: fmt.Sprintf("%s %s (%s)", strings.ToUpper(string(draft.Network)), draft.DataAmount, draft.Duration),
		Price:       draft.Price,
		Network:     draft.Network,
	})
	if err != nil {
		return "", nil, err
	}

	link := whatsapp.OrderLink(models.Contact, draft)

	if err := f.Store.ClearCurrentOrder(); err != nil {
		return "", nil, err
	}
	return link, order, nil
}

// Abandon clears the draft from any state.
func (f *Flow) Abandon() error {
	return f.Store.ClearCurrentOrder()
}
