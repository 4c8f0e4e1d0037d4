package store

import (
	"fmt"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
)

// DataPlanUpdate carries the fields an admin may change on a plan. Nil
// fields are left as they are.
type DataPlanUpdate struct {
	Network    *models.Network
	DataAmount *string
	Duration   *string
	Price      *int
	Enabled    *bool
}

func (s *Store) GetDataPlans() ([]models.DataPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPlans()
}

// GetDataPlansByNetwork returns only enabled plans for one carrier, in
// catalog order.
func (s *Store) GetDataPlansByNetwork(network models.Network) ([]models.DataPlan, error) {
	plans, err := s.GetDataPlans()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.DataPlan, 0, len(plans))
	for _, p := range plans {
		if p.Network == network && p.Enabled {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// AddDataPlan assigns an ID from the plan's network and a creation stamp,
// appends, and returns the updated catalog.
func (s *Store) AddDataPlan(plan models.DataPlan) ([]models.DataPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans, err := s.loadPlans()
	if err != nil {
		return nil, err
	}
	plan.ID = fmt.Sprintf("%s-%d", plan.Network, s.stamp())
	plans = append(plans, plan)
	if err := s.write(keyDataPlans, plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// UpdateDataPlan merges the given fields into the matching plan. An
// unknown id is a no-op; the unchanged catalog is returned.
func (s *Store) UpdateDataPlan(id string, updates DataPlanUpdate) ([]models.DataPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans, err := s.loadPlans()
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].ID != id {
			continue
		}
		if updates.Network != nil {
			plans[i].Network = *updates.Network
		}
		if updates.DataAmount != nil {
			plans[i].DataAmount = *updates.DataAmount
		}
		if updates.Duration != nil {
			plans[i].Duration = *updates.Duration
		}
		if updates.Price != nil {
			plans[i].Price = *updates.Price
		}
		if updates.Enabled != nil {
			plans[i].Enabled = *updates.Enabled
		}
		if err := s.write(keyDataPlans, plans); err != nil {
			return nil, err
		}
		break
	}
	return plans, nil
}

func (s *Store) DeleteDataPlan(id string) ([]models.DataPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans, err := s.loadPlans()
	if err != nil {
		return nil, err
	}
	kept := plans[:0]
	for _, p := range plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := s.write(keyDataPlans, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// loadPlans reads the catalog, falling back to the default catalog if
// nothing was ever saved. Callers must hold s.mu.
func (s *Store) loadPlans() ([]models.DataPlan, error) {
	var plans []models.DataPlan
	ok, err := s.read(keyDataPlans, &plans)
	if err != nil {
		return nil, err
	}
	if !ok {
		plans = append(plans, models.DefaultDataPlans...)
	}
	return plans, nil
}
