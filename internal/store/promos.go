package store

import (
	"fmt"
	"time"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
)

// PromoUpdate carries the fields an admin may change on a promo. Nil
// fields are left as they are.
type PromoUpdate struct {
	Title       *string
	Description *string
	ImageURL    *string
	IsLive      *bool
}

func (s *Store) GetPromos() ([]models.Promo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPromos()
}

// GetLivePromo returns the promo currently shown on the home banner, or
// nil when none is live.
func (s *Store) GetLivePromo() (*models.Promo, error) {
	promos, err := s.GetPromos()
	if err != nil {
		return nil, err
	}
	for _, p := range promos {
		if p.IsLive {
			live := p
			return &live, nil
		}
	}
	return nil, nil
}

// AddPromo assigns an ID and creation timestamp and appends. A promo
// added with IsLive set goes through the same exclusivity rule as
// UpdatePromo.
func (s *Store) AddPromo(promo models.Promo) ([]models.Promo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promos, err := s.loadPromos()
	if err != nil {
		return nil, err
	}
	promo.ID = fmt.Sprintf("promo-%d", s.stamp())
	promo.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if promo.IsLive {
		for i := range promos {
			promos[i].IsLive = false
		}
	}
	promos = append(promos, promo)
	if err := s.write(keyPromos, promos); err != nil {
		return nil, err
	}
	return promos, nil
}

// UpdatePromo merges fields into the matching promo. Setting IsLive
// clears it on every other promo in the same write, so no state with two
// live promos is ever persisted or observable.
func (s *Store) UpdatePromo(id string, updates PromoUpdate) ([]models.Promo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promos, err := s.loadPromos()
	if err != nil {
		return nil, err
	}
	for i := range promos {
		if promos[i].ID != id {
			continue
		}
		if updates.IsLive != nil && *updates.IsLive {
			for j := range promos {
				if j != i {
					promos[j].IsLive = false
				}
			}
		}
		if updates.Title != nil {
			promos[i].Title = *updates.Title
		}
		if updates.Description != nil {
			promos[i].Description = *updates.Description
		}
		if updates.ImageURL != nil {
			promos[i].ImageURL = *updates.ImageURL
		}
		if updates.IsLive != nil {
			promos[i].IsLive = *updates.IsLive
		}
		if err := s.write(keyPromos, promos); err != nil {
			return nil, err
		}
		break
	}
	return promos, nil
}

func (s *Store) DeletePromo(id string) ([]models.Promo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promos, err := s.loadPromos()
	if err != nil {
		return nil, err
	}
	kept := promos[:0]
	for _, p := range promos {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := s.write(keyPromos, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Store) loadPromos() ([]models.Promo, error) {
	promos := []models.Promo{}
	if _, err := s.read(keyPromos, &promos); err != nil {
		return nil, err
	}
	return promos, nil
}
