package store

import "github.com/nnrsauki/SaukiDataPro/internal/models"

// The current-order draft is a single slot, not a collection. Writes
// replace the whole draft; merging partial updates is the caller's job
// (see the checkout package).

func (s *Store) SetCurrentOrder(draft models.CurrentOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(keyCurrentOrder, draft)
}

// GetCurrentOrder returns the in-progress draft, or nil when no checkout
// is underway.
func (s *Store) GetCurrentOrder() (*models.CurrentOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var draft models.CurrentOrder
	ok, err := s.read(keyCurrentOrder, &draft)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &draft, nil
}

func (s *Store) ClearCurrentOrder() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Delete(keyCurrentOrder)
}
