package store

import (
	"fmt"
	"time"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
)

// AddOrder appends a record to the order log. ID, CreatedAt, and Status
// are assigned here; orders always start pending. Returns the created
// record.
func (s *Store) AddOrder(order models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.loadOrders()
	if err != nil {
		return nil, err
	}
	order.ID = fmt.Sprintf("order-%d", s.stamp())
	order.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	order.Status = models.StatusPending
	orders = append(orders, order)
	if err := s.write(keyOrders, orders); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) GetOrders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrders()
}

func (s *Store) loadOrders() ([]models.Order, error) {
	orders := []models.Order{}
	if _, err := s.read(keyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
