package store

import "github.com/nnrsauki/SaukiDataPro/internal/models"

type DashboardStats struct {
	TotalPlans     int
	EnabledPlans   int
	TotalPromos    int
	LivePromoTitle string
	TotalAdmins    int
	TotalOrders    int
	OrdersByStatus map[models.OrderStatus]int
}

// GetDashboardStats summarizes every collection for the admin landing
// page.
func (s *Store) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[models.OrderStatus]int),
	}

	plans, err := s.GetDataPlans()
	if err != nil {
		return nil, err
	}
	stats.TotalPlans = len(plans)
	for _, p := range plans {
		if p.Enabled {
			stats.EnabledPlans++
		}
	}

	promos, err := s.GetPromos()
	if err != nil {
		return nil, err
	}
	stats.TotalPromos = len(promos)
	for _, p := range promos {
		if p.IsLive {
			stats.LivePromoTitle = p.Title
			break
		}
	}

	admins, err := s.GetAdmins()
	if err != nil {
		return nil, err
	}
	stats.TotalAdmins = len(admins)

	orders, err := s.GetOrders()
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = len(orders)
	for _, o := range orders {
		stats.OrdersByStatus[o.Status]++
	}

	return stats, nil
}
