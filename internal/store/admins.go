package store

import (
	"fmt"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
)

// AdminUpdate carries the fields that may change on an admin account.
type AdminUpdate struct {
	Username *string
	Password *string
}

func (s *Store) GetAdmins() ([]models.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAdmins()
}

// ValidateAdmin matches credentials against the stored accounts, exact
// string comparison on both fields. Returns nil when nothing matches;
// callers show a generic "invalid credentials" message either way.
func (s *Store) ValidateAdmin(username, password string) (*models.AdminUser, error) {
	admins, err := s.GetAdmins()
	if err != nil {
		return nil, err
	}
	for _, a := range admins {
		if a.Username == username && a.Password == password {
			match := a
			return &match, nil
		}
	}
	return nil, nil
}

func (s *Store) AddAdmin(admin models.AdminUser) ([]models.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admins, err := s.loadAdmins()
	if err != nil {
		return nil, err
	}
	admin.ID = fmt.Sprintf("admin-%d", s.stamp())
	admins = append(admins, admin)
	if err := s.write(keyAdmins, admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *Store) UpdateAdmin(id string, updates AdminUpdate) ([]models.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admins, err := s.loadAdmins()
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].ID != id {
			continue
		}
		if updates.Username != nil {
			admins[i].Username = *updates.Username
		}
		if updates.Password != nil {
			admins[i].Password = *updates.Password
		}
		if err := s.write(keyAdmins, admins); err != nil {
			return nil, err
		}
		break
	}
	return admins, nil
}

// DeleteAdmin removes an account. Deleting the only remaining account is
// refused with ErrLastAdmin so the dashboard can never lock itself out.
func (s *Store) DeleteAdmin(id string) ([]models.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admins, err := s.loadAdmins()
	if err != nil {
		return nil, err
	}
	if len(admins) <= 1 {
		return admins, ErrLastAdmin
	}
	kept := admins[:0]
	for _, a := range admins {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if err := s.write(keyAdmins, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Store) loadAdmins() ([]models.AdminUser, error) {
	var admins []models.AdminUser
	ok, err := s.read(keyAdmins, &admins)
	if err != nil {
		return nil, err
	}
	if !ok {
		admins = []models.AdminUser{models.DefaultAdmin}
	}
	return admins, nil
}
