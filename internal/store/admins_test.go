package store

import (
	"testing"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAdmin(t *testing.T) {
	s := newTestStore(t)

	admin, err := s.ValidateAdmin(models.DefaultAdmin.Username, models.DefaultAdmin.Password)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, models.DefaultAdmin.ID, admin.ID)

	// Wrong password, wrong username, and both-wrong all come back nil;
	// the caller cannot tell which field failed.
	admin, err = s.ValidateAdmin(models.DefaultAdmin.Username, "wrong")
	require.NoError(t, err)
	assert.Nil(t, admin)

	admin, err = s.ValidateAdmin("nobody", models.DefaultAdmin.Password)
	require.NoError(t, err)
	assert.Nil(t, admin)
}

func TestDeleteLastAdminRefused(t *testing.T) {
	s := newTestStore(t)

	admins, err := s.GetAdmins()
	require.NoError(t, err)
	require.Len(t, admins, 1)

	got, err := s.DeleteAdmin(admins[0].ID)
	assert.ErrorIs(t, err, ErrLastAdmin)
	assert.Len(t, got, 1)

	// Still there afterwards.
	admins, err = s.GetAdmins()
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestDeleteAdminWithTwoAccounts(t *testing.T) {
	s := newTestStore(t)

	admins, err := s.AddAdmin(models.AdminUser{Username: "second", Password: "pw"})
	require.NoError(t, err)
	require.Len(t, admins, 2)
	secondID := admins[1].ID

	admins, err = s.DeleteAdmin(secondID)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, models.DefaultAdmin.ID, admins[0].ID)
}

func TestUpdateAdminPassword(t *testing.T) {
	s := newTestStore(t)

	newPassword := "changed"
	admins, err := s.UpdateAdmin(models.DefaultAdmin.ID, AdminUpdate{Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, "changed", admins[0].Password)

	// Old credentials no longer match; new ones do.
	admin, err := s.ValidateAdmin(models.DefaultAdmin.Username, models.DefaultAdmin.Password)
	require.NoError(t, err)
	assert.Nil(t, admin)

	admin, err = s.ValidateAdmin(models.DefaultAdmin.Username, "changed")
	require.NoError(t, err)
	require.NotNil(t, admin)
}

func TestAddAdminAssignsID(t *testing.T) {
	s := newTestStore(t)

	admins, err := s.AddAdmin(models.AdminUser{Username: "helper", Password: "pw"})
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Contains(t, admins[1].ID, "admin-")
	assert.NotEqual(t, admins[0].ID, admins[1].ID)
}
