package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/nnrsauki/SaukiDataPro/internal/store"
)

func (h *AdminHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.Store.GetAdmins()
	if err != nil {
		http.Error(w, "Error fetching admins", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin_admins.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Admins":    admins,
		"CanDelete": len(admins) > 1,
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	username := r.FormValue("username")
	password := r.FormValue("password")
	if errs := models.ValidateLogin(username, password); len(errs) > 0 {
		for _, msg := range errs {
			session.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, "/admin/admins", http.StatusSeeOther)
		return
	}

	if _, err := h.Store.AddAdmin(models.AdminUser{Username: username, Password: password}); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error saving admin."})
		http.Redirect(w, r, "/admin/admins", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Admin added successfully!"})
	http.Redirect(w, r, "/admin/admins", http.StatusSeeOther)
}

// UpdateAdminPassword changes one account's password.
func (h *AdminHandler) UpdateAdminPassword(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	password := r.FormValue("password")
	if password == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: "Password is required"})
		http.Redirect(w, r, "/admin/admins", http.StatusSeeOther)
		return
	}

	if _, err := h.Store.UpdateAdmin(id, store.AdminUpdate{Password: &password}); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error updating admin."})
		http.Redirect(w, r, "/admin/admins", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Password updated successfully!"})
	http.Redirect(w, r, "/admin/admins", http.StatusSeeOther)
}

// DeleteAdmin removes an account. The store refuses to delete the last
// one; surface that as a visible rejection rather than a silent no-op.
func (h *AdminHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	if _, err := h.Store.DeleteAdmin(id); err != nil {
		if errors.Is(err, store.ErrLastAdmin) {
			session.AddFlash(FlashMessage{Type: "error", Message: "Cannot delete the last admin account."})
		} else {
			session.AddFlash(FlashMessage{Type: "error", Message: "Error deleting admin."})
		}
		http.Redirect(w, r, "/admin/admins", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Admin deleted successfully!"})
	http.Redirect(w, r, "/admin/admins", http.StatusSeeOther)
}
