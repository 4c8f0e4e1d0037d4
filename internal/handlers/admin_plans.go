package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/nnrsauki/SaukiDataPro/internal/store"
)

// ListPlans shows the whole catalog, disabled plans included.
func (h *AdminHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Store.GetDataPlans()
	if err != nil {
		http.Error(w, "Error fetching plans", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin_plans.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Plans":     plans,
		"Networks":  models.Networks,
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	network := models.Network(r.FormValue("network"))
	dataAmount := r.FormValue("data_amount")
	duration := r.FormValue("duration")
	priceStr := r.FormValue("price")

	price, err := strconv.Atoi(priceStr)
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid price format."})
		http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
		return
	}

	if errs := models.ValidatePlanForm(network, dataAmount, duration, price); len(errs) > 0 {
		for _, msg := range errs {
			session.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
		return
	}

	plan := models.DataPlan{
		Network:    network,
		DataAmount: dataAmount,
		Duration:   duration,
		Price:      price,
		Enabled:    r.FormValue("enabled") != "",
	}
	if _, err := h.Store.AddDataPlan(plan); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error saving plan."})
		http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Plan added successfully!"})
	http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
}

func (h *AdminHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	network := models.Network(r.FormValue("network"))
	dataAmount := r.FormValue("data_amount")
	duration := r.FormValue("duration")
	priceStr := r.FormValue("price")

	price, err := strconv.Atoi(priceStr)
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid price format."})
		http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
		return
	}

	if errs := models.ValidatePlanForm(network, dataAmount, duration, price); len(errs) > 0 {
		for _, msg := range errs {
			session.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
		return
	}

	enabled := r.FormValue("enabled") != ""
	updates := store.DataPlanUpdate{
		Network:    &network,
		DataAmount: &dataAmount,
		Duration:   &duration,
		Price:      &price,
		Enabled:    &enabled,
	}
	if _, err := h.Store.UpdateDataPlan(id, updates); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error updating plan."})
		http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Plan updated successfully!"})
	http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
}

// TogglePlan flips a plan's enabled flag without touching other fields.
func (h *AdminHandler) TogglePlan(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	enabled := r.FormValue("enabled") == "true"
	if _, err := h.Store.UpdateDataPlan(id, store.DataPlanUpdate{Enabled: &enabled}); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error updating plan."})
		http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
}

func (h *AdminHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	if id == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid ID."})
		http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
		return
	}

	if _, err := h.Store.DeleteDataPlan(id); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error deleting plan."})
		http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Plan deleted successfully!"})
	http.Redirect(w, r, "/admin/plans", http.StatusSeeOther)
}
