package handlers

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/nnrsauki/SaukiDataPro/internal/store"
)

type HomeHandler struct {
	Store        *store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// Index is the landing page: network picker plus the live promo banner,
// if any promo is live.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	livePromo, err := h.Store.GetLivePromo()
	if err != nil {
		http.Error(w, "Error fetching promo", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	publicSession, _ := h.SessionStore.Get(r, "public-session")
	adminSession, _ := h.SessionStore.Get(r, "admin-session")

	isAdmin := false
	if auth, ok := adminSession.Values["authenticated"].(bool); ok && auth {
		isAdmin = true
	}

	data := map[string]interface{}{
		"Networks":  models.Networks,
		"LivePromo": livePromo,
		"Contact":   models.Contact,
		"Theme":     h.theme(),
		"Flashes":   GetFlash(publicSession),
		"IsAdmin":   isAdmin,
		"CsrfField": csrf.TemplateField(r),
	}
	publicSession.Save(r, w)
	tmpl.Execute(w, data)
}

// NetworkPlans lists the enabled plans for one carrier.
func (h *HomeHandler) NetworkPlans(w http.ResponseWriter, r *http.Request) {
	network := models.Network(r.URL.Query().Get("network"))
	if !network.Valid() {
		http.Error(w, "Invalid network", http.StatusBadRequest)
		return
	}

	plans, err := h.Store.GetDataPlansByNetwork(network)
	if err != nil {
		http.Error(w, "Error fetching plans", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("plans.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "public-session")
	data := map[string]interface{}{
		"Network":   network,
		"Plans":     plans,
		"Theme":     h.theme(),
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// ToggleTheme flips the stored preference and sends the visitor back
// where they came from.
func (h *HomeHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	current, err := h.Store.GetTheme()
	if err != nil {
		http.Error(w, "Error loading theme", http.StatusInternalServerError)
		return
	}
	next := models.ThemeLight
	if current == models.ThemeLight {
		next = models.ThemeDark
	}
	if err := h.Store.SetTheme(next); err != nil {
		http.Error(w, "Error saving theme", http.StatusInternalServerError)
		return
	}
	ref := r.Referer()
	if ref == "" {
		ref = "/"
	}
	http.Redirect(w, r, ref, http.StatusSeeOther)
}

func (h *HomeHandler) theme() models.Theme {
	theme, err := h.Store.GetTheme()
	if err != nil {
		return models.ThemeLight
	}
	return theme
}
