package handlers

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/nnrsauki/SaukiDataPro/internal/whatsapp"
)

// SubscribeHandler signs visitors up for the promo broadcast list via a
// pre-filled WhatsApp message.
type SubscribeHandler struct {
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

func (h *SubscribeHandler) Form(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("subscribe.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "public-session")
	data := map[string]interface{}{
		"Contact":   models.Contact,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *SubscribeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "public-session")
	defer session.Save(r, w)

	number := r.FormValue("whatsapp_number")
	if err := models.ValidatePhone(number); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: err.Error()})
		http.Redirect(w, r, "/subscribe", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, whatsapp.SubscribeLink(models.Contact, number), http.StatusSeeOther)
}
