package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/nnrsauki/SaukiDataPro/internal/checkout"
	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/nnrsauki/SaukiDataPro/internal/store"
)

// OrderHandler walks a customer through checkout: pick a plan, read the
// bank-transfer instructions, enter contact details, preview, then hand
// off to WhatsApp. Each page guards on the flow state and bounces the
// visitor back to plan selection when the draft is not far enough along.
type OrderHandler struct {
	Store        *store.Store
	Flow         *checkout.Flow
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// SelectPlan starts a checkout draft from the chosen plan and moves on to
// the payment instructions. Picking a plan mid-checkout restarts the flow.
func (h *OrderHandler) SelectPlan(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	defer session.Save(r, w)

	planID := r.FormValue("plan_id")
	if _, err := h.Flow.SelectPlan(planID); err != nil {
		if errors.Is(err, checkout.ErrPlanUnavailable) {
			session.AddFlash(FlashMessage{Type: "error", Message: "That plan is no longer available."})
			http.Redirect(w, r, "/buy-data", http.StatusSeeOther)
			return
		}
		http.Error(w, "Error starting order", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/payment", http.StatusSeeOther)
}

// Payment shows the manual bank-transfer instructions for the draft.
func (h *OrderHandler) Payment(w http.ResponseWriter, r *http.Request) {
	state, draft, err := h.Flow.State()
	if err != nil {
		http.Error(w, "Error loading order", http.StatusInternalServerError)
		return
	}
	if state == checkout.StateEmpty {
		http.Redirect(w, r, "/buy-data", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("payment.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "order-session")
	data := map[string]interface{}{
		"Order":   draft,
		"Payment": models.Payment,
		"Flashes": GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// OrderForm asks for the transfer sender name and the phone number to
// credit.
func (h *OrderHandler) OrderForm(w http.ResponseWriter, r *http.Request) {
	state, draft, err := h.Flow.State()
	if err != nil {
		http.Error(w, "Error loading order", http.StatusInternalServerError)
		return
	}
	if state == checkout.StateEmpty {
		http.Redirect(w, r, "/buy-data", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("order_form.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "order-session")
	data := map[string]interface{}{
		"Order":     draft,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// SubmitDetails validates and merges the contact step into the draft.
func (h *OrderHandler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	defer session.Save(r, w)

	if err := r.ParseForm(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid form data."})
		http.Redirect(w, r, "/order-form", http.StatusSeeOther)
		return
	}

	senderName := r.FormValue("sender_name")
	phoneNumber := r.FormValue("phone_number")

	if errs := models.ValidateOrderForm(senderName, phoneNumber); len(errs) > 0 {
		for _, msg := range errs {
			session.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, "/order-form", http.StatusSeeOther)
		return
	}

	if _, err := h.Flow.EnterDetails(senderName, phoneNumber); err != nil {
		if errors.Is(err, checkout.ErrNoPlan) {
			http.Redirect(w, r, "/buy-data", http.StatusSeeOther)
			return
		}
		session.AddFlash(FlashMessage{Type: "error", Message: "Could not save your details. Please try again."})
		http.Redirect(w, r, "/order-form", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Details saved! Review your order below."})
	http.Redirect(w, r, "/order-preview", http.StatusSeeOther)
}

// Preview shows the full order summary before the WhatsApp handoff.
func (h *OrderHandler) Preview(w http.ResponseWriter, r *http.Request) {
	state, draft, err := h.Flow.State()
	if err != nil {
		http.Error(w, "Error loading order", http.StatusInternalServerError)
		return
	}
	if state != checkout.StateDetailsEntered {
		http.Redirect(w, r, "/buy-data", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("order_preview.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "order-session")
	data := map[string]interface{}{
		"Order":     draft,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Proceed completes the checkout: records the pending order, clears the
// draft, and sends the customer to WhatsApp with the summary pre-filled.
func (h *OrderHandler) Proceed(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	defer session.Save(r, w)

	link, order, err := h.Flow.Complete()
	if err != nil {
		if errors.Is(err, checkout.ErrNoPlan) || errors.Is(err, checkout.ErrNoDetails) {
			http.Redirect(w, r, "/buy-data", http.StatusSeeOther)
			return
		}
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to place order. Please try again."})
		http.Redirect(w, r, "/order-preview", http.StatusSeeOther)
		return
	}

	slog.Info("Order recorded, handing off to WhatsApp",
		"order_id", order.ID,
		"network", order.Network,
		"product", order.ProductName,
	)

	http.Redirect(w, r, link, http.StatusSeeOther)
}

// Cancel abandons the draft from any step.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	defer session.Save(r, w)

	if err := h.Flow.Abandon(); err != nil {
		http.Error(w, "Error cancelling order", http.StatusInternalServerError)
		return
	}
	session.AddFlash(FlashMessage{Type: "success", Message: "Order cancelled."})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
