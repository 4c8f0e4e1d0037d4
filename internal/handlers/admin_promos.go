package handlers

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/nfnt/resize"
	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/nnrsauki/SaukiDataPro/internal/store"
)

func (h *AdminHandler) ListPromos(w http.ResponseWriter, r *http.Request) {
	promos, err := h.Store.GetPromos()
	if err != nil {
		http.Error(w, "Error fetching promos", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin_promos.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Promos":    promos,
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// CreatePromo adds a banner, with an optional uploaded image that is
// resized to banner width and stored under static/uploads.
func (h *AdminHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	// 1. Parse Multipart Form
	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB
		session.AddFlash(FlashMessage{Type: "error", Message: "File too large. Max 10MB."})
		http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	isLive := r.FormValue("is_live") != ""

	if title == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: "Title is required."})
		http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
		return
	}

	// 2. Optional banner image
	imageURL := ""
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imageURL, err = h.savePromoImage(file, header.Filename)
		if err != nil {
			session.AddFlash(FlashMessage{Type: "error", Message: err.Error()})
			http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
			return
		}
	}

	promo := models.Promo{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		IsLive:      isLive,
	}
	if _, err := h.Store.AddPromo(promo); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error saving promo."})
		http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Promo added successfully!"})
	http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
}

func (h *AdminHandler) UpdatePromo(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "File too large."})
		http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
		return
	}

	id := r.FormValue("id")
	title := r.FormValue("title")
	description := r.FormValue("description")

	updates := store.PromoUpdate{
		Title:       &title,
		Description: &description,
	}

	// Handle optional image replacement
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imageURL, err := h.savePromoImage(file, header.Filename)
		if err != nil {
			session.AddFlash(FlashMessage{Type: "error", Message: err.Error()})
			http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
			return
		}
		updates.ImageURL = &imageURL
	}

	if _, err := h.Store.UpdatePromo(id, updates); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error updating promo."})
		http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Promo updated successfully!"})
	http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
}

// TogglePromoLive sets or clears a promo's live flag. Going live demotes
// whatever promo was live before; only one banner shows at a time.
func (h *AdminHandler) TogglePromoLive(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	isLive := r.FormValue("is_live") == "true"
	if _, err := h.Store.UpdatePromo(id, store.PromoUpdate{IsLive: &isLive}); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error updating promo."})
		http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
}

func (h *AdminHandler) DeletePromo(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	if _, err := h.Store.DeletePromo(id); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error deleting promo."})
		http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Promo deleted successfully!"})
	http.Redirect(w, r, "/admin/promos", http.StatusSeeOther)
}

// savePromoImage decodes, resizes to banner width, and writes the upload
// to static/uploads. Returns the public URL path.
func (h *AdminHandler) savePromoImage(file io.Reader, filename string) (string, error) {
	var img image.Image
	var err error
	ext := filepath.Ext(filename)
	switch ext {
	case ".png":
		img, err = png.Decode(file)
	case ".jpeg", ".jpg":
		img, err = jpeg.Decode(file)
	default:
		return "", fmt.Errorf("Unsupported image format. Only PNG, JPG, JPEG are allowed.")
	}
	if err != nil {
		return "", fmt.Errorf("Failed to decode image.")
	}

	// Resize image (max width 800px, preserve aspect ratio)
	banner := resize.Resize(800, 0, img, resize.Lanczos3)

	name := fmt.Sprintf("%s.jpg", uuid.New().String())
	uploadPath := filepath.Join("static/uploads", name)

	out, err := os.Create(uploadPath)
	if err != nil {
		return "", fmt.Errorf("Error saving image file.")
	}
	defer out.Close()

	if err := jpeg.Encode(out, banner, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("Error encoding image.")
	}

	return "/static/uploads/" + name, nil
}
