package tests

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

const (
	testSecret  = "test-secret"
	ownerUserID = 5
)

var modernTemplate = map[string]any{
	"id":            3,
	"slug":          "modern",
	"name":          "Modern",
	"primary_color": "#7E69AB",
	"features":      map[string]any{"show_gallery": true},
}

// fakeBackend serves the subset of the salon backend API the site reads.
type fakeBackend struct {
	mu      sync.Mutex
	claimed bool
	claims  int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{}
}

func (b *fakeBackend) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.claimed = false
	b.claims = 0
}

func (b *fakeBackend) claimCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.claims
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/salons/sample/glam-nails/":
		writeJSON(w, http.StatusOK, b.salon())
	case r.Method == http.MethodGet && r.URL.Path == "/api/salons/sample/broken/":
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "boom"})
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/salons/sample/"):
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	case r.Method == http.MethodGet && r.URL.Path == "/api/templates/3/":
		writeJSON(w, http.StatusOK, modernTemplate)
	case r.Method == http.MethodGet && r.URL.Path == "/api/templates/3/preview/":
		writeJSON(w, http.StatusOK, map[string]any{
			"id":            0,
			"name":          "Sample Salon",
			"phoneNumber":   "555-0100",
			"services":      []string{"Manicure - $25", "Pedicure - $35"},
			"galleryImages": []string{"g1.jpg"},
			"templateId":    "3",
		})
	case r.Method == http.MethodGet && r.URL.Path == "/api/user/me/":
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": ownerUserID, "username": "owner", "salon": nil})
	case r.Method == http.MethodPost && r.URL.Path == "/api/salons/7/claim/":
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})
			return
		}
		b.mu.Lock()
		b.claimed = true
		b.claims++
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.salon())
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	}
}

func (b *fakeBackend) salon() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()

	return map[string]any{
		"id":             7,
		"name":           "Glam Nails",
		"sample_url":     "glam-nails",
		"phone_number":   "555-0199",
		"description":    "Nails done right.",
		"services":       []string{"Gel Manicure - $40"},
		"gallery_images": []string{"a.jpg", "b.jpg"},
		"template":       modernTemplate,
		"claimed":        b.claimed,
	}
}

func authorized(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
