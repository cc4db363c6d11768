package theme

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/xw1nchester/nailsite/pkg/types"
)

const maxVariantLength = 40

// Features is the typed form of a template's open-ended feature object.
// Zero values for HeroLayout, ServicesDisplay and GalleryCols mean "use the
// layout default".
type Features struct {
	ShowGallery      bool   `json:"show_gallery"`
	ShowTestimonials bool   `json:"show_testimonials"`
	ShowMap          bool   `json:"show_map"`
	HeroLayout       string `json:"hero_layout,omitempty"`
	ServicesDisplay  string `json:"services_display,omitempty"`
	GalleryCols      int    `json:"gallery_cols,omitempty"`
}

func DefaultFeatures() Features {
	return Features{ShowMap: true}
}

// ParseFeatures reads the flags a template may carry. Gallery and
// testimonials are opt-in: only JSON true or the string "true" enables them.
// The map is opt-out: only an explicit false hides it.
func ParseFeatures(raw map[string]json.RawMessage) Features {
	f := DefaultFeatures()
	if raw == nil {
		return f
	}

	f.ShowGallery = isTrue(raw["show_gallery"])
	f.ShowTestimonials = isTrue(raw["show_testimonials"])
	f.ShowMap = !isFalse(raw["show_map"])
	f.HeroLayout = variant(raw["hero_layout"])
	f.ServicesDisplay = variant(raw["services_display"])
	f.GalleryCols = number(raw["gallery_cols"])

	return f
}

func isTrue(v json.RawMessage) bool {
	if len(v) == 0 {
		return false
	}

	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return b
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return strings.EqualFold(strings.TrimSpace(s), "true")
	}

	return false
}

func isFalse(v json.RawMessage) bool {
	if len(v) == 0 {
		return false
	}

	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return !b
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return strings.EqualFold(strings.TrimSpace(s), "false")
	}

	return false
}

func variant(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}

	return sanitizeVariant(s)
}

func number(v json.RawMessage) int {
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return 0
	}

	var n types.IntOrString
	if err := json.Unmarshal(v, &n); err != nil {
		return 0
	}

	return int(n)
}

// sanitizeVariant lowercases s and keeps only [a-z0-9-] so it is safe to
// embed in a class name.
func sanitizeVariant(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range s {
		if b.Len() == maxVariantLength {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '_':
			b.WriteByte('-')
		}
	}

	return b.String()
}
