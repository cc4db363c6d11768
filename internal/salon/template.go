package salon

import (
	"bytes"
	"encoding/json"

	"github.com/xw1nchester/nailsite/pkg/types"
)

// Template is a visual design descriptor. Features is left open-ended here and
// interpreted only by the theme package.
type Template struct {
	ID                int                        `json:"id"`
	Slug              string                     `json:"slug"`
	Name              string                     `json:"name"`
	Description       string                     `json:"description"`
	PreviewImage      string                     `json:"preview_image"`
	PrimaryColor      string                     `json:"primary_color"`
	SecondaryColor    string                     `json:"secondary_color"`
	FontFamily        string                     `json:"font_family"`
	BackgroundColor   string                     `json:"background_color"`
	TextColor         string                     `json:"text_color"`
	DefaultCoverImage string                     `json:"default_cover_image"`
	DefaultAboutImage string                     `json:"default_about_image"`
	Features          map[string]json.RawMessage `json:"features"`
	IsMobileOptimized bool                       `json:"is_mobile_optimized"`
}

// TemplateRef is the salon's association to its template: either the full
// descriptor embedded by the backend or only its id.
type TemplateRef struct {
	ID       int
	Template *Template
}

func (r *TemplateRef) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*r = TemplateRef{}
		return nil
	}

	var id types.IntOrString
	if err := json.Unmarshal(b, &id); err == nil {
		*r = TemplateRef{ID: int(id)}
		return nil
	}

	var t Template
	if err := json.Unmarshal(b, &t); err != nil {
		*r = TemplateRef{}
		return nil
	}

	*r = TemplateRef{ID: t.ID, Template: &t}

	return nil
}

func (r TemplateRef) MarshalJSON() ([]byte, error) {
	if r.Template != nil {
		return json.Marshal(r.Template)
	}
	if r.ID != 0 {
		return json.Marshal(r.ID)
	}
	return []byte("null"), nil
}

// Resolved reports whether the descriptor itself is present.
func (r TemplateRef) Resolved() bool {
	return r.Template != nil
}
