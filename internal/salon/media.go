package salon

import "strings"

// MediaURL resolves a backend media path against base. Absolute URLs,
// root-relative paths and data URIs are returned unchanged.
func MediaURL(base, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || base == "" {
		return path
	}

	switch {
	case strings.HasPrefix(path, "http://"),
		strings.HasPrefix(path, "https://"),
		strings.HasPrefix(path, "//"),
		strings.HasPrefix(path, "/"),
		strings.HasPrefix(path, "data:"):
		return path
	}

	return strings.TrimSuffix(base, "/") + "/" + path
}

// WithMediaBase returns a copy of the salon whose image fields are resolved
// against base.
func (s Salon) WithMediaBase(base string) Salon {
	s.CoverImage = MediaURL(base, s.CoverImage)
	s.AboutImage = MediaURL(base, s.AboutImage)
	s.LogoImage = MediaURL(base, s.LogoImage)
	s.FooterLogoImage = MediaURL(base, s.FooterLogoImage)

	images := make([]string, len(s.GalleryImages))
	for i, img := range s.GalleryImages {
		images[i] = MediaURL(base, img)
	}
	s.GalleryImages = images

	if s.Template.Template != nil {
		t := s.Template.Template.WithMediaBase(base)
		s.Template = TemplateRef{ID: s.Template.ID, Template: &t}
	}

	return s
}

func (t Template) WithMediaBase(base string) Template {
	t.PreviewImage = MediaURL(base, t.PreviewImage)
	t.DefaultCoverImage = MediaURL(base, t.DefaultCoverImage)
	t.DefaultAboutImage = MediaURL(base, t.DefaultAboutImage)
	return t
}
