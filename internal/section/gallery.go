package section

import (
	"strconv"
	"strings"
)

const DefaultGalleryColumns = 3

type GalleryData struct {
	Tagline     string
	Images      []string
	Columns     int
	FullGallery *Link
}

func RenderGallery(in Input, cfg Config) *Block {
	if !in.Theme.Features.ShowGallery {
		return nil
	}

	s := in.salon()
	images := s.Gallery()
	if len(images) == 0 {
		return nil
	}

	cols := GalleryColumns(cfg.Columns)

	return &Block{
		ID:    Gallery,
		Class: "gallery gallery-cols-" + strconv.Itoa(cols),
		Data: GalleryData{
			Tagline:     strings.TrimSpace(s.GalleryTagline),
			Images:      images,
			Columns:     cols,
			FullGallery: in.link(s.GalleryURL),
		},
	}
}

// GalleryColumns honors 1 to 4 columns and falls back to
// DefaultGalleryColumns for anything else.
func GalleryColumns(n int) int {
	if n >= 1 && n <= 4 {
		return n
	}
	return DefaultGalleryColumns
}
