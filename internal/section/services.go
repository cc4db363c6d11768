package section

import (
	"strings"

	"github.com/xw1nchester/nailsite/internal/salon"
)

const DefaultServicesVariant = "grid"

type ServicesData struct {
	Tagline  string
	Items    []salon.Service
	List     bool
	FullMenu *Link
}

// RenderServices shows whenever the salon lists services. Variants starting
// with "list" render as a list, everything else as a grid.
func RenderServices(in Input, cfg Config) *Block {
	s := in.salon()
	if len(s.Services) == 0 {
		return nil
	}

	variant := cfg.Variant
	if variant == "" {
		variant = DefaultServicesVariant
	}

	items := make([]salon.Service, len(s.Services))
	copy(items, s.Services)

	return &Block{
		ID:    Services,
		Class: "services services-" + variant,
		Data: ServicesData{
			Tagline:  strings.TrimSpace(s.ServicesTagline),
			Items:    items,
			List:     strings.HasPrefix(variant, "list"),
			FullMenu: in.link(s.ServicesURL),
		},
	}
}
