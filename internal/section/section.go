package section

import (
	"github.com/xw1nchester/nailsite/internal/salon"
	"github.com/xw1nchester/nailsite/internal/theme"
)

type ID string

const (
	Hero         ID = "hero"
	InfoStrip    ID = "info-strip"
	About        ID = "about"
	Services     ID = "services"
	Gallery      ID = "gallery"
	Testimonials ID = "testimonials"
	Contact      ID = "contact"
)

// NavLabel is the header/footer link text for the section. Hero and the
// info strip are not navigable.
func (id ID) NavLabel() (string, bool) {
	switch id {
	case About:
		return "About", true
	case Services:
		return "Services", true
	case Gallery:
		return "Gallery", true
	case Testimonials:
		return "Testimonials", true
	case Contact:
		return "Contact", true
	}
	return "", false
}

// Input is what every section receives. Sections read presentation only
// from Theme, never from the raw template.
type Input struct {
	Salon    *salon.Salon
	Template *salon.Template
	Theme    theme.Theme
	Open     Opener
}

func (in Input) salon() *salon.Salon {
	if in.Salon == nil {
		return &salon.Salon{}
	}
	return in.Salon
}

func (in Input) link(raw string) *Link {
	open := in.Open
	if open == nil {
		open = OpenLink
	}

	l, ok := open(raw)
	if !ok {
		return nil
	}

	return &l
}

// Config is the per-slot configuration a layout passes to a section.
type Config struct {
	Variant string
	Columns int
}

// Block is one rendered section. Data holds the section specific view model
// consumed by the section's HTML template.
type Block struct {
	ID    ID
	Class string
	Data  any
}

// Func renders a section or returns nil when its data gate is not met.
type Func func(in Input, cfg Config) *Block

var builders = map[ID]Func{
	Hero:         RenderHero,
	InfoStrip:    RenderInfoStrip,
	About:        RenderAbout,
	Services:     RenderServices,
	Gallery:      RenderGallery,
	Testimonials: RenderTestimonials,
	Contact:      RenderContact,
}

// Build renders the section identified by id.
func Build(id ID, in Input, cfg Config) *Block {
	fn, ok := builders[id]
	if !ok {
		return nil
	}
	return fn(in, cfg)
}

func IDs() []ID {
	return []ID{Hero, InfoStrip, About, Services, Gallery, Testimonials, Contact}
}
