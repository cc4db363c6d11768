package layout

import "github.com/xw1nchester/nailsite/internal/section"

// Builtin returns the ten shipped layouts in Kind order.
func Builtin() []*Layout {
	return []*Layout{
		{
			Kind:            Classic,
			Name:            "Classic",
			Description:     "Timeless single-column page with a centered hero.",
			HeroVariant:     "centered",
			ServicesDisplay: "grid",
			GalleryColumns:  3,
			Slots: []Slot{
				single(section.Hero),
				single(section.InfoStrip),
				single(section.About),
				single(section.Services),
				single(section.Gallery),
				single(section.Testimonials),
				single(section.Contact),
			},
		},
		{
			Kind:            Elegant,
			Name:            "Elegant",
			Description:     "Refined page pairing the salon story with its hours.",
			HeroVariant:     "elegant-layout",
			ServicesDisplay: "grid",
			GalleryColumns:  4,
			Slots: []Slot{
				single(section.Hero),
				sideBySide(section.About, section.InfoStrip),
				single(section.Services),
				single(section.Testimonials),
				single(section.Gallery),
				single(section.Contact),
			},
		},
		{
			Kind:            Modern,
			Name:            "Modern",
			Description:     "Image-led page that opens with the gallery.",
			HeroVariant:     "modern-layout",
			ServicesDisplay: "list",
			GalleryColumns:  2,
			Slots: []Slot{
				single(section.Hero),
				single(section.Gallery),
				single(section.About),
				single(section.Services),
				single(section.InfoStrip),
				single(section.Testimonials),
				single(section.Contact),
			},
		},
		{
			Kind:            Luxury,
			Name:            "Luxury",
			Description:     "Premium page leading with a detailed service menu.",
			HeroVariant:     "luxury",
			ServicesDisplay: "list-detailed",
			GalleryColumns:  3,
			Slots: []Slot{
				single(section.Hero),
				single(section.InfoStrip),
				single(section.Services),
				single(section.About),
				single(section.Testimonials),
				single(section.Gallery),
				single(section.Contact),
			},
		},
		{
			Kind:            Friendly,
			Name:            "Friendly",
			Description:     "Warm page that puts client reviews before the gallery.",
			HeroVariant:     "friendly",
			ServicesDisplay: "grid",
			GalleryColumns:  2,
			Slots: []Slot{
				single(section.Hero),
				single(section.InfoStrip),
				single(section.About),
				single(section.Services),
				single(section.Testimonials),
				single(section.Gallery),
				single(section.Contact),
			},
		},
		{
			Kind:            Minimalist,
			Name:            "Minimalist",
			Description:     "Quiet page with a plain service list.",
			HeroVariant:     "minimalist",
			ServicesDisplay: "list",
			GalleryColumns:  3,
			Slots: []Slot{
				single(section.Hero),
				single(section.InfoStrip),
				single(section.About),
				single(section.Services),
				single(section.Gallery),
				single(section.Testimonials),
				single(section.Contact),
			},
		},
		{
			Kind:            Artistic,
			Name:            "Artistic",
			Description:     "Expressive page with artistic service cards.",
			HeroVariant:     "artistic",
			ServicesDisplay: "cards-artistic",
			GalleryColumns:  3,
			Slots: []Slot{
				single(section.Hero),
				single(section.InfoStrip),
				single(section.About),
				single(section.Services),
				single(section.Gallery),
				single(section.Testimonials),
				single(section.Contact),
			},
		},
		{
			Kind:            Vibrant,
			Name:            "Vibrant",
			Description:     "Colorful page that shows services before the story.",
			HeroVariant:     "vibrant",
			ServicesDisplay: "grid-colorful",
			GalleryColumns:  3,
			Slots: []Slot{
				single(section.Hero),
				single(section.InfoStrip),
				single(section.Services),
				single(section.About),
				single(section.Gallery),
				single(section.Testimonials),
				single(section.Contact),
			},
		},
		{
			Kind:            DarkMode,
			Name:            "Dark Mode",
			Description:     "High-contrast page on a dark background.",
			HeroVariant:     "dark-mode",
			ServicesDisplay: "grid",
			GalleryColumns:  3,
			Slots: []Slot{
				single(section.Hero),
				single(section.InfoStrip),
				single(section.About),
				single(section.Services),
				single(section.Gallery),
				single(section.Testimonials),
				single(section.Contact),
			},
		},
		{
			Kind:            Natural,
			Name:            "Natural",
			Description:     "Earthy page with a simple list and a two-column gallery.",
			HeroVariant:     "natural",
			ServicesDisplay: "list",
			GalleryColumns:  2,
			Slots: []Slot{
				single(section.Hero),
				single(section.InfoStrip),
				single(section.About),
				single(section.Services),
				single(section.Gallery),
				single(section.Testimonials),
				single(section.Contact),
			},
		},
	}
}
