package section

import "strings"

const (
	DefaultSalonName   = "Your Salon"
	DefaultHeroVariant = "centered"
)

type HeroData struct {
	Title    string
	Subtitle string
	Image    string
	Booking  *Link
}

func RenderHero(in Input, cfg Config) *Block {
	s := in.salon()

	name := strings.TrimSpace(s.Name)
	subtitle := strings.TrimSpace(s.HeroSubtitle)
	booking := in.link(s.BookingURL)

	if name == "" && !in.Theme.Media.HasCover && subtitle == "" && booking == nil {
		return nil
	}

	if name == "" {
		name = DefaultSalonName
	}

	variant := cfg.Variant
	if variant == "" {
		variant = DefaultHeroVariant
	}

	return &Block{
		ID:    Hero,
		Class: "hero-layout-" + variant,
		Data: HeroData{
			Title:    name,
			Subtitle: subtitle,
			Image:    in.Theme.Media.Cover,
			Booking:  booking,
		},
	}
}
