package salon

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xw1nchester/nailsite/pkg/types"
)

const PriceNotAvailable = "Price N/A"

type ContactStatus string

const (
	StatusNotContacted  ContactStatus = "notContacted"
	StatusContacted     ContactStatus = "contacted"
	StatusInterested    ContactStatus = "interested"
	StatusNotInterested ContactStatus = "notInterested"
	StatusSubscribed    ContactStatus = "subscribed"
)

func (c *ContactStatus) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*c = StatusNotContacted
		return nil
	}

	switch status := ContactStatus(s); status {
	case StatusNotContacted, StatusContacted, StatusInterested, StatusNotInterested, StatusSubscribed:
		*c = status
	default:
		*c = StatusNotContacted
	}

	return nil
}

// Salon is one tenant's site content as served by the backend.
type Salon struct {
	ID              int                     `json:"id"`
	Name            string                  `json:"name"`
	Location        string                  `json:"location"`
	Address         string                  `json:"address"`
	PhoneNumber     string                  `json:"phone_number"`
	Email           string                  `json:"email"`
	Description     string                  `json:"description"`
	HeroSubtitle    string                  `json:"hero_subtitle"`
	OpeningHours    string                  `json:"opening_hours"`
	CoverImage      string                  `json:"cover_image"`
	AboutImage      string                  `json:"about_image"`
	LogoImage       string                  `json:"logo_image"`
	FooterLogoImage string                  `json:"footer_logo_image"`
	ServicesTagline string                  `json:"services_tagline"`
	GalleryTagline  string                  `json:"gallery_tagline"`
	FooterAbout     string                  `json:"footer_about"`
	BookingURL      string                  `json:"booking_url"`
	GalleryURL      string                  `json:"gallery_url"`
	ServicesURL     string                  `json:"services_url"`
	MapEmbedURL     string                  `json:"map_embed_url"`
	Services        types.List[Service]     `json:"services"`
	GalleryImages   types.List[string]      `json:"gallery_images"`
	Testimonials    types.List[Testimonial] `json:"testimonials"`
	SocialLinks     types.List[SocialLink]  `json:"social_links"`
	SampleURL       string                  `json:"sample_url"`
	Owner           string                  `json:"owner"`
	Template        TemplateRef             `json:"template"`
	Claimed         bool                    `json:"claimed"`
	ClaimedAt       *time.Time              `json:"claimed_at"`
	ContactStatus   ContactStatus           `json:"contact_status"`
}

// Gallery returns the non-blank gallery image URLs in order.
func (s *Salon) Gallery() []string {
	images := make([]string, 0, len(s.GalleryImages))
	for _, img := range s.GalleryImages {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	return images
}

// HoursLines splits the opening hours into display lines.
func (s *Salon) HoursLines() []string {
	return SplitLines(s.OpeningHours)
}

// Paragraphs splits the description on blank lines.
func (s *Salon) Paragraphs() []string {
	return SplitParagraphs(s.Description)
}

type Service struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

var errInvalidService = errors.New("invalid service entry")

func (s *Service) UnmarshalJSON(b []byte) error {
	var line string
	if err := json.Unmarshal(b, &line); err == nil {
		parsed, ok := ParseServiceLine(line)
		if !ok {
			return errInvalidService
		}
		*s = parsed
		return nil
	}

	var obj struct {
		Name        string           `json:"name"`
		Price       types.FlexString `json:"price"`
		Description string           `json:"description"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return errInvalidService
	}

	name := strings.TrimSpace(obj.Name)
	if name == "" {
		return errInvalidService
	}

	price := strings.TrimSpace(obj.Price.String())
	if price == "" {
		price = PriceNotAvailable
	}

	*s = Service{
		Name:        name,
		Price:       price,
		Description: strings.TrimSpace(obj.Description),
	}

	return nil
}

// ParseServiceLine splits a "Name - Price" entry on the first hyphen.
// Without a hyphen the whole line is the name and the price is PriceNotAvailable.
func ParseServiceLine(line string) (Service, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Service{}, false
	}

	name, price, found := strings.Cut(line, "-")
	if !found {
		return Service{Name: line, Price: PriceNotAvailable}, true
	}

	name = strings.TrimSpace(name)
	price = strings.TrimSpace(price)
	if price == "" {
		price = PriceNotAvailable
	}

	return Service{Name: name, Price: price}, true
}

type Testimonial struct {
	Quote  string
	Author string
	Role   string
	Rating int
}

var errInvalidTestimonial = errors.New("invalid testimonial entry")

func (t *Testimonial) UnmarshalJSON(b []byte) error {
	var obj struct {
		Quote      string           `json:"quote"`
		Author     string           `json:"author"`
		ClientName string           `json:"client_name"`
		Role       string           `json:"role"`
		Rating     types.FlexString `json:"rating"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return errInvalidTestimonial
	}

	quote := strings.TrimSpace(obj.Quote)
	if quote == "" {
		return errInvalidTestimonial
	}

	author := strings.TrimSpace(obj.Author)
	if author == "" {
		author = strings.TrimSpace(obj.ClientName)
	}

	*t = Testimonial{
		Quote:  quote,
		Author: author,
		Role:   strings.TrimSpace(obj.Role),
		Rating: parseRating(obj.Rating.String()),
	}

	return nil
}

func (t Testimonial) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Quote  string `json:"quote"`
		Author string `json:"author,omitempty"`
		Role   string `json:"role,omitempty"`
		Rating int    `json:"rating,omitempty"`
	}{t.Quote, t.Author, t.Role, t.Rating})
}

const maxRating = 5

func parseRating(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}

	return int(math.Max(0, math.Min(maxRating, math.Round(f))))
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

var (
	lineBreakRegex  = regexp.MustCompile(`\r?\n`)
	blankLinesRegex = regexp.MustCompile(`\r?\n[ \t]*(\r?\n[ \t]*)+`)
)

// SplitLines splits multi-line text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	return nonEmpty(lineBreakRegex.Split(text, -1))
}

// SplitParagraphs splits text on blank-line boundaries.
func SplitParagraphs(text string) []string {
	return nonEmpty(blankLinesRegex.Split(text, -1))
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
