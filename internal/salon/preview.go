package salon

import "github.com/xw1nchester/nailsite/pkg/types"

// PreviewPayload is the sample salon the backend generates for a template
// preview. Unlike the salon endpoint it uses camelCase keys and carries only
// the template id.
type PreviewPayload struct {
	ID            int                     `json:"id"`
	Name          string                  `json:"name"`
	Address       string                  `json:"address"`
	Location      string                  `json:"location"`
	Email         string                  `json:"email"`
	PhoneNumber   string                  `json:"phoneNumber"`
	Description   string                  `json:"description"`
	HeroSubtitle  string                  `json:"heroSubtitle"`
	Services      types.List[Service]     `json:"services"`
	OpeningHours  string                  `json:"openingHours"`
	GalleryImages types.List[string]      `json:"galleryImages"`
	Testimonials  types.List[Testimonial] `json:"testimonials"`
	SampleURL     string                  `json:"sampleUrl"`
	TemplateID    types.IntOrString       `json:"templateId"`
	Claimed       bool                    `json:"claimed"`
	ContactStatus ContactStatus           `json:"contactStatus"`
}

func (p *PreviewPayload) ToDomain() *Salon {
	return &Salon{
		ID:            p.ID,
		Name:          p.Name,
		Address:       p.Address,
		Location:      p.Location,
		Email:         p.Email,
		PhoneNumber:   p.PhoneNumber,
		Description:   p.Description,
		HeroSubtitle:  p.HeroSubtitle,
		Services:      p.Services,
		OpeningHours:  p.OpeningHours,
		GalleryImages: p.GalleryImages,
		Testimonials:  p.Testimonials,
		SampleURL:     p.SampleURL,
		Template:      TemplateRef{ID: int(p.TemplateID)},
		Claimed:       p.Claimed,
		ContactStatus: p.ContactStatus,
	}
}
