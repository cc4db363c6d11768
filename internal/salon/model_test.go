package salon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Service
		ok       bool
	}{
		{name: "name and price", line: "Gel Manicure - $35", expected: Service{Name: "Gel Manicure", Price: "$35"}, ok: true},
		{name: "split on first hyphen", line: "Mani-Pedi - $60", expected: Service{Name: "Mani", Price: "Pedi - $60"}, ok: true},
		{name: "no hyphen", line: "Nail Art", expected: Service{Name: "Nail Art", Price: PriceNotAvailable}, ok: true},
		{name: "trailing hyphen", line: "Polish -", expected: Service{Name: "Polish", Price: PriceNotAvailable}, ok: true},
		{name: "blank", line: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := ParseServiceLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, svc)
		})
	}
}

func TestSalon_Unmarshal(t *testing.T) {
	payload := `{
		"id": 7,
		"name": "Glam Nails",
		"phone_number": null,
		"services": ["Manicure - $25", {"name": "Pedicure", "price": 40}, {"name": "Soak Off"}, 12, {"price": "$5"}],
		"gallery_images": ["a.jpg", 3, "b.jpg"],
		"testimonials": [{"quote": "Lovely!", "client_name": "Ann", "rating": "4.6"}, {"author": "No quote"}],
		"social_links": "broken",
		"template": {"id": 3, "slug": "elegant", "features": {"show_gallery": true}},
		"contact_status": "weird",
		"claimed": true
	}`

	var s Salon
	require.NoError(t, json.Unmarshal([]byte(payload), &s))

	assert.Equal(t, 7, s.ID)
	assert.Equal(t, "", s.PhoneNumber)
	assert.Equal(t, []Service{
		{Name: "Manicure", Price: "$25"},
		{Name: "Pedicure", Price: "40"},
		{Name: "Soak Off", Price: PriceNotAvailable},
	}, []Service(s.Services))
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, s.Gallery())
	require.Len(t, s.Testimonials, 1)
	assert.Equal(t, Testimonial{Quote: "Lovely!", Author: "Ann", Rating: 5}, s.Testimonials[0])
	assert.Empty(t, s.SocialLinks)
	require.True(t, s.Template.Resolved())
	assert.Equal(t, "elegant", s.Template.Template.Slug)
	assert.Equal(t, 3, s.Template.ID)
	assert.Equal(t, StatusNotContacted, s.ContactStatus)
	assert.True(t, s.Claimed)
}

func TestSalon_JSONRoundTrip(t *testing.T) {
	original := Salon{
		ID:            1,
		Name:          "Polished",
		Services:      []Service{{Name: "Manicure", Price: PriceNotAvailable, Description: "Classic"}},
		Testimonials:  []Testimonial{{Quote: "Great", Author: "Bo", Role: "Regular", Rating: 4}},
		GalleryImages: []string{"x.jpg"},
		Template:      TemplateRef{ID: 2, Template: &Template{ID: 2, Slug: "modern"}},
		ContactStatus: StatusSubscribed,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Salon
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original.Services, decoded.Services)
	assert.Equal(t, original.Testimonials, decoded.Testimonials)
	assert.Equal(t, "modern", decoded.Template.Template.Slug)
	assert.Equal(t, StatusSubscribed, decoded.ContactStatus)
}

func TestTemplateRef_Unmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		id       int
		resolved bool
	}{
		{name: "null", input: `null`},
		{name: "bare id", input: `4`, id: 4},
		{name: "string id", input: `"5"`, id: 5},
		{name: "object", input: `{"id": 6, "slug": "luxury"}`, id: 6, resolved: true},
		{name: "garbage", input: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref TemplateRef
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ref))
			assert.Equal(t, tt.id, ref.ID)
			assert.Equal(t, tt.resolved, ref.Resolved())
		})
	}
}

func TestSplitHelpers(t *testing.T) {
	assert.Equal(t,
		[]string{"Mon-Fri: 9AM-6PM", "Sat: 10AM-4PM"},
		SplitLines("Mon-Fri: 9AM-6PM\nSat: 10AM-4PM"),
	)
	assert.Equal(t,
		[]string{"Mon: 9-5", "Tue: 9-5"},
		SplitLines("  Mon: 9-5 \r\n\n   \nTue: 9-5\n"),
	)
	assert.Equal(t,
		[]string{"First paragraph\nstill first.", "Second."},
		SplitParagraphs("First paragraph\nstill first.\n\n  \nSecond.\n\n"),
	)
	assert.Empty(t, SplitParagraphs(""))
}

func TestViewer(t *testing.T) {
	var v Viewer
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "username": "amy", "salon": {"id": 9}}`), &v))
	assert.Equal(t, OwnedRef(9), v.Salon)
	assert.True(t, v.Owns(&Salon{ID: 9}))
	assert.False(t, v.Owns(&Salon{ID: 10}))

	var bare Viewer
	require.NoError(t, json.Unmarshal([]byte(`{"id": 2, "salon": null}`), &bare))
	assert.False(t, bare.OwnsSalon())

	var anonymous *Viewer
	assert.False(t, anonymous.LoggedIn())
	assert.False(t, anonymous.Owns(&Salon{ID: 9}))
}

func TestPreviewPayload_ToDomain(t *testing.T) {
	var p PreviewPayload
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 999,
		"name": "Sample Salon",
		"phoneNumber": "(555) 123-4567",
		"openingHours": "Mon: 9-5",
		"templateId": 3,
		"services": ["Manicure - $20"]
	}`), &p))

	s := p.ToDomain()
	assert.Equal(t, "(555) 123-4567", s.PhoneNumber)
	assert.Equal(t, 3, s.Template.ID)
	assert.False(t, s.Template.Resolved())
	assert.Len(t, s.Services, 1)
}

func TestWithMediaBase(t *testing.T) {
	s := Salon{
		CoverImage:    "salon_covers/a.jpg",
		AboutImage:    "https://cdn.example.com/b.jpg",
		LogoImage:     "/static/logo.png",
		GalleryImages: []string{"g/1.jpg"},
		Template:      TemplateRef{ID: 1, Template: &Template{ID: 1, DefaultCoverImage: "templates/c.jpg"}},
	}

	resolved := s.WithMediaBase("https://api.example.com/media/")

	assert.Equal(t, "https://api.example.com/media/salon_covers/a.jpg", resolved.CoverImage)
	assert.Equal(t, "https://cdn.example.com/b.jpg", resolved.AboutImage)
	assert.Equal(t, "/static/logo.png", resolved.LogoImage)
	assert.Equal(t, "https://api.example.com/media/g/1.jpg", resolved.GalleryImages[0])
	assert.Equal(t, "https://api.example.com/media/templates/c.jpg", resolved.Template.Template.DefaultCoverImage)
	assert.Equal(t, "salon_covers/a.jpg", s.CoverImage)
	assert.Equal(t, "templates/c.jpg", s.Template.Template.DefaultCoverImage)
}
