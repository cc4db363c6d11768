package section

import "strings"

const anonymousAuthor = "Anonymous"

type TestimonialItem struct {
	Quote  string
	Author string
	Role   string
	Rating int
	Stars  string
}

type TestimonialsData struct {
	Items []TestimonialItem
}

func RenderTestimonials(in Input, _ Config) *Block {
	if !in.Theme.Features.ShowTestimonials {
		return nil
	}

	s := in.salon()
	if len(s.Testimonials) == 0 {
		return nil
	}

	items := make([]TestimonialItem, 0, len(s.Testimonials))
	for _, t := range s.Testimonials {
		author := t.Author
		if author == "" {
			author = anonymousAuthor
		}

		rating := min(max(t.Rating, 0), 5)

		items = append(items, TestimonialItem{
			Quote:  t.Quote,
			Author: author,
			Role:   t.Role,
			Rating: rating,
			Stars:  strings.Repeat("★", rating),
		})
	}

	return &Block{
		ID:    Testimonials,
		Class: "testimonials",
		Data:  TestimonialsData{Items: items},
	}
}
