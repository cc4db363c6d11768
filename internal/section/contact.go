package section

import "strings"

type ContactData struct {
	Address []string
	Phone   string
	Tel     *Link
	Email   string
	Mailto  *Link
	Hours   []string
	Booking *Link
	MapURL  string
}

func RenderContact(in Input, _ Config) *Block {
	s := in.salon()

	address := strings.TrimSpace(s.Address)
	location := strings.TrimSpace(s.Location)
	phone := strings.TrimSpace(s.PhoneNumber)
	email := strings.TrimSpace(s.Email)
	hours := s.HoursLines()
	mapURL := strings.TrimSpace(s.MapEmbedURL)

	if address == "" && location == "" && phone == "" && email == "" && len(hours) == 0 && mapURL == "" {
		return nil
	}

	data := ContactData{
		Address: addressLines(address, location),
		Phone:   phone,
		Tel:     TelLink(phone),
		Email:   email,
		Mailto:  MailtoLink(email),
		Hours:   hours,
		Booking: in.link(s.BookingURL),
	}

	if in.Theme.Features.ShowMap {
		if l := in.link(mapURL); l != nil && l.External {
			data.MapURL = l.Href
		}
	}

	return &Block{
		ID:    Contact,
		Class: "contact",
		Data:  data,
	}
}
