package section

import "strings"

type InfoStripData struct {
	Hours   []string
	Phone   string
	Tel     *Link
	Address []string
}

func RenderInfoStrip(in Input, _ Config) *Block {
	s := in.salon()

	hours := s.HoursLines()
	phone := strings.TrimSpace(s.PhoneNumber)
	address := strings.TrimSpace(s.Address)
	location := strings.TrimSpace(s.Location)

	if len(hours) == 0 && phone == "" && (address == "" || location == "") {
		return nil
	}

	return &Block{
		ID:    InfoStrip,
		Class: "info-strip",
		Data: InfoStripData{
			Hours:   hours,
			Phone:   phone,
			Tel:     TelLink(phone),
			Address: addressLines(address, location),
		},
	}
}

func addressLines(address, location string) []string {
	lines := make([]string, 0, 2)
	if address != "" {
		lines = append(lines, address)
	}
	if location != "" && location != address {
		lines = append(lines, location)
	}
	return lines
}
