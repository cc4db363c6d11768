package section

import (
	"net/url"
	"strings"
)

// Link is a resolved navigation target. External links open in a new tab.
type Link struct {
	Href     string
	External bool
}

// Opener turns a raw URL from salon data into a link. ok is false when the
// URL should not produce a link at all.
type Opener func(raw string) (Link, bool)

// OpenLink is the default Opener. Empty values and a bare "#" yield no link,
// http(s) URLs are external and anything with a scheme other than mailto or
// tel is dropped.
func OpenLink(raw string) (Link, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "#" {
		return Link{}, false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Link{}, false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return Link{}, false
		}
		return Link{Href: u.String(), External: true}, true
	case "mailto", "tel", "":
		return Link{Href: raw}, true
	}

	return Link{}, false
}

func TelLink(phone string) *Link {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}

	digits := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return nil
	}

	return &Link{Href: "tel:" + digits}
}

func MailtoLink(email string) *Link {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil
	}
	return &Link{Href: "mailto:" + email}
}
