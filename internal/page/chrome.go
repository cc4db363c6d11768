package page

import (
	"fmt"
	"strings"

	"github.com/xw1nchester/nailsite/internal/salon"
	"github.com/xw1nchester/nailsite/internal/section"
	"github.com/xw1nchester/nailsite/internal/theme"
	"github.com/xw1nchester/nailsite/pkg/utils"
)

type NavLink struct {
	Label string
	Href  string
}

type Header struct {
	Logo string
	Name string
	Nav  []NavLink
}

type SocialLink struct {
	Platform string
	Link     section.Link
}

type Footer struct {
	Logo       string
	Name       string
	About      string
	QuickLinks []NavLink
	Address    []string
	Phone      string
	Tel        string
	Email      string
	Hours      []string
	Social     []SocialLink
	Copyright  string
}

type AdminAction int

const (
	ActionNone AdminAction = iota
	ActionEdit
	ActionClaim
	ActionLogin
	ActionClaimed
)

func (a AdminAction) String() string {
	switch a {
	case ActionEdit:
		return "edit"
	case ActionClaim:
		return "claim"
	case ActionLogin:
		return "login"
	case ActionClaimed:
		return "claimed"
	}
	return "none"
}

// AdminBar is shown over live sites. Exactly one Action applies.
type AdminBar struct {
	DirectoryURL string
	Action       AdminAction
	EditURL      string
	ClaimURL     string
	LoginURL     string
	HideURL      string
}

type PreviewBar struct {
	TemplateName string
	BackURL      string
	UseURL       string
}

func navigation(ids []section.ID) []NavLink {
	links := make([]NavLink, 0, len(ids))
	for _, id := range utils.RemoveDuplicates(ids) {
		if label, ok := id.NavLabel(); ok {
			links = append(links, NavLink{Label: label, Href: "#" + string(id)})
		}
	}
	return links
}

func buildHeader(s *salon.Salon, th theme.Theme, ids []section.ID) Header {
	return Header{
		Logo: th.Media.Logo,
		Name: displayName(s),
		Nav:  navigation(ids),
	}
}

func buildFooter(s *salon.Salon, ids []section.ID, open section.Opener, year int) Footer {
	name := displayName(s)

	f := Footer{
		Logo:       strings.TrimSpace(s.FooterLogoImage),
		Name:       name,
		About:      strings.TrimSpace(s.FooterAbout),
		QuickLinks: append([]NavLink{{Label: "Home", Href: "#home"}}, navigation(ids)...),
		Phone:      strings.TrimSpace(s.PhoneNumber),
		Email:      strings.TrimSpace(s.Email),
		Hours:      s.HoursLines(),
		Copyright:  fmt.Sprintf("© %d %s. All rights reserved.", year, name),
	}
	if f.Logo == "" {
		f.Logo = strings.TrimSpace(s.LogoImage)
	}
	if f.About == "" {
		f.About = strings.TrimSpace(s.HeroSubtitle)
	}

	if tel := section.TelLink(f.Phone); tel != nil {
		f.Tel = tel.Href
	}

	for _, line := range []string{s.Address, s.Location} {
		if line = strings.TrimSpace(line); line != "" {
			f.Address = append(f.Address, line)
		}
	}

	for _, sl := range s.SocialLinks {
		l, ok := open(sl.URL)
		if !ok {
			continue
		}

		platform := strings.TrimSpace(sl.Platform)
		if platform == "" {
			platform = "Link"
		}

		f.Social = append(f.Social, SocialLink{Platform: platform, Link: l})
	}

	return f
}

func buildAdminBar(s *salon.Salon, siteID string, v *salon.Viewer, urls URLs) *AdminBar {
	bar := &AdminBar{
		DirectoryURL: urls.Listing,
		HideURL:      SitePath(siteID) + "?bar=hide",
	}

	switch {
	case v.Owns(s):
		bar.Action = ActionEdit
		bar.EditURL = urls.PortalEdit(s.ID)
	case s.Claimed:
		bar.Action = ActionClaimed
	case v.LoggedIn():
		bar.Action = ActionClaim
		bar.ClaimURL = ClaimPath(siteID)
	default:
		bar.Action = ActionLogin
		bar.LoginURL = urls.LoginRedirect(SitePath(siteID))
	}

	return bar
}

func buildPreviewBar(t *salon.Template, templateID int, urls URLs) *PreviewBar {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		name = fmt.Sprintf("Template #%d", templateID)
	}

	return &PreviewBar{
		TemplateName: name,
		BackURL:      urls.Templates,
		UseURL:       UseTemplatePath(templateID),
	}
}

func displayName(s *salon.Salon) string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return section.DefaultSalonName
}
