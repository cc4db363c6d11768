package theme

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/xw1nchester/nailsite/internal/salon"
)

const (
	DefaultPrimaryColor    = "#7E69AB"
	DefaultSecondaryColor  = "#D6BCFA"
	DefaultFontFamily      = "'Poppins', sans-serif"
	DefaultBackgroundColor = "#ffffff"
	DefaultTextColor       = "#1A1F2C"
)

var validate = validator.New()

// Placeholders are the last-tier media used when neither the salon nor its
// template supplies an image.
type Placeholders struct {
	Cover string
	About string
	Logo  string
}

// Tokens are the named style values shared by every section.
type Tokens struct {
	PrimaryColor    string `validate:"required,hexcolor"`
	SecondaryColor  string `validate:"required,hexcolor"`
	FontFamily      string `validate:"required,max=100,excludesall=;{}<>\""`
	BackgroundColor string `validate:"required,hexcolor"`
	TextColor       string `validate:"required,hexcolor"`
}

func DefaultTokens() Tokens {
	return Tokens{
		PrimaryColor:    DefaultPrimaryColor,
		SecondaryColor:  DefaultSecondaryColor,
		FontFamily:      DefaultFontFamily,
		BackgroundColor: DefaultBackgroundColor,
		TextColor:       DefaultTextColor,
	}
}

// Media holds resolved image URLs. HasCover and HasAbout report whether the
// image came from the salon or its template rather than a placeholder.
type Media struct {
	Cover    string
	About    string
	Logo     string
	HasCover bool
	HasAbout bool
}

type Theme struct {
	Slug     string
	Tokens   Tokens
	Media    Media
	Features Features
}

// Derive builds the theme for a salon rendered with template t. A nil
// template yields default tokens and features.
func Derive(s *salon.Salon, t *salon.Template, ph Placeholders) Theme {
	if s == nil {
		s = &salon.Salon{}
	}

	th := Theme{
		Tokens:   DefaultTokens(),
		Features: DefaultFeatures(),
	}

	var defaultCover, defaultAbout string
	if t != nil {
		th.Slug = strings.TrimSpace(t.Slug)
		th.Tokens = deriveTokens(t)
		th.Features = ParseFeatures(t.Features)
		defaultCover = t.DefaultCoverImage
		defaultAbout = t.DefaultAboutImage
	}

	th.Media.Cover, th.Media.HasCover = pick(s.CoverImage, defaultCover, ph.Cover)
	th.Media.About, th.Media.HasAbout = pick(s.AboutImage, defaultAbout, ph.About)
	th.Media.Logo, _ = pick(s.LogoImage, "", ph.Logo)

	return th
}

func deriveTokens(t *salon.Template) Tokens {
	tokens := Tokens{
		PrimaryColor:    strings.TrimSpace(t.PrimaryColor),
		SecondaryColor:  strings.TrimSpace(t.SecondaryColor),
		FontFamily:      strings.TrimSpace(t.FontFamily),
		BackgroundColor: strings.TrimSpace(t.BackgroundColor),
		TextColor:       strings.TrimSpace(t.TextColor),
	}

	err := validate.Struct(tokens)
	if err == nil {
		return tokens
	}

	defaults := DefaultTokens()
	validateErr, ok := err.(validator.ValidationErrors)
	if !ok {
		return defaults
	}

	for _, fieldErr := range validateErr {
		switch fieldErr.StructField() {
		case "PrimaryColor":
			tokens.PrimaryColor = defaults.PrimaryColor
		case "SecondaryColor":
			tokens.SecondaryColor = defaults.SecondaryColor
		case "FontFamily":
			tokens.FontFamily = defaults.FontFamily
		case "BackgroundColor":
			tokens.BackgroundColor = defaults.BackgroundColor
		case "TextColor":
			tokens.TextColor = defaults.TextColor
		}
	}

	return tokens
}

func pick(own, fallback, placeholder string) (string, bool) {
	if own = strings.TrimSpace(own); own != "" {
		return own, true
	}
	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback, true
	}
	return placeholder, false
}

// CSSVariables renders the custom-property declarations applied on the page
// root.
func (t Theme) CSSVariables() string {
	vars := []struct {
		name  string
		value string
	}{
		{"--primary-color", t.Tokens.PrimaryColor},
		{"--secondary-color", t.Tokens.SecondaryColor},
		{"--background-color", t.Tokens.BackgroundColor},
		{"--text-color", t.Tokens.TextColor},
		{"--font-family", t.Tokens.FontFamily},
	}

	var b strings.Builder
	for i, v := range vars {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s: %s;", v.name, v.value)
	}

	return b.String()
}

// ClassName is the page root class for the template, empty when the
// template has no slug.
func (t Theme) ClassName() string {
	if t.Slug == "" {
		return ""
	}
	return "template-" + sanitizeVariant(t.Slug)
}
