package layout

import (
	"fmt"
	"strings"
)

// Kind enumerates the layouts the renderer knows how to build.
type Kind int

const (
	Classic Kind = iota
	Elegant
	Modern
	Luxury
	Friendly
	Minimalist
	Artistic
	Vibrant
	DarkMode
	Natural

	numKinds
)

const DefaultKind = Classic

var kindSlugs = [numKinds]string{
	Classic:    "classic",
	Elegant:    "elegant",
	Modern:     "modern",
	Luxury:     "luxury",
	Friendly:   "friendly",
	Minimalist: "minimalist",
	Artistic:   "artistic",
	Vibrant:    "vibrant",
	DarkMode:   "dark-mode",
	Natural:    "natural",
}

var kindsBySlug = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k, slug := range kindSlugs {
		m[slug] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindSlugs[k]
}

func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid layout kind %d", int(k))
	}
	return []byte(kindSlugs[k]), nil
}

// ParseKind maps a template slug to its kind. Matching ignores case and
// treats spaces and underscores as hyphens, so "Dark_Mode" is DarkMode.
func ParseKind(slug string) (Kind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(slug))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)

	if k, ok := kindsBySlug[normalized]; ok {
		return k, true
	}
	if normalized == "darkmode" {
		return DarkMode, true
	}

	return 0, false
}

// AllKinds lists every kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
