package section

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// HTML renders the block with its section template.
func (b *Block) HTML() (template.HTML, error) {
	if b == nil {
		return "", nil
	}

	tmpl := templates.Lookup(string(b.ID))
	if tmpl == nil {
		return "", fmt.Errorf("no template for section %q", b.ID)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, b); err != nil {
		return "", fmt.Errorf("render section %s: %w", b.ID, err)
	}

	return template.HTML(buf.String()), nil
}
