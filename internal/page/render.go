package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"regexp"

	"github.com/xw1nchester/nailsite/internal/section"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	templates = template.Must(
		template.New("page").Funcs(template.FuncMap{
			"section": func(b *section.Block) (template.HTML, error) { return b.HTML() },
			"css":     func(s string) template.CSS { return template.CSS(s) },
		}).ParseFS(templateFS, "templates/*.html"),
	)

	blankLinesRegex = regexp.MustCompile(`\n\s*\n`)
)

// Render writes the HTML document for a terminal view.
func Render(w io.Writer, v *View) error {
	if v == nil || !v.State.Terminal() {
		return fmt.Errorf("cannot render page in state %v", stateOf(v))
	}

	name := "status"
	if v.State == Rendered {
		name = "site"
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, v); err != nil {
		return fmt.Errorf("render %s page: %w", name, err)
	}

	_, err := w.Write(blankLinesRegex.ReplaceAll(buf.Bytes(), []byte("\n")))
	return err
}

func stateOf(v *View) State {
	if v == nil {
		return ResolvingMode
	}
	return v.State
}
