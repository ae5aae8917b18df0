package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/resume.html.tmpl
var baseTemplate string

//go:embed templates/*.css
var styleFS embed.FS

var htmlTpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"absURL": absURL,
}).Parse(baseTemplate))

type htmlData struct {
	Doc *Document
	CSS template.CSS
}

// HTML renders the document into a self-contained page: markup plus inlined
// stylesheet, no external references. The same payload serves the on-screen
// preview, the remote render strategy and the rasterization source.
func HTML(doc *Document) (string, error) {
	css, err := styleFor(doc.Template, doc.Theme)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := htmlTpl.Execute(&buf, htmlData{Doc: doc, CSS: template.CSS(css)}); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// styleFor loads the embedded stylesheet for a template and prepends the
// resolved accent pair as CSS custom properties.
func styleFor(t Template, theme Theme) (string, error) {
	b, err := styleFS.ReadFile("templates/" + string(t) + ".css")
	if err != nil {
		return "", fmt.Errorf("stylesheet for %s: %w", t, err)
	}
	vars := fmt.Sprintf(":root{--accent:%s;--accent-light:%s;}\n", theme.Accent, theme.AccentLight)
	return vars + string(b), nil
}

// absURL ensures stored addresses like "github.com/x" become clickable.
func absURL(raw string) template.URL {
	if raw != "" && !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return template.URL(raw)
}
