// Package render turns a resume document into the HTML layout that gets
// captured and paginated. Templates live under the template directory as
// template-{name}.html plus a shared style.css that is inlined so the
// saved HTML is self-contained.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"cv-builder/internal/domain"
)

type Renderer struct {
	tplDir string
}

func NewRenderer(tplDir string) *Renderer {
	return &Renderer{tplDir: tplDir}
}

// knownTemplates guards against path traversal through the template name.
var knownTemplates = map[string]bool{
	"classico": true,
	"moderno":  true,
	"compacto": true,
}

// RenderHTML executes the named visual template over the document and
// inlines the stylesheet.
func (r *Renderer) RenderHTML(doc *domain.ResumeDocument, templateName string) (string, error) {
	if !knownTemplates[templateName] {
		return "", fmt.Errorf("render: unknown template %q", templateName)
	}

	tplPath := filepath.Join(r.tplDir, fmt.Sprintf("template-%s.html", templateName))
	tpl, err := template.ParseFiles(tplPath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, map[string]interface{}{"Doc": doc}); err != nil {
		return "", err
	}
	html := buf.String()

	if css, err := os.ReadFile(filepath.Join(r.tplDir, "style.css")); err == nil {
		cssBlock := "<style>" + string(css) + "</style>"
		if strings.Contains(strings.ToLower(html), "<head>") {
			html = strings.Replace(html, "<head>", "<head>"+cssBlock, 1)
		} else {
			html = cssBlock + html
		}
	}
	return html, nil
}
