package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-builder/internal/domain"
)

const tplDir = "../../templates"

func sampleDoc() *domain.ResumeDocument {
	return &domain.ResumeDocument{
		PersonalInfo: domain.PersonalInfo{
			FullName: "Ana Clara Souza",
			Email:    "ana@example.com",
			Phone:    "(11) 99999-8888",
		},
		Objective: domain.Objective{Description: "Busco crescer profissionalmente."},
		Experience: []domain.Experience{
			{Position: "Analista", Company: "Empresa X", StartDate: "2020-01", IsCurrent: true},
		},
		Skills: []domain.Skill{{Name: "Go"}, {Name: "SQL"}},
	}
}

func TestRenderHTML_Classico(t *testing.T) {
	r := NewRenderer(tplDir)
	html, err := r.RenderHTML(sampleDoc(), "classico")
	require.NoError(t, err)

	assert.Contains(t, html, "Ana Clara Souza")
	assert.Contains(t, html, "ana@example.com")
	assert.Contains(t, html, "Objetivo Profissional")
	assert.Contains(t, html, "Empresa X")
	assert.Contains(t, html, `class="classico"`)
	assert.Contains(t, html, "<style>", "stylesheet must be inlined")
}

func TestRenderHTML_AllTemplates(t *testing.T) {
	r := NewRenderer(tplDir)
	for _, name := range []string{"classico", "moderno", "compacto"} {
		t.Run(name, func(t *testing.T) {
			html, err := r.RenderHTML(sampleDoc(), name)
			require.NoError(t, err)
			assert.Contains(t, html, "Ana Clara Souza")
			assert.Contains(t, html, `class="`+name+`"`)
		})
	}
}

func TestRenderHTML_UnknownTemplate(t *testing.T) {
	r := NewRenderer(tplDir)
	_, err := r.RenderHTML(sampleDoc(), "../../etc/passwd")
	assert.Error(t, err)

	_, err = r.RenderHTML(sampleDoc(), "inexistente")
	assert.Error(t, err)
}

func TestRenderHTML_EmptyDocument(t *testing.T) {
	r := NewRenderer(tplDir)
	html, err := r.RenderHTML(&domain.ResumeDocument{}, "classico")
	require.NoError(t, err)

	// Optional sections collapse when the document is empty.
	assert.NotContains(t, html, "Experiência Profissional")
	assert.NotContains(t, html, "Habilidades")
}

func TestRenderHTML_EscapesUserContent(t *testing.T) {
	doc := sampleDoc()
	doc.PersonalInfo.FullName = `<script>alert("x")</script>`

	r := NewRenderer(tplDir)
	html, err := r.RenderHTML(doc, "classico")
	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
}
