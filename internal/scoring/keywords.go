package scoring

import (
	"strings"
	"unicode"

	"cv-builder/internal/domain"
)

// atsKeywords are the terms applicant tracking systems commonly rank on.
// Presence is counted once per term, not per occurrence.
var atsKeywords = []string{
	"experiência",
	"responsável",
	"desenvolvimento",
	"gestão",
	"análise",
	"projeto",
	"equipe",
	"resultado",
	"implementação",
}

// actionVerbs signal achievement-oriented writing in experience descriptions.
var actionVerbs = []string{
	"desenvolvi",
	"implementei",
	"gerenciei",
	"liderei",
	"criei",
	"otimizei",
	"coordenei",
	"automatizei",
	"reduzi",
	"aumentei",
}

// informalWords flag colloquial language that reads unprofessional.
var informalWords = []string{
	"tipo",
	"cara",
	"coisa",
	"legal",
	"top",
	"mano",
	"né",
}

// textBlob concatenates the searchable text of a document, lowercased:
// objective, experience positions and descriptions, skill names, and
// education course/institution. Personal info is deliberately excluded.
func textBlob(doc *domain.ResumeDocument) string {
	if doc == nil {
		return ""
	}
	var b strings.Builder
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			b.WriteString(s)
			b.WriteByte(' ')
		}
	}
	add(doc.Objective.Keywords)
	add(doc.Objective.Description)
	for _, e := range doc.Experience {
		add(e.Position)
		add(e.Description)
	}
	for _, s := range doc.Skills {
		add(s.Name)
	}
	for _, e := range doc.Education {
		add(e.Course)
		add(e.Institution)
	}
	return strings.ToLower(b.String())
}

func countContained(blob string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(blob, w) {
			n++
		}
	}
	return n
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
