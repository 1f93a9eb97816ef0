package report

import (
	"context"
	"fmt"
	"strings"

	"cv-builder/internal/domain"
	"cv-builder/internal/scoring"
)

// FallbackGenerator assembles text from local string templates. It never
// fails, so it terminates any generation chain.
type FallbackGenerator struct{}

func NewFallbackGenerator() *FallbackGenerator { return &FallbackGenerator{} }

func (f *FallbackGenerator) Source() Source { return SourceFallback }

func (f *FallbackGenerator) Objective(_ context.Context, doc *domain.ResumeDocument) (string, error) {
	position := strings.TrimSpace(doc.PersonalInfo.DesiredPosition)
	if position == "" {
		position = "a área de interesse"
	}
	skills := skillNames(doc)
	if len(skills) > 3 {
		skills = skills[:3]
	}
	if len(skills) > 0 {
		return fmt.Sprintf(
			"Busco atuar como %s, aplicando conhecimentos em %s para contribuir com os resultados da empresa e evoluir profissionalmente.",
			position, strings.Join(skills, ", ")), nil
	}
	return fmt.Sprintf(
		"Busco oportunidade de atuar como %s, contribuindo com dedicação e comprometimento para os resultados da empresa enquanto desenvolvo novas competências.",
		position), nil
}

func (f *FallbackGenerator) ExperienceBullets(_ context.Context, exp domain.Experience) (string, error) {
	position := strings.TrimSpace(exp.Position)
	if position == "" {
		position = "profissional"
	}
	lines := []string{
		fmt.Sprintf("Atuei como %s, executando as rotinas e os processos da função.", position),
		"Colaborei com a equipe no cumprimento de metas e prazos estabelecidos.",
		"Contribuí para a melhoria contínua dos processos da área.",
	}
	if k := strings.TrimSpace(exp.Keywords); k != "" {
		lines = append(lines, fmt.Sprintf("Desenvolvi atividades envolvendo %s.", k))
	}
	return strings.Join(lines, "\n"), nil
}

func (f *FallbackGenerator) CoverLetter(_ context.Context, doc *domain.ResumeDocument, req CoverLetterRequest) (string, error) {
	name := strings.TrimSpace(doc.PersonalInfo.FullName)
	if name == "" {
		name = "O candidato"
	}
	company := strings.TrimSpace(req.Company)
	if company == "" {
		company = "a empresa"
	}
	position := strings.TrimSpace(req.Position)
	if position == "" {
		position = "a vaga anunciada"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Prezados,\n\nMeu nome é %s e venho manifestar interesse em %s na %s. ", name, position, company)
	if d := strings.TrimSpace(doc.Objective.Description); d != "" {
		b.WriteString(d)
		b.WriteString(" ")
	}
	b.WriteString("\n\n")
	if len(doc.Experience) > 0 {
		e := doc.Experience[0]
		fmt.Fprintf(&b, "Minha experiência mais recente foi como %s em %s, onde desenvolvi competências diretamente relacionadas à posição. ", e.Position, e.Company)
	}
	b.WriteString("Estou à disposição para uma conversa e agradeço a atenção.\n\nAtenciosamente,\n")
	b.WriteString(name)
	return b.String(), nil
}

func (f *FallbackGenerator) ScoreNarrative(_ context.Context, _ *domain.ResumeDocument, rep *scoring.Report) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Seu currículo está %d%% completo (%s, %d de %d pontos).\n\n", rep.Percentage, rep.Status, rep.Score, rep.MaxScore)
	if len(rep.Strengths) > 0 {
		b.WriteString("Pontos fortes:\n")
		for _, s := range rep.Strengths {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}
	if len(rep.Issues) > 0 {
		b.WriteString("Pontos a melhorar:\n")
		for _, s := range rep.Issues {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
