package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"cv-builder/internal/domain"
)

// ruleResult is one category's contribution: points plus at most one
// feedback string on each list.
type ruleResult struct {
	Points   int
	Strength string
	Issue    string
}

// rule is a single scoring category. Evaluate receives the points
// accumulated by earlier rules so the professionalism rule can award its
// running-percentage bonus; every other rule ignores it.
type rule struct {
	ID        string
	MaxPoints int
	Evaluate  func(doc *domain.ResumeDocument, scored int) ruleResult
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Thresholds below encode product judgment carried over from the original
// scoring rules. They are constants on purpose, not derived values.
const (
	objectiveFullLen  = 100
	objectiveShortLen = 50

	descriptionDetailedLen = 150
	descriptionShortLen    = 50

	objectiveWellFormedMin = 80
	objectiveWellFormedMax = 250
)

// rules is the full category table, in evaluation (and feedback) order.
var rules = []rule{
	{ID: "base-engagement", MaxPoints: 10, Evaluate: evalBaseEngagement},
	{ID: "personal-info", MaxPoints: 15, Evaluate: evalPersonalInfo},
	{ID: "objective", MaxPoints: 10, Evaluate: evalObjective},
	{ID: "experience-quantity", MaxPoints: 18, Evaluate: evalExperienceQuantity},
	{ID: "experience-quality", MaxPoints: 17, Evaluate: evalExperienceQuality},
	{ID: "education-quantity", MaxPoints: 12, Evaluate: evalEducationQuantity},
	{ID: "education-completeness", MaxPoints: 8, Evaluate: evalEducationCompleteness},
	{ID: "skills", MaxPoints: 15, Evaluate: evalSkills},
	{ID: "languages", MaxPoints: 5, Evaluate: evalLanguages},
	{ID: "ats-keywords", MaxPoints: 5, Evaluate: evalATSKeywords},
	{ID: "formatting", MaxPoints: 5, Evaluate: evalFormatting},
	{ID: "professionalism", MaxPoints: 5, Evaluate: evalProfessionalism},
}

func evalBaseEngagement(doc *domain.ResumeDocument, _ int) ruleResult {
	if doc.IsEmpty() {
		return ruleResult{}
	}
	return ruleResult{Points: 10}
}

func evalPersonalInfo(doc *domain.ResumeDocument, _ int) ruleResult {
	p := doc.PersonalInfo
	points := 0

	name := strings.TrimSpace(p.FullName)
	switch {
	case len(strings.Fields(name)) >= 2:
		points += 5
	case name != "":
		points += 2
	}

	email := strings.TrimSpace(p.Email)
	switch {
	case emailRe.MatchString(email):
		points += 5
	case email != "":
		points += 2
	}

	phone := strings.TrimSpace(p.Phone)
	switch {
	case digitCount(phone) >= 10:
		points += 5
	case phone != "":
		points += 2
	}

	res := ruleResult{Points: points}
	if points == 15 {
		res.Strength = "Informações de contato completas e válidas"
	} else {
		res.Issue = "Complete suas informações pessoais: nome completo, e-mail válido e telefone com DDD"
	}
	return res
}

func evalObjective(doc *domain.ResumeDocument, _ int) ruleResult {
	n := utf8.RuneCountInString(strings.TrimSpace(doc.Objective.Description))
	switch {
	case n >= objectiveFullLen:
		return ruleResult{Points: 10, Strength: "Objetivo profissional bem desenvolvido"}
	case n >= objectiveShortLen:
		return ruleResult{Points: 6}
	case n > 0:
		return ruleResult{Points: 3, Issue: "Expanda seu objetivo profissional com mais detalhes sobre suas metas"}
	default:
		return ruleResult{Issue: "Adicione um objetivo profissional ao seu currículo"}
	}
}

func evalExperienceQuantity(doc *domain.ResumeDocument, _ int) ruleResult {
	n := len(doc.Experience)
	switch {
	case n == 0:
		return ruleResult{Issue: "Adicione suas experiências profissionais"}
	case n == 1:
		return ruleResult{Points: 8}
	case n == 2:
		return ruleResult{Points: 12}
	case n <= 5:
		return ruleResult{Points: 18, Strength: "Boa quantidade de experiências profissionais"}
	default:
		// Beyond the sweet spot the resume starts reading unfocused.
		return ruleResult{Points: 15}
	}
}

func evalExperienceQuality(doc *domain.ResumeDocument, _ int) ruleResult {
	total := len(doc.Experience)
	if total == 0 {
		return ruleResult{}
	}
	detailed := 0
	for _, e := range doc.Experience {
		if utf8.RuneCountInString(strings.TrimSpace(e.Description)) >= descriptionDetailedLen {
			detailed++
		}
	}
	avg := float64(detailed) / float64(total)
	switch {
	case avg >= 0.8:
		return ruleResult{Points: 17, Strength: "Experiências descritas em detalhes"}
	case avg >= 0.5:
		return ruleResult{Points: 12}
	case avg >= 0.3:
		return ruleResult{Points: 7, Issue: "Detalhe melhor as atividades e resultados de cada experiência"}
	default:
		return ruleResult{Points: 3, Issue: "Detalhe melhor as atividades e resultados de cada experiência"}
	}
}

func evalEducationQuantity(doc *domain.ResumeDocument, _ int) ruleResult {
	switch n := len(doc.Education); {
	case n == 0:
		return ruleResult{Issue: "Adicione sua formação acadêmica"}
	case n >= 2:
		return ruleResult{Points: 12, Strength: "Formação acadêmica consistente"}
	default:
		return ruleResult{Points: 8}
	}
}

func evalEducationCompleteness(doc *domain.ResumeDocument, _ int) ruleResult {
	if len(doc.Education) == 0 {
		return ruleResult{}
	}
	for _, e := range doc.Education {
		if strings.TrimSpace(e.Institution) == "" || strings.TrimSpace(e.Course) == "" || e.Level == "" {
			return ruleResult{Points: 4, Issue: "Complete instituição, curso e nível em todas as formações"}
		}
	}
	return ruleResult{Points: 8}
}

func evalSkills(doc *domain.ResumeDocument, _ int) ruleResult {
	switch n := len(doc.Skills); {
	case n == 0:
		return ruleResult{Issue: "Adicione suas habilidades e competências"}
	case n < 3:
		return ruleResult{Points: 3, Issue: "Liste mais habilidades relevantes para a vaga desejada"}
	case n <= 4:
		return ruleResult{Points: 7}
	case n <= 12:
		return ruleResult{Points: 15, Strength: "Conjunto de habilidades bem dimensionado"}
	default:
		return ruleResult{Points: 12}
	}
}

func evalLanguages(doc *domain.ResumeDocument, _ int) ruleResult {
	switch n := len(doc.Languages); {
	case n >= 2:
		return ruleResult{Points: 5, Strength: "Domínio de múltiplos idiomas"}
	case n == 1:
		return ruleResult{Points: 2}
	default:
		return ruleResult{Issue: "Adicione os idiomas que você domina"}
	}
}

func evalATSKeywords(doc *domain.ResumeDocument, _ int) ruleResult {
	blob := textBlob(doc)
	points := 0
	matches := countContained(blob, atsKeywords)
	if matches >= 6 {
		points += 2
	}
	if len(doc.Experience) > 0 && len(doc.Education) > 0 && len(doc.Skills) > 0 {
		points += 2
	}
	if containsDigit(blob) {
		points++
	}

	res := ruleResult{Points: points}
	if matches >= 6 {
		res.Strength = "Currículo otimizado com palavras-chave para ATS"
	} else if !doc.IsEmpty() {
		res.Issue = "Inclua palavras-chave do seu setor para sistemas de triagem (ATS)"
	}
	return res
}

func evalFormatting(doc *domain.ResumeDocument, _ int) ruleResult {
	points := 0

	if len(doc.Experience) > 0 {
		dated := true
		for _, e := range doc.Experience {
			if strings.TrimSpace(e.StartDate) == "" && strings.TrimSpace(e.EndDate) == "" {
				dated = false
				break
			}
		}
		if dated {
			points += 2
		}
	}

	if len(doc.Education) > 0 {
		dated := true
		for _, e := range doc.Education {
			if strings.TrimSpace(e.StartDate) == "" && strings.TrimSpace(e.EndDate) == "" {
				dated = false
				break
			}
		}
		if dated {
			points++
		}
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(doc.Objective.Description)); n >= objectiveWellFormedMin && n <= objectiveWellFormedMax {
		points++
	}

	if len(doc.Experience) >= 2 && len(doc.Education) >= 1 && len(doc.Skills) >= 5 {
		points++
	}

	res := ruleResult{Points: points}
	if points >= 4 {
		res.Strength = "Estrutura e formatação consistentes"
	}
	return res
}

func evalProfessionalism(doc *domain.ResumeDocument, scored int) ruleResult {
	blob := textBlob(doc)
	points := 0

	if countContained(blob, informalWords) == 0 && utf8.RuneCountInString(blob) > 100 {
		points += 2
	}

	verbs := countContained(blob, actionVerbs)
	res := ruleResult{}
	switch {
	case verbs >= 3:
		points += 2
		res.Strength = "Bom uso de verbos de ação nas descrições"
	case verbs >= 1:
		points++
	}

	if MaxScore > 0 && scored*100/MaxScore >= 70 {
		points++
	}

	res.Points = points
	return res
}
