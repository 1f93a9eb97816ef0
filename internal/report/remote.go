package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cv-builder/internal/domain"
	"cv-builder/internal/scoring"
)

// RemoteGenerator calls the internal ai-service chat endpoint to produce
// narrative text.
type RemoteGenerator struct {
	BaseURL string
	HTTP    *http.Client
}

func NewRemoteGenerator(baseURL string) *RemoteGenerator {
	if baseURL == "" {
		baseURL = "http://ai-service:8000"
	}
	return &RemoteGenerator{BaseURL: baseURL, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

func (r *RemoteGenerator) Source() Source { return SourceRemote }

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (r *RemoteGenerator) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := r.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func (r *RemoteGenerator) chat(ctx context.Context, prompt string) (string, error) {
	reqObj := map[string]interface{}{
		"agent": "auto",
		"input": prompt,
	}
	b, err := json.Marshal(reqObj)
	if err != nil {
		return "", err
	}

	resp, err := r.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var chatResp struct {
		Agent  string `json:"agent"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal(rb, &chatResp); err != nil {
		return "", fmt.Errorf("ai-service returned malformed response: %w", err)
	}
	out := strings.TrimSpace(chatResp.Output)
	if out == "" {
		return "", fmt.Errorf("ai-service returned empty output")
	}
	return out, nil
}

func (r *RemoteGenerator) Objective(ctx context.Context, doc *domain.ResumeDocument) (string, error) {
	var b strings.Builder
	b.WriteString("Escreva um objetivo profissional em português para um currículo, em um parágrafo de 100 a 250 caracteres. ")
	b.WriteString("Responda APENAS com o texto do objetivo, sem comentários.\n\n")
	if p := strings.TrimSpace(doc.PersonalInfo.DesiredPosition); p != "" {
		fmt.Fprintf(&b, "Cargo desejado: %s\n", p)
	}
	if k := strings.TrimSpace(doc.Objective.Keywords); k != "" {
		fmt.Fprintf(&b, "Palavras-chave: %s\n", k)
	}
	if names := skillNames(doc); len(names) > 0 {
		fmt.Fprintf(&b, "Habilidades: %s\n", strings.Join(names, ", "))
	}
	return r.chat(ctx, b.String())
}

func (r *RemoteGenerator) ExperienceBullets(ctx context.Context, exp domain.Experience) (string, error) {
	var b strings.Builder
	b.WriteString("Escreva de 3 a 5 frases curtas, iniciadas por verbos de ação em português, descrevendo a experiência profissional abaixo. ")
	b.WriteString("Uma frase por linha, sem marcadores. Responda APENAS com as frases.\n\n")
	fmt.Fprintf(&b, "Cargo: %s\nEmpresa: %s\n", exp.Position, exp.Company)
	if k := strings.TrimSpace(exp.Keywords); k != "" {
		fmt.Fprintf(&b, "Palavras-chave: %s\n", k)
	}
	if d := strings.TrimSpace(exp.Description); d != "" {
		fmt.Fprintf(&b, "Descrição atual: %s\n", d)
	}
	return r.chat(ctx, b.String())
}

func (r *RemoteGenerator) CoverLetter(ctx context.Context, doc *domain.ResumeDocument, req CoverLetterRequest) (string, error) {
	var b strings.Builder
	b.WriteString("Escreva uma carta de apresentação profissional em português, com 3 parágrafos curtos. ")
	b.WriteString("Responda APENAS com o texto da carta.\n\n")
	fmt.Fprintf(&b, "Candidato: %s\n", doc.PersonalInfo.FullName)
	fmt.Fprintf(&b, "Empresa: %s\nVaga: %s\n", req.Company, req.Position)
	if d := strings.TrimSpace(doc.Objective.Description); d != "" {
		fmt.Fprintf(&b, "Objetivo do candidato: %s\n", d)
	}
	for _, e := range doc.Experience {
		fmt.Fprintf(&b, "Experiência: %s em %s\n", e.Position, e.Company)
	}
	return r.chat(ctx, b.String())
}

// ScoreNarrative feeds the report's strengths and issues verbatim into the
// prompt so the narrative stays consistent with what the UI shows.
func (r *RemoteGenerator) ScoreNarrative(ctx context.Context, doc *domain.ResumeDocument, rep *scoring.Report) (string, error) {
	var b strings.Builder
	b.WriteString("Escreva uma avaliação em português, em dois parágrafos, sobre o currículo de um candidato com base nos pontos abaixo. ")
	b.WriteString("Seja direto e construtivo. Responda APENAS com a avaliação.\n\n")
	fmt.Fprintf(&b, "Pontuação: %d%% (%s)\n", rep.Percentage, rep.Status)
	b.WriteString("Pontos fortes:\n")
	for _, s := range rep.Strengths {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString("Pontos a melhorar:\n")
	for _, s := range rep.Issues {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	return r.chat(ctx, b.String())
}

func skillNames(doc *domain.ResumeDocument) []string {
	var names []string
	for _, s := range doc.Skills {
		if n := strings.TrimSpace(s.Name); n != "" {
			names = append(names, n)
		}
	}
	return names
}
