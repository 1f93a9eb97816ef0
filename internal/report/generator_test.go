package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-builder/internal/domain"
	"cv-builder/internal/scoring"
)

func chatServer(t *testing.T, status int, output string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "auto", req["agent"])
		assert.NotEmpty(t, req["input"])

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"agent": "resume", "output": output})
	}))
}

func TestRemoteGenerator_Objective(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "Busco atuar como analista de dados.")
	defer srv.Close()

	gen := NewRemoteGenerator(srv.URL)
	doc := &domain.ResumeDocument{
		PersonalInfo: domain.PersonalInfo{DesiredPosition: "Analista de Dados"},
		Skills:       []domain.Skill{{Name: "SQL"}, {Name: "Python"}},
	}
	out, err := gen.Objective(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "Busco atuar como analista de dados.", out)
}

func TestRemoteGenerator_Non200(t *testing.T) {
	srv := chatServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	gen := NewRemoteGenerator(srv.URL)
	_, err := gen.Objective(context.Background(), &domain.ResumeDocument{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200")
}

func TestRemoteGenerator_EmptyOutput(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "   ")
	defer srv.Close()

	gen := NewRemoteGenerator(srv.URL)
	_, err := gen.Objective(context.Background(), &domain.ResumeDocument{})
	assert.Error(t, err)
}

func TestChain_PrefersRemote(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "Texto gerado remotamente.")
	defer srv.Close()

	chain := NewDefaultChain(NewRemoteGenerator(srv.URL))
	got, err := chain.Objective(context.Background(), &domain.ResumeDocument{})
	require.NoError(t, err)
	assert.Equal(t, SourceRemote, got.Source)
	assert.Equal(t, "Texto gerado remotamente.", got.Content)
}

func TestChain_FallsBackWhenRemoteFails(t *testing.T) {
	srv := chatServer(t, http.StatusServiceUnavailable, "")
	defer srv.Close()

	chain := NewDefaultChain(NewRemoteGenerator(srv.URL))
	doc := &domain.ResumeDocument{
		PersonalInfo: domain.PersonalInfo{DesiredPosition: "Desenvolvedor Backend"},
	}
	got, err := chain.Objective(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, got.Source)
	assert.Contains(t, got.Content, "Desenvolvedor Backend")
}

func TestChain_NoGenerators(t *testing.T) {
	chain := NewChain()
	_, err := chain.Objective(context.Background(), &domain.ResumeDocument{})
	assert.ErrorIs(t, err, errNoGenerators)
}

func TestFallback_NeverFails(t *testing.T) {
	f := NewFallbackGenerator()
	ctx := context.Background()
	doc := &domain.ResumeDocument{}

	out, err := f.Objective(ctx, doc)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	out, err = f.ExperienceBullets(ctx, domain.Experience{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(strings.Split(out, "\n")), 3)

	out, err = f.CoverLetter(ctx, doc, CoverLetterRequest{})
	require.NoError(t, err)
	assert.Contains(t, out, "Prezados")

	rep := scoring.Score(doc)
	out, err = f.ScoreNarrative(ctx, doc, rep)
	require.NoError(t, err)
	assert.Contains(t, out, "0%")
}

func TestFallback_ExperienceBulletsUseKeywords(t *testing.T) {
	f := NewFallbackGenerator()
	out, err := f.ExperienceBullets(context.Background(), domain.Experience{
		Position: "Vendedor",
		Keywords: "atendimento ao cliente",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Vendedor")
	assert.Contains(t, out, "atendimento ao cliente")
}

func TestFallback_ScoreNarrativeListsFeedback(t *testing.T) {
	f := NewFallbackGenerator()
	rep := &scoring.Report{
		Score:      80,
		MaxScore:   scoring.MaxScore,
		Percentage: 70,
		Status:     "Bom",
		Strengths:  []string{"Experiências bem detalhadas"},
		Issues:     []string{"Adicione idiomas"},
	}
	out, err := f.ScoreNarrative(context.Background(), &domain.ResumeDocument{}, rep)
	require.NoError(t, err)
	assert.Contains(t, out, "Experiências bem detalhadas")
	assert.Contains(t, out, "Adicione idiomas")
	assert.Contains(t, out, "70%")
}
