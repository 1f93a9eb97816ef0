// Package report produces narrative text for a resume: objective
// statements, experience bullets, cover letters, and a written summary of a
// score report. Generation strategies are tried in rank order and the
// result carries its provenance, so callers can tell remote AI output from
// the local template fallback without exception control flow.
package report

import (
	"context"
	"errors"
	"log/slog"

	"cv-builder/internal/domain"
	"cv-builder/internal/scoring"
)

// Source tags where a generated text came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// GeneratedText is a generation result with provenance.
type GeneratedText struct {
	Source  Source `json:"source"`
	Content string `json:"content"`
}

// CoverLetterRequest carries the target vacancy for a cover letter.
type CoverLetterRequest struct {
	Company  string `json:"company"`
	Position string `json:"position"`
}

// Generator is one generation strategy.
type Generator interface {
	Source() Source
	Objective(ctx context.Context, doc *domain.ResumeDocument) (string, error)
	ExperienceBullets(ctx context.Context, exp domain.Experience) (string, error)
	CoverLetter(ctx context.Context, doc *domain.ResumeDocument, req CoverLetterRequest) (string, error)
	ScoreNarrative(ctx context.Context, doc *domain.ResumeDocument, rep *scoring.Report) (string, error)
}

var errNoGenerators = errors.New("report: no generators configured")

// Chain tries generators in order and returns the first success. The local
// fallback generator never fails, so a chain ending in one is total.
type Chain struct {
	generators []Generator
}

func NewChain(generators ...Generator) *Chain {
	return &Chain{generators: generators}
}

// NewDefaultChain ranks the remote ai-service first with the local
// template fallback behind it.
func NewDefaultChain(remote *RemoteGenerator) *Chain {
	return NewChain(remote, NewFallbackGenerator())
}

func (c *Chain) run(ctx context.Context, op string, f func(Generator) (string, error)) (*GeneratedText, error) {
	var lastErr error = errNoGenerators
	for _, g := range c.generators {
		content, err := f(g)
		if err == nil {
			return &GeneratedText{Source: g.Source(), Content: content}, nil
		}
		slog.Warn("text generation strategy failed", "op", op, "source", g.Source(), "error", err)
		lastErr = err
	}
	return nil, lastErr
}

func (c *Chain) Objective(ctx context.Context, doc *domain.ResumeDocument) (*GeneratedText, error) {
	return c.run(ctx, "objective", func(g Generator) (string, error) {
		return g.Objective(ctx, doc)
	})
}

func (c *Chain) ExperienceBullets(ctx context.Context, exp domain.Experience) (*GeneratedText, error) {
	return c.run(ctx, "experience_bullets", func(g Generator) (string, error) {
		return g.ExperienceBullets(ctx, exp)
	})
}

func (c *Chain) CoverLetter(ctx context.Context, doc *domain.ResumeDocument, req CoverLetterRequest) (*GeneratedText, error) {
	return c.run(ctx, "cover_letter", func(g Generator) (string, error) {
		return g.CoverLetter(ctx, doc, req)
	})
}

func (c *Chain) ScoreNarrative(ctx context.Context, doc *domain.ResumeDocument, rep *scoring.Report) (*GeneratedText, error) {
	return c.run(ctx, "score_narrative", func(g Generator) (string, error) {
		return g.ScoreNarrative(ctx, doc, rep)
	})
}
