// Package scoring evaluates how complete and well-written a resume
// document is. Scoring is a pure function over the document: no I/O, no
// stored state, and it never fails — a blank document scores low, it does
// not error.
package scoring

import "cv-builder/internal/domain"

// Score runs every category rule over the document and assembles the
// report. A nil document is treated as empty.
func Score(doc *domain.ResumeDocument) *Report {
	if doc == nil {
		doc = &domain.ResumeDocument{}
	}

	score := 0
	var strengths, issues []string
	for _, r := range rules {
		res := r.Evaluate(doc, score)
		score += res.Points
		if res.Strength != "" && len(strengths) < MaxFeedback {
			strengths = append(strengths, res.Strength)
		}
		if res.Issue != "" && len(issues) < MaxFeedback {
			issues = append(issues, res.Issue)
		}
	}

	percentage := (score*100 + MaxScore/2) / MaxScore
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	stars, status, color := classify(percentage)
	if strengths == nil {
		strengths = []string{}
	}
	if issues == nil {
		issues = []string{}
	}
	return &Report{
		Score:       score,
		MaxScore:    MaxScore,
		Percentage:  percentage,
		Stars:       stars,
		Status:      status,
		StatusColor: color,
		Strengths:   strengths,
		Issues:      issues,
	}
}
