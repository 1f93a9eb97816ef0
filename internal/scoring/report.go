package scoring

// MaxScore is the fixed point budget the percentage is computed against.
// The value is a product decision carried over from the original scoring
// rules; it is not derived from the rule table.
const MaxScore = 115

// MaxFeedback caps both feedback lists. First computed, first kept.
const MaxFeedback = 8

// Report is the completeness/quality assessment of a resume document.
// It is recomputed fresh on every read and never persisted.
type Report struct {
	Score       int      `json:"score"`
	MaxScore    int      `json:"max_score"`
	Percentage  int      `json:"percentage"`
	Stars       int      `json:"stars"`
	Status      string   `json:"status"`
	StatusColor string   `json:"status_color"`
	Strengths   []string `json:"strengths"`
	Issues      []string `json:"issues"`
}

type statusBand struct {
	minPercent int
	stars      int
	status     string
	color      string
}

// Bands are evaluated top-down, first match wins.
var statusBands = []statusBand{
	{90, 5, "Excelente", "emerald"},
	{80, 4, "Muito Bom", "green"},
	{65, 3, "Bom", "blue"},
	{50, 2, "Regular", "yellow"},
	{30, 1, "Precisa Melhorar", "orange"},
	{15, 1, "Em Desenvolvimento", "amber"},
	{0, 1, "Começando", "red"},
}

func classify(percentage int) (stars int, status, color string) {
	for _, b := range statusBands {
		if percentage >= b.minPercent {
			return b.stars, b.status, b.color
		}
	}
	last := statusBands[len(statusBands)-1]
	return last.stars, last.status, last.color
}
