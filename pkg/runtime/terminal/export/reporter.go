package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
	"github.com/bid-tools/proposal-atlas/pkg/services/currency"
)

type TableConfig struct {
	TitleWidth   int
	ScoreWidth   int
	RiskWidth    int
	CommentWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		TitleWidth:   28,
		ScoreWidth:   7,
		RiskWidth:    8,
		CommentWidth: 44,
	}
}

// Reporter renders an evaluation report with per-proposal section tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(title string, score float64, risk domain.RiskLevel, comment string) string {
			return fmt.Sprintf("| %-*s | %*.0f | %-*s | %-*s |",
				c.config.TitleWidth, title,
				c.config.ScoreWidth, score,
				c.config.RiskWidth, risk,
				c.config.CommentWidth, comment)
		},
		"header": func() string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				c.config.TitleWidth, "Section",
				c.config.ScoreWidth, "Score",
				c.config.RiskWidth, "Risk",
				c.config.CommentWidth, "Note")
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.TitleWidth+2),
				strings.Repeat("-", c.config.ScoreWidth+2),
				strings.Repeat("-", c.config.RiskWidth+2),
				strings.Repeat("-", c.config.CommentWidth+2))
		},
		"note": func(s domain.Section) string {
			if s.Estimated {
				return "estimated, not measured"
			}
			if len(s.KeyFindings) > 0 {
				return s.KeyFindings[0]
			}
			return ""
		},
		"price": currency.FormatOptional,
	}

	tmpl := `
{{.Title}} ({{.Count}} proposals, reference currency {{.Reference}})

Average score: {{printf "%.1f" .AverageScore}}
{{if .Best}}Best proposal: {{.Best.Company}} ({{printf "%.0f" .Best.Score}}){{end}}

{{range .Evaluations}}
=== #{{.Rank}} {{.Proposal.Company}} ===
Score: {{printf "%.0f" .Score}} | Risk: {{.RiskLevel}} | Verdict: {{.Recommendation}} | Price: {{price .Price}}

{{separator}}
{{header}}
{{separator}}
{{range .Sections}}{{formatRow .Title .Score .RiskLevel (note .)}}
{{end}}{{separator}}
{{end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
