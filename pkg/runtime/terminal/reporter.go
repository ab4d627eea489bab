package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
	"github.com/bid-tools/proposal-atlas/pkg/services/currency"
)

// Reporter outputs evaluation reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"price": currency.FormatOptional,
		"ratio": func(v *float64) string {
			if v == nil {
				return "n/a"
			}
			return fmt.Sprintf("%.2f", *v)
		},
	}

	tmpl := `
{{.Title}}
Reference currency: {{.Reference}}
Proposals: {{.Count}} | Average score: {{printf "%.1f" .AverageScore}}
{{if .Best}}Best proposal: {{.Best.Company}} ({{printf "%.0f" .Best.Score}}){{end}}
Distribution: strong {{.Distribution.Strong}}, moderate {{.Distribution.Moderate}}, weak {{.Distribution.Weak}}

{{range .Evaluations}}
#{{.Rank}} {{.Proposal.Company}} — score {{printf "%.0f" .Score}}, risk {{.RiskLevel}}, verdict {{.Recommendation}}
Price: {{price .Price}} | Price per point: {{ratio .PricePerPoint}}
{{range .Sections}}
- {{.Title}}: {{printf "%.0f" .Score}} ({{.RiskLevel}}){{if .Estimated}} [estimated]{{end}}
{{end}}
{{end}}
`
	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
