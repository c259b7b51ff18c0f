// File path: internal/analysis/advisory.go
package analysis

import (
	"context"
	"fmt"

	"github.com/invoiceworks/edicheck/internal/common"
	"github.com/invoiceworks/edicheck/internal/compare"
	"github.com/invoiceworks/edicheck/internal/llm"
)

const advisoryInstruction = "You are an EDI compliance reviewer. Rewrite the " +
	"following X12 810 structure assessment as a short briefing for a " +
	"business audience. Keep every number and field code unchanged."

// AdvisorySummary asks the configured provider to narrate the assessment.
// With the local provider the rendered assessment text is returned as-is, so
// the endpoint stays deterministic offline.
func AdvisorySummary(ctx context.Context, provider llm.Provider, report *compare.Report, assessment *Assessment) (string, error) {
	if provider == nil {
		return "", fmt.Errorf("no provider configured")
	}
	rendered := fmt.Sprintf("Verdict: %s\n%s\n%s",
		verdictLabel(report), report.ExecutiveSummary, Render(assessment))
	common.Logger().Debug("analysis: advisory requested", "provider", provider.Name())
	messages := []llm.Message{
		{Role: "system", Content: advisoryInstruction},
		{Role: "user", Content: rendered},
	}
	return provider.Chat(ctx, messages)
}

func verdictLabel(report *compare.Report) string {
	if report.Is810 {
		return "valid 810"
	}
	return "not a valid 810"
}
