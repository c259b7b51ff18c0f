// File path: internal/analysis/advisory_test.go
package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/invoiceworks/edicheck/internal/llm/providers"
)

func TestAdvisorySummaryLocalProvider(t *testing.T) {
	report := invoiceReport(t, nil)
	assessment := NewAnalyzer().Analyze(report)
	summary, err := AdvisorySummary(context.Background(), providers.NewLocalProvider(), report, assessment)
	if err != nil {
		t.Fatalf("advisory failed: %v", err)
	}
	if !strings.HasPrefix(summary, "Verdict: valid 810") {
		t.Fatalf("local advisory must echo the rendered assessment: %q", summary)
	}
	if !strings.Contains(summary, "Compliance score:") {
		t.Fatalf("advisory text must carry the score line: %q", summary)
	}
}

func TestAdvisorySummaryNilProvider(t *testing.T) {
	report := invoiceReport(t, nil)
	assessment := NewAnalyzer().Analyze(report)
	if _, err := AdvisorySummary(context.Background(), nil, report, assessment); err == nil {
		t.Fatalf("expected an error with no provider configured")
	}
}
