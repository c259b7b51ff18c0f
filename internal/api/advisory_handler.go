// File path: internal/api/advisory_handler.go
package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/invoiceworks/edicheck/internal/analysis"
	"github.com/invoiceworks/edicheck/internal/common"
	"github.com/invoiceworks/edicheck/internal/common/telemetry"
)

func (s *Server) handleAdvisory(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	ctx, endSpan := telemetry.StartSpan(r.Context(), "advisory")
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		endSpan("error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	report, status, err := s.runCompare(req)
	if err != nil {
		endSpan("error", err)
		writeError(w, status, err)
		return
	}
	assessment := s.analyzer.Analyze(report)
	summary, err := analysis.AdvisorySummary(ctx, s.provider, report, assessment)
	if err != nil {
		endSpan("error", err)
		writeError(w, http.StatusBadGateway, err)
		return
	}
	endSpan("score", assessment.Compliance.Score)
	logger.Info("api: advisory summary produced", "provider", s.provider.Name(),
		"score", assessment.Compliance.Score, "elapsed", telemetry.SpanDuration(ctx))
	writeJSON(w, http.StatusOK, advisoryResponse{
		Provider:   s.provider.Name(),
		Summary:    summary,
		Assessment: assessment,
	})
}
