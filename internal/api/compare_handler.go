// File path: internal/api/compare_handler.go
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/invoiceworks/edicheck/internal/common"
	"github.com/invoiceworks/edicheck/internal/common/telemetry"
	"github.com/invoiceworks/edicheck/internal/compare"
	"github.com/invoiceworks/edicheck/internal/edi"
	"github.com/invoiceworks/edicheck/internal/export"
	"github.com/invoiceworks/edicheck/internal/spec"
)

// runCompare executes the full pipeline for a compare-style request and
// returns the report, or the HTTP status and error to surface.
func (s *Server) runCompare(req compareRequest) (*compare.Report, int, error) {
	if strings.TrimSpace(req.EDI) == "" {
		return nil, http.StatusBadRequest, fmt.Errorf("edi content is required")
	}

	rules := s.rules
	if strings.TrimSpace(req.Spec) != "" {
		var (
			loaded *spec.RuleSet
			err    error
		)
		if strings.EqualFold(req.SpecFormat, "yaml") {
			loaded, err = spec.LoadYAML([]byte(req.Spec))
		} else {
			loaded, err = spec.HarvestText([]byte(req.Spec))
		}
		if err != nil {
			// No rules, nothing to check against: the pipeline aborts.
			var specErr *spec.InvalidSpecificationError
			if errors.As(err, &specErr) {
				return nil, http.StatusBadRequest, err
			}
			return nil, http.StatusInternalServerError, err
		}
		rules = loaded
	}

	start := time.Now()
	doc, parseErr := edi.Parse([]byte(req.EDI))
	if parseErr != nil {
		var envErr *edi.MalformedEnvelopeError
		if errors.As(parseErr, &envErr) && doc != nil && len(doc.Segments) > 0 {
			// Partial structure still gets a report; the failure rides along
			// as an envelope note so no discrepancy is silently dropped.
			doc.Notes = append(doc.Notes, parseErr.Error())
		} else {
			return nil, http.StatusBadRequest, parseErr
		}
	}
	report := compare.BuildReport(doc, rules)
	telemetry.RecordCompare(report.Is810, time.Since(start))
	return report, http.StatusOK, nil
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	_, endSpan := telemetry.StartSpan(r.Context(), "compare")
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
	endSpan("is_810", report.Is810)
	logger.Info("api: comparison complete", "is_810", report.Is810,
		"missing_mandatory", len(report.MissingMandatory), "length_errors", len(report.LengthErrors))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	report, status, err := s.runCompare(req)
	if err != nil {
		writeError(w, status, err)
		return
	}
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "", "json":
		payload, err := export.ReportJSON(report)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="comparison.json"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	case "csv":
		payload, err := export.ReportCSV(report)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="comparison.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unsupported export format %q", r.URL.Query().Get("format")))
	}
}
