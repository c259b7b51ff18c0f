// File path: internal/api/spec_handler.go
package api

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/invoiceworks/edicheck/internal/common"
	"github.com/invoiceworks/edicheck/internal/common/telemetry"
	"github.com/invoiceworks/edicheck/internal/export"
	"github.com/invoiceworks/edicheck/internal/spec"
)

// loadRuleDocument picks the loader by filename extension, defaulting to the
// plain-text harvest when the extension is unknown.
func loadRuleDocument(name string, data []byte) (*spec.RuleSet, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return spec.LoadYAML(data)
	default:
		return spec.HarvestText(data)
	}
}

func (s *Server) handleParseSpec(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	start := time.Now()
	data, name, err := s.readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("empty specification upload"))
		return
	}
	rules, err := loadRuleDocument(name, data)
	telemetry.RecordParse("spec", len(data), time.Since(start))
	if err != nil {
		var specErr *spec.InvalidSpecificationError
		if errors.As(err, &specErr) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	xmlEcho, err := export.RuleSetXML(rules)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: specification parsed", "name", name, "fields", rules.Len())
	writeJSON(w, http.StatusOK, parseSpecResponse{
		XML:       xmlEcho,
		Rules:     rules.Rules(),
		Segments:  rules.Skeleton(),
		StatusMap: rules.StatusMap(),
	})
}
