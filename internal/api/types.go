// File path: internal/api/types.go
package api

import (
	"github.com/invoiceworks/edicheck/internal/analysis"
	"github.com/invoiceworks/edicheck/internal/spec"
)

type parseEDIResponse struct {
	XML    string            `json:"xml"`
	Fields []string          `json:"fields"`
	Values map[string]string `json:"values"`
	Is810  bool              `json:"is_810"`
	Notes  []string          `json:"notes,omitempty"`
}

type parseSpecResponse struct {
	XML       string             `json:"xml"`
	Rules     []spec.FieldRule   `json:"rules"`
	Segments  []spec.SegmentRule `json:"segments"`
	StatusMap map[string]bool    `json:"status_map"`
}

// compareRequest carries the raw EDI buffer plus an optional inline rule
// document; absent a document the server's configured rule set applies.
type compareRequest struct {
	EDI        string `json:"edi"`
	Spec       string `json:"spec,omitempty"`
	SpecFormat string `json:"spec_format,omitempty"` // "yaml" or "text"
}

type advisoryResponse struct {
	Provider   string               `json:"provider"`
	Summary    string               `json:"summary"`
	Assessment *analysis.Assessment `json:"assessment"`
}
