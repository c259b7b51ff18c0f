// File path: internal/export/json.go
package export

import (
	json "github.com/goccy/go-json"

	"github.com/invoiceworks/edicheck/internal/compare"
)

// ReportJSON renders the full comparison report as indented JSON. The output
// is byte-stable for a given report.
func ReportJSON(report *compare.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
