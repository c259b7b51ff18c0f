// File path: internal/export/csv.go
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/invoiceworks/edicheck/internal/compare"
)

var csvHeader = []string{"Field Code", "Field Name", "Status", "Cardinality", "Type", "Length", "In EDI", "Usage"}

// ReportCSV renders the per-field detail list as CSV, one row per field
// occurrence.
func ReportCSV(report *compare.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, fr := range report.Fields {
		inEDI := "No"
		if fr.Status.Present() {
			inEDI = "Yes"
		}
		length := fmt.Sprintf("%d/%d", fr.Rule.Min, fr.Rule.Max)
		if fr.Status.Present() {
			length += "," + strconv.Itoa(fr.ActualLen)
		}
		row := []string{
			fr.Code,
			fr.Name,
			fr.Status.String(),
			fr.Rule.Cardinality,
			string(fr.Rule.Type),
			length,
			inEDI,
			fr.Rule.Usage,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
