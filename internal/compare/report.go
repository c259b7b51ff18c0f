// File path: internal/compare/report.go
package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/invoiceworks/edicheck/internal/edi"
	"github.com/invoiceworks/edicheck/internal/spec"
)

// KeyField is one entry of the compact summary panel.
type KeyField struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Value   string `json:"value,omitempty"`
	Present bool   `json:"present"`
}

// Report is the final comparison aggregate: the validity verdict, field codes
// bucketed by status, the per-field detail list, the segment summary, the
// key-field panel and the executive summary. It is a pure function of the
// parsed document and the rule set, built fresh per request.
type Report struct {
	Is810            bool            `json:"is_810"`
	Message          string          `json:"message"`
	TransactionSetID string          `json:"transaction_set_id,omitempty"`
	MissingMandatory []string        `json:"missing_mandatory"`
	PresentFields    []string        `json:"present_fields"`
	MandatoryFields  []string        `json:"mandatory_fields"`
	OptionalFields   []string        `json:"optional_fields"`
	AdditionalFields []string        `json:"additional_fields"`
	LengthErrors     []string        `json:"length_errors"`
	Fields           []FieldResult   `json:"fields"`
	Segments         []SegmentResult `json:"segments"`
	KeyFields        []KeyField      `json:"key_fields"`
	ExecutiveSummary string          `json:"executive_summary"`
	EnvelopeNotes    []string        `json:"envelope_notes,omitempty"`
}

// keyFieldPanel is the fixed set of high-value fields surfaced in the compact
// summary view.
var keyFieldPanel = []KeyField{
	{Code: "ISA06", Name: "Interchange Sender ID"},
	{Code: "ISA08", Name: "Interchange Receiver ID"},
	{Code: "ISA13", Name: "Interchange Control Number"},
	{Code: "GS06", Name: "Group Control Number"},
	{Code: "ST01", Name: "Transaction Set Identifier"},
	{Code: "ST02", Name: "Transaction Set Control Number"},
	{Code: "BIG01", Name: "Invoice Date"},
	{Code: "BIG02", Name: "Invoice Number"},
	{Code: "TDS01", Name: "Total Invoice Amount"},
	{Code: "CTT01", Name: "Number of Line Items"},
	{Code: "SE01", Name: "Number of Included Segments"},
	{Code: "GE02", Name: "Group Control Number (Trailer)"},
	{Code: "IEA02", Name: "Interchange Control Number (Trailer)"},
}

// BuildReport runs the field validator and segment comparator over the parsed
// document and assembles the comparison report.
func BuildReport(doc *edi.Document, rules *spec.RuleSet) *Report {
	fields := ValidateFields(doc, rules)
	segments := CompareSegments(doc, rules.Skeleton())
	presentCodes, values := doc.FieldValues()

	report := &Report{
		Message:          "Comparison complete",
		TransactionSetID: doc.TransactionSetID(),
		Fields:           fields,
		Segments:         segments,
		PresentFields:    presentCodes,
		MissingMandatory: []string{},
		MandatoryFields:  []string{},
		OptionalFields:   []string{},
		AdditionalFields: []string{},
		LengthErrors:     []string{},
		EnvelopeNotes:    append([]string(nil), doc.Notes...),
	}
	if report.PresentFields == nil {
		report.PresentFields = []string{}
	}

	missingSeen := make(map[string]bool)
	lengthSeen := make(map[string]bool)
	mandatoryLengthBlock := false
	for _, fr := range fields {
		switch fr.Status {
		case MandatoryMissing:
			if !missingSeen[fr.Code] {
				missingSeen[fr.Code] = true
				report.MissingMandatory = append(report.MissingMandatory, fr.Code)
			}
		case MandatoryPresentLengthError:
			if fr.Rule.Cardinality == "1/1" {
				mandatoryLengthBlock = true
			}
			if !lengthSeen[fr.Code] {
				lengthSeen[fr.Code] = true
				report.LengthErrors = append(report.LengthErrors, fr.Code)
			}
		case OptionalPresentLengthError:
			if !lengthSeen[fr.Code] {
				lengthSeen[fr.Code] = true
				report.LengthErrors = append(report.LengthErrors, fr.Code)
			}
		}
	}

	for _, rule := range rules.Rules() {
		if rule.Mandatory {
			report.MandatoryFields = append(report.MandatoryFields, rule.Code)
		} else {
			report.OptionalFields = append(report.OptionalFields, rule.Code)
		}
	}

	for _, code := range presentCodes {
		if _, known := rules.Field(code); !known {
			report.AdditionalFields = append(report.AdditionalFields, code)
		}
	}
	sort.Strings(report.AdditionalFields)

	missingSegment := false
	for _, sr := range segments {
		if sr.Status == SegmentMandatoryMissing {
			missingSegment = true
			break
		}
	}

	for _, kf := range keyFieldPanel {
		entry := kf
		if value, ok := values[entry.Code]; ok {
			entry.Value = strings.TrimSpace(value)
			entry.Present = entry.Value != ""
		}
		report.KeyFields = append(report.KeyFields, entry)
	}

	report.Is810 = report.TransactionSetID == "810" &&
		len(report.MissingMandatory) == 0 &&
		!mandatoryLengthBlock &&
		!missingSegment

	report.ExecutiveSummary = executiveSummary(report, missingSegment)
	return report
}

func executiveSummary(r *Report, missingSegment bool) string {
	var b strings.Builder
	if r.Is810 {
		fmt.Fprintf(&b, "The document is a structurally valid X12 810 invoice. ")
		fmt.Fprintf(&b, "All %d mandatory field checks passed", len(r.MandatoryFields))
		if len(r.LengthErrors) > 0 {
			fmt.Fprintf(&b, "; %d optional field(s) have length issues", len(r.LengthErrors))
		}
		b.WriteString(".")
	} else {
		b.WriteString("The document failed the X12 810 structure check.")
		if r.TransactionSetID != "810" {
			fmt.Fprintf(&b, " ST01 is %q, not 810.", r.TransactionSetID)
		}
		if n := len(r.MissingMandatory); n > 0 {
			fmt.Fprintf(&b, " %d mandatory field(s) missing: %s.", n, strings.Join(r.MissingMandatory, ", "))
		}
		if n := len(r.LengthErrors); n > 0 {
			fmt.Fprintf(&b, " %d field(s) violate length rules: %s.", n, strings.Join(r.LengthErrors, ", "))
		}
		if missingSegment {
			b.WriteString(" One or more X12-mandatory segments are absent.")
		}
	}
	if len(r.EnvelopeNotes) > 0 {
		fmt.Fprintf(&b, " %d envelope control note(s) recorded.", len(r.EnvelopeNotes))
	}
	return b.String()
}
