// File path: internal/compare/report_test.go
package compare

import (
	"reflect"
	"strings"
	"testing"

	"github.com/invoiceworks/edicheck/internal/spec"
)

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestReportValidInvoice(t *testing.T) {
	doc := mustParse(t, sampleInvoice(nil))
	report := BuildReport(doc, spec.Baseline810())
	if !report.Is810 {
		t.Fatalf("expected is_810=true; summary: %s", report.ExecutiveSummary)
	}
	if len(report.MissingMandatory) != 0 {
		t.Fatalf("expected no missing mandatory fields, got %v", report.MissingMandatory)
	}
	if len(report.LengthErrors) != 0 {
		t.Fatalf("expected no length errors, got %v", report.LengthErrors)
	}
	if report.TransactionSetID != "810" {
		t.Fatalf("unexpected transaction set id %q", report.TransactionSetID)
	}
}

func TestReportMissingInvoiceNumber(t *testing.T) {
	doc := mustParse(t, sampleInvoice(map[string]string{"BIG": "BIG*20240101"}))
	report := BuildReport(doc, spec.Baseline810())
	if report.Is810 {
		t.Fatalf("expected is_810=false when BIG02 is omitted")
	}
	if !contains(report.MissingMandatory, "BIG02") {
		t.Fatalf("missing_mandatory must contain BIG02: %v", report.MissingMandatory)
	}
	if !strings.Contains(report.ExecutiveSummary, "BIG02") {
		t.Fatalf("executive summary must name BIG02: %s", report.ExecutiveSummary)
	}
}

func TestReportTotalAmountTooLong(t *testing.T) {
	doc := mustParse(t, sampleInvoice(map[string]string{"TDS": "TDS*123456789012345678901"}))
	report := BuildReport(doc, spec.Baseline810())
	if report.Is810 {
		t.Fatalf("expected is_810=false for a 1/1 mandatory length error")
	}
	if !contains(report.LengthErrors, "TDS01") {
		t.Fatalf("length_errors must contain TDS01: %v", report.LengthErrors)
	}
}

func TestReportWrongTransactionType(t *testing.T) {
	doc := mustParse(t, sampleInvoice(map[string]string{"ST": "ST*850*0001"}))
	report := BuildReport(doc, spec.Baseline810())
	if report.Is810 {
		t.Fatalf("ST01=850 must force is_810=false")
	}
	if !strings.Contains(report.ExecutiveSummary, "850") {
		t.Fatalf("summary must mention the wrong transaction type: %s", report.ExecutiveSummary)
	}
}

func TestReportMissingMandatorySegment(t *testing.T) {
	doc := mustParse(t, sampleInvoice(map[string]string{
		"CTT": "",
		"SE":  "SE*9*0001",
	}))
	report := BuildReport(doc, spec.Baseline810())
	if report.Is810 {
		t.Fatalf("a missing mandatory segment must force is_810=false")
	}
	found := false
	for _, sr := range report.Segments {
		if sr.Tag == "CTT" && sr.Status == SegmentMandatoryMissing {
			found = true
		}
	}
	if !found {
		t.Fatalf("segment summary must mark CTT missing")
	}
}

func TestReportOptionalLengthErrorDoesNotInvalidate(t *testing.T) {
	// N403 postal code limited to 3/15; two characters is an optional length
	// error but must not flip the verdict.
	doc := mustParse(t, sampleInvoice(map[string]string{"N4": "N4*METROPOLIS*NY*10"}))
	report := BuildReport(doc, spec.Baseline810())
	if !contains(report.LengthErrors, "N403") {
		t.Fatalf("length_errors must contain N403: %v", report.LengthErrors)
	}
	if !report.Is810 {
		t.Fatalf("optional length errors must not invalidate the transaction")
	}
}

func TestReportAdditionalFields(t *testing.T) {
	raw := sampleInvoice(nil)
	raw = strings.Replace(raw, "REF*PO*PO12345~", "REF*PO*PO12345~XYZ*extra~", 1)
	raw = strings.Replace(raw, "SE*10*0001~", "SE*11*0001~", 1)
	doc := mustParse(t, raw)
	report := BuildReport(doc, spec.Baseline810())
	if !contains(report.AdditionalFields, "XYZ01") {
		t.Fatalf("additional_fields must contain XYZ01: %v", report.AdditionalFields)
	}
}

func TestReportKeyFields(t *testing.T) {
	doc := mustParse(t, sampleInvoice(nil))
	report := BuildReport(doc, spec.Baseline810())
	byCode := make(map[string]KeyField)
	for _, kf := range report.KeyFields {
		byCode[kf.Code] = kf
	}
	if kf := byCode["BIG02"]; !kf.Present || kf.Value != "INV100" {
		t.Fatalf("key field BIG02: %+v", kf)
	}
	if kf := byCode["TDS01"]; !kf.Present || kf.Value != "9990" {
		t.Fatalf("key field TDS01: %+v", kf)
	}
	if kf := byCode["ST01"]; kf.Value != "810" {
		t.Fatalf("key field ST01: %+v", kf)
	}
}

func TestReportIdempotent(t *testing.T) {
	raw := sampleInvoice(nil)
	first := BuildReport(mustParse(t, raw), spec.Baseline810())
	second := BuildReport(mustParse(t, raw), spec.Baseline810())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical input must produce identical reports")
	}
}

func TestReportEnvelopeNotesSurface(t *testing.T) {
	doc := mustParse(t, sampleInvoice(map[string]string{"SE": "SE*10*9999"}))
	report := BuildReport(doc, spec.Baseline810())
	if len(report.EnvelopeNotes) == 0 {
		t.Fatalf("trailer mismatch note must surface in the report")
	}
	if !strings.Contains(report.ExecutiveSummary, "note") {
		t.Fatalf("summary must mention control notes: %s", report.ExecutiveSummary)
	}
}
