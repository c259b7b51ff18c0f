// File path: internal/compare/validator_test.go
package compare

import (
	"strings"
	"testing"

	"github.com/invoiceworks/edicheck/internal/spec"
)

func statusFor(results []FieldResult, code string, occurrence int) FieldStatus {
	for _, fr := range results {
		if fr.Code == code && fr.Occurrence == occurrence {
			return fr.Status
		}
	}
	return StatusUnknown
}

func TestValidateFieldsCleanDocument(t *testing.T) {
	doc := mustParse(t, sampleInvoice(nil))
	results := ValidateFields(doc, spec.Baseline810())
	for _, code := range []string{"BIG01", "BIG02", "TDS01", "CTT01", "IT102"} {
		if got := statusFor(results, code, 0); got != MandatoryPresentValid {
			t.Fatalf("%s: expected mandatory-present-valid, got %s", code, got)
		}
	}
	if got := statusFor(results, "BIG04", 0); got != OptionalMissing {
		t.Fatalf("BIG04: expected optional-missing, got %s", got)
	}
}

func TestValidateFieldsBoundaryLengthsInclusive(t *testing.T) {
	rs := spec.NewRuleSet(nil)
	for _, r := range []spec.FieldRule{
		{Code: "BIG02", Name: "Invoice Number", Mandatory: true, Cardinality: "1/1", Type: spec.TypeAN, Min: 3, Max: 6},
	} {
		if err := rs.Add(r); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	cases := []struct {
		value string
		want  FieldStatus
	}{
		{"ab", MandatoryPresentLengthError},   // below min
		{"abc", MandatoryPresentValid},        // min boundary accepted
		{"abcdef", MandatoryPresentValid},     // max boundary accepted
		{"abcdefg", MandatoryPresentLengthError}, // above max
	}
	for _, tc := range cases {
		doc := mustParse(t, sampleInvoice(map[string]string{"BIG": "BIG*20240101*" + tc.value}))
		results := ValidateFields(doc, rs)
		if got := statusFor(results, "BIG02", 0); got != tc.want {
			t.Fatalf("value %q: expected %s, got %s", tc.value, tc.want, got)
		}
	}
}

func TestValidateFieldsLengthErrorDetail(t *testing.T) {
	doc := mustParse(t, sampleInvoice(map[string]string{"TDS": "TDS*123456789012345678901"}))
	results := ValidateFields(doc, spec.Baseline810())
	for _, fr := range results {
		if fr.Code != "TDS01" {
			continue
		}
		if fr.Status != MandatoryPresentLengthError {
			t.Fatalf("expected length error, got %s", fr.Status)
		}
		if fr.ActualLen != 21 {
			t.Fatalf("expected actual length 21, got %d", fr.ActualLen)
		}
		if !strings.Contains(fr.Detail, "21") || !strings.Contains(fr.Detail, "18") {
			t.Fatalf("detail must carry actual and expected lengths: %q", fr.Detail)
		}
		return
	}
	t.Fatalf("TDS01 result missing")
}

func TestValidateFieldsEmptyElementIsMissing(t *testing.T) {
	doc := mustParse(t, sampleInvoice(map[string]string{"BIG": "BIG*20240101*"}))
	results := ValidateFields(doc, spec.Baseline810())
	if got := statusFor(results, "BIG02", 0); got != MandatoryMissing {
		t.Fatalf("empty BIG02: expected mandatory-missing, got %s", got)
	}
}

func TestValidateFieldsPerOccurrence(t *testing.T) {
	raw := sampleInvoice(nil)
	// Second line item lacks its unit price; SE count grows by one.
	raw = strings.Replace(raw, "IT1*1*10*EA*9.99~", "IT1*1*10*EA*9.99~IT1*2*5*EA~", 1)
	raw = strings.Replace(raw, "SE*10*0001~", "SE*11*0001~", 1)
	doc := mustParse(t, raw)
	results := ValidateFields(doc, spec.Baseline810())
	if got := statusFor(results, "IT104", 0); got != MandatoryPresentValid {
		t.Fatalf("occurrence 0: expected valid, got %s", got)
	}
	if got := statusFor(results, "IT104", 1); got != MandatoryMissing {
		t.Fatalf("occurrence 1: expected mandatory-missing, got %s", got)
	}
}

func TestValidateFieldsAbsentSegment(t *testing.T) {
	doc := mustParse(t, sampleInvoice(map[string]string{
		"TDS": "",
		"SE":  "SE*9*0001",
	}))
	results := ValidateFields(doc, spec.Baseline810())
	if got := statusFor(results, "TDS01", 0); got != MandatoryMissing {
		t.Fatalf("expected mandatory-missing for absent TDS, got %s", got)
	}
}
