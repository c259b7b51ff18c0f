// File path: internal/compare/segments_test.go
package compare

import (
	"strings"
	"testing"

	"github.com/invoiceworks/edicheck/internal/spec"
)

func segmentStatus(results []SegmentResult, tag string) SegmentResult {
	for _, sr := range results {
		if sr.Tag == tag {
			return sr
		}
	}
	return SegmentResult{}
}

func TestCompareSegmentsAllPresent(t *testing.T) {
	doc := mustParse(t, sampleInvoice(nil))
	results := CompareSegments(doc, spec.Skeleton810())
	for _, tag := range []string{"ISA", "GS", "ST", "BIG", "IT1", "TDS", "CTT", "SE", "GE", "IEA"} {
		sr := segmentStatus(results, tag)
		if sr.Status != SegmentMandatoryPresent {
			t.Fatalf("%s: expected segment-mandatory-present, got %s", tag, sr.Status)
		}
	}
	if sr := segmentStatus(results, "N1"); sr.Status != SegmentOptionalPresent {
		t.Fatalf("N1: expected segment-optional-present, got %s", sr.Status)
	}
	if sr := segmentStatus(results, "DTM"); sr.Status != SegmentOptionalMissing {
		t.Fatalf("DTM: expected segment-optional-missing, got %s", sr.Status)
	}
}

func TestCompareSegmentsMandatoryMissing(t *testing.T) {
	doc := mustParse(t, sampleInvoice(map[string]string{
		"CTT": "",
		"SE":  "SE*9*0001",
	}))
	results := CompareSegments(doc, spec.Skeleton810())
	sr := segmentStatus(results, "CTT")
	if sr.Status != SegmentMandatoryMissing || sr.Present {
		t.Fatalf("CTT: expected segment-mandatory-missing, got %+v", sr)
	}
}

func TestCompareSegmentsOverageAnnotated(t *testing.T) {
	raw := sampleInvoice(nil)
	raw = strings.Replace(raw, "N4*METROPOLIS*NY*10001~", "N4*METROPOLIS*NY*10001~N4*GOTHAM*NJ*07001~", 1)
	raw = strings.Replace(raw, "SE*10*0001~", "SE*11*0001~", 1)
	doc := mustParse(t, raw)
	results := CompareSegments(doc, spec.Skeleton810())
	sr := segmentStatus(results, "N4")
	if sr.Annotation == "" {
		t.Fatalf("expected an overage annotation for N4, got %+v", sr)
	}
	// Overage alone never invalidates; the status stays a present variant.
	if sr.Status != SegmentOptionalPresent {
		t.Fatalf("N4: expected segment-optional-present, got %s", sr.Status)
	}
}
