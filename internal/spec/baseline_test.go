// File path: internal/spec/baseline_test.go
package spec

import (
	"errors"
	"testing"
)

func TestBaseline810Table(t *testing.T) {
	rs := Baseline810()
	if rs.Len() == 0 {
		t.Fatalf("baseline table is empty")
	}
	big02, ok := rs.Field("BIG02")
	if !ok || !big02.Mandatory {
		t.Fatalf("BIG02 must be a mandatory rule: %+v", big02)
	}
	tds01, ok := rs.Field("TDS01")
	if !ok {
		t.Fatalf("TDS01 missing from baseline")
	}
	if tds01.Max != 18 || !tds01.Mandatory || tds01.Type != TypeN2 {
		t.Fatalf("unexpected TDS01 rule: %+v", tds01)
	}
	if isa02, _ := rs.Field("ISA02"); isa02.Mandatory {
		t.Fatalf("ISA02 is informational and must stay optional")
	}
}

func TestSkeleton810Designations(t *testing.T) {
	skeleton := Skeleton810()
	byTag := make(map[string]SegmentRule, len(skeleton))
	for _, entry := range skeleton {
		byTag[entry.Tag] = entry
	}
	for _, tag := range []string{"ISA", "GS", "ST", "BIG", "IT1", "TDS", "CTT", "SE", "GE", "IEA"} {
		if !byTag[tag].Mandatory {
			t.Fatalf("%s must be mandatory in the 810 skeleton", tag)
		}
	}
	n1 := byTag["N1"]
	if n1.Mandatory || n1.CompanyUsage != "Must use" {
		t.Fatalf("N1 should be X12-optional but company-required: %+v", n1)
	}
}

func TestSplitCode(t *testing.T) {
	cases := []struct {
		code string
		tag  string
		pos  int
	}{
		{"BIG02", "BIG", 2},
		{"N101", "N1", 1},
		{"ISA16", "ISA", 16},
	}
	for _, tc := range cases {
		tag, pos, err := SplitCode(tc.code)
		if err != nil {
			t.Fatalf("%s: %v", tc.code, err)
		}
		if tag != tc.tag || pos != tc.pos {
			t.Fatalf("%s: got %s/%d", tc.code, tag, pos)
		}
	}
	for _, bad := range []string{"B1", "BIGXX", "bigfieldcode01", "BIG0"} {
		if _, _, err := SplitCode(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestRuleSetRejectsDuplicates(t *testing.T) {
	rs := NewRuleSet(nil)
	rule := FieldRule{Code: "BIG01", Name: "Invoice Date", Type: TypeDT, Min: 8, Max: 8, Mandatory: true}
	if err := rs.Add(rule); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	err := rs.Add(rule)
	if err == nil {
		t.Fatalf("duplicate code must be rejected")
	}
	var specErr *InvalidSpecificationError
	if !errors.As(err, &specErr) {
		t.Fatalf("expected InvalidSpecificationError, got %v", err)
	}
}

func TestRuleSetRejectsInvertedRange(t *testing.T) {
	rs := NewRuleSet(nil)
	err := rs.Add(FieldRule{Code: "BIG01", Min: 9, Max: 8})
	if err == nil {
		t.Fatalf("min greater than max must be rejected")
	}
}
