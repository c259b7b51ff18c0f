// File path: internal/spec/harvest_test.go
package spec

import "testing"

func TestHarvestText(t *testing.T) {
	doc := `810 Invoice Companion Guide
BIG01 Invoice Date Mandatory
BIG02 Invoice Number Mandatory
BIG04 Purchase Order Number Optional
REF01 REF02 Reference fields
`
	rs, err := HarvestText([]byte(doc))
	if err != nil {
		t.Fatalf("harvest failed: %v", err)
	}
	big01, ok := rs.Field("BIG01")
	if !ok || !big01.Mandatory {
		t.Fatalf("BIG01 should be harvested mandatory: %+v", big01)
	}
	big04, _ := rs.Field("BIG04")
	if big04.Mandatory {
		t.Fatalf("BIG04 should be optional")
	}
	ref02, ok := rs.Field("REF02")
	if !ok || ref02.Mandatory {
		t.Fatalf("unhinted REF02 should default to optional: %+v", ref02)
	}
	if big01.Min != 0 || big01.Max != 0 {
		t.Fatalf("harvested rules carry no length bounds: %+v", big01)
	}
}

func TestHarvestTextPromotesToMandatory(t *testing.T) {
	doc := `REF01 appears here first
REF01 is Required on all invoices
`
	rs, err := HarvestText([]byte(doc))
	if err != nil {
		t.Fatalf("harvest failed: %v", err)
	}
	ref01, _ := rs.Field("REF01")
	if !ref01.Mandatory {
		t.Fatalf("later mandatory hint must promote REF01")
	}
}

func TestHarvestTextSingleDigitPosition(t *testing.T) {
	rs, err := HarvestText([]byte("BIG1 Invoice Date Mandatory"))
	if err != nil {
		t.Fatalf("harvest failed: %v", err)
	}
	if _, ok := rs.Field("BIG01"); !ok {
		t.Fatalf("single-digit positions must normalize to two digits")
	}
}

func TestHarvestTextTagsEndingInDigits(t *testing.T) {
	// Positions starting in 0 and the N1 family must split tag/position on
	// the last two digits, not on the longest tag prefix.
	doc := `ST01 Transaction Set Identifier Mandatory
N104 Identification Code Mandatory
IT102 Quantity Invoiced Mandatory
GS04 Date Mandatory
`
	rs, err := HarvestText([]byte(doc))
	if err != nil {
		t.Fatalf("harvest failed: %v", err)
	}
	for _, code := range []string{"ST01", "N104", "IT102", "GS04"} {
		rule, ok := rs.Field(code)
		if !ok || !rule.Mandatory {
			t.Fatalf("%s should be harvested mandatory: %+v (have %v)", code, rule, rs.Codes())
		}
	}
	for _, bogus := range []string{"ST001", "N1004", "IT1002", "GS004"} {
		if _, ok := rs.Field(bogus); ok {
			t.Fatalf("bogus code %s must not be harvested", bogus)
		}
	}
}

func TestHarvestTextEmpty(t *testing.T) {
	if _, err := HarvestText([]byte("no field codes here")); err == nil {
		t.Fatalf("expected error when nothing is harvested")
	}
}
