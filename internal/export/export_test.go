// File path: internal/export/export_test.go
package export

import (
	"strings"
	"testing"

	"github.com/invoiceworks/edicheck/internal/compare"
	"github.com/invoiceworks/edicheck/internal/edi"
	"github.com/invoiceworks/edicheck/internal/spec"
)

const sampleEDI = "ISA*00*          *00*          *ZZ*SENDERID       *ZZ*RECEIVERID     *240101*1200*U*00401*000000001*0*P*>~" +
	"GS*IN*SENDER*RECEIVER*20240101*1200*1*X*004010~" +
	"ST*810*0001~" +
	"BIG*20240101*INV100~" +
	"N1*ST*ACME & SONS <LTD>~" +
	"IT1*1*10*EA*9.99~" +
	"TDS*9990~" +
	"CTT*1~" +
	"SE*7*0001~" +
	"GE*1*1~" +
	"IEA*1*000000001~"

func sampleReport(t *testing.T) *compare.Report {
	t.Helper()
	doc, err := edi.Parse([]byte(sampleEDI))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return compare.BuildReport(doc, spec.Baseline810())
}

func TestReportCSV(t *testing.T) {
	data, err := ReportCSV(sampleReport(t))
	if err != nil {
		t.Fatalf("csv export failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if lines[0] != "Field Code,Field Name,Status,Cardinality,Type,Length,In EDI,Usage" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if len(lines) < 10 {
		t.Fatalf("expected one row per field result, got %d lines", len(lines))
	}
	found := false
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "BIG02,") {
			found = true
			if !strings.Contains(line, "mandatory-present-valid") {
				t.Fatalf("BIG02 row must carry its status: %q", line)
			}
			if !strings.Contains(line, "Yes") {
				t.Fatalf("BIG02 row must be marked present: %q", line)
			}
		}
	}
	if !found {
		t.Fatalf("no BIG02 row in csv output")
	}
}

func TestReportJSONStable(t *testing.T) {
	report := sampleReport(t)
	first, err := ReportJSON(report)
	if err != nil {
		t.Fatalf("json export failed: %v", err)
	}
	second, err := ReportJSON(report)
	if err != nil {
		t.Fatalf("json export failed: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("json export must be byte-stable")
	}
	if !strings.Contains(string(first), `"is_810": true`) {
		t.Fatalf("json export must carry the verdict: %s", first)
	}
}

func TestDocumentXML(t *testing.T) {
	doc, err := edi.Parse([]byte(sampleEDI))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	out, err := DocumentXML(doc)
	if err != nil {
		t.Fatalf("xml export failed: %v", err)
	}
	if !strings.Contains(out, "<BIG>") {
		t.Fatalf("missing BIG segment element: %s", out)
	}
	if !strings.Contains(out, "<E02>INV100</E02>") {
		t.Fatalf("missing invoice number element: %s", out)
	}
	if !strings.Contains(out, "ACME &amp; SONS &lt;LTD&gt;") {
		t.Fatalf("xml special characters must be escaped: %s", out)
	}
}

func TestRuleSetXML(t *testing.T) {
	out, err := RuleSetXML(spec.Baseline810())
	if err != nil {
		t.Fatalf("xml export failed: %v", err)
	}
	if !strings.Contains(out, `<Field name="BIG02" required="true" type="AN"`) {
		t.Fatalf("missing BIG02 field entry: %s", out)
	}
	if !strings.Contains(out, "<Spec>") {
		t.Fatalf("missing root element: %s", out)
	}
}
