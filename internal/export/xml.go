// File path: internal/export/xml.go
package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/invoiceworks/edicheck/internal/edi"
	"github.com/invoiceworks/edicheck/internal/spec"
)

// DocumentXML renders the tokenized interchange as the minimal XML echo the
// parse-edi operation returns: one element per segment, E01.. children per
// element position.
func DocumentXML(doc *edi.Document) (string, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	root := xml.StartElement{Name: xml.Name{Local: "EDI"}}
	if err := enc.EncodeToken(root); err != nil {
		return "", err
	}
	for _, seg := range doc.Segments {
		segElem := xml.StartElement{Name: xml.Name{Local: seg.Tag}}
		if err := enc.EncodeToken(segElem); err != nil {
			return "", err
		}
		for pos := 1; pos <= len(seg.Elements); pos++ {
			value, _ := seg.Element(pos)
			name := fmt.Sprintf("E%02d", pos)
			child := xml.StartElement{Name: xml.Name{Local: name}}
			if err := enc.EncodeElement(value, child); err != nil {
				return "", err
			}
		}
		if err := enc.EncodeToken(segElem.End()); err != nil {
			return "", err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RuleSetXML renders the loaded specification as the structured echo the
// parse-spec operation returns.
func RuleSetXML(rs *spec.RuleSet) (string, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	root := xml.StartElement{Name: xml.Name{Local: "Spec"}}
	if err := enc.EncodeToken(root); err != nil {
		return "", err
	}
	for _, rule := range rs.Rules() {
		field := xml.StartElement{
			Name: xml.Name{Local: "Field"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "name"}, Value: rule.Code},
				{Name: xml.Name{Local: "required"}, Value: strconv.FormatBool(rule.Mandatory)},
				{Name: xml.Name{Local: "type"}, Value: string(rule.Type)},
				{Name: xml.Name{Local: "min"}, Value: strconv.Itoa(rule.Min)},
				{Name: xml.Name{Local: "max"}, Value: strconv.Itoa(rule.Max)},
			},
		}
		if err := enc.EncodeToken(field); err != nil {
			return "", err
		}
		if err := enc.EncodeToken(field.End()); err != nil {
			return "", err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
