// File path: internal/compare/validator.go
package compare

import (
	"fmt"
	"strings"

	"github.com/invoiceworks/edicheck/internal/edi"
	"github.com/invoiceworks/edicheck/internal/spec"
)

// FieldResult is one field rule checked against one segment occurrence.
// Looping segments produce one entry per occurrence rather than a collapsed
// verdict.
type FieldResult struct {
	Code       string         `json:"code"`
	Name       string         `json:"name"`
	Occurrence int            `json:"occurrence"`
	Status     FieldStatus    `json:"status"`
	Rule       spec.FieldRule `json:"rule"`
	Value      string         `json:"value,omitempty"`
	ActualLen  int            `json:"actual_len,omitempty"`
	Detail     string         `json:"detail,omitempty"`
}

// ValidateFields checks every rule of the specification against the parsed
// document. Presence and length are the checks; type conformance is only a
// length proxy in this design. Length is measured in characters of the
// trimmed element value; [min,max] is inclusive, and a zero bound means
// unconstrained on that side.
func ValidateFields(doc *edi.Document, rules *spec.RuleSet) []FieldResult {
	var results []FieldResult
	for _, rule := range rules.Rules() {
		tag, pos, err := spec.SplitCode(rule.Code)
		if err != nil {
			// RuleSet.Add already rejected malformed codes.
			continue
		}
		segments := doc.Find(tag)
		if len(segments) == 0 {
			results = append(results, FieldResult{
				Code:   rule.Code,
				Name:   rule.Name,
				Status: missingStatus(rule),
				Rule:   rule,
				Detail: fmt.Sprintf("segment %s not present", tag),
			})
			continue
		}
		for _, seg := range segments {
			results = append(results, checkOccurrence(rule, seg, pos))
		}
	}
	return results
}

func checkOccurrence(rule spec.FieldRule, seg *edi.Segment, pos int) FieldResult {
	result := FieldResult{
		Code:       rule.Code,
		Name:       rule.Name,
		Occurrence: seg.Occurrence,
		Rule:       rule,
	}
	raw, ok := seg.Element(pos)
	value := strings.TrimSpace(raw)
	if !ok || value == "" {
		result.Status = missingStatus(rule)
		result.Detail = fmt.Sprintf("element %d absent", pos)
		return result
	}
	result.Value = value
	result.ActualLen = len([]rune(value))
	if (rule.Min > 0 && result.ActualLen < rule.Min) || (rule.Max > 0 && result.ActualLen > rule.Max) {
		if rule.Mandatory {
			result.Status = MandatoryPresentLengthError
		} else {
			result.Status = OptionalPresentLengthError
		}
		result.Detail = fmt.Sprintf("length %d outside %d/%d", result.ActualLen, rule.Min, rule.Max)
		return result
	}
	if rule.Mandatory {
		result.Status = MandatoryPresentValid
	} else {
		result.Status = OptionalPresentValid
	}
	return result
}

func missingStatus(rule spec.FieldRule) FieldStatus {
	if rule.Mandatory {
		return MandatoryMissing
	}
	return OptionalMissing
}
