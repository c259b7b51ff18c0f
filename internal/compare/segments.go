// File path: internal/compare/segments.go
package compare

import (
	"fmt"

	"github.com/invoiceworks/edicheck/internal/edi"
	"github.com/invoiceworks/edicheck/internal/spec"
)

// SegmentResult marks one skeleton entry as present or missing in the parsed
// interchange. Occurrence overage is an annotation, not an invalidation.
type SegmentResult struct {
	Tag          string             `json:"tag"`
	Mandatory    bool               `json:"mandatory"`
	CompanyUsage string             `json:"company_usage,omitempty"`
	MinOccurs    int                `json:"min_occurs"`
	MaxOccurs    int                `json:"max_occurs"`
	Present      bool               `json:"present"`
	Count        int                `json:"count"`
	Status       SegmentDisposition `json:"status"`
	Annotation   string             `json:"annotation,omitempty"`
}

// CompareSegments walks the ordered skeleton and counts matching tags in the
// flat segment list, which covers both envelope headers and the transaction
// node's children.
func CompareSegments(doc *edi.Document, skeleton []spec.SegmentRule) []SegmentResult {
	counts := make(map[string]int)
	for _, seg := range doc.Segments {
		counts[seg.Tag]++
	}
	results := make([]SegmentResult, 0, len(skeleton))
	for _, entry := range skeleton {
		count := counts[entry.Tag]
		result := SegmentResult{
			Tag:          entry.Tag,
			Mandatory:    entry.Mandatory,
			CompanyUsage: entry.CompanyUsage,
			MinOccurs:    entry.MinOccurs,
			MaxOccurs:    entry.MaxOccurs,
			Present:      count > 0,
			Count:        count,
		}
		switch {
		case entry.Mandatory && count > 0:
			result.Status = SegmentMandatoryPresent
		case entry.Mandatory:
			result.Status = SegmentMandatoryMissing
		case count > 0:
			result.Status = SegmentOptionalPresent
		default:
			result.Status = SegmentOptionalMissing
		}
		if entry.MaxOccurs > 0 && count > entry.MaxOccurs {
			result.Annotation = fmt.Sprintf("%d occurrences exceed maximum %d", count, entry.MaxOccurs)
		}
		results = append(results, result)
	}
	return results
}
