// File path: internal/edi/delimiters.go
package edi

// The ISA header is fixed-width: 105 characters of tag, separators and
// fixed-length elements, followed by the segment terminator.
const (
	isaSegmentLen = 105
	minISALen     = isaSegmentLen + 1

	elementSepPos   = 3
	componentSepPos = 104
	segmentTermPos  = 105
)

// Delimiters holds the three separator characters derived from the ISA
// header: segment terminator, element separator and component-element
// separator (ISA16).
type Delimiters struct {
	Segment   byte `json:"segment"`
	Element   byte `json:"element"`
	Component byte `json:"component"`
}

// DetectDelimiters reads the fixed positions of the ISA header. There is no
// heuristic fallback: an input whose ISA does not carry its separators at the
// standard offsets is rejected as malformed.
func DetectDelimiters(data []byte) (Delimiters, error) {
	if len(data) < minISALen {
		return Delimiters{}, &MalformedEnvelopeError{
			Tag:    "ISA",
			Reason: "buffer shorter than the fixed ISA header",
		}
	}
	if string(data[:3]) != "ISA" {
		return Delimiters{}, &MalformedEnvelopeError{
			Tag:    "ISA",
			Reason: "input does not start with an ISA segment",
		}
	}
	return Delimiters{
		Segment:   data[segmentTermPos],
		Element:   data[elementSepPos],
		Component: data[componentSepPos],
	}, nil
}
