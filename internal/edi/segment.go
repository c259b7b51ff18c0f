// File path: internal/edi/segment.go
package edi

import (
	"fmt"
	"strings"
)

// Segment is one tagged unit of the interchange: a tag plus its ordered
// elements. Segments of the same tag may repeat; Occurrence is the 0-based
// index among segments sharing the tag, in source order. Segments are built
// once by the tokenizer and never mutated afterwards.
type Segment struct {
	Tag        string   `json:"tag"`
	Occurrence int      `json:"occurrence"`
	Elements   []string `json:"elements"`
}

// Element returns the value at the given 1-based element position and whether
// that position exists in the segment.
func (s *Segment) Element(pos int) (string, bool) {
	if pos < 1 || pos > len(s.Elements) {
		return "", false
	}
	return s.Elements[pos-1], true
}

// FieldCode renders the conventional field tag for a position, e.g. BIG02.
func (s *Segment) FieldCode(pos int) string {
	return fmt.Sprintf("%s%02d", s.Tag, pos)
}

// Join re-assembles the segment with the given element separator. The result
// round-trips the tokenizer output byte for byte.
func (s *Segment) Join(sep byte) string {
	parts := append([]string{s.Tag}, s.Elements...)
	return strings.Join(parts, string(sep))
}
