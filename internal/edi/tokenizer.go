// File path: internal/edi/tokenizer.go
package edi

import "strings"

// Tokenize splits the buffer into ordered segments using the detected
// delimiters. Trailing whitespace and newlines are trimmed from each raw
// segment; empty remainders are discarded. Separator characters embedded in
// free-text values are not escaped or recovered: such inputs still tokenize,
// and the shifted element counts surface later as field discrepancies.
func Tokenize(data []byte, d Delimiters) []*Segment {
	raw := strings.Split(string(data), string(d.Segment))
	segments := make([]*Segment, 0, len(raw))
	seen := make(map[string]int)
	for _, chunk := range raw {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		parts := strings.Split(chunk, string(d.Element))
		tag := strings.TrimSpace(parts[0])
		if tag == "" {
			continue
		}
		seg := &Segment{
			Tag:        tag,
			Occurrence: seen[tag],
			Elements:   parts[1:],
		}
		seen[tag]++
		segments = append(segments, seg)
	}
	return segments
}
