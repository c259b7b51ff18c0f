// File path: internal/edi/errors.go
package edi

import "fmt"

// MalformedEnvelopeError reports a structural failure while detecting
// delimiters or nesting the envelope. Partial parse output may still be
// available alongside it.
type MalformedEnvelopeError struct {
	Tag      string
	Position int
	Reason   string
}

func (e *MalformedEnvelopeError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("malformed envelope at segment %d: %s", e.Position, e.Reason)
	}
	return fmt.Sprintf("malformed envelope: %s at segment %d: %s", e.Tag, e.Position, e.Reason)
}
