// File path: internal/edi/envelope.go
package edi

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeKind identifies the envelope level a node represents.
type NodeKind uint

const (
	UnknownNode NodeKind = iota
	InterchangeNode
	GroupNode
	TransactionNode
)

func (k NodeKind) String() string {
	switch k {
	case InterchangeNode:
		return "Interchange"
	case GroupNode:
		return "Group"
	case TransactionNode:
		return "TransactionSet"
	default:
		return ""
	}
}

func (k NodeKind) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(k.String())), nil
}

// Node is one level of the ISA→GS→ST nesting. Segments holds the direct
// children in source order; for a transaction node that is everything between
// ST and SE, loop segments included, as a flat ordered list addressed by
// occurrence index. Notes records soft invariant violations such as trailer
// control-number mismatches.
type Node struct {
	Kind     NodeKind   `json:"kind"`
	Header   *Segment   `json:"header,omitempty"`
	Trailer  *Segment   `json:"trailer,omitempty"`
	Segments []*Segment `json:"segments,omitempty"`
	Children []*Node    `json:"children,omitempty"`
	Notes    []string   `json:"notes,omitempty"`
}

// Document is the parsed interchange: the flat segment sequence plus the
// nested envelope built over it.
type Document struct {
	Delimiters   Delimiters `json:"delimiters"`
	Segments     []*Segment `json:"segments"`
	Interchanges []*Node    `json:"interchanges,omitempty"`
	Notes        []string   `json:"notes,omitempty"`
}

// Parse runs delimiter detection, tokenizing and envelope building in one
// pass. On a structural error the partially built document is still returned
// so callers can report what did parse.
func Parse(data []byte) (*Document, error) {
	d, err := DetectDelimiters(data)
	if err != nil {
		return nil, err
	}
	segments := Tokenize(data, d)
	return BuildEnvelope(segments, d)
}

// BuildEnvelope nests the flat segment sequence by walking the envelope tags.
// An unmatched open/close pair stops the build and is returned as a
// MalformedEnvelopeError together with everything nested so far.
func BuildEnvelope(segments []*Segment, d Delimiters) (*Document, error) {
	doc := &Document{Delimiters: d, Segments: segments}
	var curISA, curGS, curST *Node

	fail := func(i int, tag, reason string) error {
		return &MalformedEnvelopeError{Tag: tag, Position: i, Reason: reason}
	}

	for i, seg := range segments {
		switch seg.Tag {
		case "ISA":
			if curISA != nil {
				return doc, fail(i, "ISA", "interchange opened before previous IEA")
			}
			curISA = &Node{Kind: InterchangeNode, Header: seg}
			doc.Interchanges = append(doc.Interchanges, curISA)
		case "IEA":
			if curISA == nil {
				return doc, fail(i, "IEA", "trailer without an open interchange")
			}
			if curST != nil {
				return doc, fail(i, "IEA", "transaction set still open")
			}
			if curGS != nil {
				return doc, fail(i, "IEA", "functional group still open")
			}
			curISA.Trailer = seg
			checkInterchangeTrailer(doc, curISA)
			curISA = nil
		case "GS":
			if curISA == nil {
				return doc, fail(i, "GS", "functional group outside an interchange")
			}
			if curGS != nil {
				return doc, fail(i, "GS", "group opened before previous GE")
			}
			curGS = &Node{Kind: GroupNode, Header: seg}
			curISA.Children = append(curISA.Children, curGS)
		case "GE":
			if curGS == nil {
				return doc, fail(i, "GE", "trailer without an open group")
			}
			if curST != nil {
				return doc, fail(i, "GE", "transaction set still open")
			}
			curGS.Trailer = seg
			checkGroupTrailer(doc, curGS)
			curGS = nil
		case "ST":
			if curGS == nil {
				return doc, fail(i, "ST", "transaction set outside a functional group")
			}
			if curST != nil {
				return doc, fail(i, "ST", "transaction set opened before previous SE")
			}
			curST = &Node{Kind: TransactionNode, Header: seg}
			curGS.Children = append(curGS.Children, curST)
		case "SE":
			if curST == nil {
				return doc, fail(i, "SE", "trailer without an open transaction set")
			}
			curST.Trailer = seg
			checkTransactionTrailer(doc, curST)
			curST = nil
		default:
			switch {
			case curST != nil:
				curST.Segments = append(curST.Segments, seg)
			case curGS != nil:
				curGS.Segments = append(curGS.Segments, seg)
			case curISA != nil:
				curISA.Segments = append(curISA.Segments, seg)
			}
		}
	}

	if curST != nil {
		return doc, fail(len(segments), "ST", "transaction set never closed by SE")
	}
	if curGS != nil {
		return doc, fail(len(segments), "GS", "functional group never closed by GE")
	}
	if curISA != nil {
		return doc, fail(len(segments), "ISA", "interchange never closed by IEA")
	}
	return doc, nil
}

// Transactions returns every transaction node across all interchanges, in
// source order.
func (doc *Document) Transactions() []*Node {
	var out []*Node
	for _, isa := range doc.Interchanges {
		for _, gs := range isa.Children {
			for _, st := range gs.Children {
				if st.Kind == TransactionNode {
					out = append(out, st)
				}
			}
		}
	}
	return out
}

// TransactionSetID reports ST01 of the first transaction set, if any.
func (doc *Document) TransactionSetID() string {
	for _, st := range doc.Transactions() {
		if st.Header != nil {
			if v, ok := st.Header.Element(1); ok {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

// FieldValues collects the conventional field code of every populated element
// across the flat segment list, keeping first-occurrence values and returning
// the codes in source order without duplicates.
func (doc *Document) FieldValues() ([]string, map[string]string) {
	var codes []string
	values := make(map[string]string)
	for _, seg := range doc.Segments {
		for pos := 1; pos <= len(seg.Elements); pos++ {
			raw, _ := seg.Element(pos)
			if strings.TrimSpace(raw) == "" {
				continue
			}
			code := seg.FieldCode(pos)
			if _, ok := values[code]; !ok {
				codes = append(codes, code)
				values[code] = raw
			}
		}
	}
	return codes, values
}

// Find returns every occurrence of the tag in the flat segment list.
func (doc *Document) Find(tag string) []*Segment {
	var out []*Segment
	for _, seg := range doc.Segments {
		if seg.Tag == tag {
			out = append(out, seg)
		}
	}
	return out
}

func note(doc *Document, n *Node, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	n.Notes = append(n.Notes, msg)
	doc.Notes = append(doc.Notes, msg)
}

// Trailer control numbers and counts must echo their headers. Violations are
// soft: recorded as notes, never fatal.

func checkTransactionTrailer(doc *Document, st *Node) {
	header, trailer := st.Header, st.Trailer
	if header == nil || trailer == nil {
		return
	}
	want := len(st.Segments) + 2 // ST and SE included in the count
	if v, ok := trailer.Element(1); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err != nil || n != want {
			note(doc, st, "SE01 segment count %q does not match %d segments in transaction set", v, want)
		}
	}
	hc, _ := header.Element(2)
	tc, _ := trailer.Element(2)
	if strings.TrimSpace(hc) != strings.TrimSpace(tc) {
		note(doc, st, "SE02 control number %q does not match ST02 %q", tc, hc)
	}
}

func checkGroupTrailer(doc *Document, gs *Node) {
	header, trailer := gs.Header, gs.Trailer
	if header == nil || trailer == nil {
		return
	}
	if v, ok := trailer.Element(1); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err != nil || n != len(gs.Children) {
			note(doc, gs, "GE01 transaction count %q does not match %d transaction sets", v, len(gs.Children))
		}
	}
	hc, _ := header.Element(6)
	tc, _ := trailer.Element(2)
	if strings.TrimSpace(hc) != strings.TrimSpace(tc) {
		note(doc, gs, "GE02 control number %q does not match GS06 %q", tc, hc)
	}
}

func checkInterchangeTrailer(doc *Document, isa *Node) {
	header, trailer := isa.Header, isa.Trailer
	if header == nil || trailer == nil {
		return
	}
	if v, ok := trailer.Element(1); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err != nil || n != len(isa.Children) {
			note(doc, isa, "IEA01 group count %q does not match %d functional groups", v, len(isa.Children))
		}
	}
	hc, _ := header.Element(13)
	tc, _ := trailer.Element(2)
	if strings.TrimSpace(hc) != strings.TrimSpace(tc) {
		note(doc, isa, "IEA02 control number %q does not match ISA13 %q", tc, hc)
	}
}
