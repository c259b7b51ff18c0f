// File path: internal/spec/rule.go
package spec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DataType is the X12 element type tag carried by a field rule.
type DataType string

const (
	TypeID DataType = "ID" // identifier from a code list
	TypeAN DataType = "AN" // alphanumeric string
	TypeDT DataType = "DT" // date
	TypeTM DataType = "TM" // time
	TypeN0 DataType = "N0" // numeric, no implied decimals
	TypeN2 DataType = "N2" // numeric, two implied decimals
	TypeR  DataType = "R"  // decimal number
)

// FieldRule is one row of the companion specification: which element must or
// may appear, and within what length bounds. Rules are immutable once loaded.
type FieldRule struct {
	Code        string   `json:"code" yaml:"code"`
	Name        string   `json:"name" yaml:"name"`
	Usage       string   `json:"usage" yaml:"usage"`
	Mandatory   bool     `json:"mandatory" yaml:"mandatory"`
	Cardinality string   `json:"cardinality" yaml:"cardinality"`
	Type        DataType `json:"type" yaml:"type"`
	Min         int      `json:"min" yaml:"min"`
	Max         int      `json:"max" yaml:"max"`
}

// SegmentRule is one entry of the 810 segment skeleton: the X12 designation
// plus the trading-partner usage override and occurrence bounds.
type SegmentRule struct {
	Tag          string `json:"tag" yaml:"tag"`
	Mandatory    bool   `json:"mandatory" yaml:"mandatory"`
	CompanyUsage string `json:"company_usage" yaml:"company_usage"`
	MinOccurs    int    `json:"min_occurs" yaml:"min_occurs"`
	MaxOccurs    int    `json:"max_occurs" yaml:"max_occurs"`
	AllMandatory bool   `json:"all_mandatory,omitempty" yaml:"all_mandatory"`
}

// InvalidSpecificationError reports a malformed rule document. It aborts the
// compare pipeline: without rules there is nothing to check against.
type InvalidSpecificationError struct {
	Code   string
	Reason string
}

func (e *InvalidSpecificationError) Error() string {
	if e.Code == "" {
		return "invalid specification: " + e.Reason
	}
	return fmt.Sprintf("invalid specification: field %s: %s", e.Code, e.Reason)
}

var tagRe = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,2}$`)

// SplitCode splits a field code like BIG02 or N101 into its segment tag and
// 1-based element position. The last two characters are always the position.
func SplitCode(code string) (string, int, error) {
	if len(code) < 4 || len(code) > 5 {
		return "", 0, &InvalidSpecificationError{Code: code, Reason: "field code must be a segment tag plus two digits"}
	}
	tag, digits := code[:len(code)-2], code[len(code)-2:]
	pos, err := strconv.Atoi(digits)
	if err != nil || pos < 1 {
		return "", 0, &InvalidSpecificationError{Code: code, Reason: "field code must end in a two-digit element position"}
	}
	if !tagRe.MatchString(tag) {
		return "", 0, &InvalidSpecificationError{Code: code, Reason: "malformed segment tag"}
	}
	return tag, pos, nil
}

// RuleSet is the loaded specification: field rules keyed by globally unique
// code, in document order, plus the segment skeleton to compare against.
type RuleSet struct {
	rules    map[string]FieldRule
	order    []string
	skeleton []SegmentRule
}

func NewRuleSet(skeleton []SegmentRule) *RuleSet {
	return &RuleSet{
		rules:    make(map[string]FieldRule),
		skeleton: skeleton,
	}
}

// Add validates and records one rule. Duplicate codes and inverted length
// ranges are InvalidSpecification errors, never silent overwrites.
func (rs *RuleSet) Add(rule FieldRule) error {
	rule.Code = strings.ToUpper(strings.TrimSpace(rule.Code))
	if _, _, err := SplitCode(rule.Code); err != nil {
		return err
	}
	if rule.Max > 0 && rule.Min > rule.Max {
		return &InvalidSpecificationError{
			Code:   rule.Code,
			Reason: fmt.Sprintf("minimum length %d greater than maximum %d", rule.Min, rule.Max),
		}
	}
	if _, exists := rs.rules[rule.Code]; exists {
		return &InvalidSpecificationError{Code: rule.Code, Reason: "duplicate field code"}
	}
	rs.rules[rule.Code] = rule
	rs.order = append(rs.order, rule.Code)
	return nil
}

// Field looks up the rule for a code.
func (rs *RuleSet) Field(code string) (FieldRule, bool) {
	rule, ok := rs.rules[code]
	return rule, ok
}

// Codes returns the field codes in document order.
func (rs *RuleSet) Codes() []string {
	return append([]string(nil), rs.order...)
}

// Rules returns every rule in document order.
func (rs *RuleSet) Rules() []FieldRule {
	out := make([]FieldRule, 0, len(rs.order))
	for _, code := range rs.order {
		out = append(out, rs.rules[code])
	}
	return out
}

// Len reports how many field rules are loaded.
func (rs *RuleSet) Len() int { return len(rs.order) }

// Skeleton returns the ordered segment skeleton for the comparator.
func (rs *RuleSet) Skeleton() []SegmentRule {
	return append([]SegmentRule(nil), rs.skeleton...)
}

// StatusMap renders the field code → mandatory flag view used by the
// parse-spec response.
func (rs *RuleSet) StatusMap() map[string]bool {
	out := make(map[string]bool, len(rs.order))
	for code, rule := range rs.rules {
		out[code] = rule.Mandatory
	}
	return out
}
