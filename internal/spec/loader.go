// File path: internal/spec/loader.go
package spec

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ruleDocument is the YAML companion-specification layout. Segments marked
// all_mandatory promote every listed field to mandatory; otherwise each field
// carries its own usage.
type ruleDocument struct {
	Version     string            `yaml:"version"`
	Transaction string            `yaml:"transaction"`
	Segments    []segmentDocument `yaml:"segments"`
}

type segmentDocument struct {
	Tag          string      `yaml:"tag"`
	Usage        string      `yaml:"usage"`
	CompanyUsage string      `yaml:"company_usage"`
	MinOccurs    int         `yaml:"min_occurs"`
	MaxOccurs    int         `yaml:"max_occurs"`
	AllMandatory bool        `yaml:"all_mandatory"`
	Fields       []FieldRule `yaml:"fields"`
}

var mandatoryHints = map[string]bool{
	"m": true, "mandatory": true, "required": true, "must use": true,
}

var optionalHints = map[string]bool{
	"o": true, "optional": true, "used": true, "not used": true, "conditional": true,
}

func usageMandatory(usage string) (bool, bool) {
	key := strings.ToLower(strings.TrimSpace(usage))
	if mandatoryHints[key] {
		return true, true
	}
	if optionalHints[key] {
		return false, true
	}
	return false, false
}

// LoadYAML parses a YAML rule document into a RuleSet. Segments absent from
// the document fall back to the baseline skeleton designation so the
// comparator always has a complete 810 skeleton to walk.
func LoadYAML(data []byte) (*RuleSet, error) {
	var doc ruleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidSpecificationError{Reason: fmt.Sprintf("yaml parse: %v", err)}
	}
	if len(doc.Segments) == 0 {
		return nil, &InvalidSpecificationError{Reason: "document lists no segments"}
	}

	overrides := make(map[string]SegmentRule, len(doc.Segments))
	for _, seg := range doc.Segments {
		tag := strings.ToUpper(strings.TrimSpace(seg.Tag))
		if !tagRe.MatchString(tag) {
			return nil, &InvalidSpecificationError{Reason: fmt.Sprintf("malformed segment tag %q", seg.Tag)}
		}
		mandatory, ok := usageMandatory(seg.Usage)
		if !ok {
			mandatory = seg.MinOccurs > 0
		}
		company := strings.TrimSpace(seg.CompanyUsage)
		if company == "" {
			if mandatory {
				company = "Must use"
			} else {
				company = "Used"
			}
		}
		overrides[tag] = SegmentRule{
			Tag:          tag,
			Mandatory:    mandatory,
			CompanyUsage: company,
			MinOccurs:    seg.MinOccurs,
			MaxOccurs:    seg.MaxOccurs,
			AllMandatory: seg.AllMandatory,
		}
	}

	skeleton := Skeleton810()
	known := make(map[string]bool, len(skeleton))
	for i, entry := range skeleton {
		known[entry.Tag] = true
		if override, ok := overrides[entry.Tag]; ok {
			skeleton[i] = override
		}
	}
	for _, seg := range doc.Segments {
		tag := strings.ToUpper(strings.TrimSpace(seg.Tag))
		if !known[tag] {
			known[tag] = true
			skeleton = append(skeleton, overrides[tag])
		}
	}

	rs := NewRuleSet(skeleton)
	for _, seg := range doc.Segments {
		tag := strings.ToUpper(strings.TrimSpace(seg.Tag))
		for _, field := range seg.Fields {
			rule := field
			rule.Code = strings.ToUpper(strings.TrimSpace(rule.Code))
			codeTag, _, err := SplitCode(rule.Code)
			if err != nil {
				return nil, err
			}
			if codeTag != tag {
				return nil, &InvalidSpecificationError{
					Code:   rule.Code,
					Reason: fmt.Sprintf("listed under segment %s", tag),
				}
			}
			if seg.AllMandatory {
				rule.Mandatory = true
			} else if !rule.Mandatory {
				if mandatory, ok := usageMandatory(rule.Usage); ok {
					rule.Mandatory = mandatory
				}
			}
			if rule.Usage == "" {
				if rule.Mandatory {
					rule.Usage = "Must use"
				} else {
					rule.Usage = "Used"
				}
			}
			if rule.Cardinality == "" {
				if rule.Mandatory {
					rule.Cardinality = "1/1"
				} else {
					rule.Cardinality = "0/1"
				}
			}
			if rule.Type == "" {
				rule.Type = TypeAN
			}
			if err := rs.Add(rule); err != nil {
				return nil, err
			}
		}
	}
	if rs.Len() == 0 {
		return nil, &InvalidSpecificationError{Reason: "document lists no fields"}
	}
	return rs, nil
}
