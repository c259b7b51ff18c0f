// File path: internal/spec/harvest.go
package spec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The tag group is lazy so the trailing digits are always read as the element
// position: N104 splits as N1/04, ST01 as ST/01, never N10/4 or ST0/1.
var fieldTokenRe = regexp.MustCompile(`\b([A-Z][A-Z0-9]{1,2}?)(\d{1,2})\b`)

// HarvestText scans a plain-text rule document line by line for field tokens
// like BIG01 or N1 04, classifying each by the mandatory/optional wording on
// its line. Lines without a hint default to optional. Length bounds are
// unknown to this path; harvested rules carry Min/Max 0, which the validator
// treats as unconstrained.
func HarvestText(data []byte) (*RuleSet, error) {
	rs := NewRuleSet(Skeleton810())
	seen := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		matches := fieldTokenRe.FindAllStringSubmatch(line, -1)
		if len(matches) == 0 {
			continue
		}
		mandatory, hinted := usageMandatory(classifyLine(line))
		for _, match := range matches {
			pos, err := strconv.Atoi(match[2])
			if err != nil || pos < 1 {
				continue
			}
			code := fmt.Sprintf("%s%02d", match[1], pos)
			if seen[code] {
				// Later lines may tighten an unhinted entry to mandatory.
				if hinted && mandatory {
					rule, _ := rs.Field(code)
					if !rule.Mandatory {
						rule.Mandatory = true
						rule.Usage = "Must use"
						rule.Cardinality = "1/1"
						rs.rules[code] = rule
					}
				}
				continue
			}
			seen[code] = true
			rule := FieldRule{
				Code:        code,
				Name:        code,
				Type:        TypeAN,
				Mandatory:   hinted && mandatory,
				Usage:       "Used",
				Cardinality: "0/1",
			}
			if rule.Mandatory {
				rule.Usage = "Must use"
				rule.Cardinality = "1/1"
			}
			if err := rs.Add(rule); err != nil {
				return nil, err
			}
		}
	}
	if rs.Len() == 0 {
		return nil, &InvalidSpecificationError{Reason: "no field codes found in document"}
	}
	return rs, nil
}

func classifyLine(line string) string {
	upper := strings.ToUpper(line)
	switch {
	case strings.Contains(upper, "NOT USED"):
		return "not used"
	case strings.Contains(upper, "OPTIONAL"):
		return "optional"
	case strings.Contains(upper, "MANDATORY"), strings.Contains(upper, "REQUIRED"),
		strings.Contains(upper, "MUST USE"):
		return "mandatory"
	default:
		return ""
	}
}
