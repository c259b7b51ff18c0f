// File path: internal/analysis/analyzer.go
package analysis

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/invoiceworks/edicheck/internal/compare"
)

// Analyzer scores a comparison report and derives compliance findings. All of
// its output is deterministic: the same report always produces the same
// assessment.
type Analyzer struct {
	critical   map[string]string
	important  map[string]string
	control    map[string]string
	categories map[string][]string
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		critical: map[string]string{
			"ST01":  "Transaction Set Identifier (must be 810)",
			"ST02":  "Transaction Set Control Number",
			"BIG01": "Invoice Date",
			"BIG02": "Invoice Number",
			"SE01":  "Number of Included Segments",
			"SE02":  "Transaction Set Control Number",
			"CTT01": "Number of Line Items",
			"TDS01": "Total Invoice Amount",
		},
		important: map[string]string{
			"N101":  "Entity Identifier Code",
			"N102":  "Name",
			"N301":  "Address Information",
			"N401":  "City Name",
			"N402":  "State or Province Code",
			"N403":  "Postal Code",
			"IT102": "Quantity Invoiced",
			"IT103": "Unit or Basis for Measurement Code",
			"IT104": "Unit Price",
			"ITD01": "Terms Type Code",
			"ITD03": "Terms Discount Percent",
			"ITD07": "Terms Net Days",
			"REF01": "Reference Identification Qualifier",
			"REF02": "Reference Identification",
		},
		control: map[string]string{
			"ISA01": "Authorization Information Qualifier",
			"ISA06": "Interchange Sender ID",
			"ISA08": "Interchange Receiver ID",
			"ISA09": "Interchange Date",
			"ISA13": "Interchange Control Number",
			"GS01":  "Functional Identifier Code",
			"GS02":  "Application Sender's Code",
			"GS03":  "Application Receiver's Code",
			"GS04":  "Date",
			"GS06":  "Group Control Number",
			"GE01":  "Number of Transaction Sets Included",
			"GE02":  "Group Control Number",
			"IEA01": "Number of Included Functional Groups",
			"IEA02": "Interchange Control Number",
		},
		categories: map[string][]string{
			"invoice_integrity":    {"ST01", "ST02", "BIG01", "BIG02", "TDS01", "SE01", "SE02"},
			"party_identification": {"N101", "N102", "N301", "N401", "N402", "N403"},
			"item_details":         {"IT102", "IT103", "IT104", "CTT01"},
			"financial_totals":     {"TDS01", "CTT01"},
			"payment_terms":        {"ITD01", "ITD03", "ITD07"},
			"control_structure":    {"ISA13", "GS06", "ST02", "SE02"},
			"reference_data":       {"REF01", "REF02", "BIG03", "BIG04"},
		},
	}
}

// Compliance is the overall score breakdown.
type Compliance struct {
	Score               float64 `json:"score"`
	Status              string  `json:"status"`
	MandatoryCompletion string  `json:"mandatory_completion"`
	OptionalFieldsUsed  int     `json:"optional_fields_used"`
	LengthErrors        int     `json:"length_errors"`
}

// Issue is one compliance finding that needs attention.
type Issue struct {
	Type        string `json:"type"`
	Field       string `json:"field"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Impact      string `json:"impact"`
}

// BusinessImpact estimates how the findings affect processing.
type BusinessImpact struct {
	RiskLevel            string   `json:"risk_level"`
	ImpactScore          int      `json:"impact_score"`
	Factors              []string `json:"factors"`
	ProcessingLikelihood string   `json:"processing_likelihood"`
}

// Recommendation is one actionable follow-up.
type Recommendation struct {
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// CategoryStat is field completeness within one business category.
type CategoryStat struct {
	Present    int     `json:"present"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ValidationSummary is the concise count view.
type ValidationSummary struct {
	TotalFieldsValidated int `json:"total_fields_validated"`
	MandatoryPresent     int `json:"mandatory_present"`
	MandatoryMissing     int `json:"mandatory_missing"`
	OptionalPresent      int `json:"optional_present"`
	OptionalMissing      int `json:"optional_missing"`
	ValidationErrors     int `json:"validation_errors"`
	AdditionalFields     int `json:"additional_fields"`
}

// Assessment is the full analyzer output.
type Assessment struct {
	Compliance           Compliance              `json:"overall_compliance"`
	CriticalIssues       []Issue                 `json:"critical_issues"`
	BusinessImpact       BusinessImpact          `json:"business_impact"`
	Recommendations      []Recommendation        `json:"recommendations"`
	SegmentDistribution  map[string]int          `json:"segment_distribution"`
	CategoryCompleteness map[string]CategoryStat `json:"category_completeness"`
	ValidationSummary    ValidationSummary       `json:"validation_summary"`
}

var (
	ccyymmddRe = regexp.MustCompile(`^\d{8}$`)
	yymmddRe   = regexp.MustCompile(`^\d{6}$`)
	fieldSegRe = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,2}`)
)

// Analyze derives the assessment from a built report.
func (a *Analyzer) Analyze(report *compare.Report) *Assessment {
	present := presentSet(report)
	mandatoryPresent := 0
	for _, code := range report.MandatoryFields {
		if present[code] {
			mandatoryPresent++
		}
	}
	optionalPresent := 0
	for _, code := range report.OptionalFields {
		if present[code] {
			optionalPresent++
		}
	}

	assessment := &Assessment{
		Compliance:           a.score(report, mandatoryPresent, optionalPresent),
		CriticalIssues:       a.issues(report),
		SegmentDistribution:  segmentDistribution(report.PresentFields),
		CategoryCompleteness: a.categoryCompleteness(present),
		ValidationSummary: ValidationSummary{
			TotalFieldsValidated: len(report.MandatoryFields) + len(report.OptionalFields),
			MandatoryPresent:     mandatoryPresent,
			MandatoryMissing:     len(report.MissingMandatory),
			OptionalPresent:      optionalPresent,
			OptionalMissing:      len(report.OptionalFields) - optionalPresent,
			ValidationErrors:     len(report.LengthErrors),
			AdditionalFields:     len(report.AdditionalFields),
		},
	}
	assessment.BusinessImpact = a.impact(report)
	assessment.Recommendations = a.recommendations(report, optionalPresent)
	return assessment
}

func presentSet(report *compare.Report) map[string]bool {
	present := make(map[string]bool)
	for _, fr := range report.Fields {
		if fr.Status.Present() {
			present[fr.Code] = true
		}
	}
	return present
}

func (a *Analyzer) score(report *compare.Report, mandatoryPresent, optionalPresent int) Compliance {
	total := len(report.MandatoryFields)
	score := 100.0
	if total > 0 {
		score = float64(mandatoryPresent) / float64(total) * 100
	}
	penalty := math.Min(float64(len(report.LengthErrors))*5, 25)
	final := math.Max(score-penalty, 0)
	status := "CRITICAL_ISSUES"
	switch {
	case final >= 95:
		status = "EXCELLENT"
	case final >= 85:
		status = "GOOD"
	case final >= 70:
		status = "NEEDS_IMPROVEMENT"
	}
	return Compliance{
		Score:               math.Round(final*10) / 10,
		Status:              status,
		MandatoryCompletion: fmt.Sprintf("%d/%d", mandatoryPresent, total),
		OptionalFieldsUsed:  optionalPresent,
		LengthErrors:        len(report.LengthErrors),
	}
}

func (a *Analyzer) issues(report *compare.Report) []Issue {
	var issues []Issue
	for _, code := range report.MissingMandatory {
		switch {
		case a.critical[code] != "":
			issues = append(issues, Issue{
				Type:        "MISSING_CRITICAL_FIELD",
				Field:       code,
				Description: "Missing critical field: " + a.critical[code],
				Severity:    "CRITICAL",
				Impact:      "Document will likely be rejected by trading partner",
			})
		case a.important[code] != "":
			issues = append(issues, Issue{
				Type:        "MISSING_IMPORTANT_FIELD",
				Field:       code,
				Description: "Missing important field: " + a.important[code],
				Severity:    "HIGH",
				Impact:      "May cause processing delays or issues",
			})
		case a.control[code] != "":
			issues = append(issues, Issue{
				Type:        "MISSING_CONTROL_FIELD",
				Field:       code,
				Description: "Missing control field: " + a.control[code],
				Severity:    "MEDIUM",
				Impact:      "May affect document routing or validation",
			})
		}
	}
	for _, fr := range report.Fields {
		if !fr.Status.LengthError() {
			continue
		}
		detail := fmt.Sprintf("%s: %s", fr.Code, fr.Detail)
		switch {
		case a.critical[fr.Code] != "":
			issues = append(issues, Issue{
				Type:        "CRITICAL_LENGTH_ERROR",
				Field:       fr.Code,
				Description: "Length error in critical field: " + detail,
				Severity:    "CRITICAL",
				Impact:      "Will likely cause processing errors",
			})
		case a.important[fr.Code] != "":
			issues = append(issues, Issue{
				Type:        "IMPORTANT_LENGTH_ERROR",
				Field:       fr.Code,
				Description: "Length error in important field: " + detail,
				Severity:    "HIGH",
				Impact:      "May cause processing issues",
			})
		case a.control[fr.Code] != "":
			issues = append(issues, Issue{
				Type:        "CONTROL_LENGTH_ERROR",
				Field:       fr.Code,
				Description: "Length error in control field: " + detail,
				Severity:    "MEDIUM",
				Impact:      "May affect document validation",
			})
		}
	}
	issues = append(issues, a.businessRuleIssues(report)...)
	return issues
}

func (a *Analyzer) businessRuleIssues(report *compare.Report) []Issue {
	var issues []Issue
	if st01 := fieldValue(report, "ST01"); st01 != "" && st01 != "810" {
		issues = append(issues, Issue{
			Type:        "INVALID_TRANSACTION_TYPE",
			Field:       "ST01",
			Description: fmt.Sprintf("Invalid transaction type: %s. Must be 810 for invoices.", st01),
			Severity:    "CRITICAL",
			Impact:      "Document will be rejected",
		})
	}
	for _, code := range []string{"BIG01", "GS04", "ISA09"} {
		value := fieldValue(report, code)
		if value == "" {
			continue
		}
		shape := ccyymmddRe
		if code == "ISA09" {
			shape = yymmddRe
		}
		if !shape.MatchString(value) {
			issues = append(issues, Issue{
				Type:        "INVALID_DATE_FORMAT",
				Field:       code,
				Description: fmt.Sprintf("Invalid date format in %s: %s", code, value),
				Severity:    "MEDIUM",
				Impact:      "May cause processing delays",
			})
		}
	}
	return issues
}

func (a *Analyzer) impact(report *compare.Report) BusinessImpact {
	score := 0
	var factors []string
	if n := len(report.MissingMandatory); n > 0 {
		score += n * 10
		factors = append(factors, fmt.Sprintf("%d mandatory fields missing", n))
	}
	if n := len(report.LengthErrors); n > 0 {
		score += n * 5
		factors = append(factors, fmt.Sprintf("%d field length violations", n))
	}
	risk := "CRITICAL"
	switch {
	case score < 20:
		risk = "LOW"
	case score < 50:
		risk = "MEDIUM"
	case score < 100:
		risk = "HIGH"
	}
	return BusinessImpact{
		RiskLevel:            risk,
		ImpactScore:          score,
		Factors:              factors,
		ProcessingLikelihood: processingLikelihood(score),
	}
}

func processingLikelihood(score int) string {
	switch {
	case score < 10:
		return "Very High (>95%)"
	case score < 30:
		return "High (85-95%)"
	case score < 60:
		return "Medium (70-85%)"
	case score < 100:
		return "Low (50-70%)"
	default:
		return "Very Low (<50%)"
	}
}

func (a *Analyzer) recommendations(report *compare.Report, optionalPresent int) []Recommendation {
	var recs []Recommendation
	var criticalMissing []string
	for _, code := range report.MissingMandatory {
		if a.critical[code] != "" {
			criticalMissing = append(criticalMissing, code)
		}
	}
	if len(criticalMissing) > 0 {
		recs = append(recs, Recommendation{
			Priority:    "HIGH",
			Category:    "MISSING_FIELDS",
			Title:       "Add Critical Missing Fields",
			Description: "Add these critical fields: " + strings.Join(criticalMissing, ", "),
			Action:      "Review your EDI mapping and ensure all mandatory fields are populated",
		})
	}
	if n := len(report.LengthErrors); n > 0 {
		recs = append(recs, Recommendation{
			Priority:    "MEDIUM",
			Category:    "DATA_VALIDATION",
			Title:       "Fix Field Length Issues",
			Description: fmt.Sprintf("Correct length violations in %d fields", n),
			Action:      "Review field specifications and adjust data to meet length requirements",
		})
	}
	if optionalPresent < 5 {
		recs = append(recs, Recommendation{
			Priority:    "LOW",
			Category:    "OPTIMIZATION",
			Title:       "Consider Adding Optional Fields",
			Description: "Adding relevant optional fields can improve data richness",
			Action:      "Review optional fields that might benefit your trading partners",
		})
	}
	return recs
}

func (a *Analyzer) categoryCompleteness(present map[string]bool) map[string]CategoryStat {
	out := make(map[string]CategoryStat, len(a.categories))
	for name, fields := range a.categories {
		count := 0
		for _, code := range fields {
			if present[code] {
				count++
			}
		}
		pct := 0.0
		if len(fields) > 0 {
			pct = math.Round(float64(count)/float64(len(fields))*1000) / 10
		}
		out[name] = CategoryStat{Present: count, Total: len(fields), Percentage: pct}
	}
	return out
}

func segmentDistribution(codes []string) map[string]int {
	out := make(map[string]int)
	for _, code := range codes {
		if tag := fieldSegRe.FindString(code); tag != "" {
			out[tag]++
		}
	}
	return out
}

func fieldValue(report *compare.Report, code string) string {
	for _, fr := range report.Fields {
		if fr.Code == code && fr.Status.Present() {
			return fr.Value
		}
	}
	return ""
}

// Render produces the plain-text assessment used for the advisory prompt and
// as the offline advisory response. Keys are emitted in sorted order so the
// output is stable.
func Render(assessment *Assessment) string {
	var b strings.Builder
	c := assessment.Compliance
	fmt.Fprintf(&b, "Compliance score: %.1f%% (%s)\n", c.Score, c.Status)
	fmt.Fprintf(&b, "Mandatory fields completed: %s\n", c.MandatoryCompletion)
	fmt.Fprintf(&b, "Risk level: %s\n", assessment.BusinessImpact.RiskLevel)
	fmt.Fprintf(&b, "Processing success likelihood: %s\n", assessment.BusinessImpact.ProcessingLikelihood)
	if n := len(assessment.CriticalIssues); n > 0 {
		fmt.Fprintf(&b, "Issues found: %d\n", n)
		for _, issue := range assessment.CriticalIssues {
			fmt.Fprintf(&b, "  - [%s] %s\n", issue.Severity, issue.Description)
		}
	}
	if n := len(assessment.Recommendations); n > 0 {
		fmt.Fprintf(&b, "Recommendations: %d\n", n)
		for _, rec := range assessment.Recommendations {
			fmt.Fprintf(&b, "  - [%s] %s: %s\n", rec.Priority, rec.Title, rec.Action)
		}
	}
	categories := make([]string, 0, len(assessment.CategoryCompleteness))
	for name := range assessment.CategoryCompleteness {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	for _, name := range categories {
		stat := assessment.CategoryCompleteness[name]
		fmt.Fprintf(&b, "Category %s: %d/%d (%.1f%%)\n", name, stat.Present, stat.Total, stat.Percentage)
	}
	return strings.TrimRight(b.String(), "\n")
}
