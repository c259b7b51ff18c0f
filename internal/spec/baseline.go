// File path: internal/spec/baseline.go
package spec

// Skeleton810 is the canonical ordered 810 segment table: X12 designation,
// company usage, and occurrence bounds. N1 and its loop members are
// X12-optional but carry the "Must use" company designation common to
// trading-partner companion guides.
func Skeleton810() []SegmentRule {
	return []SegmentRule{
		{Tag: "ISA", Mandatory: true, CompanyUsage: "Must use", MinOccurs: 1, MaxOccurs: 1},
		{Tag: "GS", Mandatory: true, CompanyUsage: "Must use", MinOccurs: 1, MaxOccurs: 1, AllMandatory: true},
		{Tag: "ST", Mandatory: true, CompanyUsage: "Must use", MinOccurs: 1, MaxOccurs: 1, AllMandatory: true},
		{Tag: "BIG", Mandatory: true, CompanyUsage: "Must use", MinOccurs: 1, MaxOccurs: 1},
		{Tag: "NTE", Mandatory: false, CompanyUsage: "Optional", MinOccurs: 0, MaxOccurs: 100},
		{Tag: "CUR", Mandatory: false, CompanyUsage: "Optional", MinOccurs: 0, MaxOccurs: 1},
		{Tag: "REF", Mandatory: false, CompanyUsage: "Used", MinOccurs: 0, MaxOccurs: 12},
		{Tag: "N1", Mandatory: false, CompanyUsage: "Must use", MinOccurs: 0, MaxOccurs: 200},
		{Tag: "N2", Mandatory: false, CompanyUsage: "Optional", MinOccurs: 0, MaxOccurs: 2},
		{Tag: "N3", Mandatory: false, CompanyUsage: "Used", MinOccurs: 0, MaxOccurs: 2},
		{Tag: "N4", Mandatory: false, CompanyUsage: "Used", MinOccurs: 0, MaxOccurs: 1},
		{Tag: "ITD", Mandatory: false, CompanyUsage: "Used", MinOccurs: 0, MaxOccurs: 5},
		{Tag: "DTM", Mandatory: false, CompanyUsage: "Optional", MinOccurs: 0, MaxOccurs: 10},
		{Tag: "FOB", Mandatory: false, CompanyUsage: "Optional", MinOccurs: 0, MaxOccurs: 1},
		{Tag: "IT1", Mandatory: true, CompanyUsage: "Must use", MinOccurs: 1, MaxOccurs: 200000},
		{Tag: "PID", Mandatory: false, CompanyUsage: "Used", MinOccurs: 0, MaxOccurs: 1000},
		{Tag: "SAC", Mandatory: false, CompanyUsage: "Optional", MinOccurs: 0, MaxOccurs: 25},
		{Tag: "TXI", Mandatory: false, CompanyUsage: "Optional", MinOccurs: 0, MaxOccurs: 10},
		{Tag: "CAD", Mandatory: false, CompanyUsage: "Optional", MinOccurs: 0, MaxOccurs: 1},
		{Tag: "ISS", Mandatory: false, CompanyUsage: "Optional", MinOccurs: 0, MaxOccurs: 5},
		{Tag: "TDS", Mandatory: true, CompanyUsage: "Must use", MinOccurs: 1, MaxOccurs: 1},
		{Tag: "CTT", Mandatory: true, CompanyUsage: "Must use", MinOccurs: 1, MaxOccurs: 1},
		{Tag: "SE", Mandatory: true, CompanyUsage: "Must use", MinOccurs: 1, MaxOccurs: 1, AllMandatory: true},
		{Tag: "GE", Mandatory: true, CompanyUsage: "Must use", MinOccurs: 1, MaxOccurs: 1, AllMandatory: true},
		{Tag: "IEA", Mandatory: true, CompanyUsage: "Must use", MinOccurs: 1, MaxOccurs: 1, AllMandatory: true},
	}
}

// Baseline810 is the built-in mandatory/optional field table for the 810
// invoice, used when no companion rule document is uploaded.
func Baseline810() *RuleSet {
	rs := NewRuleSet(Skeleton810())
	for _, rule := range baseline810Fields {
		// The table below is static; Add can only fail on a typo in it.
		if err := rs.Add(rule); err != nil {
			panic(err)
		}
	}
	return rs
}

func m(code, name string, t DataType, min, max int) FieldRule {
	return FieldRule{Code: code, Name: name, Usage: "Must use", Mandatory: true, Cardinality: "1/1", Type: t, Min: min, Max: max}
}

func o(code, name string, t DataType, min, max int) FieldRule {
	return FieldRule{Code: code, Name: name, Usage: "Used", Mandatory: false, Cardinality: "0/1", Type: t, Min: min, Max: max}
}

var baseline810Fields = []FieldRule{
	m("ISA01", "Authorization Information Qualifier", TypeID, 2, 2),
	o("ISA02", "Authorization Information", TypeAN, 10, 10),
	m("ISA03", "Security Information Qualifier", TypeID, 2, 2),
	o("ISA04", "Security Information", TypeAN, 10, 10),
	m("ISA05", "Interchange ID Qualifier", TypeID, 2, 2),
	m("ISA06", "Interchange Sender ID", TypeAN, 2, 15),
	m("ISA07", "Interchange ID Qualifier", TypeID, 2, 2),
	m("ISA08", "Interchange Receiver ID", TypeAN, 2, 15),
	m("ISA09", "Interchange Date", TypeDT, 6, 6),
	m("ISA10", "Interchange Time", TypeTM, 4, 4),
	m("ISA11", "Interchange Control Standards Identifier", TypeID, 1, 1),
	m("ISA12", "Interchange Control Version Number", TypeID, 5, 5),
	m("ISA13", "Interchange Control Number", TypeN0, 9, 9),
	m("ISA14", "Acknowledgment Requested", TypeID, 1, 1),
	m("ISA15", "Usage Indicator", TypeID, 1, 1),
	m("ISA16", "Component Element Separator", TypeAN, 1, 1),

	m("GS01", "Functional Identifier Code", TypeID, 2, 2),
	m("GS02", "Application Sender's Code", TypeAN, 2, 15),
	m("GS03", "Application Receiver's Code", TypeAN, 2, 15),
	m("GS04", "Date", TypeDT, 8, 8),
	m("GS05", "Time", TypeTM, 4, 8),
	m("GS06", "Group Control Number", TypeN0, 1, 9),
	m("GS07", "Responsible Agency Code", TypeID, 1, 2),
	m("GS08", "Version / Release / Industry Identifier Code", TypeAN, 1, 12),

	m("ST01", "Transaction Set Identifier Code", TypeID, 3, 3),
	m("ST02", "Transaction Set Control Number", TypeAN, 4, 9),

	m("BIG01", "Invoice Date", TypeDT, 8, 8),
	m("BIG02", "Invoice Number", TypeAN, 1, 22),
	o("BIG03", "Purchase Order Date", TypeDT, 8, 8),
	o("BIG04", "Purchase Order Number", TypeAN, 1, 22),
	o("BIG07", "Transaction Type Code", TypeID, 2, 2),

	o("REF01", "Reference Identification Qualifier", TypeID, 2, 3),
	o("REF02", "Reference Identification", TypeAN, 1, 30),

	o("N101", "Entity Identifier Code", TypeID, 2, 3),
	o("N102", "Name", TypeAN, 1, 60),
	o("N103", "Identification Code Qualifier", TypeID, 1, 2),
	o("N104", "Identification Code", TypeAN, 2, 80),
	o("N201", "Name", TypeAN, 1, 60),
	o("N301", "Address Information", TypeAN, 1, 55),
	o("N302", "Address Information", TypeAN, 1, 55),
	o("N401", "City Name", TypeAN, 2, 30),
	o("N402", "State or Province Code", TypeID, 2, 2),
	o("N403", "Postal Code", TypeID, 3, 15),
	o("N404", "Country Code", TypeID, 2, 3),

	o("ITD01", "Terms Type Code", TypeID, 1, 2),
	o("ITD02", "Terms Basis Date Code", TypeID, 1, 2),
	o("ITD03", "Terms Discount Percent", TypeR, 1, 6),
	o("ITD05", "Terms Discount Days Due", TypeN0, 1, 3),
	o("ITD07", "Terms Net Days", TypeN0, 1, 3),

	o("DTM01", "Date/Time Qualifier", TypeID, 3, 3),
	o("DTM02", "Date", TypeDT, 8, 8),

	o("IT101", "Assigned Identification", TypeAN, 1, 20),
	m("IT102", "Quantity Invoiced", TypeR, 1, 10),
	m("IT103", "Unit or Basis for Measurement Code", TypeID, 2, 2),
	m("IT104", "Unit Price", TypeR, 1, 17),
	o("IT105", "Basis of Unit Price Code", TypeID, 2, 2),
	o("IT106", "Product/Service ID Qualifier", TypeID, 2, 2),
	o("IT107", "Product/Service ID", TypeAN, 1, 48),

	o("PID01", "Item Description Type", TypeID, 1, 1),
	o("PID05", "Description", TypeAN, 1, 80),

	m("TDS01", "Total Invoice Amount", TypeN2, 1, 18),

	o("TXI01", "Tax Type Code", TypeID, 2, 2),
	o("TXI02", "Monetary Amount", TypeR, 1, 18),

	o("CAD01", "Transportation Method/Type Code", TypeID, 1, 2),
	o("CAD04", "Standard Carrier Alpha Code", TypeID, 2, 4),

	o("SAC01", "Allowance or Charge Indicator", TypeID, 1, 1),
	o("SAC02", "Service, Promotion, Allowance, or Charge Code", TypeID, 4, 4),
	o("SAC05", "Amount", TypeN2, 1, 15),

	o("ISS01", "Number of Units Shipped", TypeR, 1, 10),

	m("CTT01", "Number of Line Items", TypeN0, 1, 6),
	o("CTT02", "Hash Total", TypeR, 1, 10),

	m("SE01", "Number of Included Segments", TypeN0, 1, 10),
	m("SE02", "Transaction Set Control Number", TypeAN, 4, 9),

	m("GE01", "Number of Transaction Sets Included", TypeN0, 1, 6),
	m("GE02", "Group Control Number", TypeN0, 1, 9),

	m("IEA01", "Number of Included Functional Groups", TypeN0, 1, 5),
	m("IEA02", "Interchange Control Number", TypeN0, 9, 9),
}
