package normalize

// Column layout of the master/detail case sheet. The workbook has carried the
// same column order across revisions; only header labels drift.
const (
	CaseColCaseID = iota
	CaseColServiceCode
	CaseColCustomer
	CaseColLatitude
	CaseColLongitude
	CaseColAreaCode
	CaseColSubAreaCode
	CaseColOrderType
	CaseColConstraint
	CaseColThematicPlan
	CaseColBudget
	CaseColInstallStatus
	CaseColProposalStatus
	CaseColRemark
	CaseColGoLiveDate
	CaseColAgeDays
	CaseColPortsAvailable
	CaseColPortsUsed
	CaseColPortsTotal
)

// Column layout of the contract summary sheet.
const (
	SumColSequenceNo = iota
	SumColIdentity
	SumColCustomer
	SumColAddress
	SumColServiceType
	SumColContractValue
	SumColSurveyBudget
	SumColCostRatio
	SumColJobStatus
	SumColDistance
	SumColProgress
)
