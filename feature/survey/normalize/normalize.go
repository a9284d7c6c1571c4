package normalize

import (
	"regexp"
	"strings"
	"time"

	"survey-manager/core/sheet"
	"survey-manager/core/utils"

	"github.com/shopspring/decimal"
)

// CaseRow is a typed master/detail row. Every field is either a parsed value
// or its zero/null form; normalization never fails a row except for a blank
// mandatory identity.
type CaseRow struct {
	CaseID       string
	ServiceCode  string
	CustomerName string
	Latitude     string
	Longitude    string
	AreaCode     string
	SubAreaCode  string

	// Normalized enum tokens; empty string means no value.
	OrderType      string
	Constraint     string
	ThematicPlan   string
	InstallStatus  string
	ProposalStatus string
	Remark         string

	Budget     decimal.NullDecimal
	GoLiveDate *time.Time
	AgeDays    int

	PortsAvailable int
	PortsUsed      int
	PortsTotal     int
}

// SummaryRow is a typed contract summary row.
type SummaryRow struct {
	SequenceNo  string
	RawIdentity string

	CustomerName string
	Address      string
	ServiceType  string
	JobStatus    string

	ContractValue decimal.NullDecimal
	SurveyBudget  decimal.NullDecimal
	CostRatio     decimal.NullDecimal

	// DistanceMeters is nil when the cell is blank or unparseable, so a
	// genuine zero distance stays distinguishable from no value.
	DistanceMeters *float64
	Progress       string
}

// CaseRows normalizes raw detail rows. Rows with a blank case id are skipped
// entirely and counted, not treated as errors.
func CaseRows(rows []sheet.RawRow) (out []CaseRow, skipped int) {
	for _, row := range rows {
		caseID := cell(row, CaseColCaseID)
		if caseID == "" {
			skipped++
			continue
		}

		out = append(out, CaseRow{
			CaseID:       caseID,
			ServiceCode:  cell(row, CaseColServiceCode),
			CustomerName: cell(row, CaseColCustomer),
			Latitude:     cell(row, CaseColLatitude),
			Longitude:    cell(row, CaseColLongitude),
			AreaCode:     cell(row, CaseColAreaCode),
			SubAreaCode:  cell(row, CaseColSubAreaCode),

			OrderType:      Token(cell(row, CaseColOrderType)),
			Constraint:     Token(cell(row, CaseColConstraint)),
			ThematicPlan:   Token(cell(row, CaseColThematicPlan)),
			InstallStatus:  InstallStatusToken(cell(row, CaseColInstallStatus)),
			ProposalStatus: Token(cell(row, CaseColProposalStatus)),
			Remark:         Token(cell(row, CaseColRemark)),

			Budget:     ParseDecimal(cell(row, CaseColBudget)),
			GoLiveDate: ParseDate(cell(row, CaseColGoLiveDate)),
			AgeDays:    utils.ToInt(cell(row, CaseColAgeDays)),

			PortsAvailable: utils.ToInt(cell(row, CaseColPortsAvailable)),
			PortsUsed:      utils.ToInt(cell(row, CaseColPortsUsed)),
			PortsTotal:     utils.ToInt(cell(row, CaseColPortsTotal)),
		})
	}
	return out, skipped
}

// SummaryRows normalizes raw summary rows. Rows with a blank identity cell are
// skipped entirely and counted.
func SummaryRows(rows []sheet.RawRow) (out []SummaryRow, skipped int) {
	for _, row := range rows {
		identity := cell(row, SumColIdentity)
		if identity == "" {
			skipped++
			continue
		}

		var distance *float64
		if d := ParseDecimal(cell(row, SumColDistance)); d.Valid {
			v, _ := d.Decimal.Float64()
			distance = &v
		}

		out = append(out, SummaryRow{
			SequenceNo:  cell(row, SumColSequenceNo),
			RawIdentity: identity,

			CustomerName: cell(row, SumColCustomer),
			Address:      cell(row, SumColAddress),
			ServiceType:  Token(cell(row, SumColServiceType)),
			JobStatus:    Token(cell(row, SumColJobStatus)),

			ContractValue: ParseDecimal(cell(row, SumColContractValue)),
			SurveyBudget:  ParseDecimal(cell(row, SumColSurveyBudget)),
			CostRatio:     ParseDecimal(cell(row, SumColCostRatio)),

			DistanceMeters: distance,
			Progress:       cell(row, SumColProgress),
		})
	}
	return out, skipped
}

// cell returns the trimmed cell at idx, or "" when the row is too short.
func cell(row sheet.RawRow, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseDecimal parses a money/ratio cell into a nullable decimal.
// Thousands separators and percent signs are stripped first; anything that
// still fails to parse yields null, never an error.
func ParseDecimal(s string) decimal.NullDecimal {
	s = utils.CleanNumeric(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

var dateFormats = []string{
	"1/2/2006", // month/day/year, no padding
	"01/02/2006",
	"2006-01-02",
	"2006/01/02",
}

// ParseDate parses a date cell against the accepted formats, in order.
// Unparseable dates yield nil.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

var (
	leadingOrdinal = regexp.MustCompile(`^\d+[\s.\-)]+`)
	nonAlnumRun    = regexp.MustCompile(`[^A-Z0-9]+`)
)

// Token produces a canonical enum token: uppercased, trimmed, leading numeric
// ordinals stripped ("1. DONE" -> "DONE") and non-alphanumeric runs collapsed
// to single underscores.
func Token(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || s == "-" {
		return ""
	}
	s = leadingOrdinal.ReplaceAllString(s, "")
	s = nonAlnumRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// installStatusSynonyms maps raw installation-status labels that drifted
// across sheet revisions onto their canonical token. Applied before generic
// normalization; keys are uppercased trimmed raw values.
var installStatusSynonyms = map[string]string{
	"GOLIVE":         "GO_LIVE",
	"GO LIVE":        "GO_LIVE",
	"GO-LIVE":        "GO_LIVE",
	"ON AIR":         "GO_LIVE",
	"DONE SURVEY":    "SURVEY_DONE",
	"SURVEY OK":      "SURVEY_DONE",
	"PERMIT WAITING": "WAITING_PERMIT",
	"WAITING PERMIT": "WAITING_PERMIT",
}

// InstallStatusToken normalizes an installation-status cell, consulting the
// synonym table before falling back to generic tokenization.
func InstallStatusToken(s string) string {
	key := strings.ToUpper(strings.TrimSpace(s))
	if canonical, ok := installStatusSynonyms[key]; ok {
		return canonical
	}
	return Token(s)
}
