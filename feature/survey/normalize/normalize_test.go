package normalize

import (
	"testing"

	"survey-manager/core/sheet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		valid bool
	}{
		{"Plain", "5000000", "5000000", true},
		{"Thousands separators", "5,000,000", "5000000", true},
		{"Decimal places", "5000000.00", "5000000", true},
		{"Percent", "85%", "85", true},
		{"Ratio percent", "12.5%", "12.5", true},
		{"Text", "pending", "", false},
		{"Empty", "", "", false},
		{"Dash only", "-", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDecimal(tt.input)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.True(t, got.Decimal.Equal(decimal.RequireFromString(tt.want)),
					"got %s want %s", got.Decimal, tt.want)
			}
		})
	}
}

func TestParseDecimal_EqualAcrossRepresentations(t *testing.T) {
	a := ParseDecimal("5000000")
	b := ParseDecimal("5000000.00")
	require.True(t, a.Valid)
	require.True(t, b.Valid)
	assert.True(t, a.Decimal.Equal(b.Decimal))
}

func TestParseDate(t *testing.T) {
	t.Run("SlashDelimited", func(t *testing.T) {
		d := ParseDate("3/14/2025")
		require.NotNil(t, d)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, 3, int(d.Month()))
		assert.Equal(t, 14, d.Day())
	})

	t.Run("ISO", func(t *testing.T) {
		d := ParseDate("2025-03-14")
		require.NotNil(t, d)
		assert.Equal(t, 14, d.Day())
	})

	t.Run("Invalid", func(t *testing.T) {
		assert.Nil(t, ParseDate("14-03-2025 10:00"))
		assert.Nil(t, ParseDate("soon"))
		assert.Nil(t, ParseDate(""))
	})
}

func TestToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Simple", "done", "DONE"},
		{"LeadingOrdinal", "1. Done", "DONE"},
		{"OrdinalWithDash", "2 - Waiting Permit", "WAITING_PERMIT"},
		{"NonAlnumRuns", "on  hold / permit", "ON_HOLD_PERMIT"},
		{"Trimmed", "  go live  ", "GO_LIVE"},
		{"Empty", "", ""},
		{"DashSentinel", "-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Token(tt.input))
		})
	}
}

func TestInstallStatusToken_Synonyms(t *testing.T) {
	assert.Equal(t, "GO_LIVE", InstallStatusToken("GOLIVE"))
	assert.Equal(t, "GO_LIVE", InstallStatusToken("go live"))
	assert.Equal(t, "GO_LIVE", InstallStatusToken("On Air"))
	assert.Equal(t, "SURVEY_DONE", InstallStatusToken("Survey OK"))
	assert.Equal(t, "WAITING_PERMIT", InstallStatusToken("Permit Waiting"))
	// Unknown labels fall back to generic tokenization
	assert.Equal(t, "CANCELLED", InstallStatusToken("cancelled"))
}

func TestCaseRows(t *testing.T) {
	rows := []sheet.RawRow{
		{"1002237835", "SC-9981", "ACME Fiber", "-6.2", "106.8", "JKT", "JKT-01",
			"expansion", "row", "fiberization", "1,500,000", "go live", "approved",
			"permit ok", "3/14/2025", "120", "8", "2", "16"},
		{"", "SC-0000", "Blank Identity"},
		{"1002249961"},
	}

	cases, skipped := CaseRows(rows)
	assert.Equal(t, 1, skipped)
	require.Len(t, cases, 2)

	c := cases[0]
	assert.Equal(t, "1002237835", c.CaseID)
	assert.Equal(t, "SC-9981", c.ServiceCode)
	assert.Equal(t, "EXPANSION", c.OrderType)
	assert.Equal(t, "GO_LIVE", c.InstallStatus)
	require.True(t, c.Budget.Valid)
	assert.True(t, c.Budget.Decimal.Equal(decimal.NewFromInt(1500000)))
	require.NotNil(t, c.GoLiveDate)
	assert.Equal(t, 120, c.AgeDays)
	assert.Equal(t, 16, c.PortsTotal)

	// Short row: everything beyond the identity is zero/null
	short := cases[1]
	assert.Equal(t, "1002249961", short.CaseID)
	assert.False(t, short.Budget.Valid)
	assert.Nil(t, short.GoLiveDate)
	assert.Empty(t, short.InstallStatus)
}

func TestSummaryRows(t *testing.T) {
	rows := []sheet.RawRow{
		{"0001", "1002237835", "ACME Fiber", "1 Main St", "dedicated", "5,000,000",
			"250000", "12.5%", "on track", "340.5", "pole mounted"},
		{"0002", "  ", "Blank Identity"},
	}

	summaries, skipped := SummaryRows(rows)
	assert.Equal(t, 1, skipped)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "0001", s.SequenceNo)
	assert.Equal(t, "1002237835", s.RawIdentity)
	assert.Equal(t, "DEDICATED", s.ServiceType)
	assert.Equal(t, "ON_TRACK", s.JobStatus)
	require.True(t, s.ContractValue.Valid)
	assert.True(t, s.ContractValue.Decimal.Equal(decimal.NewFromInt(5000000)))
	require.True(t, s.CostRatio.Valid)
	require.NotNil(t, s.DistanceMeters)
	assert.InDelta(t, 340.5, *s.DistanceMeters, 0.001)
}

func TestSummaryRows_DistancePresence(t *testing.T) {
	rows := []sheet.RawRow{
		{"0001", "1002237835", "ACME Fiber", "", "", "", "", "", "", "0"},
		{"0002", "1002249961", "Beta Clinic", "", "", "", "", "", "", ""},
		{"0003", "1002255000", "Gamma Labs", "", "", "", "", "", "", "n/a"},
	}

	summaries, skipped := SummaryRows(rows)
	assert.Equal(t, 0, skipped)
	require.Len(t, summaries, 3)

	// An explicit zero is a value; blank and unparseable cells are not.
	require.NotNil(t, summaries[0].DistanceMeters)
	assert.Zero(t, *summaries[0].DistanceMeters)
	assert.Nil(t, summaries[1].DistanceMeters)
	assert.Nil(t, summaries[2].DistanceMeters)
}
