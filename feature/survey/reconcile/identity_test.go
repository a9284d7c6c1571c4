package reconcile

import (
	"context"
	"testing"

	"survey-manager/feature/survey/models"
	"survey-manager/feature/survey/normalize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedIdentityCases(t *testing.T, name string) *Identity {
	db := setupSyncDB(t, name)

	seed := []models.SurveyCase{
		{CaseID: "1002237835", ServiceCode: "SC-9981", CustomerName: "Acme Industrial"},
		{CaseID: "1002249961", ServiceCode: "SC-7011", CustomerName: "Beta Clinic"},
		{CaseID: "1002255000", CustomerName: "Beta Clinic"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	identity, err := NewIdentity(context.Background(), db, true)
	require.NoError(t, err)
	return identity
}

func TestResolve_Precedence(t *testing.T) {
	identity := seedIdentityCases(t, "identity_precedence")

	tests := []struct {
		name       string
		row        normalize.SummaryRow
		wantCaseID string
		mustCreate bool
	}{
		{
			name:       "ExactCaseID",
			row:        normalize.SummaryRow{RawIdentity: "1002237835"},
			wantCaseID: "1002237835",
		},
		{
			name:       "ServiceCode",
			row:        normalize.SummaryRow{RawIdentity: "SC-9981"},
			wantCaseID: "1002237835",
		},
		{
			name:       "UniqueCustomerName",
			row:        normalize.SummaryRow{RawIdentity: "REF-X1", CustomerName: "Acme Industrial"},
			wantCaseID: "1002237835",
		},
		{
			name:       "CaseInsensitiveName",
			row:        normalize.SummaryRow{RawIdentity: "REF-X2", CustomerName: "  acme industrial "},
			wantCaseID: "1002237835",
		},
		{
			name:       "AmbiguousNameCreates",
			row:        normalize.SummaryRow{RawIdentity: "REF-X3", CustomerName: "Beta Clinic"},
			wantCaseID: "REF-X3",
			mustCreate: true,
		},
		{
			name:       "NumericIdentityNeverNameMatches",
			row:        normalize.SummaryRow{RawIdentity: "1002299999", CustomerName: "Acme Industrial"},
			wantCaseID: "1002299999",
			mustCreate: true,
		},
		{
			name:       "NoMatchCreates",
			row:        normalize.SummaryRow{RawIdentity: "REF-X4", CustomerName: "Unknown Co"},
			wantCaseID: "REF-X4",
			mustCreate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := identity.Resolve(tt.row)
			assert.Equal(t, tt.wantCaseID, res.CaseID)
			assert.Equal(t, tt.mustCreate, res.MustCreate)
		})
	}
}

func TestResolve_NameMatchDisabled(t *testing.T) {
	db := setupSyncDB(t, "identity_nomatch")
	require.NoError(t, db.Create(&models.SurveyCase{
		CaseID: "1002237835", CustomerName: "Acme Industrial",
	}).Error)

	identity, err := NewIdentity(context.Background(), db, false)
	require.NoError(t, err)

	res := identity.Resolve(normalize.SummaryRow{
		RawIdentity: "REF-X1", CustomerName: "Acme Industrial",
	})
	assert.Equal(t, "REF-X1", res.CaseID)
	assert.True(t, res.MustCreate)
}

func TestObserve_ResolvesSubsequentRows(t *testing.T) {
	identity := seedIdentityCases(t, "identity_observe")

	first := identity.Resolve(normalize.SummaryRow{RawIdentity: "REF-NEW"})
	require.True(t, first.MustCreate)

	identity.Observe("REF-NEW", "")

	second := identity.Resolve(normalize.SummaryRow{RawIdentity: "REF-NEW"})
	assert.Equal(t, "REF-NEW", second.CaseID)
	assert.False(t, second.MustCreate)
}

func TestObserve_RegistersServiceCode(t *testing.T) {
	identity := seedIdentityCases(t, "identity_observe_code")

	before := identity.Resolve(normalize.SummaryRow{RawIdentity: "SC-NEW"})
	require.True(t, before.MustCreate)

	identity.Observe("1002260000", "SC-NEW")

	after := identity.Resolve(normalize.SummaryRow{RawIdentity: "SC-NEW"})
	assert.Equal(t, "1002260000", after.CaseID)
	assert.False(t, after.MustCreate)
}

func TestResolvedSet_TracksEveryResolution(t *testing.T) {
	identity := seedIdentityCases(t, "identity_resolved_set")

	identity.Resolve(normalize.SummaryRow{RawIdentity: "1002237835"})
	identity.Resolve(normalize.SummaryRow{RawIdentity: "SC-7011"})
	identity.Resolve(normalize.SummaryRow{RawIdentity: "REF-NEW"})

	resolved := identity.ResolvedSet()
	assert.Len(t, resolved, 3)
	assert.Contains(t, resolved, "1002237835")
	assert.Contains(t, resolved, "1002249961")
	assert.Contains(t, resolved, "REF-NEW")
}
