package reconcile

import (
	"context"
	"fmt"
	"strings"

	"survey-manager/core/utils"
	"survey-manager/feature/survey/models"
	"survey-manager/feature/survey/normalize"

	"gorm.io/gorm"
)

// Identity resolves summary rows to canonical case ids against a snapshot of
// the persisted identity columns, fetched once per run.
type Identity struct {
	caseIDs       map[string]struct{}
	byServiceCode map[string]string
	byCustomer    map[string][]string

	nameMatch bool
	resolved  map[string]struct{}
}

// Resolution is the outcome of resolving one summary row.
type Resolution struct {
	// CaseID is the canonical case id to use.
	CaseID string
	// MustCreate signals that no existing case matched and one has to be
	// created before the summary is written.
	MustCreate bool
}

// NewIdentity builds a resolver from the current persisted identity columns.
func NewIdentity(ctx context.Context, db *gorm.DB, nameMatch bool) (*Identity, error) {
	type identityRow struct {
		CaseID       string
		ServiceCode  string
		CustomerName string
	}

	var rows []identityRow
	err := db.WithContext(ctx).
		Model(&models.SurveyCase{}).
		Select("case_id", "service_code", "customer_name").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load case identities: %w", err)
	}

	r := &Identity{
		caseIDs:       make(map[string]struct{}, len(rows)),
		byServiceCode: make(map[string]string),
		byCustomer:    make(map[string][]string),
		nameMatch:     nameMatch,
		resolved:      make(map[string]struct{}),
	}

	for _, row := range rows {
		r.caseIDs[row.CaseID] = struct{}{}
		if row.ServiceCode != "" {
			r.byServiceCode[row.ServiceCode] = row.CaseID
		}
		if name := strings.ToLower(strings.TrimSpace(row.CustomerName)); name != "" {
			r.byCustomer[name] = append(r.byCustomer[name], row.CaseID)
		}
	}

	return r, nil
}

// Resolve determines the canonical case id for a summary row. Matching order:
// exact case id, then service code, then (for non-numeric identities only)
// a unique case-insensitive customer-name match. When nothing matches, the
// raw identity becomes the new case id and MustCreate is signaled.
//
// Every resolved id, including must-create ones, is recorded in the run's
// resolved-identity set.
func (r *Identity) Resolve(row normalize.SummaryRow) Resolution {
	raw := row.RawIdentity

	if _, ok := r.caseIDs[raw]; ok {
		return r.record(Resolution{CaseID: raw})
	}

	if caseID, ok := r.byServiceCode[raw]; ok {
		return r.record(Resolution{CaseID: caseID})
	}

	// A numeric identity is a literal case/service code; never reattach it to
	// an unrelated case through a name coincidence.
	if r.nameMatch && !utils.IsNumeric(raw) && row.CustomerName != "" {
		candidates := r.byCustomer[strings.ToLower(strings.TrimSpace(row.CustomerName))]
		if len(candidates) == 1 {
			return r.record(Resolution{CaseID: candidates[0]})
		}
	}

	return r.record(Resolution{CaseID: raw, MustCreate: true})
}

// Observe registers a case id, and its service code when present, that this
// run creates or rewrites. Rows resolved afterwards see the run's own data
// instead of the prefetched snapshot, so a summary row referencing a case by
// a service code introduced in the same snapshot still lands on that case.
func (r *Identity) Observe(caseID, serviceCode string) {
	r.caseIDs[caseID] = struct{}{}
	if serviceCode != "" {
		r.byServiceCode[serviceCode] = caseID
	}
}

// ResolvedSet returns the set of case ids resolved during this run. It decides
// which persisted summaries are orphaned.
func (r *Identity) ResolvedSet() map[string]struct{} {
	return r.resolved
}

func (r *Identity) record(res Resolution) Resolution {
	r.resolved[res.CaseID] = struct{}{}
	return res
}
