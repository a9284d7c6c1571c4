package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sync bookkeeping values for SyncStatus fields.
const (
	SyncStatusSynced = "SYNCED"
	SyncStatusEdited = "EDITED"
)

// SyncLog run statuses.
const (
	SyncRunSuccess = "SUCCESS"
	SyncRunPartial = "PARTIAL"
	SyncRunFailed  = "FAILED"
)

// SurveyCase is the master record: one per physical installation case.
// CaseID is the natural unique key and immutable once created.
type SurveyCase struct {
	ID     uint   `gorm:"column:id;primaryKey" json:"id"`
	CaseID string `gorm:"column:case_id;size:64;uniqueIndex" json:"case_id"`
	// ServiceCode is a secondary identifier that summary rows may reference
	// instead of CaseID.
	ServiceCode  string `gorm:"column:service_code;size:64;index" json:"service_code"`
	CustomerName string `gorm:"column:customer_name;size:255;index" json:"customer_name"`
	Latitude     string `gorm:"column:latitude;size:32" json:"latitude"`
	Longitude    string `gorm:"column:longitude;size:32" json:"longitude"`
	AreaCode     string `gorm:"column:area_code;size:32" json:"area_code"`
	SubAreaCode  string `gorm:"column:sub_area_code;size:32" json:"sub_area_code"`

	OrderTypeID      *uint `gorm:"column:order_type_id" json:"order_type_id"`
	ConstraintID     *uint `gorm:"column:constraint_id" json:"constraint_id"`
	ThematicPlanID   *uint `gorm:"column:thematic_plan_id" json:"thematic_plan_id"`
	InstallStatusID  *uint `gorm:"column:install_status_id" json:"install_status_id"`
	ProposalStatusID *uint `gorm:"column:proposal_status_id" json:"proposal_status_id"`
	RemarkID         *uint `gorm:"column:remark_id" json:"remark_id"`

	Budget     decimal.Decimal `gorm:"column:budget;type:decimal(20,4);default:0" json:"budget"`
	GoLiveDate *time.Time      `gorm:"column:go_live_date" json:"go_live_date"`
	AgeDays    int             `gorm:"column:age_days;default:0" json:"age_days"`

	PortsAvailable int `gorm:"column:ports_available;default:0" json:"ports_available"`
	PortsUsed      int `gorm:"column:ports_used;default:0" json:"ports_used"`
	PortsTotal     int `gorm:"column:ports_total;default:0" json:"ports_total"`

	SyncStatus string     `gorm:"column:sync_status;size:20" json:"sync_status"`
	LastSyncAt *time.Time `gorm:"column:last_sync_at" json:"last_sync_at"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (SurveyCase) TableName() string {
	return "survey_cases"
}

// ContractSummary is the commercial/contract record dependent on a SurveyCase.
// SequenceNo is unique across all summaries; CaseID must always reference an
// existing SurveyCase.
type ContractSummary struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"id"`
	SequenceNo string `gorm:"column:sequence_no;size:32;uniqueIndex" json:"sequence_no"`
	CaseID     string `gorm:"column:case_id;size:64;index" json:"case_id"`

	ContractValue decimal.Decimal `gorm:"column:contract_value;type:decimal(20,4);default:0" json:"contract_value"`
	SurveyBudget  decimal.Decimal `gorm:"column:survey_budget;type:decimal(20,4);default:0" json:"survey_budget"`
	CostRatio     decimal.Decimal `gorm:"column:cost_ratio;type:decimal(10,4);default:0" json:"cost_ratio"`

	Address       string `gorm:"column:address;size:512" json:"address"`
	ServiceTypeID *uint  `gorm:"column:service_type_id" json:"service_type_id"`
	JobStatusID   *uint  `gorm:"column:job_status_id" json:"job_status_id"`

	DistanceMeters float64 `gorm:"column:distance_meters;default:0" json:"distance_meters"`
	Progress       string  `gorm:"column:progress;size:512" json:"progress"`

	SyncStatus string     `gorm:"column:sync_status;size:20" json:"sync_status"`
	LastSyncAt *time.Time `gorm:"column:last_sync_at" json:"last_sync_at"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (ContractSummary) TableName() string {
	return "contract_summaries"
}

// SyncLog is the append-only audit record of reconciliation runs.
type SyncLog struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Status    string    `gorm:"column:status;size:20" json:"status"`
	Message   string    `gorm:"column:message;size:1024" json:"message"`
	Source    string    `gorm:"column:source;size:64" json:"source"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name.
func (SyncLog) TableName() string {
	return "sync_logs"
}
