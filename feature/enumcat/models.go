package enumcat

// Entry is one canonical value of a dynamically-extensible enum domain.
// Entries are auto-created the first time a normalized value is seen and
// never auto-deleted.
type Entry struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Category string `gorm:"column:category;size:64;uniqueIndex:idx_enum_category_value" json:"category"`
	Value    string `gorm:"column:value;size:128;uniqueIndex:idx_enum_category_value" json:"value"`
	Label    string `gorm:"column:label;size:128" json:"label"`
	Active   bool   `gorm:"column:active;default:true" json:"active"`
}

// TableName overrides the table name.
func (Entry) TableName() string {
	return "enum_entries"
}

// Enum domain categories used by the survey schema.
const (
	CategoryInstallStatus  = "install_status"
	CategoryProposalStatus = "proposal_status"
	CategoryRemark         = "remark_category"
	CategoryOrderType      = "order_type"
	CategoryConstraint     = "constraint_category"
	CategoryThematicPlan   = "thematic_plan"
	CategoryServiceType    = "service_type"
	CategoryJobStatus      = "job_status"
)
