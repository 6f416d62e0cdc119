package dto

// PolicyType identifies which document layout and rule set a claim is
// validated against. The set is closed: every type here has a parser and a
// validator registered in the service layer.
type PolicyType string

const (
	PolicyHome    PolicyType = "home"
	PolicyLife    PolicyType = "life"
	PolicyVehicle PolicyType = "vehicle"
)

type DecisionStatus string

const (
	StatusApproved     DecisionStatus = "APPROVED"
	StatusRejected     DecisionStatus = "REJECTED"
	StatusManualReview DecisionStatus = "MANUAL_REVIEW"
)

// Decision is the outcome of running a claim through a policy rule set.
// Status starts at APPROVED and is only escalated by rules; issues are
// appended in evaluation order and never removed.
type Decision struct {
	Status DecisionStatus `json:"status"`
	Issues []string       `json:"issues"`
}

func NewDecision() Decision {
	return Decision{Status: StatusApproved, Issues: []string{}}
}

// Flag escalates the decision to the given status and records the reason.
func (d *Decision) Flag(status DecisionStatus, issue string) {
	d.Status = status
	d.Issues = append(d.Issues, issue)
}

// Note records an issue without changing the status.
func (d *Decision) Note(issue string) {
	d.Issues = append(d.Issues, issue)
}

// HomeRecord holds the fields extracted from a home insurance policy
// document. String fields are empty when the document did not yield them;
// sums default to zero. FallbackApplied marks records whose sums were
// substituted by the no-data coverage estimate rather than read from the
// document.
type HomeRecord struct {
	PolicyNumber    string `json:"policy_number"`
	PropertyAddress string `json:"property_address"`
	ValidTo         string `json:"valid_to"`
	BuildingSum     int    `json:"building_sum"`
	ContentSum      int    `json:"content_sum"`
	TotalSum        int    `json:"total_sum"`
	FallbackApplied bool   `json:"fallback_applied"`
}

// LifeRecord holds the fields extracted from a life insurance policy
// document.
type LifeRecord struct {
	PolicyNumber  string `json:"policy_number"`
	PolicyName    string `json:"policy_name"`
	LifeAssured   string `json:"life_assured"`
	Nominee       string `json:"nominee"`
	StartDate     string `json:"start_date"`
	MaturityDate  string `json:"maturity_date"`
	SumAssuredVal int    `json:"sum_assured_val"`
	PremiumVal    int    `json:"premium_val"`
}

// VehicleRecord holds the fields extracted from a motor insurance policy
// document. IDVValue is the insured declared value, the maximum claimable
// amount for the vehicle.
type VehicleRecord struct {
	VehicleRegNo string `json:"vehicle_reg_no"`
	ChassisNo    string `json:"chassis_no"`
	EngineNo     string `json:"engine_no"`
	MakeModel    string `json:"make_model"`
	ValidFrom    string `json:"valid_from"`
	ValidTo      string `json:"valid_to"`
	IDVValue     int    `json:"idv_value"`
}
