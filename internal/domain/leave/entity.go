package leave

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

var ValidStatuses = []string{StatusPending, StatusApproved, StatusRejected}

// LeaveRequest is a dated leave application. Like attendance, it references
// the employee by name, not by id. StartDate <= EndDate is expected but not
// enforced anywhere; out-of-order pairs are stored as given.
type LeaveRequest struct {
	ID           int64  `json:"id"`
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"startDate"` // YYYY-MM-DD
	EndDate      string `json:"endDate"`   // YYYY-MM-DD
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}
