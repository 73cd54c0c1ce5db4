package attendance

// Attendance status values. "Leave" is written by leave workflows and the
// front-end; the storage layer accepts it as a first-class status so the
// aggregations and the constraint agree.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
)

var ValidStatuses = []string{StatusPresent, StatusAbsent, StatusLeave}

// Attendance is one employee's status on one calendar date. EmployeeName is
// free text matched against Employee.Name for reporting; nothing enforces
// that a matching employee exists, and duplicates per day are not rejected.
type Attendance struct {
	ID           int64  `json:"id"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"` // YYYY-MM-DD
	Status       string `json:"status"`
}
