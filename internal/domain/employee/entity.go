package employee

// Employee is the directory record for a staff member. Attendance and leave
// rows reference it by name only; there is no foreign key, so renames do not
// cascade. That matches the system this replaces and is deliberate.
type Employee struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}
