package user

// User is an application account. Profile fields are independent of the
// Employee entity; an account does not need a matching employee record.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Bio          string `json:"bio"`
}
