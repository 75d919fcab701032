package domain

// User represents a user of the application in the domain.
type User struct {
	UserID   string `json:"userID"` // Primary Key (e.g., UUID)
	Username string `json:"username"`
	PINHash  string `json:"-"`
	Email    string `json:"email"`
	AuditFields
}
