package models

// User is the database representation of an application user.
type User struct {
	UserID   string `db:"user_id"`
	Username string `db:"username"`
	PINHash  string `db:"pin_hash"`
	Email    string `db:"email"`
	AuditFields
}
