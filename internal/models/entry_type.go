package models

// EntryType is the database representation of a per-user entry classification.
type EntryType struct {
	TypeID   string        `db:"type_id"`
	UserID   string        `db:"user_id"`
	Name     string        `db:"name"`
	Category EntryCategory `db:"category"`
	AuditFields
}
