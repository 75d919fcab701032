package domain

// EntryType is a per-user classification reference for ledger entries
// (e.g. "Salary" under income, "Groceries" under expense).
type EntryType struct {
	TypeID   string        `json:"typeID"` // Primary Key (e.g., UUID)
	UserID   string        `json:"userID"`
	Name     string        `json:"name"`
	Category EntryCategory `json:"category"`
	AuditFields
}
