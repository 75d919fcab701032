package domain

import "time"

// AuditFields holds standard audit information for domain entities. The
// actor references are user IDs; in a single-user ledger they match the
// owning user.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
