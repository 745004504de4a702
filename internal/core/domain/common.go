package domain

import "time"

// AuditFields holds the creation/modification metadata embedded in every
// persisted entity.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
