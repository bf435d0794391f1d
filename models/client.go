package models

import "time"

// Client is a directory record for a concierge customer. Historical
// imports produced duplicates keyed by the same email in different
// casings; the reconcile guard merges those into one canonical record.
type Client struct {
	ID          string            `bson:"id" json:"id"`
	CompanyID   string            `bson:"companyId" json:"companyId"`
	Email       string            `bson:"email" json:"email"`
	Name        string            `bson:"name,omitempty" json:"name,omitempty"`
	Phone       string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Permissions []string          `bson:"permissions,omitempty" json:"permissions,omitempty"`
	Metadata    map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
}
