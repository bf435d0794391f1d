package models

// Scope identifies the tenant a call is executing on behalf of. Every
// engine operation that touches the ledger store takes a Scope; access
// checks go through Allows rather than ad hoc string comparisons.
type Scope struct {
	CompanyID string `json:"companyId"`
}

// Allows reports whether a record with the given company id may be
// read or written under this scope. Records with an empty company id
// predate tenant scoping and are treated as out of scope.
func (s Scope) Allows(companyID string) bool {
	return s.CompanyID != "" && s.CompanyID == companyID
}

// IsZero reports whether the scope carries no company at all.
func (s Scope) IsZero() bool {
	return s.CompanyID == ""
}
