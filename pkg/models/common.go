package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Pagination carries list paging metadata
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Entity types shared by comments, activities, audit logs and the timeline.
const (
	EntityLead        = "lead"
	EntityAccount     = "account"
	EntityContact     = "contact"
	EntityOpportunity = "opportunity"
	EntityCase        = "case"
)

// ValidEntityType reports whether t names a record type that can carry
// comments, activities and a timeline.
func ValidEntityType(t string) bool {
	switch t {
	case EntityLead, EntityAccount, EntityContact, EntityOpportunity, EntityCase:
		return true
	}
	return false
}
