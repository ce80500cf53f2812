package users

import "time"

// Roles assignable to a user.
const (
	RoleMasterAdmin    = "master_admin"
	RoleAdmin          = "admin"
	RoleTechnicalAdmin = "technical_admin"
	RoleBilling        = "billing"
	RoleReports        = "reports"
	RoleMediaLibrary   = "media_library_user"
)

// User describes one user of the master account.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Pending       bool      `json:"pending"`
	Enabled       bool      `json:"enabled"`
	SubAccountIDs []string  `json:"sub_account_ids,omitempty"`
	GroupIDs      []string  `json:"group_ids,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListResponse is a listing of users.
type ListResponse struct {
	Users []*User `json:"users"`
	Total int     `json:"total"`
}
