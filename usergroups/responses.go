package usergroups

// UserGroup is a named collection of users used for access-control grouping.
type UserGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListResponse is a listing of user groups.
type ListResponse struct {
	UserGroups []*UserGroup `json:"user_groups"`
}

// GroupUser is the membership view of a user inside a group.
type GroupUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UsersResponse is the membership listing of a group, also returned by the
// add/remove membership operations.
type UsersResponse struct {
	Users []*GroupUser `json:"users"`
}
