package model

// Scope carries the authenticated caller's identity through a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the scope belongs to an admin.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
