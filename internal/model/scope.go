package model

// Scope is the identity of the caller, resolved from a verified access token.
type Scope struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
}

// HasAnyRole reports whether the scope's role is one of roles.
func (s Scope) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
