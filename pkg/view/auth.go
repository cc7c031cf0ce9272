package view

// SessionView is what /auth/session exposes for client-side navigation.
// The role here gates UI only; every admin route is re-checked server-side.
type SessionView struct {
	SignedIn bool   `json:"signed_in"`
	UserID   string `json:"user_id,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}
