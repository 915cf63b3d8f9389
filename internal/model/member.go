package model

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Member is a user's role-scoped identity inside one workspace.
type Member struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	UserID      int64     `json:"user_id"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *Member) IsAdmin() bool {
	return m != nil && m.Role == RoleAdmin
}

// MemberProfile is a member joined with the identity provider's display data.
type MemberProfile struct {
	Member
	Name  string `json:"name"`
	Email string `json:"email"`
}
