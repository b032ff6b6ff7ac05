package domain

// Role gates which operations a caller may perform
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a known account. Read-only from the engine's perspective.
type User struct {
	ID          int64
	DisplayName string
	Role        Role
}

// Identity is the verified caller identity supplied by the
// authentication collaborator. The core trusts it as-is; swapping in a
// real auth provider only touches the middleware that produces it.
type Identity struct {
	UserID int64
	Role   Role
}

// IsAdmin returns true if the caller has the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsValid returns true if the identity carries a usable user ID
func (i Identity) IsValid() bool {
	return i.UserID > 0
}
