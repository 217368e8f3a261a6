package user

type Role string

const (
	RoleUser     Role = "user"
	RoleBusiness Role = "business"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleBusiness, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanChangeTo enforces the role transition rules. adminCount is the number
// of admins currently in the system, including the holder of this role.
func (r Role) CanChangeTo(newRole Role, adminCount int64) error {
	if newRole == RoleAdmin && r == RoleBusiness {
		return ErrBusinessPromotion
	}
	if r == RoleAdmin && newRole != RoleAdmin && adminCount <= 1 {
		return ErrLastAdminProtected
	}
	return nil
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
