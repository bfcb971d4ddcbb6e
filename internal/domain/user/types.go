package user

type Role string

const (
	RolePharmacist Role = "pharmacist"
	RoleEmployer   Role = "employer"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePharmacist, RoleEmployer, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// CanWork reports whether the role may accept invitations and work shifts.
func (r Role) CanWork() bool {
	return r == RolePharmacist || r == RoleAdmin
}

// CanPost reports whether the role may post shifts and cancel them as the poster.
func (r Role) CanPost() bool {
	return r == RoleEmployer || r == RoleAdmin
}
