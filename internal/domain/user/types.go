package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleOwner    Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleOwner:
		return true
	default:
		return false
	}
}

// CanOperateTerminal reports whether the role may approve/reject issuance
// requests and resolve migrations at a store terminal.
func (r Role) CanOperateTerminal() bool {
	return r == RoleStaff || r == RoleOwner
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
