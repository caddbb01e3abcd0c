package booking

// Role is the capability level of the acting user, resolved once per request
// from the auth claims and threaded explicitly into the lifecycle.
type Role string

const (
	RoleNone      Role = ""
	RoleUser      Role = "user"
	RoleSuperuser Role = "superuser"
	RoleAdmin     Role = "admin"
)

func ParseRole(s string) Role {
	switch s {
	case "user", "superuser", "admin":
		return Role(s)
	}
	return RoleNone
}

// CanManageSchedule reports whether the role may publish availability and
// manage incoming bookings. Admins inherit superuser capabilities.
func (r Role) CanManageSchedule() bool {
	return r == RoleSuperuser || r == RoleAdmin
}

type Actor struct {
	UserID uint
	Role   Role
}
