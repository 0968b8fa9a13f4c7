package rbac

// Role is a system role carried on a UserAccount.
type Role string

const (
	RoleHR       Role = "HR"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Caller is the resolved identity behind a bearer credential.
type Caller struct {
	ID       string
	Email    string
	FullName string
	Role     Role
}

// Policy decides whether a role may perform an operation. Every route is
// gated by exactly one Policy, so authorization rules live in one place and
// are testable without HTTP.
type Policy func(role Role) bool

// Allows wraps the predicate call for readability at call sites.
func (p Policy) Allows(role Role) bool {
	return p(role)
}

// Roles builds a Policy allowing exactly the given roles.
func Roles(allowed ...Role) Policy {
	set := make(map[Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(role Role) bool {
		_, ok := set[role]
		return ok
	}
}

var (
	// HROnly gates department and employee mutations.
	HROnly = Roles(RoleHR)

	// ManagerOrHR gates employee listing, employee updates and leave actions.
	ManagerOrHR = Roles(RoleManager, RoleHR)

	// AnyAuthenticated admits every resolved caller regardless of role.
	AnyAuthenticated Policy = func(Role) bool { return true }
)
