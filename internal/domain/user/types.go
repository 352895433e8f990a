package user

// Role hierarchy: viewer reads the back office, operator moves orders
// through their lifecycle, admin manages coupons and gift cards.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleLevels = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r grants everything minRole grants.
func (r Role) AtLeast(minRole Role) bool {
	have, okHave := roleLevels[r]
	want, okWant := roleLevels[minRole]
	return okHave && okWant && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
