package domain

import (
	"database/sql/driver"
	"fmt"
)

// Role is an ordered privilege level. A higher role implies every lower one.
type Role int

const (
	RoleParticipant Role = iota + 1
	RoleBoothOperator
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleParticipant:   "PARTICIPANT",
	RoleBoothOperator: "BOOTH_OPERATOR",
	RoleAdmin:         "ADMIN",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// AtLeast reports whether r grants the privileges of required
func (r Role) AtLeast(required Role) bool {
	return r.Valid() && r >= required
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole converts the stored name back into a Role
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// Value stores the role by name
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return r.String(), nil
}

func (r *Role) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
