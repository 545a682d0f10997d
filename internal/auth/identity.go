package auth

import "errors"

var (
	// ErrNotStudent is returned when a student-only operation is called with
	// an instructor identity (or vice versa for ErrNotInstructor).
	ErrNotStudent    = errors.New("not a student")
	ErrNotInstructor = errors.New("not an instructor")
)

// Identity is the authenticated caller, resolved from the bearer token.
// Access rules consume it through AsStudent/AsInstructor so every role check
// is a single call instead of inline claim inspection.
type Identity struct {
	UserID uint
	Role   string
}

func (id Identity) AsStudent() (uint, error) {
	if id.Role != RoleStudent {
		return 0, ErrNotStudent
	}
	return id.UserID, nil
}

func (id Identity) AsInstructor() (uint, error) {
	if id.Role != RoleInstructor {
		return 0, ErrNotInstructor
	}
	return id.UserID, nil
}

func (id Identity) IsInstructor() bool {
	return id.Role == RoleInstructor
}
