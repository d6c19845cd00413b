package service

import "github.com/dentora-store/internal/constants"

// Actor identifies who is invoking a state transition. Subjects come
// from externally issued tokens; the role decides which transitions
// are reachable.
type Actor struct {
	Subject string
	Role    string
}

// IsAdmin reports whether the actor carries administrative capability.
func (a Actor) IsAdmin() bool {
	return a.Role == constants.RoleAdmin
}
