package tutorreport

// Role is the role claim carried in access tokens
type Role string

const (
	RoleAdminPusat   Role = "admin_pusat"
	RoleAdminShelter Role = "admin_shelter"
	RoleTutor        Role = "tutor"
)

// CanRefreshSnapshots reports whether the role may recompute stored summaries
func (r Role) CanRefreshSnapshots() bool {
	return r == RoleAdminPusat || r == RoleAdminShelter
}
