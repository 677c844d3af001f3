package domain

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Viewer is the authenticated user acting on events.
type Viewer struct {
	UserID      string
	Role        Role
	DisplayName string
}

// CanManage reports whether viewer may edit or retire event. Clients use it
// to show controls; the API checks it again on every mutation.
func CanManage(event Event, viewer Viewer) bool {
	if viewer.UserID == "" {
		return false
	}
	return viewer.UserID == event.OrganizerID || viewer.Role == RoleAdmin
}
