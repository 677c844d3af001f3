package domain

import "time"

// Profile holds the public details of a user. Role is managed out of band.
type Profile struct {
	ID        string
	FullName  string
	Phone     string
	Location  string
	Bio       string
	Role      Role
	CreatedAt time.Time
}

// Viewer returns the identity carried by this profile.
func (p Profile) Viewer() Viewer {
	role := p.Role
	if role == "" {
		role = RoleMember
	}
	return Viewer{UserID: p.ID, Role: role, DisplayName: p.FullName}
}

// ProfileUpdate holds the user-editable profile fields.
type ProfileUpdate struct {
	FullName string
	Phone    string
	Location string
	Bio      string
}
