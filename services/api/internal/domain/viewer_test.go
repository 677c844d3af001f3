package domain

import "testing"

func TestCanManage(t *testing.T) {
	t.Parallel()

	event := Event{ID: "e1", OrganizerID: "alice"}

	tests := []struct {
		name   string
		viewer Viewer
		want   bool
	}{
		{name: "organizer member", viewer: Viewer{UserID: "alice", Role: RoleMember}, want: true},
		{name: "organizer without role", viewer: Viewer{UserID: "alice"}, want: true},
		{name: "admin stranger", viewer: Viewer{UserID: "bob", Role: RoleAdmin}, want: true},
		{name: "member stranger", viewer: Viewer{UserID: "bob", Role: RoleMember}, want: false},
		{name: "anonymous", viewer: Viewer{}, want: false},
		{name: "anonymous admin role", viewer: Viewer{Role: RoleAdmin}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CanManage(event, tt.viewer); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestProfile_Viewer(t *testing.T) {
	t.Parallel()

	v := Profile{ID: "u1", FullName: "Sam"}.Viewer()
	if v.Role != RoleMember || v.UserID != "u1" || v.DisplayName != "Sam" {
		t.Fatalf("unexpected viewer: %+v", v)
	}
	if got := (Profile{ID: "u2", Role: RoleAdmin}).Viewer().Role; got != RoleAdmin {
		t.Fatalf("expected admin role, got %s", got)
	}
}
