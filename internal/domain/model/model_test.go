package model

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{"owner", RoleOwner, true},
		{"user", RoleUser, true},
		{"superuser", "", false},
		{"Admin", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			role, ok := ParseRole(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ParseRole(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
			if role != tc.want {
				t.Fatalf("ParseRole(%q) = %q, want %q", tc.raw, role, tc.want)
			}
		})
	}
}

func TestUserPublicOmitsHash(t *testing.T) {
	u := User{
		ID:           7,
		Name:         "Jonathan Archibald Greenfield",
		Email:        "jon@example.com",
		PasswordHash: "$2a$10$secret",
		Address:      "12 Elm Street",
		Role:         RoleOwner,
	}

	pub := u.Public()
	if pub.ID != u.ID || pub.Name != u.Name || pub.Email != u.Email || pub.Address != u.Address || pub.Role != u.Role {
		t.Fatalf("unexpected public projection: %+v", pub)
	}
}
