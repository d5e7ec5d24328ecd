package domain

import "testing"

func TestRole_Satisfies(t *testing.T) {
	cases := []struct {
		holder   Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleUser, true},
		{RoleUser, RoleUser, true},
		{RoleUser, RoleAdmin, false},
		{Role(""), RoleUser, false},
		{Role("guest"), RoleUser, false},
	}

	for _, tc := range cases {
		if got := tc.holder.Satisfies(tc.required); got != tc.want {
			t.Fatalf("%q satisfies %q: got %v, want %v", tc.holder, tc.required, got, tc.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("admin"); !ok || r != RoleAdmin {
		t.Fatalf("parse admin: got %q, %v", r, ok)
	}
	if r, ok := ParseRole("user"); !ok || r != RoleUser {
		t.Fatalf("parse user: got %q, %v", r, ok)
	}
	for _, s := range []string{"", "Admin", "root", "superuser"} {
		if _, ok := ParseRole(s); ok {
			t.Fatalf("parse %q: expected rejection", s)
		}
	}
}
