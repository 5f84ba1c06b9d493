package model

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	user := &User{Username: "alice"}

	if err := user.SetPassword("pw1"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if user.Password == "pw1" {
		t.Fatal("plaintext must not be stored")
	}

	if !user.CheckPassword("pw1") {
		t.Fatal("expected the exact password to verify")
	}
	if user.CheckPassword("pw2") || user.CheckPassword("") || user.CheckPassword("PW1") {
		t.Fatal("expected non-matching passwords to fail")
	}

	// Re-setting replaces the hash; only the latest value verifies
	if err := user.SetPassword("pw2"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if user.CheckPassword("pw1") {
		t.Fatal("old password still verifies")
	}
	if !user.CheckPassword("pw2") {
		t.Fatal("new password does not verify")
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleUser, RoleAdmin} {
		if !role.Valid() {
			t.Fatalf("expected %q to be valid", role)
		}
	}
	for _, role := range []Role{"", "superuser", "Admin", "USER"} {
		if Role(role).Valid() {
			t.Fatalf("expected %q to be invalid", role)
		}
	}
}
