package service

import "testing"

func TestPassword_RoundTrip(t *testing.T) {
	hash, err := hashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatalf("hash equals plaintext")
	}

	if !verifyPassword("correct horse battery staple", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if verifyPassword("correct horse battery stapl", hash) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestPassword_DistinctSalts(t *testing.T) {
	h1, err := hashPassword("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := hashPassword("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected salted hashes to differ")
	}
}

func TestPassword_MalformedHashFailsClosed(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if verifyPassword("anything", hash) {
			t.Fatalf("malformed hash %q verified", hash)
		}
	}
}
