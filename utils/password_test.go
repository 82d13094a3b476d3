package utils

import "testing"

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("expected the hash to differ from the plaintext")
	}

	ok, err := VerifyPassword(hash, "s3cret-pass")
	if err != nil {
		t.Fatalf("failed to verify password: %v", err)
	}
	if !ok {
		t.Error("expected the correct password to verify")
	}

	ok, err = VerifyPassword(hash, "wrong-pass")
	if err != nil {
		t.Fatalf("failed to verify password: %v", err)
	}
	if ok {
		t.Error("expected the wrong password to be rejected")
	}
}
