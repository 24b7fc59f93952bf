package helpers

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash equals the plain password")
	}
	if !CompareHashAndPassword(hash, "secret1") {
		t.Error("correct password rejected")
	}
	if CompareHashAndPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
	if CompareHashAndPassword("not-a-hash", "secret1") {
		t.Error("garbage hash accepted")
	}
}
