package utils

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	email, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if email != "a@x.com" {
		t.Fatalf("got email %q, want a@x.com", email)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken(testSecret, "a@x.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken(testSecret, "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected error for mismatched secret")
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(testSecret, tok); err == nil {
			t.Fatalf("expected error for token %q", tok)
		}
	}
}
