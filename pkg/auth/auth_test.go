package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if hash == "correct horse battery" {
		t.Error("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "correct horse battery") {
		t.Error("expected matching password to verify")
	}

	if CheckPassword(hash, "wrong password") {
		t.Error("expected non-matching password to fail")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "marta", "storekeeper")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Username != "marta" {
		t.Errorf("expected username marta, got %s", claims.Username)
	}
	if claims.Role != "storekeeper" {
		t.Errorf("expected role storekeeper, got %s", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
