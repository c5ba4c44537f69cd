package account

import (
	"context"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv(secretEnvVariable, "test-secret")
	ResetSecretForTests()

	token, err := GenerateToken("acct-42", "Admin", 15*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ParseAndValidate(token)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	if claims.Subject != "acct-42" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != "Admin" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.Issuer != issuer {
		t.Fatalf("unexpected issuer: %s", claims.Issuer)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Setenv(secretEnvVariable, "test-secret")
	ResetSecretForTests()

	for _, tok := range []string{"", "   ", "not-a-token", "a.b.c"} {
		if _, err := ParseAndValidate(tok); err == nil {
			t.Fatalf("expected error for token %q", tok)
		}
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv(secretEnvVariable, "")
	ResetSecretForTests()
	t.Cleanup(ResetSecretForTests)

	if _, err := GenerateToken("acct-1", "Admin", time.Minute); err == nil {
		t.Fatal("expected missing secret error")
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = ContextWithUser(ctx, "acct-7", "Manager")

	id, ok := UserIDFromContext(ctx)
	if !ok || id != "acct-7" {
		t.Fatalf("unexpected account id: %s, ok=%v", id, ok)
	}
	if role := RoleFromContext(ctx); role != "Manager" {
		t.Fatalf("unexpected role: %s", role)
	}
	if _, ok := UserIDFromContext(context.Background()); ok {
		t.Fatal("empty context must not carry an identity")
	}
}
