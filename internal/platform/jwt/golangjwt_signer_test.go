package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/leavekit/internal/config"
	"github.com/ferdiebergado/leavekit/internal/platform/jwt"
)

func newTestSigner() jwt.Signer {
	cfg := &config.JWT{
		JTILength: 16,
		Issuer:    "leavekit-test",
	}
	return jwt.NewGolangJWTSigner(cfg, "test-signing-key")
}

func TestGolangJWTSigner_SignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()

	token, err := signer.Sign("client-1", []string{"leavekit-test"}, time.Minute)
	if err != nil {
		t.Fatalf("signer.Sign(...) = %v, want: nil", err)
	}

	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("token has %d segments, want: 3", len(parts))
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("signer.Verify(token) = %v, want: nil", err)
	}

	if claims.ClientID != "client-1" {
		t.Errorf("claims.ClientID = %q, want: %q", claims.ClientID, "client-1")
	}
}

func TestGolangJWTSigner_VerifyExpired(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()

	token, err := signer.Sign("client-1", []string{"leavekit-test"}, -time.Minute)
	if err != nil {
		t.Fatalf("signer.Sign(...) = %v, want: nil", err)
	}

	if _, err := signer.Verify(token); err == nil {
		t.Error("signer.Verify(expired token) = nil, want: error")
	}
}

func TestGolangJWTSigner_VerifyWrongKey(t *testing.T) {
	t.Parallel()

	signer := newTestSigner()
	other := jwt.NewGolangJWTSigner(&config.JWT{JTILength: 16, Issuer: "leavekit-test"}, "another-key")

	token, err := signer.Sign("client-1", []string{"leavekit-test"}, time.Minute)
	if err != nil {
		t.Fatalf("signer.Sign(...) = %v, want: nil", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Error("other.Verify(token) = nil, want: error")
	}
}
