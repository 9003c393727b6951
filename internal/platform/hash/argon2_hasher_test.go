package hash_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ferdiebergado/leavekit/internal/config"
	"github.com/ferdiebergado/leavekit/internal/platform/hash"
)

func newTestHasher() *hash.Argon2Hasher {
	cfg := &config.Argon2{
		Memory:     8192,
		Iterations: 1,
		Threads:    1,
		SaltLength: 16,
		KeyLength:  32,
	}
	return hash.NewArgon2Hasher(cfg, "test-pepper")
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	hashed, err := hasher.Hash("sekret")
	if err != nil {
		t.Fatalf("hasher.Hash(...) = %v, want: nil", err)
	}

	if !strings.HasPrefix(hashed, "$argon2id$v=19$") {
		t.Fatalf("hashed = %q, want argon2id encoding", hashed)
	}

	ok, err := hasher.Verify("sekret", hashed)
	if err != nil {
		t.Fatalf("hasher.Verify(...) = %v, want: nil", err)
	}
	if !ok {
		t.Error("hasher.Verify(correct secret) = false, want: true")
	}

	ok, err = hasher.Verify("wrong", hashed)
	if err != nil {
		t.Fatalf("hasher.Verify(...) = %v, want: nil", err)
	}
	if ok {
		t.Error("hasher.Verify(wrong secret) = true, want: false")
	}
}

func TestArgon2Hasher_HashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	first, err := hasher.Hash("sekret")
	if err != nil {
		t.Fatal(err)
	}
	second, err := hasher.Hash("sekret")
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("two hashes of the same secret are identical")
	}
}

func TestArgon2Hasher_VerifyInvalidFormat(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	if _, err := hasher.Verify("sekret", "not-a-hash"); !errors.Is(err, hash.ErrInvalidHashFormat) {
		t.Errorf("hasher.Verify(invalid) = %v, want: %v", err, hash.ErrInvalidHashFormat)
	}
}
