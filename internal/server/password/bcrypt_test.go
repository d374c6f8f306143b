package password

import (
	"errors"
	"testing"

	"github.com/puptrack/puptrack/internal/common"
)

func TestHashAndVerify_Match(t *testing.T) {
	t.Parallel()

	h, err := Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := Verify("hunter2", h)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected matching password to verify")
	}
}

func TestVerify_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := Verify("*******", h)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatched password to fail verification")
	}
}

func TestHash_Salted(t *testing.T) {
	t.Parallel()

	h1, err := Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same plaintext must differ")
	}

	for _, h := range []string{h1, h2} {
		ok, err := Verify("hunter2", h)
		if err != nil || !ok {
			t.Fatalf("both hashes must verify: ok=%v err=%v", ok, err)
		}
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	_, err := Verify("hunter2", "not-a-bcrypt-hash")
	if !errors.Is(err, common.ErrMalformedHash) {
		t.Fatalf("expected common.ErrMalformedHash, got %v", err)
	}
}
