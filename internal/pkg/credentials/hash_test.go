package credentials

import "testing"

func TestHasher_Deterministic(t *testing.T) {
	h := NewHasher("pepper")

	first := h.Hash("salt-a", "hunter22")
	second := h.Hash("salt-a", "hunter22")
	if first != second {
		t.Fatalf("same salt and secret produced different digests: %q vs %q", first, second)
	}
}

func TestHasher_SaltChangesDigest(t *testing.T) {
	h := NewHasher("pepper")

	if h.Hash("salt-a", "hunter22") == h.Hash("salt-b", "hunter22") {
		t.Fatalf("different salts produced the same digest")
	}
}

func TestHasher_PepperChangesDigest(t *testing.T) {
	if NewHasher("pepper-a").Hash("salt", "hunter22") == NewHasher("pepper-b").Hash("salt", "hunter22") {
		t.Fatalf("different peppers produced the same digest")
	}
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher("pepper")
	digest := h.Hash("salt", "hunter22")

	if !h.Verify("salt", "hunter22", digest) {
		t.Fatalf("correct secret rejected")
	}
	if h.Verify("salt", "wrong", digest) {
		t.Fatalf("wrong secret accepted")
	}
	if h.Verify("other-salt", "hunter22", digest) {
		t.Fatalf("wrong salt accepted")
	}
}

func TestNewSalt_Unique(t *testing.T) {
	a := NewSalt()
	b := NewSalt()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty salts, got %q and %q", a, b)
	}
}
