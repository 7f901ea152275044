package models

// KdfType identifies the key-derivation algorithm a client uses to turn its
// master password into the master key. The numeric values are part of the
// client protocol and must not be renumbered.
type KdfType int

const (
	// KdfPbkdf2 is PBKDF2-SHA256. Only the iteration count applies.
	KdfPbkdf2 KdfType = 0

	// KdfArgon2id is Argon2id. Iterations, memory (MiB) and parallelism
	// all apply and are required.
	KdfArgon2id KdfType = 1
)

// Defaults used for prelogin responses when the account does not exist,
// so an unknown email is indistinguishable from a fresh account.
const (
	DefaultKdfType       = KdfPbkdf2
	DefaultKdfIterations = 600_000
)

// Kdf is a user's client-side key-derivation parameter set. Memory and
// Parallelism are present only for Argon2id; for PBKDF2 they are nil.
type Kdf struct {
	Type        KdfType `json:"kdf"`
	Iterations  int     `json:"kdf_iterations"`
	Memory      *int    `json:"kdf_memory,omitempty"`
	Parallelism *int    `json:"kdf_parallelism,omitempty"`
}

// Equal reports whether two parameter sets are exactly the same, including
// presence or absence of the optional Argon2id fields.
func (k Kdf) Equal(other Kdf) bool {
	return k.Type == other.Type &&
		k.Iterations == other.Iterations &&
		equalIntPtr(k.Memory, other.Memory) &&
		equalIntPtr(k.Parallelism, other.Parallelism)
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
