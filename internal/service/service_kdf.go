package service

import (
	"fmt"

	"github.com/ndanilkin/go-vault-server/models"
)

// Security floors for client-side key derivation. Values below these make
// offline brute force of a stolen vault too cheap; values above the Argon2id
// ceilings lock out low-memory clients.
const (
	MinPbkdf2Iterations = 100_000

	MinArgon2Memory      = 15 // MiB
	MaxArgon2Memory      = 1024
	MinArgon2Parallelism = 1
	MaxArgon2Parallelism = 16
)

// ValidateKdf checks a target KDF parameter set against the policy floors.
// It performs no mutation; callers normalize and write only after it passes.
func ValidateKdf(kdf models.Kdf) error {
	switch kdf.Type {
	case models.KdfPbkdf2:
		if kdf.Iterations < MinPbkdf2Iterations {
			return fmt.Errorf("%w: PBKDF2 iterations must be at least %d", ErrInvalidKdfParameters, MinPbkdf2Iterations)
		}
	case models.KdfArgon2id:
		if kdf.Iterations < 1 {
			return fmt.Errorf("%w: Argon2id iterations must be at least 1", ErrInvalidKdfParameters)
		}
		if kdf.Memory == nil {
			return fmt.Errorf("%w: Argon2id memory is required", ErrInvalidKdfParameters)
		}
		if *kdf.Memory < MinArgon2Memory || *kdf.Memory > MaxArgon2Memory {
			return fmt.Errorf("%w: Argon2id memory must be between %d and %d MiB", ErrInvalidKdfParameters, MinArgon2Memory, MaxArgon2Memory)
		}
		if kdf.Parallelism == nil {
			return fmt.Errorf("%w: Argon2id parallelism is required", ErrInvalidKdfParameters)
		}
		if *kdf.Parallelism < MinArgon2Parallelism || *kdf.Parallelism > MaxArgon2Parallelism {
			return fmt.Errorf("%w: Argon2id parallelism must be between %d and %d", ErrInvalidKdfParameters, MinArgon2Parallelism, MaxArgon2Parallelism)
		}
	default:
		return fmt.Errorf("%w: unknown KDF type %d", ErrInvalidKdfParameters, kdf.Type)
	}

	return nil
}

// NormalizeKdf clears the Argon2id-only fields for PBKDF2 so a stored
// parameter set never carries values its algorithm does not use.
func NormalizeKdf(kdf models.Kdf) models.Kdf {
	if kdf.Type == models.KdfPbkdf2 {
		kdf.Memory = nil
		kdf.Parallelism = nil
	}
	return kdf
}
