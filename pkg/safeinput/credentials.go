package safeinput

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/myaccounts/portalkit/pkg/logger"
	"github.com/myaccounts/portalkit/pkg/mask"
	"github.com/myaccounts/portalkit/pkg/securerand"
)

// maxPasswordAttempts bounds the redraws in IssueTemporaryPassword. With the
// default length roughly one draw in four misses a character class.
const maxPasswordAttempts = 64

// TemporaryPassword is a generated password and its bcrypt hash.
// Plain is shown once to the administrator and never stored.
type TemporaryPassword struct {
	Plain string
	Hash  []byte
}

// String keeps the plain password out of logs and fmt output.
func (t TemporaryPassword) String() string {
	return mask.Token(t.Plain)
}

// Matches reports whether candidate is the password behind Hash.
func (t TemporaryPassword) Matches(candidate string) bool {
	return bcrypt.CompareHashAndPassword(t.Hash, []byte(candidate)) == nil
}

// maxTemporaryPasswordLength is bcrypt's input limit in bytes. Generated
// passwords are ASCII so runes and bytes agree.
const maxTemporaryPasswordLength = 72

// IssueTemporaryPassword generates a password of the policy's
// TemporaryPasswordLength that meets every strength requirement, and hashes
// it with the policy's bcrypt cost.
func (k *Kit) IssueTemporaryPassword() (TemporaryPassword, error) {
	return k.IssueTemporaryPasswordOfLength(k.policy.TemporaryPasswordLength)
}

// IssueTemporaryPasswordOfLength is IssueTemporaryPassword with an explicit
// length. n must be at least the policy's MinPasswordLength (and at least 5,
// one character per class) and at most 72.
func (k *Kit) IssueTemporaryPasswordOfLength(n int) (TemporaryPassword, error) {
	if n < max(k.policy.MinPasswordLength, 5) || n > maxTemporaryPasswordLength {
		return TemporaryPassword{}, fmt.Errorf("%w: temporary password length %d", securerand.ErrInvalidArgument, n)
	}

	for range maxPasswordAttempts {
		plain, err := securerand.Password(n)
		if err != nil {
			k.logRandomnessFailure(err)
			return TemporaryPassword{}, err
		}
		if !k.EvaluatePassword(plain).AllMet() {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(plain), k.policy.BcryptCost)
		if err != nil {
			return TemporaryPassword{}, fmt.Errorf("hash temporary password: %w", err)
		}
		return TemporaryPassword{Plain: plain, Hash: hash}, nil
	}

	k.log.ErrorContext(k.ctx, "temporary password generation exhausted", "attempts", maxPasswordAttempts)
	return TemporaryPassword{}, ErrCredentialGeneration
}

// IssueInviteCode returns an organization invite code of the form XXXX-XXXX.
func (k *Kit) IssueInviteCode() (string, error) {
	code, err := securerand.InviteCode()
	if err != nil {
		k.logRandomnessFailure(err)
		return "", err
	}
	k.log.DebugContext(k.ctx, "invite code issued", logger.Secret("code", code))
	return code, nil
}

// IssueRecoveryCodes returns n recovery codes of 64 random bits each.
func (k *Kit) IssueRecoveryCodes(n int) ([]string, error) {
	codes, err := securerand.RecoveryCodes(n)
	if err != nil {
		k.logRandomnessFailure(err)
		return nil, err
	}
	return codes, nil
}
