package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// HashPassword returns the hex SHA-256 digest of plain. The digest is
// deterministic and unsalted, which keeps equality-based verification
// compatible with existing rows but is weak against offline guessing.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// Hasher produces password hashes for new or changed passwords.
type Hasher interface {
	Hash(plain string) (string, error)
}

// SHA256Hasher produces HashPassword digests.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plain string) (string, error) {
	return HashPassword(plain), nil
}

// BcryptHasher produces salted bcrypt hashes.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// NewHasher returns the hasher for a configured scheme ("sha256" or "bcrypt").
func NewHasher(scheme string) (Hasher, error) {
	switch scheme {
	case "", "sha256":
		return SHA256Hasher{}, nil
	case "bcrypt":
		return BcryptHasher{Cost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// VerifyPassword checks plain against a stored hash of either scheme, so
// rows written before and after a scheme switch keep working.
func VerifyPassword(stored, plain string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(HashPassword(plain))) == 1
}
