package sanitizer

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

// HashPassword returns a transform replacing a plaintext password with its
// bcrypt hash (as a string). Put it on the last rule of the property so that
// length and strength rules see the plaintext. Passwords bcrypt refuses,
// such as ones longer than 72 bytes, are returned unchanged.
func HashPassword(cost int) rto.Transform {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return func(v any) any {
		s, ok := v.(string)
		if !ok || s == "" {
			return v
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s), cost)
		if err != nil {
			return v
		}
		return string(hash)
	}
}

// ComparePassword reports whether plain matches a hash produced by HashPassword.
func ComparePassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
