package service

import "golang.org/x/crypto/bcrypt"

// hashPassword produces a salted bcrypt hash of the plaintext.
func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports whether plain matches the stored hash. A malformed
// hash is a verification failure, never a crash; bcrypt's comparison is
// constant-time over the digest.
func verifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
