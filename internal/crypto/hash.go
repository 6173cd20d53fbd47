package crypto

import "golang.org/x/crypto/bcrypt"

// hashCost matches the cost the stored hashes were generated with.
const hashCost = 10

// HashPassword hashes a password with bcrypt. The salt is generated per
// call, so hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
