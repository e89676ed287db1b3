package utils

import "golang.org/x/crypto/bcrypt"

// The shared admin credential is the only password in the system; it is
// hashed once at startup and compared on every login.

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
