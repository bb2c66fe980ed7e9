package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CompareInBcrypt compares a bcrypt hashed value against a plain string.
func CompareInBcrypt(hashed, plain string) bool {
	return nil == bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// SecureEquals compares two strings in constant time.
func SecureEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
