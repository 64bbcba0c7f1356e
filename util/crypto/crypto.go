// Package crypto provides password hashing and verification for rota accounts.
package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt hash of an unguessable value. Login checks for
// unknown usernames verify against it so the work done is the same whether or
// not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword generates a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash verifies that password matches the bcrypt hash.
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckAbsentUser burns a bcrypt verification against the dummy hash and
// always reports failure. Called when a login names an unknown username.
func CheckAbsentUser(password string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
	return false
}
