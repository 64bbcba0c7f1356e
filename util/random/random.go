// Package random generates initial account passwords.
package random

import (
	"crypto/rand"
	"math/big"
)

// permittedChars is the alphabet for generated passwords. It drops the
// visually ambiguous `1` and `o`; each character appears once, so a shuffle
// prefix never repeats a character.
const permittedChars = "023456789abcdefghijklmnpqrstuvwxyz"

// PasswordLength is the length of every generated initial password.
const PasswordLength = 10

// Password shuffles the permitted alphabet and returns its first
// PasswordLength characters. These are one-time initial passwords the user is
// expected to change, not long-lived secrets.
func Password() string {
	runes := []rune(permittedChars)
	for i := len(runes) - 1; i > 0; i-- {
		j := num(i + 1)
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes[:PasswordLength])
}

// num returns a random integer in [0, n).
func num(n int) int {
	r, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return int(r.Int64())
}
