package service

import (
	"crypto/rand"
	"math/big"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// codeLength is the length of generated short codes. 62^7 candidates keep
// the collision retry loop in Create effectively never looping.
const codeLength = 7

// generateShortCode returns a random base62 string of codeLength characters.
func generateShortCode() (string, error) {
	code := make([]byte, codeLength)
	max := big.NewInt(int64(len(base62Alphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = base62Alphabet[n.Int64()]
	}

	return string(code), nil
}
