package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
)

var ErrHashMismatch = errors.New("hash mismatch")

// CalculateHash returns the hex encoded HMAC-SHA256 of data. An empty key
// disables hashing and yields an empty string.
func CalculateHash(data, key string) string {
	if key == "" {
		return ""
	}
	return hex.EncodeToString(sum([]byte(data), key))
}

// VerifyHash checks data against a hex encoded HMAC-SHA256. With an empty key
// every payload is accepted.
func VerifyHash(data, key, hash string) error {
	if key == "" {
		return nil
	}
	got, err := hex.DecodeString(hash)
	if err != nil {
		return ErrHashMismatch
	}
	if !hmac.Equal(got, sum([]byte(data), key)) {
		return ErrHashMismatch
	}
	return nil
}

// Sign returns the base64 encoded HMAC-SHA256 of data, the format exchange
// APIs expect in their signature headers.
func Sign(data, key string) string {
	return base64.StdEncoding.EncodeToString(sum([]byte(data), key))
}

func sum(data []byte, key string) []byte {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	return mac.Sum(nil)
}
