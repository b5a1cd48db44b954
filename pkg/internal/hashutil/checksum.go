package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// HashBytes returns the lowercase hex SHA256 digest of content
func HashBytes(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// HashReader returns the lowercase hex SHA256 digest of everything read from r
func HashReader(r io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
