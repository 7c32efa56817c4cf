package util

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"
)

// BookID derives a stable synthetic identifier from a book's title and
// author. Case differences don't change the ID; a NUL separator keeps
// ("ab","c") and ("a","bc") distinct. Twelve hex chars stays readable in
// list output.
func BookID(title, author string) string {
	h := sha256.New()
	io.WriteString(h, strings.ToLower(strings.TrimSpace(title)))
	h.Write([]byte{0})
	io.WriteString(h, strings.ToLower(strings.TrimSpace(author)))
	return hex.EncodeToString(h.Sum(nil))[:12]
}

// SHA256Reader hashes everything readable from r.
func SHA256Reader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
