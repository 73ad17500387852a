package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Signer computes keyed HMAC-SHA256 signatures of request bodies.
// Hash instances are pooled since every signed request needs one.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer keyed with hashKey.
func NewSigner(hashKey string) *Signer {
	key := []byte(hashKey)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (s *Signer) Sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	defer s.pool.Put(h)

	h.Reset()
	h.Write(data)
	return h.Sum(nil)
}

// Sign returns the hex encoded digest of data.
func (s *Signer) Sign(data []byte) string {
	return hex.EncodeToString(s.Sum(data))
}

// Verify reports whether signature is the hex encoded digest of data.
// Comparison is constant time.
func (s *Signer) Verify(data []byte, signature string) bool {
	decoded, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(s.Sum(data), decoded)
}
