package hdkey

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

// masterKeySalt is the HMAC key used to expand a seed into a master key.
var masterKeySalt = []byte("Bitcoin seed")

func newHMACWriter(key []byte) hmacWriter {
	return hmacWriter{
		Hash: hmac.New(sha512.New, key),
	}
}

type hmacWriter struct {
	hash.Hash
}

func (hw hmacWriter) InfallibleWrite(p []byte) {
	_, err := hw.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "writing to hmac should never fail"))
	}
}

// hmacSHA512 returns HMAC-SHA512(key, data).
func hmacSHA512(key []byte, data ...[]byte) []byte {
	mac := newHMACWriter(key)
	for _, d := range data {
		mac.InfallibleWrite(d)
	}
	return mac.Sum(nil)
}

// hash160 returns RIPEMD160(SHA256(data)).
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	rmd := ripemd160.New()
	_, err := rmd.Write(sha[:])
	if err != nil {
		panic(errors.Wrap(err, "writing to ripemd160 should never fail"))
	}
	return rmd.Sum(nil)
}
