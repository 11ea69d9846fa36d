package ecc

import (
	"bytes"
)

const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = 65

	// ScalarSize is the size of a big-endian serialized scalar or field
	// element.
	ScalarSize = 32
)

const (
	pubKeyFormatCompressedEven byte = 0x02
	pubKeyFormatCompressedOdd  byte = 0x03
	pubKeyFormatUncompressed   byte = 0x04
)

// PublicKey is an affine point on the curve. Values are only created by a
// Curve, which guarantees the point is valid, and are never modified
// afterwards.
type PublicKey struct {
	x [ScalarSize]byte
	y [ScalarSize]byte
}

// X returns the big-endian x coordinate of the point.
func (p *PublicKey) X() []byte {
	x := p.x
	return x[:]
}

// Y returns the big-endian y coordinate of the point.
func (p *PublicKey) Y() []byte {
	y := p.y
	return y[:]
}

func (p *PublicKey) isYOdd() bool {
	return p.y[ScalarSize-1]&1 == 1
}

// SerializeCompressed encodes the point as a parity byte (0x02 for an even y,
// 0x03 for an odd y) followed by the 32-byte x coordinate.
func (p *PublicKey) SerializeCompressed() []byte {
	serialized := make([]byte, PubKeyBytesLenCompressed)
	serialized[0] = pubKeyFormatCompressedEven
	if p.isYOdd() {
		serialized[0] = pubKeyFormatCompressedOdd
	}
	copy(serialized[1:], p.x[:])
	return serialized
}

// SerializeUncompressed encodes the point as 0x04 || x || y.
func (p *PublicKey) SerializeUncompressed() []byte {
	serialized := make([]byte, PubKeyBytesLenUncompressed)
	serialized[0] = pubKeyFormatUncompressed
	copy(serialized[1:], p.x[:])
	copy(serialized[1+ScalarSize:], p.y[:])
	return serialized
}

// IsEqual returns whether both keys represent the same point.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	if p == nil || other == nil {
		return p == other
	}
	return bytes.Equal(p.x[:], other.x[:]) && bytes.Equal(p.y[:], other.y[:])
}
