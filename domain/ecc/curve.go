package ecc

// Curve is the set of elliptic curve operations key derivation is built on.
// Scalars are 32-byte big-endian integers. Implementations must be safe for
// concurrent use.
type Curve interface {
	// ParsePublicKey decodes a 33-byte compressed or 65-byte uncompressed
	// point and verifies that it lies on the curve.
	ParsePublicKey(serialized []byte) (*PublicKey, error)

	// ScalarBaseMult returns k*G.
	ScalarBaseMult(k []byte) (*PublicKey, error)

	// AddPoints returns a+b.
	AddPoints(a, b *PublicKey) (*PublicKey, error)

	// AddScalars returns (a+b) mod n.
	AddScalars(a, b []byte) ([]byte, error)

	// CompareToOrder returns -1, 0 or +1 depending on whether k is less
	// than, equal to or greater than the group order n.
	CompareToOrder(k []byte) int
}

// IsValidScalar returns whether k is usable as a private key on the given
// curve: exactly ScalarSize bytes, nonzero and less than the group order.
func IsValidScalar(curve Curve, k []byte) bool {
	if len(k) != ScalarSize {
		return false
	}
	if isZero(k) {
		return false
	}
	return curve.CompareToOrder(k) < 0
}

func isZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
