package ecc

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// secp256k1Curve implements Curve on top of the dcrd secp256k1 field and
// group arithmetic. It holds no state.
type secp256k1Curve struct{}

var s256 Curve = secp256k1Curve{}

// curveOrder is n, the order of the group generated by G.
var curveOrder = new(big.Int).Set(secp256k1.S256().N)

// S256 returns the secp256k1 curve.
func S256() Curve {
	return s256
}

// ParsePublicKey implements Curve.
func (secp256k1Curve) ParsePublicKey(serialized []byte) (*PublicKey, error) {
	var x, y secp256k1.FieldVal
	switch len(serialized) {
	case PubKeyBytesLenUncompressed:
		if serialized[0] != pubKeyFormatUncompressed {
			str := fmt.Sprintf("invalid public key: unsupported format byte %#02x "+
				"for uncompressed key", serialized[0])
			return nil, makeError(ErrInvalidPublicKey, str)
		}
		if overflow := x.SetByteSlice(serialized[1 : 1+ScalarSize]); overflow {
			return nil, makeError(ErrInvalidPublicKey, "invalid public key: x >= field prime")
		}
		if overflow := y.SetByteSlice(serialized[1+ScalarSize:]); overflow {
			return nil, makeError(ErrInvalidPublicKey, "invalid public key: y >= field prime")
		}
		if !isOnCurve(&x, &y) {
			str := fmt.Sprintf("invalid public key: [%x, %x] is not on the curve",
				serialized[1:1+ScalarSize], serialized[1+ScalarSize:])
			return nil, makeError(ErrInvalidPublicKey, str)
		}

	case PubKeyBytesLenCompressed:
		format := serialized[0]
		if format != pubKeyFormatCompressedEven && format != pubKeyFormatCompressedOdd {
			str := fmt.Sprintf("invalid public key: unsupported format byte %#02x "+
				"for compressed key", format)
			return nil, makeError(ErrInvalidPublicKey, str)
		}
		if overflow := x.SetByteSlice(serialized[1:]); overflow {
			return nil, makeError(ErrInvalidPublicKey, "invalid public key: x >= field prime")
		}
		wantOddY := format == pubKeyFormatCompressedOdd
		if !decompressY(&x, wantOddY, &y) {
			str := fmt.Sprintf("invalid public key: x coordinate %x is not on the curve",
				serialized[1:])
			return nil, makeError(ErrInvalidPublicKey, str)
		}

	default:
		str := fmt.Sprintf("malformed public key: invalid length: %d", len(serialized))
		return nil, makeError(ErrInvalidPublicKey, str)
	}

	return publicKeyFromFieldVals(&x, &y), nil
}

// decompressY computes the y coordinate with the requested parity for the
// given x on y^2 = x^3 + 7. The field prime is congruent to 3 mod 4, so the
// only candidate root is (x^3 + 7)^((p+1)/4), which is only a real root when
// its square gives back the right-hand side.
func decompressY(x *secp256k1.FieldVal, odd bool, resultY *secp256k1.FieldVal) bool {
	var rhs secp256k1.FieldVal
	rhs.SquareVal(x).Mul(x).AddInt(7).Normalize()

	resultY.SquareRootVal(&rhs)
	resultY.Normalize()

	var check secp256k1.FieldVal
	check.SquareVal(resultY).Normalize()
	if !check.Equals(&rhs) {
		return false
	}

	if resultY.IsOdd() != odd {
		resultY.Negate(1).Normalize()
	}
	// y = 0 has no partner of the opposite parity.
	return resultY.IsOdd() == odd
}

// isOnCurve reports whether y^2 = x^3 + 7 holds for the normalized x and y.
func isOnCurve(x, y *secp256k1.FieldVal) bool {
	var lhs, rhs secp256k1.FieldVal
	lhs.SquareVal(y).Normalize()
	rhs.SquareVal(x).Mul(x).AddInt(7).Normalize()
	return lhs.Equals(&rhs)
}

func publicKeyFromFieldVals(x, y *secp256k1.FieldVal) *PublicKey {
	pk := &PublicKey{}
	x.Normalize().PutBytes(&pk.x)
	y.Normalize().PutBytes(&pk.y)
	return pk
}

func (p *PublicKey) asJacobian(result *secp256k1.JacobianPoint) {
	result.X.SetBytes(&p.x)
	result.Y.SetBytes(&p.y)
	result.Z.SetInt(1)
}

// publicKeyFromJacobian converts the point back to affine coordinates.
func publicKeyFromJacobian(point *secp256k1.JacobianPoint) (*PublicKey, error) {
	point.Z.Normalize()
	if point.Z.IsZero() {
		return nil, makeError(ErrPointAtInfinity, "the resulting point is the point at infinity")
	}
	point.ToAffine()
	return publicKeyFromFieldVals(&point.X, &point.Y), nil
}

// scalarFromBytes loads k into s, rejecting values that are not exactly
// ScalarSize bytes or are not less than the group order.
func scalarFromBytes(k []byte, s *secp256k1.ModNScalar) error {
	if len(k) != ScalarSize {
		str := fmt.Sprintf("scalar must be %d bytes but got %d", ScalarSize, len(k))
		return makeError(ErrInvalidScalar, str)
	}
	if overflow := s.SetByteSlice(k); overflow {
		s.Zero()
		return makeError(ErrInvalidScalar, "scalar is not less than the group order")
	}
	return nil
}

// ScalarBaseMult implements Curve.
func (secp256k1Curve) ScalarBaseMult(k []byte) (*PublicKey, error) {
	var s secp256k1.ModNScalar
	defer s.Zero()
	err := scalarFromBytes(k, &s)
	if err != nil {
		return nil, err
	}
	if s.IsZero() {
		return nil, makeError(ErrPointAtInfinity, "zero scalar multiplied by the generator")
	}

	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s, &result)
	return publicKeyFromJacobian(&result)
}

// AddPoints implements Curve. The addition is done in Jacobian coordinates
// and the result normalized back to affine.
func (secp256k1Curve) AddPoints(a, b *PublicKey) (*PublicKey, error) {
	var pa, pb, result secp256k1.JacobianPoint
	a.asJacobian(&pa)
	b.asJacobian(&pb)
	secp256k1.AddNonConst(&pa, &pb, &result)
	return publicKeyFromJacobian(&result)
}

// AddScalars implements Curve.
func (secp256k1Curve) AddScalars(a, b []byte) ([]byte, error) {
	var sa, sb secp256k1.ModNScalar
	defer sa.Zero()
	defer sb.Zero()
	if err := scalarFromBytes(a, &sa); err != nil {
		return nil, err
	}
	if err := scalarFromBytes(b, &sb); err != nil {
		return nil, err
	}

	sum := sa.Add(&sb).Bytes()
	result := make([]byte, ScalarSize)
	copy(result, sum[:])
	Zero(sum[:])
	return result, nil
}

// CompareToOrder implements Curve.
func (secp256k1Curve) CompareToOrder(k []byte) int {
	return new(big.Int).SetBytes(k).Cmp(curveOrder)
}
