package hdkey

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/kaspanet/hdkeychain/domain/ecc"
	"github.com/pkg/errors"
)

// childDataLen is the length of the HMAC message of a child derivation: a
// 33-byte key followed by the 4-byte index.
const childDataLen = 37

var zeroScalar [ecc.ScalarSize]byte

// NewMaster creates a master private key on the given network from a seed of
// MinSeedBytes to MaxSeedBytes bytes.
func NewMaster(seed []byte, network Network) (*ExtendedKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		str := fmt.Sprintf("seed length must be between %d and %d bytes but got %d",
			MinSeedBytes, MaxSeedBytes, len(seed))
		return nil, makeError(ErrInvalidSeedLen, str)
	}
	if !network.isValid() {
		str := fmt.Sprintf("unknown network %d", network)
		return nil, makeError(ErrUnknownVersion, str)
	}

	I := hmacSHA512(masterKeySalt, seed)
	defer ecc.Zero(I)
	iL, iR := I[:ecc.ScalarSize], I[ecc.ScalarSize:]

	if !ecc.IsValidScalar(curve, iL) {
		return nil, makeError(ErrDerivationInvalidForIndex, "the seed does not yield a valid master key")
	}

	master, err := newPrivateExtendedKey(network, 0, [4]byte{}, 0, iR, iL)
	if err != nil {
		return nil, err
	}
	log.Debugf("Created a %s master key", network)
	return master, nil
}

func isHardened(index uint32) bool {
	return index >= HardenedKeyStart
}

// Derive returns the child of the key at the given index. Indexes at or above
// HardenedKeyStart derive hardened children, which requires a private key.
//
// About 1 in 2^127 indexes yields no valid child. In that case Derive returns
// ErrDerivationInvalidForIndex and the caller should move on to the next
// index.
func (k *ExtendedKey) Derive(index uint32) (*ExtendedKey, error) {
	if err := k.checkUsable(); err != nil {
		return nil, err
	}
	if k.depth == maxDepth {
		return nil, makeError(ErrMaxDepthExceeded, "cannot derive a child beyond depth 255")
	}

	hardened := isHardened(index)
	if hardened && !k.IsPrivate() {
		str := fmt.Sprintf("cannot derive hardened child %d from a public key", index)
		return nil, makeError(ErrHardenedRequiresPrivateKey, str)
	}

	I := k.calcI(index, hardened)
	defer ecc.Zero(I)
	iL, iR := I[:ecc.ScalarSize], I[ecc.ScalarSize:]

	if curve.CompareToOrder(iL) >= 0 {
		return nil, invalidIndexError(index, "IL is not less than the group order")
	}

	var child *ExtendedKey
	if k.IsPrivate() {
		childPrivateKey, err := curve.AddScalars(iL, k.privateKey)
		if err != nil {
			return nil, wrapError(ErrInvalidKeyMaterial, err, "error adding scalars")
		}
		defer ecc.Zero(childPrivateKey)

		if !ecc.IsValidScalar(curve, childPrivateKey) {
			return nil, invalidIndexError(index, "the child private key is zero")
		}

		child, err = newPrivateExtendedKey(k.network, k.depth+1, k.Fingerprint(), index, iR, childPrivateKey)
		if err != nil {
			return nil, err
		}
	} else {
		childPublicKey, err := k.childPublicKey(iL)
		if errors.Is(err, ecc.ErrPointAtInfinity) {
			return nil, invalidIndexError(index, "the child public key is the point at infinity")
		}
		if err != nil {
			return nil, wrapError(ErrInvalidKeyMaterial, err, "error calculating child public key")
		}

		child = newPublicExtendedKey(k.network, k.depth+1, k.Fingerprint(), index, iR, childPublicKey)
	}

	log.Tracef("Derived child %d (hardened: %t) at depth %d", index, hardened, child.depth)
	return child, nil
}

// DeriveHardened returns the hardened child at index | HardenedKeyStart.
func (k *ExtendedKey) DeriveHardened(index uint32) (*ExtendedKey, error) {
	return k.Derive(index | HardenedKeyStart)
}

// calcI returns HMAC-SHA512(chainCode, data || index), where data is 0x00 ||
// privateKey for hardened indexes and the compressed public key otherwise.
func (k *ExtendedKey) calcI(index uint32, hardened bool) []byte {
	var data [childDataLen]byte
	defer ecc.Zero(data[:])

	if hardened {
		copy(data[1:], k.privateKey)
	} else {
		copy(data[:], k.publicKey.SerializeCompressed())
	}
	binary.BigEndian.PutUint32(data[childDataLen-4:], index)

	return hmacSHA512(k.chainCode[:], data[:])
}

// childPublicKey returns IL*G + K for the public key K of k. A zero IL
// leaves K unchanged.
func (k *ExtendedKey) childPublicKey(iL []byte) (*ecc.PublicKey, error) {
	if bytes.Equal(iL, zeroScalar[:]) {
		return k.publicKey, nil
	}
	tweak, err := curve.ScalarBaseMult(iL)
	if err != nil {
		return nil, err
	}
	return curve.AddPoints(tweak, k.publicKey)
}

func invalidIndexError(index uint32, reason string) error {
	log.Debugf("Child %d is invalid: %s", index, reason)
	str := fmt.Sprintf("child %d is invalid (%s); the next index should be used instead", index, reason)
	return makeError(ErrDerivationInvalidForIndex, str)
}
