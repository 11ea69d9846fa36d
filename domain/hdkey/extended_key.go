package hdkey

import (
	"bytes"
	"fmt"

	"github.com/kaspanet/hdkeychain/domain/ecc"
)

const (
	// HardenedKeyStart is the first hardened child index. Indexes at or above
	// it derive from the private key only.
	HardenedKeyStart = 0x80000000

	// ChainCodeLen is the length of a chain code.
	ChainCodeLen = 32

	// MinSeedBytes is the minimum number of bytes allowed for a master seed.
	MinSeedBytes = 16

	// MaxSeedBytes is the maximum number of bytes allowed for a master seed.
	MaxSeedBytes = 64

	// IDLen is the length of a key identifier.
	IDLen = 20

	maxDepth = 0xff
)

// curve is the curve backend every key in the package is computed with.
var curve = ecc.S256()

// ExtendedKey is a BIP32 extended key: key material plus the chain code and
// metadata needed to derive children. Values are immutable; derivation and
// parsing return new keys. The only exception is Zero, which wipes the key.
type ExtendedKey struct {
	network           Network
	depth             uint8
	parentFingerprint [4]byte
	childIndex        uint32
	chainCode         [ChainCodeLen]byte

	// privateKey is nil for public-only keys.
	privateKey []byte
	publicKey  *ecc.PublicKey
	id         [IDLen]byte

	isZeroed bool
}

// KeyOptions describes an extended key field by field. Zero values give the
// defaults of a root key: depth 0, child index 0 and an all-zero parent
// fingerprint on mainnet.
type KeyOptions struct {
	Network           Network
	Depth             uint8
	ParentFingerprint [4]byte
	ChildIndex        uint32
	ChainCode         []byte

	// PrivateKey is a 32-byte big-endian scalar in [1, n-1].
	PrivateKey []byte

	// PublicKey is a 33-byte compressed or 65-byte uncompressed point. It is
	// only required when PrivateKey is absent; if both are given they must
	// match.
	PublicKey []byte
}

// NewKey validates the given fields and builds an extended key from them.
// All input slices are copied.
func NewKey(opts *KeyOptions) (*ExtendedKey, error) {
	if !opts.Network.isValid() {
		str := fmt.Sprintf("unknown network %d", opts.Network)
		return nil, makeError(ErrUnknownVersion, str)
	}
	if len(opts.ChainCode) != ChainCodeLen {
		str := fmt.Sprintf("chain code must be %d bytes but got %d", ChainCodeLen, len(opts.ChainCode))
		return nil, makeError(ErrInvalidChainCode, str)
	}

	switch {
	case opts.PrivateKey != nil:
		if !ecc.IsValidScalar(curve, opts.PrivateKey) {
			str := fmt.Sprintf("private key must be a %d-byte scalar in [1, n-1]", ecc.ScalarSize)
			return nil, makeError(ErrInvalidKeyMaterial, str)
		}
		key, err := newPrivateExtendedKey(opts.Network, opts.Depth, opts.ParentFingerprint,
			opts.ChildIndex, opts.ChainCode, opts.PrivateKey)
		if err != nil {
			return nil, err
		}
		if opts.PublicKey != nil {
			publicKey, err := curve.ParsePublicKey(opts.PublicKey)
			if err != nil {
				return nil, wrapError(ErrInvalidKeyMaterial, err, "error parsing public key")
			}
			if !publicKey.IsEqual(key.publicKey) {
				return nil, makeError(ErrInvalidKeyMaterial, "public key does not belong to the private key")
			}
		}
		return key, nil

	case opts.PublicKey != nil:
		publicKey, err := curve.ParsePublicKey(opts.PublicKey)
		if err != nil {
			return nil, wrapError(ErrInvalidKeyMaterial, err, "error parsing public key")
		}
		return newPublicExtendedKey(opts.Network, opts.Depth, opts.ParentFingerprint,
			opts.ChildIndex, opts.ChainCode, publicKey), nil

	default:
		return nil, makeError(ErrInvalidKeyMaterial, "either a private or a public key is required")
	}
}

// newPrivateExtendedKey builds a key from an already validated scalar. The
// chain code and scalar are copied.
func newPrivateExtendedKey(network Network, depth uint8, parentFingerprint [4]byte, childIndex uint32,
	chainCode, privateKey []byte) (*ExtendedKey, error) {

	publicKey, err := curve.ScalarBaseMult(privateKey)
	if err != nil {
		return nil, wrapError(ErrInvalidKeyMaterial, err, "error calculating public key")
	}

	key := newPublicExtendedKey(network, depth, parentFingerprint, childIndex, chainCode, publicKey)
	key.privateKey = make([]byte, ecc.ScalarSize)
	copy(key.privateKey, privateKey)
	return key, nil
}

func newPublicExtendedKey(network Network, depth uint8, parentFingerprint [4]byte, childIndex uint32,
	chainCode []byte, publicKey *ecc.PublicKey) *ExtendedKey {

	key := &ExtendedKey{
		network:           network,
		depth:             depth,
		parentFingerprint: parentFingerprint,
		childIndex:        childIndex,
		publicKey:         publicKey,
	}
	copy(key.chainCode[:], chainCode)
	copy(key.id[:], hash160(publicKey.SerializeCompressed()))
	return key
}

func (k *ExtendedKey) checkUsable() error {
	if k.isZeroed {
		return makeError(ErrInvalidKeyMaterial, "the key has been zeroed")
	}
	return nil
}

// Network returns the network the key belongs to.
func (k *ExtendedKey) Network() Network {
	return k.network
}

// Depth returns the number of derivation steps between the key and its root.
func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ParentFingerprint returns the fingerprint of the parent key, or all zeros
// for a root key.
func (k *ExtendedKey) ParentFingerprint() [4]byte {
	return k.parentFingerprint
}

// ChildIndex returns the index the key was derived at, including the hardened
// bit.
func (k *ExtendedKey) ChildIndex() uint32 {
	return k.childIndex
}

// IsHardened returns whether the key was derived at a hardened index.
func (k *ExtendedKey) IsHardened() bool {
	return isHardened(k.childIndex)
}

// ChainCode returns a copy of the chain code.
func (k *ExtendedKey) ChainCode() []byte {
	chainCode := k.chainCode
	return chainCode[:]
}

// IsPrivate returns whether the key holds private key material.
func (k *ExtendedKey) IsPrivate() bool {
	return k.privateKey != nil
}

// PrivateScalar returns a copy of the 32-byte private scalar.
func (k *ExtendedKey) PrivateScalar() ([]byte, error) {
	if err := k.checkUsable(); err != nil {
		return nil, err
	}
	if !k.IsPrivate() {
		return nil, makeError(ErrNotAPrivateKey, "the key does not hold a private scalar")
	}
	privateKey := make([]byte, ecc.ScalarSize)
	copy(privateKey, k.privateKey)
	return privateKey, nil
}

// PublicKey returns the public point of the key.
func (k *ExtendedKey) PublicKey() (*ecc.PublicKey, error) {
	if err := k.checkUsable(); err != nil {
		return nil, err
	}
	return k.publicKey, nil
}

// PublicKeyBytes returns the 33-byte compressed public point.
func (k *ExtendedKey) PublicKeyBytes() ([]byte, error) {
	if err := k.checkUsable(); err != nil {
		return nil, err
	}
	return k.publicKey.SerializeCompressed(), nil
}

// ID returns hash160 of the compressed public point.
func (k *ExtendedKey) ID() []byte {
	id := k.id
	return id[:]
}

// Fingerprint returns the first 4 bytes of the key ID. Children of this key
// carry it as their parent fingerprint.
func (k *ExtendedKey) Fingerprint() [4]byte {
	var fingerprint [4]byte
	copy(fingerprint[:], k.id[:4])
	return fingerprint
}

// Neuter returns the public-only projection of the key. A public key is
// returned as is.
func (k *ExtendedKey) Neuter() (*ExtendedKey, error) {
	if err := k.checkUsable(); err != nil {
		return nil, err
	}
	if !k.IsPrivate() {
		return k, nil
	}
	return newPublicExtendedKey(k.network, k.depth, k.parentFingerprint, k.childIndex,
		k.chainCode[:], k.publicKey), nil
}

// Equal returns whether both keys hold the same fields and key material.
func (k *ExtendedKey) Equal(other *ExtendedKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	if k.isZeroed || other.isZeroed {
		return false
	}
	return k.network == other.network &&
		k.depth == other.depth &&
		k.parentFingerprint == other.parentFingerprint &&
		k.childIndex == other.childIndex &&
		k.chainCode == other.chainCode &&
		bytes.Equal(k.privateKey, other.privateKey) &&
		k.publicKey.IsEqual(other.publicKey)
}

// Zero wipes the private scalar and chain code of the key. Every operation
// on the key fails with ErrInvalidKeyMaterial afterwards. Zero must not be
// called while the key is in use by another goroutine.
func (k *ExtendedKey) Zero() {
	ecc.Zero(k.privateKey)
	ecc.Zero(k.chainCode[:])
	ecc.Zero(k.id[:])
	k.publicKey = nil
	k.isZeroed = true
}
