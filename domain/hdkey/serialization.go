package hdkey

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/kaspanet/hdkeychain/domain/ecc"
)

const (
	versionSerializationLen     = 4
	depthSerializationLen       = 1
	fingerprintSerializationLen = 4
	childNumberSerializationLen = 4
	chainCodeSerializationLen   = ChainCodeLen
	keySerializationLen         = ecc.PubKeyBytesLenCompressed
)

const (
	depthOffset       = versionSerializationLen
	fingerprintOffset = depthOffset + depthSerializationLen
	childNumberOffset = fingerprintOffset + fingerprintSerializationLen
	chainCodeOffset   = childNumberOffset + childNumberSerializationLen
	keyOffset         = chainCodeOffset + chainCodeSerializationLen

	// SerializedKeyLen is the length of a serialized extended key.
	SerializedKeyLen = keyOffset + keySerializationLen
)

// privateKeyPrefix is the byte that precedes a private scalar in the key data
// field.
const privateKeyPrefix = 0x00

// Serialize returns the 78-byte binary form of the key. If includePrivate is
// true the key data holds 0x00 || privateKey and the private version of the
// key's network is used; otherwise the compressed public point and the
// public version are used.
func (k *ExtendedKey) Serialize(includePrivate bool) ([]byte, error) {
	if err := k.checkUsable(); err != nil {
		return nil, err
	}
	if includePrivate && !k.IsPrivate() {
		return nil, makeError(ErrNotAPrivateKey, "cannot serialize a public key as private")
	}

	version, err := VersionFor(k.network, includePrivate)
	if err != nil {
		return nil, err
	}

	serialized := make([]byte, SerializedKeyLen)
	copy(serialized[:depthOffset], version[:])
	serialized[depthOffset] = k.depth
	copy(serialized[fingerprintOffset:childNumberOffset], k.parentFingerprint[:])
	binary.BigEndian.PutUint32(serialized[childNumberOffset:chainCodeOffset], k.childIndex)
	copy(serialized[chainCodeOffset:keyOffset], k.chainCode[:])
	if includePrivate {
		serialized[keyOffset] = privateKeyPrefix
		copy(serialized[keyOffset+1:], k.privateKey)
	} else {
		copy(serialized[keyOffset:], k.publicKey.SerializeCompressed())
	}

	return serialized, nil
}

// Text returns the Base58Check form of Serialize(includePrivate).
func (k *ExtendedKey) Text(includePrivate bool) (string, error) {
	serialized, err := k.Serialize(includePrivate)
	if err != nil {
		return "", err
	}
	defer ecc.Zero(serialized)

	return base58.CheckEncode(serialized[1:], serialized[0]), nil
}

// String returns the text form of the key, private if the key holds a
// private scalar. It returns an empty string for a zeroed key.
func (k *ExtendedKey) String() string {
	text, err := k.Text(k.IsPrivate())
	if err != nil {
		return ""
	}
	return text
}

// FromBinary parses a 78-byte serialized extended key.
//
// The parent fingerprint and child index of a depth 0 key are not checked to
// be zero. They are kept as given so the key serializes back to the same
// bytes.
func FromBinary(serialized []byte) (*ExtendedKey, error) {
	if len(serialized) != SerializedKeyLen {
		str := fmt.Sprintf("serialized extended key must be %d bytes but got %d",
			SerializedKeyLen, len(serialized))
		return nil, makeError(ErrInvalidLength, str)
	}

	var version KeyVersion
	copy(version[:], serialized[:depthOffset])
	network, isPrivate, err := LookupVersion(version)
	if err != nil {
		return nil, err
	}

	opts := &KeyOptions{
		Network:    network,
		Depth:      serialized[depthOffset],
		ChildIndex: binary.BigEndian.Uint32(serialized[childNumberOffset:chainCodeOffset]),
		ChainCode:  serialized[chainCodeOffset:keyOffset],
	}
	copy(opts.ParentFingerprint[:], serialized[fingerprintOffset:childNumberOffset])

	keyData := serialized[keyOffset:]
	if isPrivate {
		if keyData[0] != privateKeyPrefix {
			str := fmt.Sprintf("private version %s requires key data prefixed with 0x00", version)
			return nil, makeError(ErrKeyVersionMismatch, str)
		}
		opts.PrivateKey = keyData[1:]
	} else {
		if keyData[0] == privateKeyPrefix {
			str := fmt.Sprintf("public version %s cannot hold private key data", version)
			return nil, makeError(ErrKeyVersionMismatch, str)
		}
		opts.PublicKey = keyData
	}

	return NewKey(opts)
}

// FromString parses the Base58Check form of an extended key.
func FromString(key string) (*ExtendedKey, error) {
	payload, versionByte, err := base58.CheckDecode(key)
	if err != nil {
		if err == base58.ErrChecksum {
			return nil, makeError(ErrInvalidChecksum, "extended key checksum mismatch")
		}
		return nil, wrapError(ErrInvalidEncoding, err, "invalid extended key encoding")
	}
	defer ecc.Zero(payload)

	serialized := make([]byte, 0, len(payload)+1)
	serialized = append(serialized, versionByte)
	serialized = append(serialized, payload...)
	defer ecc.Zero(serialized)

	return FromBinary(serialized)
}

// IsValid returns whether the given string parses as an extended key.
func IsValid(key string) bool {
	_, err := FromString(key)
	return err == nil
}
