package hdkey

import (
	"fmt"
)

// KeyVersion is the 4-byte prefix of a serialized extended key. It encodes
// both the network and whether the key data is private or public.
type KeyVersion [4]byte

// Version prefixes of the version registry.
var (
	MainnetPrivate = KeyVersion{0x04, 0x88, 0xad, 0xe4} // xprv
	MainnetPublic  = KeyVersion{0x04, 0x88, 0xb2, 0x1e} // xpub
	TestnetPrivate = KeyVersion{0x04, 0x35, 0x83, 0x94} // tprv
	TestnetPublic  = KeyVersion{0x04, 0x35, 0x87, 0xcf} // tpub
)

type versionKind struct {
	network   Network
	isPrivate bool
}

var versionsByKind = map[versionKind]KeyVersion{
	{network: Mainnet, isPrivate: true}:  MainnetPrivate,
	{network: Mainnet, isPrivate: false}: MainnetPublic,
	{network: Testnet, isPrivate: true}:  TestnetPrivate,
	{network: Testnet, isPrivate: false}: TestnetPublic,
}

// kindsByVersion is the reverse registry. It is built once during package
// initialization and only read afterwards.
var kindsByVersion = buildReverseRegistry()

func buildReverseRegistry() map[KeyVersion]versionKind {
	reverse := make(map[KeyVersion]versionKind, len(versionsByKind))
	for kind, version := range versionsByKind {
		reverse[version] = kind
	}
	return reverse
}

// VersionFor returns the version prefix for keys of the given network and
// type.
func VersionFor(network Network, isPrivate bool) (KeyVersion, error) {
	version, ok := versionsByKind[versionKind{network: network, isPrivate: isPrivate}]
	if !ok {
		str := fmt.Sprintf("no version registered for network %s", network)
		return KeyVersion{}, makeError(ErrUnknownVersion, str)
	}
	return version, nil
}

// LookupVersion returns the network and key type the given version prefix
// stands for.
func LookupVersion(version KeyVersion) (network Network, isPrivate bool, err error) {
	kind, ok := kindsByVersion[version]
	if !ok {
		str := fmt.Sprintf("unknown extended key version %x", version[:])
		return 0, false, makeError(ErrUnknownVersion, str)
	}
	return kind.network, kind.isPrivate, nil
}

// String returns the version as hex.
func (v KeyVersion) String() string {
	return fmt.Sprintf("%x", v[:])
}
