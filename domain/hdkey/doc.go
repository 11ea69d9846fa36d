/*
Package hdkey implements BIP32 hierarchical deterministic extended keys over
secp256k1.

An extended key pairs a private scalar or a public point with a 32-byte chain
code. From it, up to 2^31 normal and 2^31 hardened children can be derived.
Normal children of a public key match the public projection of the children
of the corresponding private key, so a public extended key can derive
receiving keys without ever holding a secret.

	master, err := hdkey.NewMaster(seed, hdkey.Mainnet)
	account, err := master.DerivePath("m/44'/0'/0'")
	xpub, err := account.Text(false)

Derivation can fail for a given index with a probability of about 1 in 2^127.
Such failures are reported as ErrDerivationInvalidForIndex and it is up to the
caller to move on to the next index.

Extended keys serialize to a 78-byte binary form and to Base58Check text
(xprv, xpub, tprv, tpub).
*/
package hdkey
