package hdkey

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil"
	"github.com/pkg/errors"
)

var addressParams = map[Network]*chaincfg.Params{
	Mainnet: &chaincfg.MainNetParams,
	Testnet: &chaincfg.TestNet3Params,
}

// Address returns the pay-to-pubkey-hash address of the key ID on the key's
// network.
func (k *ExtendedKey) Address() (string, error) {
	if err := k.checkUsable(); err != nil {
		return "", err
	}

	params, ok := addressParams[k.network]
	if !ok {
		return "", errors.Errorf("no address parameters for network %s", k.network)
	}
	address, err := btcutil.NewAddressPubKeyHash(k.id[:], params)
	if err != nil {
		return "", errors.Wrap(err, "error creating pay-to-pubkey-hash address")
	}
	return address.EncodeAddress(), nil
}
