package config

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/hdkeychain/domain/hdkey"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet bool   `long:"testnet" description:"Use the test network version prefixes (tprv/tpub)"`
	Network string `long:"network" description:"Name of the network to use (mainnet or testnet)"`

	ActiveNetwork hdkey.Network
}

// ResolveNetwork resolves the network flags into ActiveNetwork. Mainnet is
// the default. It returns an error if the flags select different networks.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	networkFlags.ActiveNetwork = hdkey.Mainnet

	if networkFlags.Network != "" {
		network, err := hdkey.ParseNetwork(networkFlags.Network)
		if err != nil {
			return err
		}
		if networkFlags.Testnet && network != hdkey.Testnet {
			err := errors.Errorf("--testnet cannot be used together with --network=%s", network)
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
			return err
		}
		networkFlags.ActiveNetwork = network
		return nil
	}

	if networkFlags.Testnet {
		networkFlags.ActiveNetwork = hdkey.Testnet
	}
	return nil
}

// NetworkName returns the name of ActiveNetwork.
func (networkFlags *NetworkFlags) NetworkName() string {
	return networkFlags.ActiveNetwork.String()
}
